// Пакет all подключает все встроенные привязки:
//
//	import _ "github.com/Gunvolt24/slf4g/pkg/binding/all"
package all

import (
	_ "github.com/Gunvolt24/slf4g/pkg/binding/console"
	_ "github.com/Gunvolt24/slf4g/pkg/binding/logruslog"
	_ "github.com/Gunvolt24/slf4g/pkg/binding/sloglog"
	_ "github.com/Gunvolt24/slf4g/pkg/binding/zaplog"
)
