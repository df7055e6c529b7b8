package slf4g

import (
	"fmt"
	"plugin"
	"reflect"
	"strings"
)

// Символы, которые ищутся в плагине: сначала Factory, затем Default.
const (
	PluginSymbol        = "Factory"
	PluginDefaultSymbol = "Default"
)

// PluginLoader — динамическая загрузка привязки из Go-плагина (имя оканчивается на .so).
type PluginLoader struct{}

func (PluginLoader) Load(name string) (LoggerFactory, error) {
	if !strings.HasSuffix(name, ".so") {
		return nil, ErrUnknownBinding
	}

	p, err := plugin.Open(name)
	if err != nil {
		return nil, withKind(ErrBindingLoad, err)
	}

	sym, err := p.Lookup(PluginSymbol)
	if err != nil {
		var defErr error
		if sym, defErr = p.Lookup(PluginDefaultSymbol); defErr != nil {
			return nil, withKind(ErrBindingInvalid, fmt.Errorf("neither %s nor %s exported", PluginSymbol, PluginDefaultSymbol))
		}
	}

	factory, ok := asFactory(sym)
	if !ok {
		return nil, withKind(ErrBindingInvalid, fmt.Errorf("unexpected symbol type %T", sym))
	}
	return factory, nil
}

// asFactory — приводит экспортированное значение к LoggerFactory.
// Переменные плагина приходят указателями, функции — значениями.
func asFactory(sym any) (LoggerFactory, bool) {
	switch v := sym.(type) {
	case nil:
		return nil, false
	case LoggerFactory:
		return v, true
	case *LoggerFactory:
		if v == nil || *v == nil {
			return nil, false
		}
		return *v, true
	case func() LoggerFactory:
		f := v()
		return f, f != nil
	case func() (LoggerFactory, error):
		f, err := v()
		return f, err == nil && f != nil
	}

	rv := reflect.ValueOf(sym)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return asFactory(rv.Elem().Interface())
	}
	return nil, false
}
