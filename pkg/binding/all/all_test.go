package all_test

import (
	"testing"

	_ "github.com/Gunvolt24/slf4g/pkg/binding/all"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

func TestAllBindingsRegistered(t *testing.T) {
	want := []string{"console", "logrus", "nop", "slog", "zap"}
	got := slf4g.Bindings()
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}
}
