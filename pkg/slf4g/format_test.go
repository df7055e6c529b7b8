package slf4g_test

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"no args keeps placeholders", "{0} {0}", nil, "{0} {0}"},
		{"reuse", "{0} {0}", []any{1, 2}, "1 1"},
		{"in order", "{0} {1}", []any{1, 2}, "1 2"},
		{"missing index kept", "{1} {2}", []any{1, 2}, "2 {2}"},
		{"reversed", "{1} {0}", []any{1, 2}, "2 1"},
		{"no placeholders", "plain text", []any{1}, "plain text"},
		{"empty template", "", []any{1}, ""},
		{"not a placeholder", "{a} {} {-1} {0", []any{"x"}, "{a} {} {-1} {0"},
		{"nested braces", "{{0}}", []any{"x"}, "{x}"},
		{"multi digit", "{10}", []any{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, "ten"}, "ten"},
		{"leading zeros", "{01}", []any{"a", "b"}, "b"},
		{"nil argument exists", "{0}", []any{nil}, "<nil>"},
		{"overflow kept", "{99999999999999999999}", []any{"x"}, "{99999999999999999999}"},
		{"stringer and error", "{0}: {1}", []any{slf4g.LevelWarn, errors.New("boom")}, "warn: boom"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := slf4g.Format(tt.template, tt.args...); got != tt.want {
				t.Fatalf("Format(%q, %v): want %q, got %q", tt.template, tt.args, tt.want, got)
			}
		})
	}
}

func TestFormatValue_NonStringPassThrough(t *testing.T) {
	t.Parallel()

	err := errors.New("{0}")
	if got := slf4g.FormatValue(err, "x"); got != err {
		t.Fatalf("non-string template must be returned unchanged, got %v", got)
	}
	if got := slf4g.FormatValue(42, "x"); got != 42 {
		t.Fatalf("non-string template must be returned unchanged, got %v", got)
	}
	if got := slf4g.FormatValue(nil); got != nil {
		t.Fatalf("nil must be returned unchanged, got %v", got)
	}
	if got := slf4g.FormatValue("{0}", "x"); got != "x" {
		t.Fatalf("string template must be formatted, got %v", got)
	}
}

func TestSprint(t *testing.T) {
	t.Parallel()

	if got := slf4g.Sprint("hello {0}", "world"); got != "hello world" {
		t.Fatalf("got %q", got)
	}
	if got := slf4g.Sprint(errors.New("failed {0}"), "x"); got != "failed {0}" {
		t.Fatalf("errors must not be formatted, got %q", got)
	}
	if got := slf4g.Sprint(3.5); got != "3.5" {
		t.Fatalf("got %q", got)
	}
}
