// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace_id, span_id).
// Привязки логгера читают их в WithContext, HTTP-слой кладёт; друг от друга они не зависят.
package ctxmeta

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
)

// Имена полей в записях логов.
const (
	FieldRequestID = "request_id"
	FieldTraceID   = "trace_id"
	FieldSpanID    = "span_id"
)

// NewRequestID — новый идентификатор запроса (UUID v4).
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// Field — пара "имя поля → значение" для структурированных логов.
type Field struct {
	Key   string
	Value string
}

// Fields — все известные метаданные контекста в фиксированном порядке:
// request_id, trace_id, span_id. Отсутствующие пропускаются.
func Fields(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}

	var fields []Field
	if v, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, Field{Key: FieldRequestID, Value: v})
	}
	if v, ok := TraceIDFromContext(ctx); ok {
		fields = append(fields, Field{Key: FieldTraceID, Value: v})
	}
	if v, ok := SpanIDFromContext(ctx); ok {
		fields = append(fields, Field{Key: FieldSpanID, Value: v})
	}
	return fields
}
