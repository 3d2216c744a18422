package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{name: "empty", in: "", want: map[string]string{}},
		{name: "bare token", in: "Bearer abc", want: map[string]string{"authorization": "Bearer abc"}},
		{
			name: "pairs",
			in:   "x-api-key=abc, x-tenant = shop",
			want: map[string]string{"x-api-key": "abc", "x-tenant": "shop"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseHeaders(tt.in))
		})
	}
}

func TestInitTracer(t *testing.T) {
	ctx := context.Background()

	shutdown, err := InitTracer(ctx, config.Otel{TraceIDRatio: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(ctx) })

	_, span := otel.Tracer("test").Start(ctx, "op")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
}
