package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{name: "authorization", header: http.Header{"Authorization": {"Bearer secret-token"}}, want: "[REDACTED]"},
		{name: "proxy authorization", header: http.Header{"Proxy-Authorization": {"Basic Zm9vOmJhcg=="}}, want: "[REDACTED]"},
		{name: "api key", header: http.Header{"X-Api-Key": {"my-api-key-value"}}, want: "[REDACTED]"},
		{name: "cookie", header: http.Header{"Cookie": {"session=abc123"}}, want: "[REDACTED]"},
		{name: "non-canonical casing", header: http.Header{"authorization": {"Bearer x"}}, want: "[REDACTED]"},
		{name: "content type", header: http.Header{"Content-Type": {"application/json"}}, want: "application/json"},
		{name: "multi-value", header: http.Header{"Accept": {"application/json", "text/plain"}}, want: "application/json,text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(tt.header)
			require.Len(t, attrs, 1)
			assert.Equal(t, tt.want, attrs[0].Value.String())
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id": {"req-1"},
		"Content-Type": {"application/json"},
		"Cookie":       {"session=abc123"},
		"Accept":       {"*/*"},
	})

	keys := make([]string, 0, len(attrs))
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}
	assert.Equal(t, []string{"Accept", "Content-Type", "Cookie", "X-Request-Id"}, keys)
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, middleware.RedactHeaders(http.Header{}))
	assert.Empty(t, middleware.RedactHeaders(nil))
}
