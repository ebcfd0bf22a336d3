package internal

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background())
	id := GetRequestID(ctx)
	assert.Len(t, id, 36)
	assert.Equal(t, id, GetRequestID(WithRequestID(ctx)))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestWithRequestIDFrom(t *testing.T) {
	request := httptest.NewRequest("GET", "/", nil)
	request.Header.Set(requestIDHeader, "abc")
	assert.Equal(t, "abc", GetRequestID(WithRequestIDFrom(request)))

	request.Header.Set(requestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	assert.Len(t, GetRequestID(WithRequestIDFrom(request)), 36)
}
