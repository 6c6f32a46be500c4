package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestType(t *testing.T) {
	attr := logger.Type("Post")
	require.Equal(t, "type", attr.Key)
	assert.Equal(t, "Post", attr.Value.String())

	empty := logger.Type("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestKind(t *testing.T) {
	attr := logger.Kind("presence")
	require.Equal(t, "kind", attr.Key)
	assert.Equal(t, "presence", attr.Value.String())
}

func TestAttribute(t *testing.T) {
	attr := logger.Attribute("replies.name")
	require.Equal(t, "attribute", attr.Key)
	assert.Equal(t, "replies.name", attr.Value.String())
}

func TestErrorCount(t *testing.T) {
	attr := logger.ErrorCount(3)
	require.Equal(t, "error_count", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestDuration(t *testing.T) {
	attr := logger.Duration(2 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Any())
}

func TestComponent(t *testing.T) {
	attr := logger.Component("validation")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "validation", attr.Value.String())
}
