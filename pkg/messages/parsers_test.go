package messages_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/messages"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := messages.NewJSONParser()

	t.Run("Parse valid JSON", func(t *testing.T) {
		t.Parallel()
		content := `{"errors": {"messages": {"blank": "is Empty"}}}`

		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		errs, ok := result["errors"].(map[string]any)
		require.True(t, ok)
		msgs, ok := errs["messages"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "is Empty", msgs["blank"])
	})

	t.Run("Parse invalid JSON", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), `{"errors": {,}}`)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, messages.ErrFailedToParseJSON)
	})

	t.Run("Context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := parser.Parse(ctx, `{}`)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, messages.ErrJSONParsingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Supports extension", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("json"))
		assert.True(t, parser.SupportsFileExtension(".JSON"))
		assert.False(t, parser.SupportsFileExtension("yaml"))
	})
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := messages.NewYAMLParser()

	t.Run("Parse valid YAML", func(t *testing.T) {
		t.Parallel()
		content := "errors:\n  messages:\n    blank: is Empty\n    too_short: \"needs %{count}\"\n"

		result, err := parser.Parse(context.Background(), content)
		require.NoError(t, err)

		errs, ok := result["errors"].(map[string]any)
		require.True(t, ok)
		msgs, ok := errs["messages"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "is Empty", msgs["blank"])
		assert.Equal(t, "needs %{count}", msgs["too_short"])
	})

	t.Run("Parse invalid YAML", func(t *testing.T) {
		t.Parallel()
		result, err := parser.Parse(context.Background(), "errors: [unclosed")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, messages.ErrFailedToParseYAML)
	})

	t.Run("Context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := parser.Parse(ctx, "a: b")
		assert.ErrorIs(t, err, messages.ErrYAMLParsingCancelled)
	})

	t.Run("Supports extension", func(t *testing.T) {
		t.Parallel()
		assert.True(t, parser.SupportsFileExtension("yml"))
		assert.True(t, parser.SupportsFileExtension(".yaml"))
		assert.False(t, parser.SupportsFileExtension("json"))
	})
}

func TestNewParserForFile(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &messages.JSONParser{}, messages.NewParserForFile("en.json"))
	assert.IsType(t, &messages.YAMLParser{}, messages.NewParserForFile("config/en.yml"))
	assert.IsType(t, &messages.YAMLParser{}, messages.NewParserForFile("EN.YAML"))
	assert.Nil(t, messages.NewParserForFile("messages.toml"))
	assert.Nil(t, messages.NewParserForFile("messages"))
}
