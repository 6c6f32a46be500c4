package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/validation"
)

func TestErrors_ToXML(t *testing.T) {
	t.Parallel()

	newBag := func() *validation.Errors {
		errs := validation.NewErrors()
		errs.Add("title", "can't be blank")
		errs.Add("content", "is Empty")
		return errs
	}

	t.Run("renders messages in list order", func(t *testing.T) {
		t.Parallel()

		out, err := newBag().ToXML()
		require.NoError(t, err)

		want := `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
			"<errors>\n" +
			"  <error>Title can&#39;t be blank</error>\n" +
			"  <error>Content is Empty</error>\n" +
			"</errors>\n"
		assert.Equal(t, want, string(out))
	})

	t.Run("skips processing instruction", func(t *testing.T) {
		t.Parallel()

		out, err := newBag().ToXML(validation.SkipInstruct())
		require.NoError(t, err)
		assert.Equal(t, "<errors>\n"+
			"  <error>Title can&#39;t be blank</error>\n"+
			"  <error>Content is Empty</error>\n"+
			"</errors>\n", string(out))
	})

	t.Run("single line without indentation", func(t *testing.T) {
		t.Parallel()

		out, err := newBag().ToXML(validation.SkipInstruct(), validation.WithIndent(""))
		require.NoError(t, err)
		assert.Equal(t, "<errors><error>Title can&#39;t be blank</error><error>Content is Empty</error></errors>\n", string(out))
	})

	t.Run("empty bag", func(t *testing.T) {
		t.Parallel()

		out, err := validation.NewErrors().ToXML(validation.SkipInstruct())
		require.NoError(t, err)
		assert.Equal(t, "<errors></errors>\n", string(out))
	})

	t.Run("escapes markup", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.AddToBase("<b> & co")
		out, err := errs.ToXML(validation.SkipInstruct(), validation.WithIndent(""))
		require.NoError(t, err)
		assert.Equal(t, "<errors><error>&lt;b&gt; &amp; co</error></errors>\n", string(out))
	})
}
