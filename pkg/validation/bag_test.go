package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/validation"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("new bag is empty", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		assert.True(t, errs.IsEmpty())
		assert.Equal(t, 0, errs.Count())
		assert.Empty(t, errs.Keys())
		assert.Empty(t, errs.Get("title"))
		assert.False(t, errs.Has("title"))
		assert.Empty(t, errs.FullMessages())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var errs validation.Errors
		errs.Add("title", "can't be blank")
		assert.Equal(t, []string{"can't be blank"}, errs.Get("title"))
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "can't be blank")
		errs.Add("content", "is Empty")
		errs.Add("title", "is too short (minimum is 5 characters)")

		assert.Equal(t, 3, errs.Count())
		assert.Equal(t, []string{"title", "content"}, errs.Keys())
		assert.Equal(t, []string{"can't be blank", "is too short (minimum is 5 characters)"}, errs.Get("title"))
		assert.Equal(t, []string{
			"Title can't be blank",
			"Content is Empty",
			"Title is too short (minimum is 5 characters)",
		}, errs.FullMessages())
	})

	t.Run("each yields one pair per attribute", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "a")
		errs.Add("content", "b")
		errs.Add("title", "c")

		var attrs []string
		var messages [][]string
		for attr, msgs := range errs.Each() {
			attrs = append(attrs, attr)
			messages = append(messages, msgs)
		}
		assert.Equal(t, []string{"title", "content"}, attrs)
		assert.Equal(t, [][]string{{"a", "c"}, {"b"}}, messages)
	})

	t.Run("all yields one pair per message", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "a")
		errs.Add("content", "b")
		errs.Add("title", "c")

		var pairs []string
		for attr, msg := range errs.All() {
			pairs = append(pairs, attr+":"+msg)
		}
		assert.Equal(t, []string{"title:a", "content:b", "title:c"}, pairs)
	})

	t.Run("list can stop early", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "a")
		errs.Add("content", "b")

		var first string
		for msg := range errs.List() {
			first = msg
			break
		}
		assert.Equal(t, "Title a", first)
	})

	t.Run("add func is evaluated once when added", func(t *testing.T) {
		t.Parallel()

		calls := 0
		errs := validation.NewErrors()
		errs.AddFunc("title", func() string {
			calls++
			return "is computed"
		})
		require.Equal(t, 1, calls)

		_ = errs.FullMessages()
		_ = errs.FullMessages()
		assert.Equal(t, 1, calls)
		assert.Equal(t, []string{"is computed"}, errs.Get("title"))

		errs.AddFunc("title", nil)
		assert.Equal(t, 1, errs.Count())
	})

	t.Run("base messages stand alone", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.AddToBase("Title and content must differ")
		errs.Add("title", "can't be blank")

		assert.Equal(t, []string{validation.Base, "title"}, errs.Keys())
		assert.Equal(t, []string{
			"Title and content must differ",
			"Title can't be blank",
		}, errs.FullMessages())
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "a")

		got := errs.Get("title")
		got[0] = "changed"
		keys := errs.Keys()
		keys[0] = "changed"

		assert.Equal(t, []string{"a"}, errs.Get("title"))
		assert.Equal(t, []string{"title"}, errs.Keys())
	})

	t.Run("clear removes everything", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		errs.Add("title", "a")
		errs.AddToBase("b")
		errs.Clear()

		assert.True(t, errs.IsEmpty())
		assert.Empty(t, errs.Keys())
		assert.False(t, errs.Has("title"))
	})

	t.Run("error string lists full messages", func(t *testing.T) {
		t.Parallel()

		errs := validation.NewErrors()
		assert.Equal(t, "validation failed", errs.Error())

		errs.Add("title", "can't be blank")
		errs.Add("content", "is Empty")
		assert.Equal(t, "validation failed: Title can't be blank; Content is Empty", errs.Error())
	})
}

func TestFullMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		attr    string
		message string
		want    string
	}{
		{"simple attribute", "title", "can't be blank", "Title can't be blank"},
		{"underscored attribute", "first_name", "is invalid", "First name is invalid"},
		{"nested attribute", "replies.name", "can't be blank", "Replies name can't be blank"},
		{"foreign key", "author_id", "can't be blank", "Author can't be blank"},
		{"base", validation.Base, "Record is locked", "Record is locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validation.FullMessage(tt.attr, tt.message))
		})
	}
}
