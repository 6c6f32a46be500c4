package validation_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validates/pkg/validation"
	"github.com/dmitrymomot/validates/pkg/validator"
)

func kinds(vs []validation.Validator) []validation.Kind {
	out := make([]validation.Kind, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Kind())
	}
	return out
}

func TestRegistry_Validators(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry("Post")
	assert.Equal(t, "Post", reg.Name())
	assert.Empty(t, reg.Validators())

	reg.ValidatesPresenceOf(validation.On("title", "content"))
	reg.ValidatesLengthOf(validation.On("title"), validation.Minimum(5))
	reg.Validate(func(validation.Record) {})
	reg.ValidatesEach(validation.On("content"), func(validation.Record, string, any) {})
	reg.ValidateWith("check_title")
	reg.Validates(validation.KindUUID, validation.On("author_id"))

	assert.Equal(t, []validation.Kind{
		validation.KindPresence,
		validation.KindLength,
		validation.KindBlock,
		validation.KindEach,
		validation.KindMethod,
		validation.KindUUID,
	}, kinds(reg.Validators()))

	t.Run("validators on an attribute keep registration order", func(t *testing.T) {
		assert.Equal(t, []validation.Kind{validation.KindPresence, validation.KindLength},
			kinds(reg.ValidatorsOn("title")))
		assert.Equal(t, []validation.Kind{validation.KindPresence, validation.KindEach},
			kinds(reg.ValidatorsOn("content")))
		assert.Empty(t, reg.ValidatorsOn("unknown"))
	})

	t.Run("options are exposed", func(t *testing.T) {
		length := reg.ValidatorsOn("title")[1]
		require.NotNil(t, length.Options().Minimum)
		assert.Equal(t, 5, *length.Options().Minimum)
		assert.Equal(t, validation.Attrs{"title"}, length.Attributes())
	})

	t.Run("snapshot is not shared", func(t *testing.T) {
		snapshot := reg.Validators()
		snapshot[0] = nil
		assert.NotNil(t, reg.Validators()[0])
	})
}

func TestRegistry_RegistrationIsAdditive(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry("Post")
	reg.ValidatesPresenceOf(validation.On("title"))
	reg.ValidatesPresenceOf(validation.On("title"), validation.WithMessage("is Empty"))

	post := validation.NewModel(reg, nil)
	_, err := post.Valid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"can't be blank", "is Empty"}, post.Errors().Get("title"))
}

// nonEmptyTags is a hand-written Validator.
type nonEmptyTags struct{}

func (nonEmptyTags) Kind() validation.Kind        { return "tags" }
func (nonEmptyTags) Attributes() validation.Attrs { return validation.On("tags") }
func (nonEmptyTags) Options() validation.Options  { return validation.Options{} }
func (nonEmptyTags) Validate(s *validation.Scope) error {
	if validator.IsBlank(s.Record.Attribute("tags")) {
		s.Errors().Add("tags", s.Message("blank", nil))
	}
	return nil
}

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry("Post")
	reg.Add(nonEmptyTags{})
	reg.Add(nil)

	require.Len(t, reg.Validators(), 1)
	assert.Len(t, reg.ValidatorsOn("tags"), 1)

	post := validation.NewModel(reg, nil)
	_, err := post.Valid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Tags can't be blank"}, post.Errors().FullMessages())
}

func TestRegistry_Clear(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry("Post")
	reg.ValidatesPresenceOf(validation.On("title"))
	reg.DefineRule("check", func(validation.Record) {})
	reg.ValidateWith("check")
	reg.Clear()

	assert.Empty(t, reg.Validators())

	reg.ValidateWith("check")
	_, err := validation.NewModel(reg, nil).Valid(context.Background())
	assert.ErrorIs(t, err, validation.ErrUnresolvedRule, "rules are cleared too")
}

func TestRegistry_ConcurrentValidation(t *testing.T) {
	t.Parallel()

	reg := validation.NewRegistry("Post")
	reg.ValidatesPresenceOf(validation.On("title"))
	reg.ValidatesLengthOf(validation.On("title"), validation.Maximum(10))

	runner := validation.NewRunner()
	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			title := ""
			if i%2 == 0 {
				title = "Hello"
			}
			ok, err := runner.Valid(context.Background(), reg, validation.NewModel(reg, map[string]any{"title": title}))
			assert.NoError(t, err)
			results[i] = ok
		}(i)
	}
	wg.Wait()

	for i, ok := range results {
		assert.Equal(t, i%2 == 0, ok, "record %d", i)
	}
}

func TestTypes(t *testing.T) {
	t.Parallel()

	types := validation.NewTypes()

	_, ok := types.Lookup("Post")
	assert.False(t, ok)

	post := types.For("Post")
	require.NotNil(t, post)
	assert.Same(t, post, types.For("Post"))
	assert.Equal(t, "Post", post.Name())

	types.For("Comment")
	assert.Equal(t, []string{"Comment", "Post"}, types.Names())

	found, ok := types.Lookup("Post")
	require.True(t, ok)
	assert.Same(t, post, found)

	t.Run("reset clears every registry", func(t *testing.T) {
		post.ValidatesPresenceOf(validation.On("title"))
		types.For("Comment").ValidatesPresenceOf(validation.On("body"))

		types.Reset()

		assert.Empty(t, post.Validators())
		assert.Empty(t, types.For("Comment").Validators())
		assert.Same(t, post, types.For("Post"))
	})
}
