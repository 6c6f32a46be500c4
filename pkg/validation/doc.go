// Package validation runs attribute validators against records and collects
// the resulting messages in an ordered error bag.
//
// Validators are registered per record type on a Registry. Registration is
// additive and keeps order: the bag lists failures in the order the validators
// that produced them were registered, not by attribute name.
//
//	posts := validation.NewRegistry("Post")
//	posts.ValidatesPresenceOf(validation.On("title"))
//	posts.ValidatesLengthOf(validation.On("title"), validation.Minimum(5))
//	posts.Validate(func(rec validation.Record) {
//		if rec.Attribute("title") == rec.Attribute("content") {
//			rec.Errors().AddToBase("Title and content must differ")
//		}
//	})
//
//	post := validation.NewModel(posts, map[string]any{"title": "Hi"})
//	ok, err := post.Valid(ctx)
//	// ok == false, post.Errors().FullMessages() ==
//	// []string{"Title is too short (minimum is 5 characters)"}
//
// # Late-bound references
//
// ValidateWith and Validates reference rules and kinds by name. Names are
// resolved when the validator runs, never at registration. A name that cannot
// be resolved aborts the run with an *UnresolvedRuleError, which callers can
// tell apart from an invalid record:
//
//	ok, err := post.Valid(ctx)
//	if errors.Is(err, validation.ErrUnresolvedRule) {
//		// the registry is misconfigured
//	}
//
// # Messages
//
// Default messages come from a messages.Catalog under errors.messages.<key>.
// Every built-in kind accepts WithMessage or WithMessageFunc; the latter is
// evaluated only when a failure is recorded. Templates may use the %{count},
// %{value} and %{attribute} placeholders.
//
// # Records
//
// Model is a map-backed record. StructRecord wraps a pointer to a Go struct and
// exposes its exported fields by json tag or snake_case name.
package validation
