// Package validator provides the stateless rule predicates behind the record
// validators of package validation.
//
// Every exported function builds a Rule: a Check closure bound to a single
// attribute value together with translation-friendly failure metadata. The
// TranslationKey names the message template ("blank", "too_short", ...) and
// TranslationValues carries the placeholders it interpolates, so the caller
// decides which text is finally shown. Message holds the built-in English
// rendering used when no catalog is involved.
//
// Values are accepted as any because record attributes are dynamically typed:
//
//   - IsBlank treats nil, whitespace-only strings, empty collections, false and
//     nil pointers as blank
//   - Length counts runes for strings and elements for slices, arrays and maps
//   - ToNumber accepts Go numeric kinds and decimal strings
//
// # Usage
//
//	failures := validator.Failures(
//	    validator.Present("title", post.Title),
//	    validator.MinLength("title", post.Title, 5),
//	)
//	for _, f := range failures {
//	    fmt.Println(f.Field, f.TranslationKey, f.Message)
//	}
//
// Apply returns the same failures as an error value (ValidationErrors) or nil.
//
// The package holds no state and every helper is goroutine-safe.
package validator
