// Package inflect turns attribute identifiers into human-readable labels and
// back.
//
// Identifiers are split into words on underscores, dots, hyphens, spaces and
// camel-case boundaries. Humanize produces the label used when composing full
// validation messages, Titleize capitalizes every word and Underscore produces
// the canonical snake_case attribute key.
//
// # Usage
//
//	inflect.Humanize("replies.name") // "Replies name"
//	inflect.Humanize("author_id")    // "Author"
//	inflect.Titleize("first_name")   // "First Name"
//	inflect.Underscore("FirstName")  // "first_name"
//
// Capitalization goes through golang.org/x/text/cases so that non-ASCII words
// are handled according to Unicode rules. A cases.Caser is not safe for
// concurrent use, therefore every call builds its own caser.
package inflect
