// Package messages provides the catalog of default validation message
// templates and the loaders that let an application override them.
//
// Templates are addressed by dot-separated keys such as
// "errors.messages.blank" and may contain named placeholders in the form
// %{name}, which Lookup fills from the supplied values map.
//
// # Architecture
//
// A Catalog always starts from the built-in English defaults (see Defaults).
// Additional templates are supplied by an Adapter:
//
//   - MapAdapter  – in-memory nested map
//   - FileAdapter – a JSON or YAML file parsed by a Parser
//   - FSAdapter   – a file inside an fs.FS, e.g. an embed.FS
//
// Adapter data is deep-merged over the defaults so a file only needs to list
// the templates it changes.
//
// # Usage
//
//	catalog, err := messages.New(ctx,
//	    messages.NewFileAdapter(messages.NewYAMLParser(), "config/messages.yml"),
//	    messages.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//	msg := catalog.Lookup("errors.messages.too_short", map[string]any{"count": 3})
//	// "is too short (minimum is 3 characters)"
//
// # Error Handling
//
// Loading errors are joined with the package sentinels (ErrFailedToParseYAML,
// ErrFailedToReadFile, ...) so callers can use errors.Is. Lookup never fails:
// a missing key falls back to the key itself unless WithFallbackToKey(false)
// is set, in which case it returns an empty string.
//
// The catalog holds a single locale. Multi-locale lookup is out of scope.
package messages
