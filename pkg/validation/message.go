package validation

// Message is a message source: either literal text or a function evaluated
// when a failure is recorded. The zero value means "use the default".
type Message struct {
	text string
	fn   func() string
	set  bool
}

// Text returns a literal message.
func Text(s string) Message {
	return Message{text: s, set: true}
}

// Lazy returns a message computed by fn each time it is resolved.
func Lazy(fn func() string) Message {
	return Message{fn: fn, set: fn != nil}
}

// IsZero reports whether no message was given.
func (m Message) IsZero() bool {
	return !m.set
}

// Resolve returns the message text, calling the function for lazy messages.
func (m Message) Resolve() string {
	if m.fn != nil {
		return m.fn()
	}
	return m.text
}
