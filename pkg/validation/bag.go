package validation

import (
	"iter"
	"slices"
	"strings"

	"github.com/dmitrymomot/validates/pkg/inflect"
)

// Base is the pseudo-attribute for errors that concern the whole record.
const Base = "base"

type entry struct {
	attr    string
	message string
}

// Errors is an ordered collection of (attribute, message) pairs.
//
// Messages keep their global insertion order, and attributes are listed in the
// order their first message was added. The zero value is ready to use.
// Errors is not safe for concurrent use.
type Errors struct {
	entries []entry
	index   map[string][]string
	keys    []string
}

// NewErrors returns an empty error bag.
func NewErrors() *Errors {
	return &Errors{}
}

// Add appends message to attr.
func (e *Errors) Add(attr, message string) {
	if e.index == nil {
		e.index = make(map[string][]string)
	}
	if _, ok := e.index[attr]; !ok {
		e.keys = append(e.keys, attr)
	}
	e.index[attr] = append(e.index[attr], message)
	e.entries = append(e.entries, entry{attr: attr, message: message})
}

// AddFunc appends the message produced by fn to attr. fn is called once,
// immediately.
func (e *Errors) AddFunc(attr string, fn func() string) {
	if fn == nil {
		return
	}
	e.Add(attr, fn())
}

// AddToBase appends a message that concerns the whole record.
func (e *Errors) AddToBase(message string) {
	e.Add(Base, message)
}

// Get returns a copy of the messages recorded for attr, in insertion order.
// Unknown attributes yield an empty slice.
func (e *Errors) Get(attr string) []string {
	return slices.Clone(e.index[attr])
}

// Has reports whether attr has at least one message.
func (e *Errors) Has(attr string) bool {
	return len(e.index[attr]) > 0
}

// IsEmpty reports whether the bag holds no messages.
func (e *Errors) IsEmpty() bool {
	return len(e.entries) == 0
}

// Count returns the total number of messages across all attributes.
func (e *Errors) Count() int {
	return len(e.entries)
}

// Keys returns the attributes with messages in first-insertion order.
func (e *Errors) Keys() []string {
	return slices.Clone(e.keys)
}

// Each yields every attribute with its messages, one pair per attribute.
func (e *Errors) Each() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, attr := range e.keys {
			if !yield(attr, slices.Clone(e.index[attr])) {
				return
			}
		}
	}
}

// All yields every (attribute, message) pair in insertion order.
func (e *Errors) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, en := range e.entries {
			if !yield(en.attr, en.message) {
				return
			}
		}
	}
}

// List yields composed messages in insertion order. See FullMessage.
func (e *Errors) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, en := range e.entries {
			if !yield(FullMessage(en.attr, en.message)) {
				return
			}
		}
	}
}

// FullMessages collects List into a slice.
func (e *Errors) FullMessages() []string {
	out := make([]string, 0, len(e.entries))
	for msg := range e.List() {
		out = append(out, msg)
	}
	return out
}

// Clear removes every message.
func (e *Errors) Clear() {
	e.entries = nil
	e.index = nil
	e.keys = nil
}

// clone returns a deep copy that is unaffected by later changes to e.
func (e *Errors) clone() *Errors {
	c := &Errors{
		entries: slices.Clone(e.entries),
		keys:    slices.Clone(e.keys),
	}
	if e.index != nil {
		c.index = make(map[string][]string, len(e.index))
		for attr, msgs := range e.index {
			c.index[attr] = slices.Clone(msgs)
		}
	}
	return c
}

// Error implements the error interface so a bag can be returned as an error.
func (e *Errors) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}
	return "validation failed: " + e.summary()
}

func (e *Errors) summary() string {
	return strings.Join(e.FullMessages(), "; ")
}

// FullMessage composes the human-readable form of a message.
// Messages on Base stand alone, others are prefixed with the humanized
// attribute name: ("replies.name", "can't be blank") becomes
// "Replies name can't be blank".
func FullMessage(attr, message string) string {
	if attr == Base {
		return message
	}
	label := inflect.Humanize(attr)
	if label == "" {
		return message
	}
	return label + " " + message
}
