package validation

import "regexp"

// Condition decides whether a validator runs for a record.
type Condition func(rec Record) bool

// Options holds the configuration of a validator. Kind-specific fields are
// ignored by kinds that do not use them.
type Options struct {
	Message    Message
	Messages   map[string]Message // per message key, e.g. "too_short"
	AllowNil   bool
	AllowBlank bool
	If         Condition
	Unless     Condition

	// length
	Minimum, Maximum, Is *int

	// format
	With, Without *regexp.Regexp

	// inclusion, exclusion
	In []any

	// numericality
	OnlyInteger                                bool
	GreaterThan, GreaterThanOrEqualTo, EqualTo *float64
	OtherThan, LessThan, LessThanOrEqualTo     *float64
	Odd, Even                                  bool

	// acceptance
	Accept []any
}

// Option configures Options.
type Option func(*Options)

// NewOptions applies opts to zero Options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// MessageFor returns the override for key, falling back to Message.
func (o Options) MessageFor(key string) Message {
	if m, ok := o.Messages[key]; ok && !m.IsZero() {
		return m
	}
	return o.Message
}

// Applies evaluates the If and Unless conditions against rec.
func (o Options) Applies(rec Record) bool {
	if o.If != nil && !o.If(rec) {
		return false
	}
	if o.Unless != nil && o.Unless(rec) {
		return false
	}
	return true
}

// WithMessage replaces the default message of every failure.
func WithMessage(msg string) Option {
	return func(o *Options) {
		o.Message = Text(msg)
	}
}

// WithMessageFunc sets a message computed when a failure is recorded.
func WithMessageFunc(fn func() string) Option {
	return func(o *Options) {
		o.Message = Lazy(fn)
	}
}

// WithMessageFor replaces the message of failures with the given key only.
func WithMessageFor(key, msg string) Option {
	return func(o *Options) {
		if o.Messages == nil {
			o.Messages = make(map[string]Message)
		}
		o.Messages[key] = Text(msg)
	}
}

// TooShort overrides the too_short message of a length validator.
func TooShort(msg string) Option { return WithMessageFor("too_short", msg) }

// TooLong overrides the too_long message of a length validator.
func TooLong(msg string) Option { return WithMessageFor("too_long", msg) }

// WrongLength overrides the wrong_length message of a length validator.
func WrongLength(msg string) Option { return WithMessageFor("wrong_length", msg) }

// AllowNil skips the validator when the value is nil.
func AllowNil() Option {
	return func(o *Options) {
		o.AllowNil = true
	}
}

// AllowBlank skips the validator when the value is blank.
func AllowBlank() Option {
	return func(o *Options) {
		o.AllowBlank = true
	}
}

// If runs the validator only when fn returns true.
func If(fn Condition) Option {
	return func(o *Options) {
		o.If = fn
	}
}

// Unless skips the validator when fn returns true.
func Unless(fn Condition) Option {
	return func(o *Options) {
		o.Unless = fn
	}
}

func Minimum(n int) Option {
	return func(o *Options) {
		o.Minimum = &n
	}
}

func Maximum(n int) Option {
	return func(o *Options) {
		o.Maximum = &n
	}
}

func Is(n int) Option {
	return func(o *Options) {
		o.Is = &n
	}
}

// Within sets both length bounds.
func Within(minimum, maximum int) Option {
	return func(o *Options) {
		o.Minimum = &minimum
		o.Maximum = &maximum
	}
}

// Matching requires the value to match re.
func Matching(re *regexp.Regexp) Option {
	return func(o *Options) {
		o.With = re
	}
}

// NotMatching requires the value not to match re.
func NotMatching(re *regexp.Regexp) Option {
	return func(o *Options) {
		o.Without = re
	}
}

// In sets the list used by inclusion and exclusion validators.
func In(values ...any) Option {
	return func(o *Options) {
		o.In = values
	}
}

func OnlyInteger() Option {
	return func(o *Options) {
		o.OnlyInteger = true
	}
}

func GreaterThan(n float64) Option {
	return func(o *Options) {
		o.GreaterThan = &n
	}
}

func GreaterThanOrEqualTo(n float64) Option {
	return func(o *Options) {
		o.GreaterThanOrEqualTo = &n
	}
}

func EqualTo(n float64) Option {
	return func(o *Options) {
		o.EqualTo = &n
	}
}

func OtherThan(n float64) Option {
	return func(o *Options) {
		o.OtherThan = &n
	}
}

func LessThan(n float64) Option {
	return func(o *Options) {
		o.LessThan = &n
	}
}

func LessThanOrEqualTo(n float64) Option {
	return func(o *Options) {
		o.LessThanOrEqualTo = &n
	}
}

func Odd() Option {
	return func(o *Options) {
		o.Odd = true
	}
}

func Even() Option {
	return func(o *Options) {
		o.Even = true
	}
}

// Accept sets the values an acceptance validator treats as accepted.
// Default is "1" and true.
func Accept(values ...any) Option {
	return func(o *Options) {
		o.Accept = values
	}
}
