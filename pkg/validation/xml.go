package validation

import (
	"bytes"
	"encoding/xml"
)

type xmlOptions struct {
	skipInstruct bool
	indent       string
}

// XMLOption configures Errors.ToXML.
type XMLOption func(*xmlOptions)

// SkipInstruct omits the leading <?xml ...?> processing instruction.
func SkipInstruct() XMLOption {
	return func(o *xmlOptions) {
		o.skipInstruct = true
	}
}

// WithIndent sets the indentation unit. Default is two spaces; an empty string
// renders the document on one line.
func WithIndent(indent string) XMLOption {
	return func(o *xmlOptions) {
		o.indent = indent
	}
}

type xmlErrors struct {
	XMLName  xml.Name `xml:"errors"`
	Messages []string `xml:"error"`
}

// ToXML renders the composed messages as
//
//	<errors>
//	  <error>Title can't be blank</error>
//	</errors>
//
// in List order. Text is escaped by encoding/xml, so an apostrophe is written
// as &#39;.
func (e *Errors) ToXML(opts ...XMLOption) ([]byte, error) {
	o := xmlOptions{indent: "  "}
	for _, opt := range opts {
		opt(&o)
	}

	var buf bytes.Buffer
	if !o.skipInstruct {
		buf.WriteString(xml.Header)
	}

	enc := xml.NewEncoder(&buf)
	enc.Indent("", o.indent)
	if err := enc.Encode(xmlErrors{Messages: e.FullMessages()}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
