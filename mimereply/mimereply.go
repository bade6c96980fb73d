// Package mimereply applies quotation extraction to MIME messages parsed
// with enmime, producing a latest-reply view of both body variants.
package mimereply

import (
	"bytes"
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/jhillyerd/enmime"

	"github.com/mailgrove/dequote"
)

// Reply is a message body pair with quoted conversation history stripped.
type Reply struct {
	Subject string
	Text    string
	HTML    string
}

// Parse reads a raw MIME message and returns its latest reply.
func Parse(raw []byte) (*Reply, error) {
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return FromEnvelope(env), nil
}

// FromEnvelope strips quoted history from an already-parsed envelope.
func FromEnvelope(env *enmime.Envelope) *Reply {
	r := &Reply{Subject: env.GetHeader("Subject")}
	if env.Text != "" {
		r.Text = dequote.ExtractFrom(env.Text, dequote.ContentTypePlain)
	}
	if env.HTML != "" {
		r.HTML = dequote.ExtractFrom(env.HTML, dequote.ContentTypeHTML)
	}
	return r
}

// PreferredBody returns the text reply when one is present, the HTML reply
// rendered to plain text otherwise.
func (r *Reply) PreferredBody() string {
	if strings.TrimSpace(r.Text) != "" {
		return r.Text
	}
	if plain, err := html2text.FromString(r.HTML, html2text.Options{}); err == nil {
		return strings.TrimSpace(plain)
	}
	return r.HTML
}
