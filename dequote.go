// Package dequote extracts the latest reply from an email message body,
// removing the quoted conversation history that mail clients append below
// it. Plain-text bodies are handled by line classification against known
// splitter patterns; HTML bodies by a set of client-specific structural
// cutters with a rendered-plaintext fallback.
//
// The package is fail-open: when no quotation boundary can be found, or
// when extraction fails for any reason, the original body comes back
// unchanged. Functions never return an error.
package dequote

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/mailgrove/dequote/internal/htmlquote"
	"github.com/mailgrove/dequote/internal/textenc"
	"github.com/mailgrove/dequote/internal/textquote"
)

// Content types understood by ExtractFrom.
const (
	ContentTypePlain = "text/plain"
	ContentTypeHTML  = "text/html"
)

// ExtractFrom dispatches on the MIME content type of body. Unknown content
// types and any internal failure yield the original body unchanged.
func ExtractFrom(body, contentType string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("quotation extraction failed, returning body unchanged",
				"content_type", contentType, "panic", r)
			reply = body
		}
	}()

	switch contentType {
	case ContentTypePlain:
		return ExtractFromPlain(body)
	case ContentTypeHTML:
		return ExtractFromHTML(body, nil)
	default:
		slog.Warn("unknown content type, returning body unchanged",
			"content_type", contentType)
		return body
	}
}

// ExtractFromPlain returns a plain-text body with its trailing quotation
// removed. The body is normalized to valid UTF-8 first.
func ExtractFromPlain(body string) string {
	return textquote.Extract(textenc.EnsureUTF8(body))
}

// ExtractFromHTML returns an HTML body, as serialized markup, with its
// quoted region removed. When placeholder is non-nil and a cut is made, a
// single copy of it marks the cut point in the output.
func ExtractFromHTML(body string, placeholder *html.Node) string {
	return htmlquote.Extract(textenc.EnsureUTF8(body), placeholder)
}
