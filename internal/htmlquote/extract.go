package htmlquote

import (
	"strings"

	"github.com/jaytaylor/html2text"
	"golang.org/x/net/html"
)

// strategies are evaluated independently; ties on rendered length go to the
// earliest entry.
var strategies = []struct {
	name string
	cut  func(root, placeholder *html.Node) bool
}{
	{"gmail", cutGmailQuote},
	{"blockquote", cutBlockquote},
	{"microsoft", cutMicrosoftQuote},
	{"id", cutByID},
	{"plaintext", cutByPlaintext},
}

// Extract runs every cutting strategy on its own deep copy of the parsed
// body, with its own copy of the placeholder, and returns the serialization
// of the most aggressively trimmed copy that still renders to text. Blank
// bodies and bodies that fail to parse come back unchanged, as do bodies no
// strategy could cut.
func Extract(body string, placeholder *html.Node) string {
	if strings.TrimSpace(body) == "" {
		return body
	}
	doc, err := parseDocument(body)
	if err != nil || documentElement(doc) == nil {
		return body
	}

	bestLen := -1
	var best *html.Node
	for _, s := range strategies {
		tree := cloneTree(doc)
		var ph *html.Node
		if placeholder != nil {
			ph = cloneTree(placeholder)
		}
		if !s.cut(tree, ph) {
			continue
		}
		plain, err := html2text.FromString(render(tree), html2text.Options{})
		if err != nil {
			continue
		}
		length := len(strings.TrimSpace(plain))
		if length == 0 {
			continue
		}
		if bestLen < 0 || length < bestLen {
			bestLen, best = length, tree
		}
	}

	if best != nil {
		return render(best)
	}
	return body
}
