package htmlquote

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// reForward matches forwarded-message banners; a "quote" containing one is
// really a forward and must not be cut.
var reForward = regexp.MustCompile(`(?i)(-+[ ]*Forwarded message[ ]*-+)|(Begin forwarded message:)`)

// quoteIDs is the allow-list of element ids known to wrap quoted content.
var quoteIDs = []string{"OLK_SRC_BODY_SECTION"}

// Inline-style fingerprints of client-generated splitter blocks.
const (
	outlookSplitterStyle = "border:none;border-top:solid #B5C4DF 1.0pt;" +
		"padding:3.0pt 0cm 0cm 0cm"
	windowsMailSplitterStyle = "padding-top: 5px; " +
		"border-top-color: rgb(229, 229, 229); " +
		"border-top-width: 1px; border-top-style: solid;"

	// Outlook 2003 renders the splitter as a centered horizontal rule
	// nested in a fixed element chain.
	outlook2003RuleSelector = "div > div.MsoNormal[align='center'][style='text-align:center']" +
		" > font > span > hr[size='3'][width='100%'][align='center'][tabindex='-1']"
)

// cutGmailQuote removes the Gmail quote container, or only the last
// top-level blockquote when several share a parent.
func cutGmailQuote(root, placeholder *html.Node) bool {
	doc := goquery.NewDocumentFromNode(root)
	sel := doc.Find(".gmail_quote")
	if sel.Length() == 0 {
		return false
	}
	quote := sel.Get(0)
	if reForward.MatchString(leadingText(quote)) {
		return false
	}
	if fc := firstElementChild(quote); fc != nil && reForward.MatchString(render(fc)) {
		return false
	}

	bqs := doc.Find("blockquote")
	if bqs.Length() == 0 {
		return false
	}
	// Top-level quote blocks: direct blockquote children of the parent of
	// the first blockquote found anywhere in the document.
	siblings := elementChildren(bqs.Get(0).Parent, atom.Blockquote)
	switch {
	case len(siblings) == 1:
		removeWithPlaceholder(quote, placeholder)
		return true
	case len(siblings) > 1:
		removeWithPlaceholder(siblings[len(siblings)-1], placeholder)
		return true
	}
	return false
}

// cutBlockquote removes the last top-level blockquote, unless the quoted
// region is actually a forwarded message.
func cutBlockquote(root, placeholder *html.Node) bool {
	doc := goquery.NewDocumentFromNode(root)
	bqs := doc.Find("blockquote")
	if bqs.Length() == 0 {
		return false
	}
	siblings := elementChildren(bqs.Get(0).Parent, atom.Blockquote)
	if len(siblings) == 0 {
		return false
	}

	first := siblings[0]
	if reForward.MatchString(leadingText(first)) {
		return false
	}
	if prev := prevElementSibling(first); prev != nil && reForward.MatchString(render(prev)) {
		return false
	}
	if first.Parent != nil && reForward.MatchString(leadingText(first.Parent)) {
		return false
	}
	if fc := firstElementChild(first); fc != nil && reForward.MatchString(render(fc)) {
		return false
	}

	if len(siblings) == 1 {
		removeWithPlaceholder(first, placeholder)
	} else {
		removeWithPlaceholder(siblings[len(siblings)-1], placeholder)
	}
	return true
}

// cutMicrosoftQuote removes an Outlook or Windows Mail splitter block and
// everything after it.
func cutMicrosoftQuote(root, placeholder *html.Node) bool {
	doc := goquery.NewDocumentFromNode(root)

	var splitter *html.Node
	sel := doc.Find("div[style='" + outlookSplitterStyle + "'], div[style='" + windowsMailSplitterStyle + "']")
	if sel.Length() > 0 {
		splitter = sel.Get(0)
		// Outlook 2010 wraps the splitter in an enclosing div; when the
		// splitter leads its parent, the whole wrapper goes.
		if parent := splitter.Parent; parent != nil && parent.Type == html.ElementNode &&
			firstElementChild(parent) == splitter {
			splitter = parent
		}
	} else {
		rule := doc.Find(outlook2003RuleSelector)
		if rule.Length() == 0 {
			return false
		}
		// Widen from the hr to the outer div of the fixed chain.
		splitter = rule.Get(0)
		for i := 0; i < 4 && splitter.Parent != nil; i++ {
			splitter = splitter.Parent
		}
	}

	parent := splitter.Parent
	if parent == nil {
		return false
	}
	for sib := splitter.NextSibling; sib != nil; sib = splitter.NextSibling {
		parent.RemoveChild(sib)
	}
	removeWithPlaceholder(splitter, placeholder)
	return true
}

// cutByID removes the first element whose id is on the quote allow-list.
func cutByID(root, placeholder *html.Node) bool {
	doc := goquery.NewDocumentFromNode(root)
	for _, id := range quoteIDs {
		if sel := doc.Find("#" + id); sel.Length() > 0 {
			removeWithPlaceholder(sel.Get(0), placeholder)
			return true
		}
	}
	return false
}
