package htmlquote

import (
	"regexp"
	"strconv"

	"golang.org/x/net/html"
)

// Checkpoint sentinels embedded in the annotated tree's text so rendered
// plain-text lines can be mapped back to DOM positions.
const (
	checkpointPrefix = "#!%!"
	checkpointSuffix = "!%!#"
)

var reCheckpoint = regexp.MustCompile(
	regexp.QuoteMeta(checkpointPrefix) + `(\d+)` + regexp.QuoteMeta(checkpointSuffix))

// addCheckpoints walks the elements under n depth-first, appending a
// numbered sentinel to each element's leading text on entry and to its tail
// on exit. The counter is shared across the whole walk, so a tree of K
// elements yields 2K checkpoints, and repeating the identical walk recovers
// the same element for every number. Returns the next counter value.
func addCheckpoints(n *html.Node, counter int) int {
	appendLeadingText(n, checkpointPrefix+strconv.Itoa(counter)+checkpointSuffix)
	counter++
	for c := firstElementChild(n); c != nil; c = nextElementSibling(c) {
		counter = addCheckpoints(c, counter)
	}
	appendTail(n, checkpointPrefix+strconv.Itoa(counter)+checkpointSuffix)
	counter++
	return counter
}

// excision carries the shared state of one deleteQuotedNodes call. The
// placeholder is inserted at most once.
type excision struct {
	flags       []bool
	placeholder *html.Node
	inserted    bool
}

// deleteQuotedNodes mirrors the addCheckpoints walk over an unannotated
// tree and excises quoted content: an element whose enter and exit
// checkpoints are both flagged is removed with its whole subtree; an
// element with only one flagged side keeps its structure but loses the
// flagged text. The placeholder, when supplied, lands at the earliest cut.
func deleteQuotedNodes(root *html.Node, flags []bool, placeholder *html.Node) {
	e := &excision{
		flags:       flags,
		placeholder: placeholder,
		inserted:    placeholder == nil,
	}
	counter := 0
	e.walk(root, &counter)
}

func (e *excision) flagged(counter int) bool {
	return counter < len(e.flags) && e.flags[counter]
}

// walk reports whether n is fully quoted, in which case the caller removes
// it.
func (e *excision) walk(n *html.Node, counter *int) bool {
	textQuoted := e.flagged(*counter)
	if textQuoted {
		clearLeadingText(n)
		if !e.inserted {
			n.InsertBefore(e.placeholder, n.FirstChild)
			e.inserted = true
		}
	}
	*counter++

	var quotedChildren []*html.Node
	for c := firstElementChild(n); c != nil; {
		next := nextElementSibling(c)
		if c != e.placeholder && e.walk(c, counter) {
			quotedChildren = append(quotedChildren, c)
		}
		c = next
	}

	tailQuoted := e.flagged(*counter)
	if tailQuoted {
		clearTail(n)
		if !e.inserted && len(quotedChildren) == 0 {
			n.AppendChild(e.placeholder)
			e.inserted = true
		}
	}
	*counter++

	if textQuoted && tailQuoted {
		return true
	}
	if len(quotedChildren) > 0 {
		if e.placeholder != nil {
			if !e.inserted {
				n.InsertBefore(e.placeholder, quotedChildren[0])
				e.inserted = true
			} else {
				// The placeholder may have landed inside a subtree that is
				// now being removed; move it out to the cut boundary.
				e.rescue(n, quotedChildren)
			}
		}
		for _, c := range quotedChildren {
			n.RemoveChild(c)
		}
	}
	return false
}

func (e *excision) rescue(n *html.Node, quotedChildren []*html.Node) {
	for _, c := range quotedChildren {
		if hasAncestor(e.placeholder, c) {
			e.placeholder.Parent.RemoveChild(e.placeholder)
			n.InsertBefore(e.placeholder, quotedChildren[0])
			return
		}
	}
}

func hasAncestor(n, ancestor *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}
