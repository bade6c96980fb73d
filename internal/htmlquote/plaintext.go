package htmlquote

import (
	"strconv"

	"github.com/jaytaylor/html2text"
	"golang.org/x/net/html"

	"github.com/mailgrove/dequote/internal/textquote"
)

// cutByPlaintext reuses the plain-text classification over a rendered view
// of the tree: a copy is annotated with DFS checkpoints, rendered to text,
// and the resolved quotation span's checkpoints are mapped back onto the
// original tree, which is then excised.
func cutByPlaintext(root, placeholder *html.Node) bool {
	annotated := cloneTree(root)
	elem := documentElement(annotated)
	if elem == nil {
		return false
	}
	total := addCheckpoints(elem, 0)

	plain, err := html2text.FromString(render(annotated), html2text.Options{})
	if err != nil {
		return false
	}

	plain = textquote.Preprocess(plain, textquote.DetectDelimiter(plain), true)
	lines := textquote.SplitLines(plain)
	if len(lines) > textquote.MaxLines {
		return false
	}

	// Collect the checkpoints rendered into each line, then strip the
	// sentinels so they cannot disturb classification.
	lineCheckpoints := make([][]int, len(lines))
	for i, line := range lines {
		for _, m := range reCheckpoint.FindAllStringSubmatch(line, -1) {
			if id, err := strconv.Atoi(m[1]); err == nil && id < total {
				lineCheckpoints[i] = append(lineCheckpoints[i], id)
			}
		}
		lines[i] = reCheckpoint.ReplaceAllString(line, "")
	}

	markers := textquote.Classify(lines)
	_, span := textquote.Resolve(lines, markers)
	if !span.Deleted {
		return false
	}

	flags := make([]bool, total)
	for i := span.Start; i < span.End && i < len(lineCheckpoints); i++ {
		for _, id := range lineCheckpoints[i] {
			flags[id] = true
		}
	}

	target := documentElement(root)
	if target == nil {
		return false
	}
	deleteQuotedNodes(target, flags, placeholder)
	return true
}
