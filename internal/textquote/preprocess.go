package textquote

import "strings"

// DetectDelimiter returns the dominant line delimiter of body, "\r\n" or
// "\n".
func DetectDelimiter(body string) string {
	if d := reDelimiter.FindString(body); d != "" {
		return d
	}
	return "\n"
}

// SplitLines splits body into lines on any delimiter style. A trailing
// delimiter does not produce a final empty line.
func SplitLines(body string) []string {
	lines := reLineSplit.Split(body, -1)
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Preprocess prepares body for classification: angle-bracket links are
// masked so their closing '>' cannot be taken for a quote marker, and for
// plain-text content an "On <date>, <person> wrote:" splitter preceded by
// other text is forced onto its own line.
func Preprocess(body, delimiter string, htmlContent bool) string {
	body = maskLinks(body)
	if !htmlContent {
		body = breakSplitter(body, delimiter)
	}
	return body
}

// Postprocess undoes the link masking and trims surrounding whitespace.
func Postprocess(body string) string {
	return strings.TrimSpace(reMaskedLink.ReplaceAllString(body, "<$1>"))
}

func maskLinks(body string) string {
	matches := reLink.FindAllStringSubmatchIndex(body, -1)
	if matches == nil {
		return body
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		// A genuinely quoted line may contain a bracketed link; leave it.
		lineStart := strings.LastIndex(body[:m[0]], "\n") + 1
		if body[lineStart] == '>' {
			continue
		}
		b.WriteString(body[last:m[0]])
		b.WriteString("@@")
		b.WriteString(body[m[2]:m[3]])
		b.WriteString("@@")
		last = m[1]
	}
	b.WriteString(body[last:])
	return b.String()
}

func breakSplitter(body, delimiter string) string {
	matches := reOnDateWrote.FindAllStringIndex(body, -1)
	if matches == nil {
		return body
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(body[last:m[0]])
		if m[0] > 0 && body[m[0]-1] != '\n' {
			b.WriteString(delimiter)
		}
		b.WriteString(body[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(body[last:])
	return b.String()
}
