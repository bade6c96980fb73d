package textquote

import "strings"

// Flags reports whether Resolve removed a span of lines and, if so, its
// half-open [Start, End) bounds. No span is (false, -1, -1), never an empty
// range.
type Flags struct {
	Deleted bool
	Start   int
	End     int
}

var noSpan = Flags{Deleted: false, Start: -1, End: -1}

// Resolve matches the boundary patterns against the marker sequence and
// returns the lines with the quoted span removed, together with the span
// flags. When no pattern applies the lines come back unchanged.
func Resolve(lines []string, markers string) ([]string, Flags) {
	// Without a splitter, an isolated '>' run is not trusted as a real
	// quote marker unless there are at least three such runs.
	if !strings.ContainsRune(markers, markerSplitter) && !reTrustedQuoteRuns.MatchString(markers) {
		markers = strings.Map(func(r rune) rune {
			if r == markerQuote {
				return markerText
			}
			return r
		}, markers)
	}

	// A forward banner with nothing but text and blanks before it: the
	// whole message is a forward, nothing gets removed.
	if reForwardGuard.MatchString(markers) {
		return lines, noSpan
	}

	n := len(markers)
	rev := reverseMarkers(markers)

	start, end := -1, -1
	if loc := reSignatureSplitter.FindStringIndex(rev); loc != nil {
		start, end = n-loc[1], n-loc[0]
	} else {
		if reInlineReply.MatchString(rev) {
			return lines, noSpan
		}
		if loc := reReplyQuote.FindStringIndex(rev); loc != nil {
			start, end = n-loc[1], n-loc[0]
		}
	}

	if start < 0 && reQuoteThenSignature.MatchString(markers) {
		// Reply, quote, splitter, then a trailing signature: cut from the
		// first quote run through the last splitter, keeping the reply
		// above and the signature below.
		if m := reQuoteThenSignatureSpan.FindStringSubmatchIndex(markers); m != nil {
			start, end = m[2], m[3]
		}
	}

	if start < 0 {
		return lines, noSpan
	}

	out := make([]string, 0, len(lines)-(end-start))
	out = append(out, lines[:start]...)
	out = append(out, lines[end:]...)
	return out, Flags{Deleted: true, Start: start, End: end}
}

// reverseMarkers reverses the marker string. Markers are single-byte
// symbols, so a byte reversal is safe.
func reverseMarkers(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
