package textquote

import "strings"

// Classify assigns one marker per line:
//
//	e - blank line
//	f - forwarded-message banner
//	m - line starting with a '>' quote marker
//	s - splitter line (may span several physical lines)
//	t - presumably text of the newest message
//
// The returned sequence is index-aligned with lines.
func Classify(lines []string) string {
	markers := make([]byte, len(lines))
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			markers[i] = markerEmpty
		case reForward.MatchString(line):
			markers[i] = markerForward
		case reQuoteMarker.MatchString(line):
			markers[i] = markerQuote
		default:
			// A splitter may be spread across several lines; test a window.
			end := i + SplitterMaxLines
			if end > len(lines) {
				end = len(lines)
			}
			window := strings.Join(lines[i:end], "\n")
			if match, ok := matchSplitter(window); ok {
				span := spannedLines(match)
				for j := 0; j < span && i+j < len(lines); j++ {
					markers[i+j] = markerSplitter
				}
				i += span - 1
			} else {
				markers[i] = markerText
			}
		}
	}
	return string(markers)
}

// matchSplitter tests the window against the splitter patterns in order and
// returns the matched text of the first one that applies.
func matchSplitter(window string) (string, bool) {
	for _, re := range splitterPatterns {
		if loc := re.FindStringIndex(window); loc != nil {
			return window[loc[0]:loc[1]], true
		}
	}
	return "", false
}

// spannedLines counts the physical lines covered by a splitter match.
func spannedLines(match string) int {
	match = strings.TrimSuffix(match, "\n")
	match = strings.TrimSuffix(match, "\r")
	return strings.Count(match, "\n") + 1
}
