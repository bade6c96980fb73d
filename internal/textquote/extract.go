package textquote

import "strings"

// Extract returns body with its trailing quoted segment removed. Bodies
// longer than MaxLines are returned unmodified, as are bodies in which no
// quotation boundary is found.
func Extract(body string) string {
	original := body

	delimiter := DetectDelimiter(body)
	body = Preprocess(body, delimiter, false)
	lines := SplitLines(body)
	if len(lines) > MaxLines {
		return original
	}

	markers := Classify(lines)
	lines, _ = Resolve(lines, markers)

	return Postprocess(strings.Join(lines, delimiter))
}
