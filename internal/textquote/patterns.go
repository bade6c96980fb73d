// Package textquote locates and removes the quoted suffix of a plain-text
// message body. Lines are classified into a marker sequence which is then
// matched against a priority-ordered set of boundary patterns tuned to the
// quoting conventions of common mail clients.
package textquote

import "regexp"

const (
	// MaxLines is the per-message line cap. Longer bodies skip extraction
	// entirely, which bounds worst-case regex cost on degenerate input.
	MaxLines = 1000

	// SplitterMaxLines is the lookahead window for splitters that clients
	// spread across several physical lines.
	SplitterMaxLines = 5
)

// Line markers assigned by Classify.
const (
	markerEmpty    = 'e'
	markerForward  = 'f'
	markerQuote    = 'm'
	markerSplitter = 's'
	markerText     = 't'
)

// Splitter pattern sources, compiled both anchored (classification) and
// unanchored (preprocessing needs to find a splitter mid-line).
const (
	onDateWrotePattern = `-*[ ]?On[ ].*,(?:.*\n){0,2}.*(?:wrote|sent):`

	onDateWroteGooglePattern = `(?i)On (Mon(day)?|Tue(s)?(day)?|Wed(nesday)?|Thur(sday)?|Fri(day)?|Sat(urday)?|Sun(day)?)` +
		`, (Jan(uary)?|Feb(ruary)?|Mar(ch)?|Apr(il)?|May|Jun(e)?|Jul(y)?|Aug(ust)?|Sep(t)?(ember)?|` +
		`Oct(ober?)|Nov(ember)?|Dec(ember)?) [0-9]{1,2}, [0-9]{4}` +
		` at [0-9:]* (PM|AM), .* wrote:`
)

var (
	// reForward matches forwarded-message banner lines.
	reForward = regexp.MustCompile(`(?i)(-+[ ]*Forwarded message[ ]*-+)|(Begin forwarded message:)`)

	// reQuoteMarker matches the conventional '>' quoting prefix.
	reQuoteMarker = regexp.MustCompile(`^>+ ?`)

	reOnDateWrote       = regexp.MustCompile(onDateWrotePattern)
	reOnDateWroteGoogle = regexp.MustCompile(onDateWroteGooglePattern)

	// splitterPatterns are tried in order against the joined lookahead
	// window, anchored at the window start. A match marks every physical
	// line it spans as a splitter.
	splitterPatterns = []*regexp.Regexp{
		// ------Original Message------ or ---- Reply Message ----
		regexp.MustCompile(`(?i)^[\s ]*-+[ ]*(Original|Reply) Message[ ]*-+`),
		// <date> <person>
		regexp.MustCompile(`^(\d+/\d+/\d+|\d+\.\d+\.\d+).*@`),
		regexp.MustCompile(`^` + onDateWrotePattern),
		regexp.MustCompile(`^` + onDateWroteGooglePattern),
		// From:/Date:/Sent:/Subject:/To:/Cc: header blocks, optionally
		// preceded by an underscore rule or wrapped in '*'.
		regexp.MustCompile(`^(_+\r?\n)?[\s]*(:?[*]?From|Date|Sent|Subject|To|Cc):[*]? .*`),
		// localized "<day>, <d> <month> 20xx, hh:mm <person>@<host>:" lines
		regexp.MustCompile(`^\S{3,10}, \d\d? \S{3,10} 20\d\d,? \d\d?:\d\d(:\d\d)?( \S+){3,6}@\S+:`),
	}
)

// Boundary patterns over the marker sequence. P1, the inline exclusion and
// P2 run against the explicitly reversed marker string, anchoring them to
// the end of the message; the signature fallback runs against the forward
// string. The anchoring direction per pattern is deliberate.
var (
	// reTrustedQuoteRuns: three or more '>'-marked runs make quote markers
	// trustworthy even without a splitter.
	reTrustedQuoteRuns = regexp.MustCompile(`(me*){3}`)

	// reForwardGuard: a forward banner preceded only by text and blanks
	// means nothing is quoted.
	reForwardGuard = regexp.MustCompile(`^[te]*f`)

	// reSignatureSplitter (P1): trailing signature text preceded by one or
	// more splitter blocks.
	reSignatureSplitter = regexp.MustCompile(`^e*(te*)+(se*)+`)

	// reInlineReply: text and quote runs interleaved more than once; cutting
	// would destroy live reply content.
	reInlineReply = regexp.MustCompile(`^e*[mfts]*((te*)+(me*)+)+[mfts]*((se*)+|(me*){2,})`)

	// reReplyQuote (P2): the canonical reply-above-quote shape, a block of
	// quote-marked lines terminated by a splitter or a long quote run.
	reReplyQuote = regexp.MustCompile(`^e*(me*)+[mefts]*((se*)+|(me*){2,})`)

	// reQuoteThenSignature guards the forward-matched fallback: reply,
	// quote, splitter, then a trailing signature.
	reQuoteThenSignature = regexp.MustCompile(`^e*(te*)+(me*)+.*s+e*(te*)+`)

	// reQuoteThenSignatureSpan captures the removal span for the fallback:
	// from the first quote run through the last splitter.
	reQuoteThenSignatureSpan = regexp.MustCompile(`^e*(?:te*)+((?:me*)+.*s+)`)
)

// Link masking patterns used by preprocessing.
var (
	reLink       = regexp.MustCompile(`<(http://[^>]*)>`)
	reMaskedLink = regexp.MustCompile(`@@(http://[^>@]*)@@`)

	reDelimiter = regexp.MustCompile(`\r?\n`)
	reLineSplit = regexp.MustCompile(`\r\n|\r|\n`)
)
