package textquote

import (
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"reply_above_quote",
			"Thanks!\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n> Old content\n> more old content",
			"Thanks!",
		},
		{
			"original_message_banner",
			"Will do.\n\n-----Original Message-----\nFrom: a@b.com\n> old",
			"Will do.",
		},
		{
			"no_quotation",
			"Hello,\n\njust checking in.",
			"Hello,\n\njust checking in.",
		},
		{
			"forward_kept_whole",
			"Hi,\n\n---------- Forwarded message ----------\nFrom: a@b.com\nHello",
			"Hi,\n\n---------- Forwarded message ----------\nFrom: a@b.com\nHello",
		},
		{
			"inline_reply_preserved",
			"t1\n> q1\nt2\n> q2",
			"t1\n> q1\nt2\n> q2",
		},
		{
			"crlf_delimiter_kept",
			"Thanks!\r\n\r\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\r\n> old",
			"Thanks!",
		},
		{
			"link_not_taken_for_quote",
			"Look at <http://example.com/x>\nit is great",
			"Look at <http://example.com/x>\nit is great",
		},
		{"empty", "", ""},
		{"whitespace_only", "   \n  ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.body)
			if got != tc.want {
				t.Errorf("Extract(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	bodies := []string{
		"Thanks!\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n> Old content",
		"Will do.\n\n-----Original Message-----\n> old",
		"plain text with no quote",
	}
	for _, body := range bodies {
		once := Extract(body)
		twice := Extract(once)
		if once != twice {
			t.Errorf("Extract not idempotent for %q: first %q, second %q", body, once, twice)
		}
	}
}

func TestExtractLineCap(t *testing.T) {
	// A body over the line cap comes back untouched, quotes and all.
	var b strings.Builder
	b.WriteString("Thanks!\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n")
	for i := 0; i < MaxLines; i++ {
		b.WriteString("> quoted\n")
	}
	body := b.String()
	if got := Extract(body); got != body {
		t.Errorf("Extract() modified a body over the %d-line cap", MaxLines)
	}
}
