package dequote

import (
	"strings"
	"testing"
)

func TestExtractFromPlain(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "reply_above_quote",
			body: "Thanks!\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n> Old content\n> more old content",
			want: "Thanks!",
		},
		{
			name: "forward_kept_whole",
			body: "Hi,\n\n---------- Forwarded message ----------\nFrom: a@b.com\nHello",
			want: "Hi,\n\n---------- Forwarded message ----------\nFrom: a@b.com\nHello",
		},
		{
			name: "inline_reply_preserved",
			body: "t1\n> q1\nt2\n> q2\nt3\n> q3",
			want: "t1\n> q1\nt2\n> q2\nt3\n> q3",
		},
		{
			name: "no_quotation",
			body: "Just a short note.",
			want: "Just a short note.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractFromPlain(tt.body); got != tt.want {
				t.Errorf("ExtractFromPlain:\n got %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestExtractFromPlainIdempotent(t *testing.T) {
	body := "Sure, works for me.\n\nOn Tue, Feb 3, 2015 at 1:00 PM, Ann <a@x.com> wrote:\n> original question"
	once := ExtractFromPlain(body)
	twice := ExtractFromPlain(once)
	if once != twice {
		t.Errorf("not idempotent:\n once %q\ntwice %q", once, twice)
	}
}

func TestExtractFromHTML(t *testing.T) {
	body := `<html><body><p>Latest reply</p><div class="gmail_quote">On Mon, Anna wrote:<blockquote>earlier message</blockquote></div></body></html>`
	got := ExtractFromHTML(body, nil)
	if !strings.Contains(got, "Latest reply") {
		t.Errorf("reply content lost:\n%s", got)
	}
	if strings.Contains(got, "earlier message") {
		t.Errorf("quoted content survived:\n%s", got)
	}
}

func TestExtractFrom(t *testing.T) {
	plain := "Thanks!\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n> Old content"
	if got := ExtractFrom(plain, ContentTypePlain); got != "Thanks!" {
		t.Errorf("ExtractFrom plain = %q, want %q", got, "Thanks!")
	}

	htmlBody := `<html><body><p>Sounds good.</p><blockquote>Are you free Tuesday?</blockquote></body></html>`
	if got := ExtractFrom(htmlBody, ContentTypeHTML); strings.Contains(got, "Are you free Tuesday?") {
		t.Errorf("quoted content survived:\n%s", got)
	}

	// Unknown content types pass the body through.
	if got := ExtractFrom(plain, "application/json"); got != plain {
		t.Errorf("unknown content type changed body:\n got %q\nwant %q", got, plain)
	}
}

func TestExtractFromLatin1Body(t *testing.T) {
	// 0xE9 is e-acute in Latin-1 and invalid UTF-8; the body must come
	// back valid UTF-8 with its reply intact.
	body := "R\xe9pondu, merci.\n\nOn Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:\n> ancien contenu"
	got := ExtractFrom(body, ContentTypePlain)
	if !strings.Contains(got, "pondu, merci.") {
		t.Errorf("reply content lost: %q", got)
	}
	if strings.Contains(got, "ancien contenu") {
		t.Errorf("quoted content survived: %q", got)
	}
}
