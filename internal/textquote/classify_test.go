package textquote

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			"answer_header_blank_quote",
			[]string{"answer", "From: foo@bar.com", "", "> question"},
			"tsem",
		},
		{
			"plain_text_only",
			[]string{"Hello,", "how are you?"},
			"tt",
		},
		{
			"blank_variants",
			[]string{"", "   ", "\t"},
			"eee",
		},
		{
			"forward_banners",
			[]string{"---------- Forwarded message ----------", "Begin forwarded message:"},
			"ff",
		},
		{
			"quote_markers",
			[]string{"> hi", ">> nested", ">no space"},
			"mmm",
		},
		{
			"original_message_banner",
			[]string{"-----Original Message-----", "old text"},
			"st",
		},
		{
			"reply_message_banner",
			[]string{"---- Reply Message ----"},
			"s",
		},
		{
			"google_on_date_wrote",
			[]string{"On Mon, Jan 5, 2015 at 3:00 PM, Bob <b@x.com> wrote:", "> old"},
			"sm",
		},
		{
			"on_date_wrote_spanning_two_lines",
			[]string{"On Tue, 2015-01-27 at 19:56 -0500,", "Bob wrote:", "> old"},
			"ssm",
		},
		{
			"date_person_line",
			[]string{"04/19/2011 01:10 PM someone@example.com", "> old"},
			"sm",
		},
		{
			"header_block_counts_one_line_per_match",
			[]string{"reply", "From: a@b.com", "To: c@d.com", "", "> q"},
			"tssem",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.lines)
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.lines, got, tc.want)
			}
		})
	}
}

func TestClassifyAlignment(t *testing.T) {
	// The marker sequence must stay index-aligned with the input lines.
	lines := []string{"a", "", "> b", "On Mon, Jan 5, 2015 at 3:00 PM, X <x@y.z> wrote:", "> c"}
	markers := Classify(lines)
	if len(markers) != len(lines) {
		t.Fatalf("len(markers) = %d, want %d", len(markers), len(lines))
	}
}

func TestSpannedLines(t *testing.T) {
	tests := []struct {
		match string
		want  int
	}{
		{"one line", 1},
		{"one line\n", 1},
		{"two\nlines", 2},
		{"two\nlines\n", 2},
		{"a\r\nb", 2},
	}
	for _, tc := range tests {
		if got := spannedLines(tc.match); got != tc.want {
			t.Errorf("spannedLines(%q) = %d, want %d", tc.match, got, tc.want)
		}
	}
}
