package pipeline

import "testing"

func TestDetectTitle(t *testing.T) {
	t.Parallel()

	h1 := func(cell int, text string) TextBlock {
		return TextBlock{Cell: cell, Headings: []Heading{{Level: 1, Text: text}}}
	}

	tests := []struct {
		name   string
		blocks []Block
		want   string
	}{
		{
			name:   "no blocks",
			blocks: nil,
			want:   DefaultTitle,
		},
		{
			name:   "first h1 wins",
			blocks: []Block{h1(0, "Report"), h1(1, "Other")},
			want:   "Report",
		},
		{
			name: "h1 after lower headings",
			blocks: []Block{
				TextBlock{Cell: 0, Headings: []Heading{{Level: 2, Text: "Setup"}}},
				ImageBlock{Cell: 1, MIME: mimePNG},
				TextBlock{Cell: 2, Headings: []Heading{{Level: 3, Text: "x"}, {Level: 1, Text: "Sales"}}},
			},
			want: "Sales",
		},
		{
			name:   "only lower headings",
			blocks: []Block{TextBlock{Headings: []Heading{{Level: 2, Text: "Setup"}}}},
			want:   DefaultTitle,
		},
		{
			name:   "raw text kept unescaped",
			blocks: []Block{h1(0, "Q1 & Q2 <final>")},
			want:   "Q1 & Q2 <final>",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DetectTitle(tt.blocks, DefaultTitle); got != tt.want {
				t.Errorf("DetectTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectTitle_FromMarkdown(t *testing.T) {
	t.Parallel()

	conv := NewMarkdownConverter(nil)
	html, headings := conv.Convert("# Report\n\nbody")
	blocks := []Block{TextBlock{HTML: html, Headings: headings}}

	if got := DetectTitle(blocks, "fallback"); got != "Report" {
		t.Errorf("DetectTitle() = %q, want %q", got, "Report")
	}
	if got := DetectTitle(nil, "fallback"); got != "fallback" {
		t.Errorf("DetectTitle(nil) = %q, want %q", got, "fallback")
	}
}

func TestSectionLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{name: "no text", unit: Unit{Images: []ImageBlock{{}}}, want: ""},
		{name: "no headings", unit: Unit{Text: &TextBlock{HTML: "<p>x</p>"}}, want: ""},
		{
			name: "first heading of any level",
			unit: Unit{Text: &TextBlock{Headings: []Heading{{Level: 3, Text: "Detail"}, {Level: 1, Text: "Top"}}}},
			want: "Detail",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SectionLabel(tt.unit); got != tt.want {
				t.Errorf("SectionLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
