package pipeline

import "strings"

// DefaultTitle is used when the notebook has no level-1 heading.
const DefaultTitle = "Dashboard"

// Model is everything the renderer needs to produce a report.
type Model struct {
	Title    string
	Date     string // pre-resolved "generated" stamp, empty = none
	Kernel   string // notebook kernel display name, empty = unknown
	Language string
	Units    []Unit
}

// DetectTitle returns the text of the first level-1 heading across text
// blocks in document order, or fallback if there is none.
func DetectTitle(blocks []Block, fallback string) string {
	for _, b := range blocks {
		text, ok := b.(TextBlock)
		if !ok {
			continue
		}
		if title, found := text.FirstHeading(1); found {
			return title
		}
	}
	return fallback
}

// SectionLabel returns a short label for a unit: its first heading of any
// level, or empty if the unit has none.
func SectionLabel(u Unit) string {
	if u.Text == nil {
		return ""
	}
	for _, h := range u.Text.Headings {
		if label := strings.TrimSpace(h.Text); label != "" {
			return label
		}
	}
	return ""
}
