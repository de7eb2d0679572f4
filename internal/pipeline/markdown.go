package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompiled patterns for the supported markdown subset.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// One to three # followed by whitespace
	headingPattern = regexp.MustCompile(`^(#{1,3})[ \t]+(\S.*)$`)

	// ```code``` on a single line
	inlineFencePattern = regexp.MustCompile("^```(.+)```$")

	// `code`
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
)

// inlineRule is one pattern -> replacement substitution applied to escaped text.
type inlineRule struct {
	pattern *regexp.Regexp
	replace string
}

// inlineRules are applied in order, once per line. Bold-italic runs first so
// "***x***" nests cleanly, and bold before italic so "**" is not read as two
// emphasis markers.
var inlineRules = []inlineRule{
	{regexp.MustCompile(`\*\*\*([^*]+?)\*\*\*`), "<strong><em>$1</em></strong>"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>$1</strong>"},
	{regexp.MustCompile(`\*([^*]+?)\*`), "<em>$1</em>"},
	{regexp.MustCompile(`\b_([^_]+?)_\b`), "<em>$1</em>"},
}

// MarkdownConverter converts the small markdown subset found in notebook
// narrative cells: headings 1-3, bold, italic, inline code, fenced code
// blocks and paragraphs. Everything else is paragraph text.
//
// HTML-unsafe characters are escaped before any substitution, so cell
// content can never inject markup.
type MarkdownConverter struct {
	highlighter *Highlighter // nil = plain code blocks
}

// NewMarkdownConverter creates a MarkdownConverter.
// If h is nil, fenced code blocks are rendered without highlighting.
func NewMarkdownConverter(h *Highlighter) *MarkdownConverter {
	return &MarkdownConverter{highlighter: h}
}

// fence tracks an open fenced code block.
type fence struct {
	lang string
	body []string
}

// Convert renders source to an HTML fragment and returns the headings found,
// in order. An empty fragment means the cell had no renderable text.
func (c *MarkdownConverter) Convert(source string) (string, []Heading) {
	source = norm.NFC.String(crlfOrCR.ReplaceAllString(source, "\n"))

	var (
		out      []string
		para     []string
		headings []Heading
		open     *fence
	)

	flush := func() {
		if len(para) > 0 {
			out = append(out, "<p>"+strings.Join(para, "\n")+"</p>")
			para = nil
		}
	}

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)

		if open != nil {
			if strings.HasPrefix(trimmed, "```") && strings.Trim(trimmed, "`") == "" {
				out = append(out, c.codeBlock(open.lang, open.body))
				open = nil
				continue
			}
			open.body = append(open.body, line)
			continue
		}

		if m := inlineFencePattern.FindStringSubmatch(trimmed); m != nil {
			flush()
			out = append(out, c.codeBlock("", []string{m[1]}))
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			flush()
			open = &fence{lang: fenceLanguage(trimmed)}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			level := len(m[1])
			text := strings.TrimSpace(m[2])
			headings = append(headings, Heading{Level: level, Text: text})
			out = append(out, fmt.Sprintf("<h%d>%s</h%d>", level, renderInline(text), level))
			continue
		}

		para = append(para, renderInline(strings.TrimRight(line, " \t")))
	}

	// Unterminated fence runs to the end of the cell.
	if open != nil {
		out = append(out, c.codeBlock(open.lang, open.body))
	}
	flush()

	return strings.Join(out, "\n"), headings
}

// codeBlock renders a preformatted block. Highlighting is attempted only
// when a language is given and known to the highlighter.
func (c *MarkdownConverter) codeBlock(lang string, body []string) string {
	code := strings.Join(body, "\n")

	if c.highlighter != nil && lang != "" {
		if highlighted, ok := c.highlighter.Highlight(code, lang); ok {
			return highlighted
		}
	}

	class := ""
	if lang != "" {
		class = ` class="language-` + html.EscapeString(lang) + `"`
	}
	return "<pre><code" + class + ">" + html.EscapeString(code) + "</code></pre>"
}

// fenceLanguage returns the info string's first word after the opening fence.
func fenceLanguage(line string) string {
	fields := strings.Fields(strings.TrimLeft(line, "`"))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// renderInline escapes text, then applies inline rules outside code spans.
// Code span contents are emitted escaped but otherwise verbatim.
func renderInline(text string) string {
	escaped := html.EscapeString(text)

	var sb strings.Builder
	last := 0
	for _, loc := range inlineCodePattern.FindAllStringSubmatchIndex(escaped, -1) {
		sb.WriteString(applyInlineRules(escaped[last:loc[0]]))
		sb.WriteString("<code>")
		sb.WriteString(escaped[loc[2]:loc[3]])
		sb.WriteString("</code>")
		last = loc[1]
	}
	sb.WriteString(applyInlineRules(escaped[last:]))
	return sb.String()
}

// applyInlineRules runs the substitution table over already-escaped text.
func applyInlineRules(s string) string {
	for _, r := range inlineRules {
		s = r.pattern.ReplaceAllString(s, r.replace)
	}
	return s
}
