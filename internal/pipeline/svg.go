package pipeline

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidSVG indicates an SVG payload has no <svg> root element.
var ErrInvalidSVG = errors.New("invalid SVG markup")

// forbiddenSVGElements are removed with their whole subtree.
// Names are compared lowercased (the parser reports "foreignObject").
var forbiddenSVGElements = map[string]bool{
	"script":        true,
	"foreignobject": true,
	"iframe":        true,
	"object":        true,
	"embed":         true,
	"handler":       true,
	"listener":      true,
}

// SanitizeSVG strips active content from inline SVG markup so it can be
// embedded directly in the report.
//
// Removes:
//   - script, foreignObject, iframe, object, embed elements
//   - on* event handler attributes
//   - href/xlink:href/src values other than fragment refs and data:image/ URIs
//   - any attribute value containing "javascript:", "@import" or a url()
//     pointing outside the document
//   - style elements whose text imports or references an external resource;
//     markup nested in a style element is dropped
//   - comments, XML declarations and doctypes
//
// Returns ErrInvalidSVG if no <svg> element remains.
func SanitizeSVG(markup string) (string, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return "", err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	sanitizeNode(container)

	var buf strings.Builder
	found := false
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "svg" {
			continue
		}
		found = true
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	if !found {
		return "", ErrInvalidSVG
	}
	return buf.String(), nil
}

// sanitizeNode removes forbidden children and attributes, recursively.
func sanitizeNode(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch {
		case c.Type == html.CommentNode, c.Type == html.DoctypeNode:
			n.RemoveChild(c)
		case c.Type == html.ElementNode && forbiddenSVGElements[strings.ToLower(c.Data)]:
			n.RemoveChild(c)
		case c.Type == html.ElementNode && strings.EqualFold(c.Data, "style"):
			if !sanitizeStyleElement(c) {
				n.RemoveChild(c)
			}
		case c.Type == html.ElementNode:
			c.Attr = safeAttrs(c.Attr)
			sanitizeNode(c)
		}
		c = next
	}
}

// safeAttrs filters an attribute list in place.
func safeAttrs(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		val := strings.ToLower(strings.TrimSpace(a.Val))

		if strings.HasPrefix(key, "on") {
			continue
		}
		if strings.Contains(strings.Join(strings.Fields(val), ""), "javascript:") {
			continue
		}
		if (key == "href" || key == "src") && !isSafeRef(val) {
			continue
		}
		if hasExternalRef(val) {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}

// isSafeRef allows in-document references and embedded images only.
func isSafeRef(val string) bool {
	return strings.HasPrefix(val, "#") || strings.HasPrefix(val, "data:image/")
}

// sanitizeStyleElement keeps only the text of a style element and reports
// whether the element may stay.
func sanitizeStyleElement(n *html.Node) bool {
	var text strings.Builder
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		} else {
			n.RemoveChild(c)
		}
		c = next
	}
	n.Attr = safeAttrs(n.Attr)
	return !hasExternalRef(strings.ToLower(text.String()))
}

// hasExternalRef reports whether lowercased CSS text imports a stylesheet,
// uses a CSS escape, or references a url() that is not a fragment or an
// embedded image.
func hasExternalRef(css string) bool {
	compact := strings.Join(strings.Fields(css), "")
	if strings.Contains(compact, "@import") || strings.Contains(compact, `\`) {
		return true
	}
	for rest := compact; ; {
		i := strings.Index(rest, "url(")
		if i < 0 {
			return false
		}
		rest = rest[i+len("url("):]
		target := rest
		if end := strings.IndexByte(rest, ')'); end >= 0 {
			target = rest[:end]
		}
		if !isSafeRef(strings.Trim(target, `"'`)) {
			return true
		}
	}
}
