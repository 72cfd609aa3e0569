// Package sanitizer converts rich-text HTML produced by the admin editor into
// the markup subset accepted by Telegram's HTML parse mode.
//
// Supported output tags: b, i, u, s, a (href only), code, pre, tg-spoiler and
// span with class "tg-spoiler". Everything else is unwrapped, block elements
// are turned into line breaks and raw-text containers such as script are dropped.
package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// canonical maps accepted tags and their synonyms to the emitted tag name.
var canonical = map[string]string{
	"b":      "b",
	"strong": "b",
	"i":      "i",
	"em":     "i",
	"u":      "u",
	"ins":    "u",
	"s":      "s",
	"strike": "s",
	"del":    "s",
	"code":   "code",
	"pre":    "pre",
}

// dropped elements are removed together with their content.
var dropped = map[string]bool{
	"script":   true,
	"style":    true,
	"iframe":   true,
	"object":   true,
	"template": true,
	"noscript": true,
	"head":     true,
	"title":    true,
}

// blockBreaks holds the text emitted after a block element closes.
var blockBreaks = map[string]string{
	"div":        "\n",
	"p":          "\n\n",
	"h1":         "\n",
	"h2":         "\n",
	"h3":         "\n",
	"h4":         "\n",
	"h5":         "\n",
	"h6":         "\n",
	"li":         "\n",
	"tr":         "\n",
	"blockquote": "\n",
}

const spoilerClass = "tg-spoiler"

var (
	newlineRun  = regexp.MustCompile(`\n{3,}`)
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// Sanitize returns s rewritten to Telegram-compatible HTML.
//
// It never fails: malformed markup is repaired by the HTML5 parser and
// anything that cannot be represented is reduced to its text.
func Sanitize(s string) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(s), body)
	if err != nil {
		return strings.TrimSpace(textEscaper.Replace(s))
	}

	var sb strings.Builder
	for _, n := range nodes {
		render(&sb, n)
	}

	out := strings.ReplaceAll(sb.String(), "\u00a0", " ")
	out = newlineRun.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// Empty reports whether markup s has no visible text, e.g. "<b></b>" or "<br>".
func Empty(s string) bool {
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return true
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return false
			}
		}
	}
}

func render(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(textEscaper.Replace(n.Data))
		return
	case html.DocumentNode:
		renderChildren(sb, n)
		return
	case html.ElementNode:
	default:
		return
	}

	name := strings.ToLower(n.Data)
	if dropped[name] {
		return
	}

	if name == "br" {
		sb.WriteString("\n")
		return
	}

	open, closing := tags(n, name)
	sb.WriteString(open)
	renderChildren(sb, n)
	sb.WriteString(closing)

	if brk, ok := blockBreaks[name]; ok {
		sb.WriteString(brk)
	}
}

func renderChildren(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		render(sb, c)
	}
}

// tags returns the opening and closing markup emitted for element n.
// Both are empty when the element is unwrapped.
func tags(n *html.Node, name string) (string, string) {
	if tag, ok := canonical[name]; ok {
		if tag == "code" && n.Parent != nil && n.Parent.Data == "pre" {
			if lang := attr(n, "class"); strings.HasPrefix(lang, "language-") {
				return `<code class="` + attrEscaper.Replace(lang) + `">`, "</code>"
			}
		}

		return "<" + tag + ">", "</" + tag + ">"
	}

	switch name {
	case "a":
		href := strings.TrimSpace(attr(n, "href"))
		if href == "" {
			return "", ""
		}

		return `<a href="` + attrEscaper.Replace(href) + `">`, "</a>"
	case "span":
		if hasClass(n, spoilerClass) {
			return `<span class="` + spoilerClass + `">`, "</span>"
		}
	case spoilerClass:
		return "<" + spoilerClass + ">", "</" + spoilerClass + ">"
	}

	return "", ""
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}

	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}

	return false
}
