package profile

import (
	"html"
	"regexp"
	"strings"

	"github.com/yldio/xbbcode/bbcode"
)

// DefaultName is the profile every render request falls back to. It is built
// in: it exists without being stored anywhere and cannot be changed.
const DefaultName = "default"

// Default returns the rule table of the built-in profile. Wrapping tags pass
// their content through as-is; every value taken from tag metadata is
// escaped before it lands inside an HTML attribute, and link targets are
// restricted to schemes that cannot carry script.
func Default() bbcode.Rules {
	return bbcode.Rules{
		"b":      bbcode.NewTemplateRule("<strong>{content}</strong>"),
		"i":      bbcode.NewTemplateRule("<em>{content}</em>"),
		"u":      bbcode.NewTemplateRule("<u>{content}</u>"),
		"s":      bbcode.NewTemplateRule("<del>{content}</del>"),
		"sub":    bbcode.NewTemplateRule("<sub>{content}</sub>"),
		"sup":    bbcode.NewTemplateRule("<sup>{content}</sup>"),
		"center": bbcode.NewTemplateRule(`<div style="text-align: center">{content}</div>`),
		"hr":     bbcode.NewTemplateRule("<hr>", bbcode.WithSelfClosing()),
		"br":     bbcode.NewTemplateRule("<br>", bbcode.WithSelfClosing()),
		"code":   bbcode.NewFuncRule(renderCode, bbcode.WithNoCode()),
		"quote":  bbcode.NewFuncRule(renderQuote),
		"url":    bbcode.NewFuncRule(renderLink),
		"img":    bbcode.NewFuncRule(renderImage, bbcode.WithNoCode()),
		"color":  bbcode.NewFuncRule(renderColor),
	}
}

func renderCode(t bbcode.Tag) (string, bool) {
	return "<pre><code>" + html.EscapeString(t.Content) + "</code></pre>", true
}

func renderQuote(t bbcode.Tag) (string, bool) {
	if t.Option == "" {
		return "<blockquote>" + t.Content + "</blockquote>", true
	}

	return "<blockquote>" + t.Content + "<cite>" + html.EscapeString(t.Option) + "</cite></blockquote>", true
}

func renderLink(t bbcode.Tag) (string, bool) {
	href := t.Option
	if href == "" {
		href = t.Content
	}

	if !safeURL(href) {
		return "", false
	}

	return `<a href="` + html.EscapeString(href) + `">` + t.Content + `</a>`, true
}

func renderImage(t bbcode.Tag) (string, bool) {
	src := t.Option
	if src == "" {
		src = t.Content
	}

	if !safeURL(src) {
		return "", false
	}

	var b strings.Builder

	b.WriteString(`<img src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`"`)

	for _, dim := range [...]string{"width", "height"} {
		if v := t.Attrs[dim]; isDigits(v) {
			b.WriteString(` ` + dim + `="` + v + `"`)
		}
	}

	if alt := t.Attrs["alt"]; alt != "" {
		b.WriteString(` alt="` + html.EscapeString(alt) + `"`)
	}

	b.WriteString(">")

	return b.String(), true
}

var colorPattern = regexp.MustCompile(`^(?:[a-zA-Z]{1,20}|#[0-9a-fA-F]{3,8})$`)

func renderColor(t bbcode.Tag) (string, bool) {
	if !colorPattern.MatchString(t.Option) {
		return "", false
	}

	return `<span style="color: ` + t.Option + `">` + t.Content + `</span>`, true
}

// safeURL accepts http, https, mailto and site-relative targets.
func safeURL(s string) bool {
	if s == "" {
		return false
	}

	lower := strings.ToLower(s)

	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") {
		return true
	}

	// a relative target must not smuggle another scheme in
	return !strings.Contains(s, ":")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
