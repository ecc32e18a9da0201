package bbcode

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {name} and {attr:key} placeholders. The doubled
// alternative comes first so that {{content}} is taken as an escaped
// placeholder, not as a braced {content}.
var placeholderPattern = regexp.MustCompile(`\{\{(?:attr:\w+|\w+)\}\}|\{(?:attr:\w+|\w+)\}`)

type templateBody string

func (b templateBody) render(t Tag) (string, bool) {
	out := placeholderPattern.ReplaceAllStringFunc(string(b), func(m string) string {
		// {{name}} escapes the placeholder: strip one brace from each side
		if strings.HasPrefix(m, "{{") {
			return m[1 : len(m)-1]
		}

		return t.expand(m[1 : len(m)-1])
	})

	return out, true
}

type funcBody RenderFunc

func (b funcBody) render(t Tag) (string, bool) {
	return b(t)
}

// expand resolves a single placeholder name to its value.
func (t Tag) expand(name string) string {
	switch name {
	case "content":
		return t.Content
	case "name":
		return t.Name
	case "option":
		return t.Option
	}

	if key, isAttr := strings.CutPrefix(name, "attr:"); isAttr {
		return t.Attrs[key]
	}

	return ""
}
