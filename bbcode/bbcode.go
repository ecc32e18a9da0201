// Package bbcode renders bracketed-tag markup ("[b]bold[/b]") into strings,
// driven by a caller-supplied table of per-tag rules. Unknown tags, stray
// closing tags, unclosed tags and crossed pairs all degrade to literal text:
// rendering never fails.
package bbcode

import "strings"

// Renderer holds an immutable rule table. One Renderer may be shared by any
// number of goroutines: a Render call keeps all of its working state to
// itself.
type Renderer struct {
	rules Rules
}

// NewRenderer copies the given table into a new [Renderer]. Names are
// lowercased and bodiless entries (the zero [Rule]) are dropped. Later
// changes to the argument map do not reach the Renderer.
func NewRenderer(rules Rules) *Renderer {
	own := make(Rules, len(rules))

	for name, rule := range rules {
		if rule.body == nil {
			continue
		}

		own[strings.ToLower(name)] = rule
	}

	return &Renderer{rules: own}
}

// Render resolves every tag of the input against the rule table and returns
// the result. Malformed markup comes back as literal text, never as an
// error.
func (r *Renderer) Render(input string) string {
	return newResolver(input, r.rules).resolve(Tokenize(input))
}
