package bbcode

// processOpeningTag either renders a standalone tag in place or pushes a new
// frame to collect the tag's content.
func (r *resolver) processOpeningTag(tok *Token, rule Rule) {
	if rule.selfClosing {
		out, ok := rule.body.render(Tag{
			Name:   tok.Name,
			Option: tok.Option,
			Attrs:  tok.Attrs,
		})

		// a declined render keeps the tag text as-is
		if !ok {
			out = tok.Raw
		}

		t := r.top()
		t.content.WriteString(out)
		t.offset = tok.Span.End

		return
	}

	r.stack = append(r.stack, &node{token: tok, offset: tok.Span.End})
	r.open[tok.Name]++
}
