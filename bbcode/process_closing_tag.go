package bbcode

// processClosingTag matches a closing token against the stack.
//
// A closing token whose name was never opened is dropped. Otherwise frames
// are popped until the name matches: every frame popped over, a pair crossed
// with this one, is broken, its opening text and content joining the
// surrounding frame unrendered. The matching frame renders.
//
// The open counter keeps counting broken names, so the unwind can still come
// up empty. Such a closing token stays plain text.
func (r *resolver) processClosingTag(tok *Token, rule Rule) {
	if r.open[tok.Name] == 0 {
		// a stray closing tag of a known name disappears from the output
		r.top().offset = tok.Span.End
		return
	}

	r.open[tok.Name]--

	var matched *node

	for len(r.stack) > 1 {
		el := r.pop()

		if el.token.Name == tok.Name {
			matched = el
			break
		}

		r.breakFrame(el)
	}

	// the counted opener was itself broken earlier; this closing token stays
	// plain text, picked up by the next flush
	if matched == nil {
		return
	}

	content := matched.content.String()
	if rule.noCode {
		content = r.input[matched.token.Span.End:matched.offset]
	}

	out, ok := rule.body.render(Tag{
		Name:    tok.Name,
		Option:  matched.token.Option,
		Attrs:   matched.token.Attrs,
		Content: content,
	})

	if !ok {
		out = matched.token.Raw + content + tok.Raw
	}

	t := r.top()
	t.content.WriteString(out)
	t.offset = tok.Span.End
}
