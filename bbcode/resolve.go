package bbcode

import "strings"

// node is one frame of the resolver stack: an opening tag still waiting for
// its closing tag, plus everything rendered inside it so far.
type node struct {
	// token is the opening [Token]. It is nil only on the root frame, which
	// collects the final output.
	token *Token

	// content accumulates the rendered output inside this tag.
	content strings.Builder

	// offset is the input position from which the next plain-text flush into
	// content starts. It never precedes token.Span.End and never moves
	// backwards.
	offset int
}

// resolver turns a token sequence back into a string in a single forward
// pass. Tag pairs are matched on an explicit stack, so deep or badly crossed
// nesting costs heap frames, not goroutine stack. Markup that cannot be
// matched degrades to literal text and the pass continues.
type resolver struct {
	input string
	rules Rules
	stack []*node

	// open counts opening tokens pushed per name. It is an existence check
	// for closing tokens, not an exact balance: names popped while breaking
	// crossed pairs stay counted.
	open map[string]int
}

func newResolver(input string, rules Rules) *resolver {
	return &resolver{
		input: input,
		rules: rules,
		stack: []*node{{}},
		open:  map[string]int{},
	}
}

func (r *resolver) top() *node {
	return r.stack[len(r.stack)-1]
}

func (r *resolver) pop() *node {
	last := len(r.stack) - 1
	el := r.stack[last]
	r.stack = r.stack[:last]

	return el
}

// flushText appends the plain text between the current write offset and pos
// to the top frame and moves the offset to pos.
func (r *resolver) flushText(pos int) {
	t := r.top()

	if t.offset < pos {
		t.content.WriteString(r.input[t.offset:pos])
	}

	t.offset = pos
}

// breakFrame dumps a popped frame into the frame below it: the raw opening
// text first, then whatever rendered inside. The write offset carries over
// so pending plain text is neither lost nor doubled.
func (r *resolver) breakFrame(el *node) {
	t := r.top()
	t.content.WriteString(el.token.Raw)
	t.content.WriteString(el.content.String())
	t.offset = el.offset
}

// resolve runs the pass over the token sequence and returns the output.
func (r *resolver) resolve(tokens []Token) string {
	for i := range tokens {
		tok := &tokens[i]

		r.flushText(tok.Span.Start)

		rule, known := r.rules[tok.Name]

		// not a registered tag: the token text stays in place as plain text,
		// picked up by the next flush
		if !known {
			continue
		}

		if tok.Opening {
			r.processOpeningTag(tok, rule)
		} else {
			r.processClosingTag(tok, rule)
		}
	}

	r.flushText(len(r.input))

	// every tag still open gets broken: its source text comes back verbatim
	// in front of whatever rendered inside it
	for len(r.stack) > 1 {
		r.breakFrame(r.pop())
	}

	return r.top().content.String()
}
