package bbcode

// Span defines the byte bounds of a window view of the input string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int

	// End defines the exclusive end of the view.
	End int
}

// Token is a single bracketed tag matched in the input string.
// The plain text between tags is not tokenized: consumers re-slice it from
// the input using the Spans of adjacent Tokens.
type Token struct {
	// Opening is true for opening tags like "[b]" or "[url=...]",
	// false for closing tags like "[/b]".
	Opening bool

	// Name is the lowercased tag name. Tags match case-insensitively.
	Name string

	// Option is the value of the "[name=value]" form. Empty when absent;
	// an explicit empty value "[name=]" is indistinguishable from none.
	Option string

	// Attrs holds the pairs of the "[name key=value ...]" form, nil when
	// the tag has no attributes. A tag never carries both an Option and
	// Attrs: a "=" directly after the name claims the rest of the tag.
	Attrs map[string]string

	// Raw is the exact source text of the tag, brackets included.
	Raw string

	// Span defines the bounds of Raw within the input.
	Span Span
}
