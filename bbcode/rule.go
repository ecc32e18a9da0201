package bbcode

// Tag is a resolved tag as handed to its rendering rule: the metadata of the
// opening token plus the fully rendered content between the pair.
type Tag struct {
	// Name is the lowercased tag name.
	Name string

	// Option is the "=value" of the opening tag, if any.
	Option string

	// Attrs holds the attribute pairs of the opening tag, nil when absent.
	Attrs map[string]string

	// Content is everything between the opening and closing tags, inner tags
	// already rendered. Empty for self-closing tags; the raw source text for
	// rules with the no-code flag.
	Content string
}

// RenderFunc produces the output for one resolved [Tag]. Returning ok ==
// false declines the render: the tag and its content fall back to their
// literal source text.
type RenderFunc func(t Tag) (string, bool)

// ruleBody is the behaviour of a [Rule]: either a template or a RenderFunc.
type ruleBody interface {
	render(t Tag) (string, bool)
}

// Rule describes how tags of one name render.
// The zero Rule has no body and is dropped by [NewRenderer].
type Rule struct {
	body        ruleBody
	selfClosing bool
	noCode      bool
}

// RuleOption is a decorator function which fills the optional flags of a [Rule].
type RuleOption func(r *Rule)

// WithSelfClosing marks the tag as standalone: an opening token renders
// immediately with empty content and no closing token is expected.
func WithSelfClosing() RuleOption {
	return func(r *Rule) {
		r.selfClosing = true
	}
}

// WithNoCode hands the rule the raw source between the pair as its Content:
// tags inside are not resolved.
func WithNoCode() RuleOption {
	return func(r *Rule) {
		r.noCode = true
	}
}

// NewTemplateRule creates a [Rule] which renders by placeholder substitution.
// {content}, {name}, {option} and {attr:key} expand to the matching Tag
// field, unknown placeholders expand to nothing, and doubled braces
// ({{content}}) emit the placeholder text literally. Template rules never
// decline a render.
func NewTemplateRule(template string, opts ...RuleOption) Rule {
	return newRule(templateBody(template), opts)
}

// NewFuncRule creates a [Rule] which renders by calling fn.
// A nil fn gives the zero Rule.
func NewFuncRule(fn RenderFunc, opts ...RuleOption) Rule {
	if fn == nil {
		return Rule{}
	}

	return newRule(funcBody(fn), opts)
}

func newRule(body ruleBody, opts []RuleOption) Rule {
	r := Rule{body: body}

	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// Rules maps tag names to rendering rules. Lookup is by lowercased name.
type Rules map[string]Rule
