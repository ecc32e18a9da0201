package bbcode

import (
	"regexp"
	"strings"
)

// Tag grammar, one alternative per form: closing "[/name]", opening with an
// option "[name=value]", opening with attributes "[name k=v ...]", plain
// "[name]". Values quote with ", ', &quot; or &#039;. Backreferences are not
// available in RE2, so every quote kind is spelled out as its own
// alternative. A bare option value runs to "]"; a bare attribute value stops
// at whitespace, "/" or "]". A value whose closing quote is missing falls
// through to the bare alternatives, quote included.
const (
	tagName  = `[a-zA-Z0-9_-]+`
	attrPair = `\s+\w+=(?:".*?"|'.*?'|&quot;.*?&quot;|&#039;.*?&#039;|[^\s/\]]*)`
)

var tagPattern = regexp.MustCompile(
	`\[(?:/(` + tagName + `)` +
		`|(` + tagName + `)` +
		`(?:=(?:"(.*?)"|'(.*?)'|&quot;(.*?)&quot;|&#039;(.*?)&#039;|([^\]]*))` +
		`|((?:` + attrPair + `)*)` +
		`)?)\]`)

// Capture group indices of tagPattern.
const (
	grpCloseName = 1
	grpOpenName  = 2
	grpOptFirst  = 3
	grpOptLast   = 7
	grpAttrs     = 8
)

var tagNamePattern = regexp.MustCompile(`^` + tagName + `$`)

// ValidTagName reports whether a rule registered under this name could ever
// match a token: tag names consist of letters, digits, underscore and
// hyphen.
func ValidTagName(name string) bool {
	return tagNamePattern.MatchString(name)
}

// Tokenize matches every bracketed tag of the input string, in source order.
// Brackets that do not fit the tag grammar are not an error: no Token is
// produced for them and they stay plain text. Tokenize never fails.
func Tokenize(input string) []Token {
	matches := tagPattern.FindAllStringSubmatchIndex(input, -1)
	if matches == nil {
		return nil
	}

	tokens := make([]Token, 0, len(matches))

	for _, m := range matches {
		tok := Token{
			Raw:  input[m[0]:m[1]],
			Span: Span{m[0], m[1]},
		}

		if start := m[2*grpCloseName]; start != -1 {
			tok.Name = strings.ToLower(input[start:m[2*grpCloseName+1]])
			tokens = append(tokens, tok)
			continue
		}

		tok.Opening = true
		tok.Name = strings.ToLower(input[m[2*grpOpenName]:m[2*grpOpenName+1]])

		for g := grpOptFirst; g <= grpOptLast; g++ {
			if m[2*g] != -1 {
				tok.Option = input[m[2*g]:m[2*g+1]]
				break
			}
		}

		if start, end := m[2*grpAttrs], m[2*grpAttrs+1]; start != -1 && start != end {
			tok.Attrs = ParseAttributes(input[start:end])
		}

		tokens = append(tokens, tok)
	}

	return tokens
}
