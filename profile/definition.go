// Package profile manages named sets of tag definitions and compiles them
// into rule tables for rendering.
package profile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yldio/xbbcode/bbcode"
)

// namePattern constrains profile names: they appear in URLs and cache keys.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidName reports whether s is usable as a profile name.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// TagDef describes one renderable tag of a profile.
type TagDef struct {
	// Name is the tag name as written in the markup, without brackets.
	Name string `json:"name" yaml:"name"`

	// Template is the output template of the tag. {content}, {name},
	// {option} and {attr:key} expand per tag occurrence. May be empty: such
	// a tag renders to nothing.
	Template string `json:"template" yaml:"template"`

	// SelfClosing marks a standalone tag, like a horizontal rule.
	SelfClosing bool `json:"self_closing" yaml:"self_closing"`

	// NoCode keeps the tag's body raw: markup inside it is not rendered.
	NoCode bool `json:"no_code" yaml:"no_code"`
}

// Definition is a named profile: the complete set of tags available to
// texts rendered under it.
type Definition struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Tags        []TagDef `json:"tags" yaml:"tags"`
}

// Validate checks the tag definition for mistakes a rule table would
// otherwise swallow silently: an unusable name or contradicting flags.
func (t TagDef) Validate() error {
	if !bbcode.ValidTagName(t.Name) {
		return fmt.Errorf("name %q can never match a tag", t.Name)
	}

	if t.SelfClosing && t.NoCode {
		return fmt.Errorf("%q: self_closing and no_code are mutually exclusive", t.Name)
	}

	return nil
}

// Validate checks the definition and each of its tags, duplicates included.
func (d Definition) Validate() error {
	if !ValidName(d.Name) {
		return fmt.Errorf("profile name %q must be 1-64 letters, digits, underscores or hyphens", d.Name)
	}

	if len(d.Tags) == 0 {
		return errors.New("tags must not be empty")
	}

	seen := make(map[string]struct{}, len(d.Tags))

	for i, tag := range d.Tags {
		if err := tag.Validate(); err != nil {
			return fmt.Errorf("tags[%d]: %w", i, err)
		}

		// rule lookup is case-insensitive, so duplicates are too
		key := strings.ToLower(tag.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("tags[%d]: duplicate tag %q", i, tag.Name)
		}

		seen[key] = struct{}{}
	}

	return nil
}

// Rules compiles the definition into a rule table.
func (d Definition) Rules() bbcode.Rules {
	rules := make(bbcode.Rules, len(d.Tags))

	for _, tag := range d.Tags {
		var opts []bbcode.RuleOption

		if tag.SelfClosing {
			opts = append(opts, bbcode.WithSelfClosing())
		}

		if tag.NoCode {
			opts = append(opts, bbcode.WithNoCode())
		}

		rules[tag.Name] = bbcode.NewTemplateRule(tag.Template, opts...)
	}

	return rules
}
