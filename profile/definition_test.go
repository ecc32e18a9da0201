package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yldio/xbbcode/bbcode"
)

func validDefinition() Definition {
	return Definition{
		Name:        "forum",
		Description: "standard forum markup",
		Tags: []TagDef{
			{Name: "b", Template: "<strong>{content}</strong>"},
			{Name: "rule", Template: "<hr>", SelfClosing: true},
			{Name: "raw", Template: "<pre>{content}</pre>", NoCode: true},
		},
	}
}

func TestDefinition_Validate(t *testing.T) {
	require.NoError(t, validDefinition().Validate())
}

func TestDefinition_ValidateRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(d *Definition)
		wantErr string
	}{
		{
			name:    "empty profile name",
			mutate:  func(d *Definition) { d.Name = "" },
			wantErr: "profile name",
		},
		{
			name:    "profile name with a space",
			mutate:  func(d *Definition) { d.Name = "my profile" },
			wantErr: "profile name",
		},
		{
			name:    "profile name too long",
			mutate:  func(d *Definition) { d.Name = strings.Repeat("a", 65) },
			wantErr: "profile name",
		},
		{
			name:    "no tags",
			mutate:  func(d *Definition) { d.Tags = nil },
			wantErr: "tags must not be empty",
		},
		{
			name:    "unusable tag name",
			mutate:  func(d *Definition) { d.Tags[1].Name = "no way" },
			wantErr: `tags[1]: name "no way" can never match a tag`,
		},
		{
			name: "contradicting flags",
			mutate: func(d *Definition) {
				d.Tags[0].SelfClosing = true
				d.Tags[0].NoCode = true
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "duplicate tag",
			mutate:  func(d *Definition) { d.Tags[2].Name = "b" },
			wantErr: `tags[2]: duplicate tag "b"`,
		},
		{
			name:    "duplicate tag differing only in case",
			mutate:  func(d *Definition) { d.Tags[2].Name = "B" },
			wantErr: `tags[2]: duplicate tag "B"`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := validDefinition()
			c.mutate(&d)

			err := d.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestDefinition_ValidateAcceptsBoundaryName(t *testing.T) {
	d := validDefinition()
	d.Name = strings.Repeat("a", 64)

	require.NoError(t, d.Validate())
}

func TestDefinition_EmptyTemplateIsAllowed(t *testing.T) {
	d := Definition{
		Name: "strip",
		Tags: []TagDef{{Name: "b"}},
	}

	require.NoError(t, d.Validate())

	// an empty template renders the tag pair to nothing
	out := bbcode.NewRenderer(d.Rules()).Render("a[b]x[/b]c")
	require.Equal(t, "ac", out)
}

func TestDefinition_RulesCompile(t *testing.T) {
	r := bbcode.NewRenderer(validDefinition().Rules())

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"template tag", "[b]x[/b]", "<strong>x</strong>"},
		{"self-closing tag", "a[rule]b", "a<hr>b"},
		{"no-code tag", "[raw][b]x[/b][/raw]", "<pre>[b]x[/b]</pre>"},
		{"undefined tag stays literal", "[i]x[/i]", "[i]x[/i]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, r.Render(c.input))
		})
	}
}
