package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func renderTemplate(t *testing.T, template string, tag Tag) string {
	t.Helper()

	out, ok := templateBody(template).render(tag)
	require.True(t, ok, "template rendering must never decline")

	return out
}

func TestTemplate_Placeholders(t *testing.T) {
	tag := Tag{
		Name:    "url",
		Option:  "http://example.com",
		Attrs:   map[string]string{"title": "home"},
		Content: "click",
	}

	cases := []struct {
		name     string
		template string
		want     string
	}{
		{"content", "<b>{content}</b>", "<b>click</b>"},
		{"name", "<{name}>", "<url>"},
		{"option", `<a href="{option}">{content}</a>`, `<a href="http://example.com">click</a>`},
		{"attribute", `<a title="{attr:title}">{content}</a>`, `<a title="home">click</a>`},
		{"missing attribute expands to nothing", "{attr:nope}!", "!"},
		{"unknown placeholder expands to nothing", "a{bogus}b", "ab"},
		{"no placeholders", "static text", "static text"},
		{"repeated placeholder", "{content}{content}", "clickclick"},
		{"all placeholders at once", "{name}|{option}|{attr:title}|{content}", "url|http://example.com|home|click"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, renderTemplate(t, c.template, tag))
		})
	}
}

func TestTemplate_EscapedPlaceholders(t *testing.T) {
	tag := Tag{Name: "b", Content: "x"}

	cases := []struct {
		name     string
		template string
		want     string
	}{
		{"doubled braces stay literal", "{{content}}", "{content}"},
		{"escaped next to expanded", "{{content}} is {content}", "{content} is x"},
		{"escaped attribute placeholder", "{{attr:k}}", "{attr:k}"},
		{"stray braces pass through", "{ content }", "{ content }"},
		{"unmatched brace passes through", "{content", "{content"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, renderTemplate(t, c.template, tag))
		})
	}
}

func TestTemplate_EmptyFields(t *testing.T) {
	// a tag with nothing set expands every placeholder to the empty string
	out := renderTemplate(t, "[{name}|{option}|{attr:k}|{content}]", Tag{})
	require.Equal(t, "[|||]", out)
}

func TestFuncBody_PassesTagThrough(t *testing.T) {
	var got Tag

	body := funcBody(func(tag Tag) (string, bool) {
		got = tag
		return "out", true
	})

	in := Tag{Name: "x", Option: "o", Attrs: map[string]string{"k": "v"}, Content: "c"}

	out, ok := body.render(in)
	require.True(t, ok)
	require.Equal(t, "out", out)
	require.Equal(t, in, got)
}

func TestFuncBody_Decline(t *testing.T) {
	body := funcBody(func(Tag) (string, bool) {
		return "ignored", false
	})

	_, ok := body.render(Tag{})
	require.False(t, ok)
}
