package bbcode

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRenderer_LowercasesNames(t *testing.T) {
	r := NewRenderer(Rules{
		"B": NewTemplateRule("<b>{content}</b>"),
	})

	require.Equal(t, "<b>x</b>", r.Render("[b]x[/b]"))
	require.Equal(t, "<b>x</b>", r.Render("[B]x[/B]"))
}

func TestNewRenderer_DropsBodilessRules(t *testing.T) {
	r := NewRenderer(Rules{
		"b": {},
		"f": NewFuncRule(nil),
		"i": NewTemplateRule("<i>{content}</i>"),
	})

	// only "i" is really registered: the other names stay plain text, and
	// their closers are not treated as stray ones either
	require.Equal(t, "[b]x[/b]", r.Render("[b]x[/b]"))
	require.Equal(t, "[f]x[/f]", r.Render("[f]x[/f]"))
	require.Equal(t, "<i>x</i>", r.Render("[i]x[/i]"))
}

func TestNewRenderer_CopiesTheTable(t *testing.T) {
	rules := Rules{
		"b": NewTemplateRule("<b>{content}</b>"),
	}

	r := NewRenderer(rules)

	rules["b"] = NewTemplateRule("changed")
	rules["i"] = NewTemplateRule("<i>{content}</i>")

	require.Equal(t, "<b>x</b>", r.Render("[b]x[/b]"))
	require.Equal(t, "[i]x[/i]", r.Render("[i]x[/i]"))
}

func TestRenderer_ConcurrentUse(t *testing.T) {
	r := NewRenderer(Rules{
		"b":  NewTemplateRule("<b>{content}</b>"),
		"hr": NewTemplateRule("<hr>", WithSelfClosing()),
	})

	const workers = 16
	const rounds = 200

	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func(w int) {
			defer wg.Done()

			for i := 0; i < rounds; i++ {
				in := fmt.Sprintf("%d[b]x%d[/b][hr][i]", w, i)
				want := fmt.Sprintf("%d<b>x%d</b><hr>[i]", w, i)

				if got := r.Render(in); got != want {
					t.Errorf("worker %d: Render(%q) = %q, want %q", w, in, got, want)
					return
				}
			}
		}(w)
	}

	wg.Wait()
}

func TestRenderer_RendersAreIndependent(t *testing.T) {
	r := NewRenderer(Rules{
		"b": NewTemplateRule("<b>{content}</b>"),
	})

	// a broken render must leave no state behind for the next call
	require.Equal(t, "[b]dangling", r.Render("[b]dangling"))
	require.Equal(t, "<b>x</b>", r.Render("[b]x[/b]"))
	require.Equal(t, "clean", r.Render("[/b]clean"))
	require.Equal(t, "<b>x</b>", r.Render("[b]x[/b]"))
}
