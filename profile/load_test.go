package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yldio/xbbcode/bbcode"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefinitions(t *testing.T) {
	path := writeSeedFile(t, `
profiles:
  - name: forum
    description: standard forum markup
    tags:
      - name: b
        template: "<strong>{content}</strong>"
      - name: spoiler
        template: "<details>{content}</details>"
  - name: minimal
    tags:
      - name: rule
        template: "<hr>"
        self_closing: true
      - name: raw
        template: "<pre>{content}</pre>"
        no_code: true
`)

	defs, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.Equal(t, "forum", defs[0].Name)
	require.Equal(t, "standard forum markup", defs[0].Description)
	require.Len(t, defs[0].Tags, 2)

	require.Equal(t, "minimal", defs[1].Name)
	require.True(t, defs[1].Tags[0].SelfClosing)
	require.True(t, defs[1].Tags[1].NoCode)

	// the loaded definitions must compile and render
	r := bbcode.NewRenderer(defs[1].Rules())
	require.Equal(t, "a<hr>b", r.Render("a[rule]b"))
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.ErrorContains(t, err, "read seed file")
}

func TestLoadDefinitions_BadYAML(t *testing.T) {
	path := writeSeedFile(t, "profiles: [unterminated")

	_, err := LoadDefinitions(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "parse seed file")
}

func TestLoadDefinitions_InvalidDefinition(t *testing.T) {
	path := writeSeedFile(t, `
profiles:
  - name: ok
    tags:
      - name: b
        template: x
  - name: broken
    tags:
      - name: "no way"
        template: x
`)

	_, err := LoadDefinitions(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "profiles[1]")
}

func TestLoadDefinitions_ReservedName(t *testing.T) {
	path := writeSeedFile(t, `
profiles:
  - name: default
    tags:
      - name: b
        template: x
`)

	_, err := LoadDefinitions(path)
	require.Error(t, err)
	require.ErrorContains(t, err, "reserved")
}
