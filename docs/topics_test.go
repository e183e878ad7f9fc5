package docs

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced code block types run by TestCodeBlocks.
const (
	bashSetup = "bash setup" // starts a new scenario in a fresh folder
	bashCheck = "bash check" // must exit with status 0
)

func TestTopics(t *testing.T) {
	readme, err := Topic(Readme)
	require.NoError(t, err)

	var listed []string
	for _, m := range regexp.MustCompile(`(?m)^\*\s+([^:]+):`).FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}

	all, err := List()
	require.NoError(t, err)
	assert.ElementsMatch(t, all, listed, "docs/readme.md must list every topic")
	assert.NotContains(t, all, Readme)

	for _, name := range append(all, Readme) {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			require.NoError(t, err)
			assert.Equal(t, 1, headings(t, []byte(content), 1), "a topic has exactly one title")
		})
	}
}

func TestGet(t *testing.T) {
	all, err := List()
	require.NoError(t, err)

	doc, err := Get("*")
	require.NoError(t, err)
	for _, name := range all {
		content, err := Topic(name)
		require.NoError(t, err)
		assert.Contains(t, doc, content)
	}

	_, err = Get("input", "nope")
	assert.ErrorContains(t, err, `topic "nope" not found`)
}

func TestCodeBlocks(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs rfx")
	}
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	files = append(files, "../README.md")

	bin := buildRfx(t)
	env := append(os.Environ(), "PATH="+filepath.Dir(bin)+string(os.PathListSeparator)+os.Getenv("PATH"))

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			require.NoError(t, err)
			dir := t.TempDir()
			for _, b := range codeBlocks(content) {
				if b.Type == bashSetup {
					dir = t.TempDir()
				}
				cmd := exec.Command("bash", "-c", "set -e; "+b.Content)
				cmd.Dir = dir
				cmd.Env = env
				if out, err := cmd.CombinedOutput(); err != nil {
					t.Errorf("%s:%d: %s failed: %v with output:\n%s", file, b.Line, b.Type, err, out)
				}
			}
		})
	}
}

// buildRfx builds the rfx command into a temporary folder.
func buildRfx(t *testing.T) string {
	t.Helper()
	output := filepath.Join(t.TempDir(), "rfx")
	if out, err := exec.Command("go", "build", "-o", output, "../rfx/").CombinedOutput(); err != nil {
		t.Fatalf("failed to build rfx: %v\n%s", err, out)
	}
	return output
}

// block is a runnable fenced code block.
type block struct {
	Type    string
	Content string
	Line    int
}

// codeBlocks returns the runnable fenced code blocks of a markdown source.
func codeBlocks(source []byte) []block {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	var blocks []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		info := string(fcb.Info.Segment.Value(source))
		if info != bashSetup && info != bashCheck {
			return ast.WalkContinue, nil
		}
		var content strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			content.Write(line.Value(source))
		}
		blocks = append(blocks, block{
			Type:    info,
			Content: content.String(),
			Line:    bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1,
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

// headings counts the headings of the given level.
func headings(t *testing.T, source []byte, level int) int {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	count := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == level {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}
