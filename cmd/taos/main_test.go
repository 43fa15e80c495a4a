package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/taos/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html>
<html><head>
<style data-taos-presets>
  pop:initial { opacity: 0; transform: scale(0.5); }
  pop:target  { opacity: 1; transform: scale(1); }
</style>
</head><body>
  <div id="one" data-taos="pop">One</div>
  <div id="two" data-taos="slide-up">Two</div>
  <div id="three" data-taos="fade" data-taos-once="false">Three</div>
</body></html>`

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func defaultOptions() *pageOptions {
	return &pageOptions{viewport: 600, height: 400, gap: 400}
}

func TestRenderPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.engine")
	defer teardown()
	//
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", testPage)
	var buf bytes.Buffer
	n, err := renderPage(path, &buf, defaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	html := buf.String()
	assert.Contains(t, html, `id="one" data-taos="pop" style="opacity: 1; transform: scale(1);`)
	assert.Contains(t, html, `id="two" data-taos="slide-up" style="opacity: 0; transform: translateY(20px);`)
}

func TestRenderWithConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", testPage)
	opts := defaultOptions()
	opts.configFile = writeFile(t, dir, "taos.yaml", `duration: 400
easing: linear
animations:
  fade:
    initial: { opacity: "0.1" }
    target:  { opacity: "1" }
`)
	var buf bytes.Buffer
	_, err := renderPage(path, &buf, opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "transition: all 400ms linear 0ms;")
	assert.Contains(t, buf.String(), `id="three" data-taos="fade" data-taos-once="false" style="opacity: 0.1;`)
}

func TestRenderManyPages(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.html", testPage)
	b := writeFile(t, dir, "b.html", testPage)
	out := filepath.Join(dir, "out")
	require.NoError(t, runRender([]string{a, b}, out, defaultOptions()))
	for _, name := range []string{"a.taos.html", "b.taos.html"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err)
	}
	err := runRender([]string{a, filepath.Join(dir, "missing.html")}, out, defaultOptions())
	assert.EqualError(t, err, "1 of 2 pages failed")
	assert.Error(t, runRender([]string{a, b}, "", defaultOptions()))
}

func TestScrollReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", testPage)
	var buf bytes.Buffer
	require.NoError(t, runScroll(path, &buf, defaultOptions(), 200, true, true, ""))
	out := buf.String()
	t.Logf("\n%s", out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.True(t, len(lines) > 4)
	assert.Contains(t, lines[0], `revealed    <div id="one"`)
	assert.Contains(t, out, `<div id="two" data-taos="slide-up">`)
	assert.Equal(t, 1, strings.Count(out, `revealed    <div id="three"`))
	assert.Equal(t, 1, strings.Count(out, `unrevealed  <div id="three"`),
		"repeating element should be unrevealed on the way back")
	assert.Contains(t, out, "tracked elements (3)")
}

func TestScrollStepsEndOnTarget(t *testing.T) {
	assert.Equal(t, []float64{100, 200, 250}, scrollSteps(0, 250, 100))
	assert.Equal(t, []float64{150, 50, 0}, scrollSteps(250, 0, 100))
	assert.Equal(t, []float64{0}, scrollSteps(50, 0, 100))
	assert.Empty(t, scrollSteps(0, 0, 100))
}

func TestScrollBackStaysOnPage(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.html", `<html><body>
  <div id="top" data-taos="fade" data-taos-once="false">Top</div>
  <div id="mid" data-taos="fade">Mid</div>
  <div id="end" data-taos="fade">End</div>
</body></html>`)
	var buf bytes.Buffer
	opts := &pageOptions{viewport: 600, height: 400, gap: 400}
	require.NoError(t, runScroll(path, &buf, opts, 500, true, false, ""))
	out := buf.String()
	t.Logf("\n%s", out)
	assert.NotRegexp(t, `y=\s*-`, out)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, "y=     0  revealed    <div id=\"top\""),
		"expected scrolling back to reveal the top element at y=0, have %q", last)
}

func TestListPresets(t *testing.T) {
	dir := t.TempDir()
	opts := &pageOptions{presetsFile: writeFile(t, dir, "presets.css",
		"wobble:initial { transform: rotate(-3deg); }\nwobble:target { transform: rotate(0); }")}
	reg, err := opts.registry()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, listPresets(&buf, reg))
	out := buf.String()
	assert.Contains(t, out, "presets (10)")
	assert.Contains(t, out, "[initial]  transform: rotate(-3deg);")
	assert.Contains(t, out, "flip-down")
	assert.Equal(t, len(preset.Builtin())+1, reg.Len())
}
