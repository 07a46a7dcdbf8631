package inline

import (
	"strings"

	"github.com/npillmayer/amu"
)

// Renderer renders AsciiMath input with a fixed configuration. A Renderer
// holds no state between calls and may be used from multiple goroutines.
type Renderer struct {
	cfg amu.Config
}

// New creates a renderer for a configuration.
func New(cfg amu.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the configuration of a renderer.
func (r *Renderer) Config() amu.Config {
	return r.cfg
}

// Render parses input and returns its rendering as a sequence of chunks.
// Chunks are produced lazily: every call to Next renders one more top level
// construct of the input.
func (r *Renderer) Render(input string) *Chunks {
	m := borrowMachine()
	defer m.release()
	return &Chunks{cfg: r.cfg, expr: parse(m, input)}
}

// String renders input and returns the complete output.
func (r *Renderer) String(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	chunks := r.Render(input)
	for chunks.Next() {
		b.WriteString(chunks.Text())
	}
	return b.String()
}

// Convert renders input as Unicode text. It never fails: input it cannot
// interpret is passed through literally.
func Convert(input string, stripBrackets, vulgarFracs, scriptFracs bool, tone amu.SkinTone) string {
	r := New(amu.Config{
		StripBrackets: stripBrackets,
		VulgarFracs:   vulgarFracs,
		ScriptFracs:   scriptFracs,
		SkinTone:      tone,
	})
	return r.String(input)
}

// --- Chunks ----------------------------------------------------------------

// Chunks is a finite, non-restartable sequence of output chunks, similar to
// bufio.Scanner. Successive calls to Next step through the chunks, and Text
// returns the current one.
//
//   chunks := renderer.Render(input)
//   for chunks.Next() {
//     fmt.Print(chunks.Text())
//   }
type Chunks struct {
	cfg  amu.Config
	expr *Expression
	pos  int
	text string
}

// Next renders the next chunk. It returns false when the input is exhausted.
func (c *Chunks) Next() bool {
	if c.expr == nil || c.pos >= len(c.expr.Elems) {
		c.text = ""
		return false
	}
	m := borrowMachine()
	defer m.release()
	r := renderer{cfg: c.cfg, m: m}
	c.text = r.render(c.expr.Elems[c.pos])
	c.pos++
	return true
}

// Text returns the chunk produced by the most recent call to Next.
func (c *Chunks) Text() string {
	return c.text
}
