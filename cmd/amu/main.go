/*
Command amu renders AsciiMath notation as Unicode text.

Input is taken from the command line arguments or, if there are none, read
line by line from stdin. Every line is rendered separately.

  amu 'sum_(i=1)^n i^3'          # ∑ᵢ₌₁ⁿ i³
  echo 'bb x + 1/2' | amu        # 𝐱 + ½
  amu --skin-tone dark '👍'
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/npillmayer/amu"
	"github.com/npillmayer/amu/inline"
	"github.com/npillmayer/amu/internal/tracing"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	cfg    amu.Config
	wrap   int
	prompt bool
}

// run executes the command and returns its exit code: 0 for success, 1 for
// I/O errors and 2 for usage errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		strip     bool
		vulgar    bool
		script    bool
		toneName  string
		wrapWidth int
		traceName string
	)
	defaults := amu.DefaultConfig()
	flags := pflag.NewFlagSet("amu", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&strip, "strip-brackets", "s", defaults.StripBrackets, "Omit brackets around substituted constructs")
	flags.BoolVarP(&vulgar, "vulgar", "v", defaults.VulgarFracs, "Use precomposed fraction glyphs like ½")
	flags.BoolVarP(&script, "script", "f", defaults.ScriptFracs, "Compose fractions from super- and subscript digits")
	flags.StringVarP(&toneName, "skin-tone", "t", defaults.SkinTone.String(), "Emoji skin tone: "+toneList())
	flags.IntVarP(&wrapWidth, "wrap", "w", 0, "Wrap output at this width (0 disables, -1 uses terminal width)")
	flags.StringVar(&traceName, "trace", "", "Trace level: error|info|debug")
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: amu [flags] [input...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, lines are read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}
	if traceName != "" {
		defer tracing.SetLogOutput(stderr, traceName)()
	}
	tone, err := amu.ParseSkinTone(toneName)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --skin-tone %q: %v\n", toneName, err)
		return 2
	}
	opts := options{
		cfg: amu.Config{
			StripBrackets: strip,
			VulgarFracs:   vulgar,
			ScriptFracs:   script,
			SkinTone:      tone,
		},
		wrap: resolveWidth(wrapWidth, stdout),
	}
	r := inline.New(opts.cfg)
	tracing.Infof("rendering with %s", r.Config())
	if inputs := flags.Args(); len(inputs) > 0 {
		if err := emit(stdout, r.String(strings.Join(inputs, " ")), opts.wrap); err != nil {
			fmt.Fprintf(stderr, "write: %v\n", err)
			return 1
		}
		return 0
	}
	opts.prompt = isTerminal(stdin) && isTerminal(stdout)
	if err := renderLines(r, stdin, stdout, opts); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

func renderLines(r *inline.Renderer, stdin io.Reader, stdout io.Writer, opts options) error {
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if opts.prompt {
			fmt.Fprint(stdout, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		tracing.Debugf("input line %q", line)
		if err := emit(stdout, r.String(line), opts.wrap); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func emit(w io.Writer, s string, width int) error {
	if width > 0 {
		s = wordwrap.String(s, width)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

func resolveWidth(width int, stdout io.Writer) int {
	if width >= 0 {
		return width
	}
	if f, ok := stdout.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func toneList() string {
	names := make([]string, 0, 6)
	for _, t := range amu.SkinTones() {
		names = append(names, t.String())
	}
	return strings.Join(names, "|")
}
