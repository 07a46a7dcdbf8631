package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestArguments(t *testing.T) {
	code, out, _ := runWith(t, "", "(bb", "x)^2", "+", "1/2")
	if code != 0 || out != "𝐱² + ½\n" {
		t.Errorf("expected exit 0 and '𝐱² + ½', have %d and %q", code, out)
	}
	code, out, _ = runWith(t, "", "--strip-brackets=false", "--vulgar=false", "--script=false", "(bb x)^2 + 1/2")
	if code != 0 || out != "(𝐱)² + 1/2\n" {
		t.Errorf("expected exit 0 and '(𝐱)² + 1/2', have %d and %q", code, out)
	}
}

func TestStdinLines(t *testing.T) {
	code, out, _ := runWith(t, "x_i\nalpha -> beta\n\nsqrt 2\n")
	want := "xᵢ\nα → β\n\n√2\u0305\n"
	if code != 0 || out != want {
		t.Errorf("expected exit 0 and %q, have %d and %q", want, code, out)
	}
}

func TestSkinToneFlag(t *testing.T) {
	code, out, _ := runWith(t, "", "--skin-tone", "medium-dark", "\U0001F44D")
	if code != 0 || out != "\U0001F44D\U0001F3FE\n" {
		t.Errorf("expected thumbs up with modifier, have %d and %q", code, out)
	}
	code, _, errout := runWith(t, "", "-t", "purple", "x")
	if code != 2 || !strings.Contains(errout, "purple") {
		t.Errorf("expected exit 2 for unknown skin tone, have %d and %q", code, errout)
	}
}

func TestUsageErrors(t *testing.T) {
	if code, _, _ := runWith(t, "", "--no-such-flag"); code != 2 {
		t.Errorf("expected exit 2 for unknown flag, have %d", code)
	}
	code, _, errout := runWith(t, "", "--help")
	if code != 0 || !strings.Contains(errout, "Usage: amu") {
		t.Errorf("expected usage on stderr and exit 0, have %d and %q", code, errout)
	}
}

func TestWrap(t *testing.T) {
	input := "a + b + c + d + e"
	code, out, _ := runWith(t, "", "--wrap", "5", input)
	if code != 0 || strings.Count(out, "\n") < 3 {
		t.Fatalf("expected wrapped output, have %d and %q", code, out)
	}
	if strings.Join(strings.Fields(out), " ") != input {
		t.Errorf("expected wrapping to keep all words, have %q", out)
	}
}

func TestTraceFlag(t *testing.T) {
	code, _, errout := runWith(t, "", "--trace", "info", "x")
	if code != 0 || !strings.Contains(errout, "rendering with") {
		t.Errorf("expected trace output on stderr, have %d and %q", code, errout)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, failingReader{}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit 1 on read error, have %d", code)
	}
	if !strings.Contains(stderr.String(), "disk on fire") {
		t.Errorf("expected read error on stderr, have %q", stderr.String())
	}
}
