/*
Package inline renders AsciiMath notation as plain Unicode text.

The renderer works "as you read": it substitutes styled letters, fraction
glyphs, sub- and superscripts, operator symbols and emoji skin tones in place,
leaving everything it does not understand untouched. It never fails. Malformed
input, like an unterminated bracket or a fraction without a denominator,
degrades to literal pass-through.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Typical Usage

The simplest way is a single call:

  s := inline.Convert("sum_(i=1)^n i^3", true, true, true, amu.ToneDefault)
  // s == "∑ᵢ₌₁ⁿ i³"

Renderers are configured once and may be used concurrently. Output may be
consumed in chunks, similar to bufio.Scanner:

  r := inline.New(amu.DefaultConfig())
  chunks := r.Render("x_i^2 + 1/2")
  for chunks.Next() {
    ... // do something with chunks.Text()
  }

How it works

A scanner splits the input into lexemes, each carrying the white space
following it. Symbol keywords are matched longest-first against a trie.
A parser folds lexemes into a small tree (values, bracket groups, unary and
binary operators, scripts and fractions). Parser and renderer both run on
explicit stacks, so deeply nested input cannot exhaust the call stack.
Both stacks live in machines which are pooled between calls.
*/
package inline

import (
	"github.com/npillmayer/amu/internal/tracing"
)

// tracer traces with key 'amu.inline'.
func tracer() tracing.Trace {
	return tracing.Select("inline")
}
