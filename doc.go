/*
Package amu is about rendering AsciiMath notation as plain Unicode text.

Description

AsciiMath is a lightweight notation for mathematical formulas, meant to be
typed in plain text: "sum_(i=1)^n i^3", "bb x", "1/2", "alpha -> oo".
Many places where people write about math cannot render markup or LaTeX:
chat messages, terminals, commit messages, plain documents. Unicode, however,
carries a surprising amount of mathematical typography as plain code-points:
styled alphabets in the Mathematical Alphanumeric Symbols block, super- and
subscript digits, precomposed fractions, operators, arrows and combining
accents.

Package amu and its sub-packages convert AsciiMath input into a string that
looks like the formula, using Unicode code-points only. The conversion is
a linear, single-pass substitution ("as you read"), not a typesetting engine.
There are no stacked fractions and no glyph positioning; a "script fraction"
like ¹⁷⁄₂₃ is just another choice of characters.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

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

Contents

The driver type sits in sub-package inline. It scans the input, assembles
tokens (values, bracket groups, operators with their arguments, sub- and
superscripts, fractions) and renders them. Rendering is delegated to small,
pure helper packages:

  style     maps letters and digits to styled alphabets (bold, fraktur, …)
  fraction  chooses between ½, ¹⁷⁄₂₃ and 17/23
  emoji     appends skin tone modifiers to emoji which support them
  symbols   the static keyword table and its longest-prefix trie

Base package amu holds the types shared between them: the rendering
configuration and the skin tone enumeration. Command cmd/amu renders
arguments or stdin from the command line.

Rendering never fails. Malformed input, like an unterminated bracket or a
fraction without denominator, degrades to printing the offending text
literally.

Typical Usage

  out := inline.Convert("sum_(i=1)^n i^3", true, true, true, amu.ToneDefault)

or, to stream the output in chunks:

  r := inline.New(amu.DefaultConfig())
  chunks := r.Render("bb x + 1/2")
  for chunks.Next() {
      fmt.Print(chunks.Text())
  }
*/
package amu
