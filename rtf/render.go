// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rtf

import (
	"bytes"
	"unicode/utf8"
)

// Mode selects the output policy used by Render.
type Mode int

const (
	// Plain renders text content with verbatim line breaks and no layout.
	Plain Mode = iota

	// CLI renders layout-aware console text. Runs of blank lines collapse
	// to at most one, lines are trimmed, indented paragraphs get a two
	// space prefix and list-like lines get a "- " bullet.
	CLI
)

// bulletStyle is the \cf style bucket YDP uses for list-like lines.
const bulletStyle = 2

// state is the formatting state of a markup group. Opening a group pushes a
// copy of the enclosing group's state so a group never observes changes made
// by its siblings or children.
type state struct {
	style    int  // \cfN
	phonetic bool // \f1
	hidden   bool // \qc
	margin   bool // \saN
}

// posHeadings are part-of-speech heading lines that keep their bullet style
// bucket but should not be rendered with a bullet. The set is deliberately
// closed; an unrecognized heading only costs a cosmetic "- " prefix.
var posHeadings = map[string]bool{
	"n":            true,
	"adj":          true,
	"adv":          true,
	"vt":           true,
	"vi":           true,
	"prep":         true,
	"pron":         true,
	"conj":         true,
	"num":          true,
	"det":          true,
	"modal aux vb": true,
}

type renderer struct {
	mode Mode

	stack []state

	out  []byte
	line []byte

	// lineState is the group state at the first output on the current
	// line. CLI prefixes are decided from it when the line is flushed.
	lineState state
	haveLine  bool

	// nlRun counts consecutive newlines already at the end of out.
	nlRun int
}

// Render interprets data as YDP definition markup and returns its UTF-8
// rendering. The scan is a single forward pass and never fails: truncated or
// malformed control sequences are skipped and rendering continues at the
// next byte, so a best-effort result is always produced.
func Render(data []byte, mode Mode) string {
	r := renderer{
		mode:  mode,
		stack: make([]state, 1, 8),
		out:   make([]byte, 0, len(data)),
	}

	for i := 0; i < len(data); {
		switch c := data[i]; c {
		case '{':
			st := r.stack[len(r.stack)-1]
			r.stack = append(r.stack, st)
			i++
		case '}':
			// Popping the root state is a no-op.
			if len(r.stack) > 1 {
				r.stack = r.stack[:len(r.stack)-1]
			}
			i++
		case '\\':
			i = r.control(data, i)
		case '\n':
			if !r.top().hidden {
				r.lineBreak()
			}
			i++
		case '\r':
			i++
		default:
			r.literal(c)
			i++
		}
	}

	r.flushLine()
	return string(r.out)
}

func (r *renderer) top() *state {
	return &r.stack[len(r.stack)-1]
}

// control interprets the control sequence whose backslash is at data[i] and
// returns the index of the first unconsumed byte.
func (r *renderer) control(data []byte, i int) int {
	i++
	if i >= len(data) {
		return i
	}

	switch c := data[i]; c {
	case '\\', '{', '}':
		r.literal(c)
		return i + 1
	case '\'':
		if i+2 < len(data) {
			h1 := hexVal(data[i+1])
			h2 := hexVal(data[i+2])
			if h1 >= 0 && h2 >= 0 {
				r.literal(byte(h1<<4 | h2))
				return i + 3
			}
		}
		// Unterminated hex escape. Resume the scan after the backslash.
		return i
	}

	j := i
	for j < len(data) && isAlpha(data[j]) {
		j++
	}
	word := string(data[i:j])

	hasParam := false
	param := 0
	sign := 1
	if j < len(data) && (data[j] == '-' || isDigit(data[j])) {
		hasParam = true
		if data[j] == '-' {
			sign = -1
			j++
		}
		for j < len(data) && isDigit(data[j]) {
			param = param*10 + int(data[j]-'0')
			j++
		}
		param *= sign
	}

	// A single space after a control word is a delimiter, not content.
	next := j
	if next < len(data) && data[next] == ' ' {
		next++
	}

	switch {
	case word == "par" || word == "line":
		if !r.top().hidden {
			r.lineBreak()
		}
	case word == "pard":
		// Paragraph format reset. No line break; records often emit
		// \pard\par together.
		st := r.top()
		st.style = 0
		st.margin = false
	case word == "tab":
		r.literal('\t')
	case word == "cf" && hasParam:
		r.top().style = param
	case word == "sa" && hasParam:
		r.top().margin = param != 0
	case word == "f" && hasParam:
		r.top().phonetic = param == 1
	case word == "qc":
		r.top().hidden = true
	case word == "u" && hasParam:
		r.emitRune(scalar(param))
		// The byte after \uN is a fallback character for readers that
		// cannot decode the code point. Skip it.
		if next < len(data) {
			next++
		}
	}
	// All other control words are ignored.

	return next
}

// literal appends a single text byte to the current line, decoding it with
// the active font state.
func (r *renderer) literal(b byte) {
	if r.top().hidden {
		return
	}
	if b == '\r' {
		return
	}
	// Leading whitespace at the beginning of a line is noise; indentation
	// comes from \saN.
	if len(r.line) == 0 && (b == ' ' || b == '\t') {
		return
	}
	r.ensureLine()
	r.line = DecodeByte(r.line, b, r.top().phonetic)
}

// emitRune appends a decoded \uN code point to the current line.
func (r *renderer) emitRune(c rune) {
	if r.top().hidden {
		return
	}
	r.ensureLine()
	r.line = utf8.AppendRune(r.line, c)
}

func (r *renderer) ensureLine() {
	if r.haveLine {
		return
	}
	r.haveLine = true
	r.lineState = *r.top()
}

func (r *renderer) lineBreak() {
	r.flushLine()
	r.newline()
}

// flushLine moves the current line buffer into the output, applying the CLI
// mode's trimming and prefixes.
func (r *renderer) flushLine() {
	if r.mode == Plain {
		r.out = append(r.out, r.line...)
		r.resetLine()
		return
	}

	if !r.haveLine && len(r.line) == 0 {
		return
	}

	t := bytes.Trim(r.line, " \t\r")
	if len(t) == 0 {
		r.resetLine()
		return
	}

	r.nlRun = 0

	if r.lineState.margin {
		r.out = append(r.out, "  "...)
	}
	if r.lineState.style == bulletStyle && !posHeadings[string(t)] {
		r.out = append(r.out, "- "...)
	}
	r.out = append(r.out, t...)

	r.resetLine()
}

func (r *renderer) resetLine() {
	r.line = r.line[:0]
	r.haveLine = false
}

// newline emits a line break. CLI mode suppresses leading newlines and
// collapses runs so at most one blank line appears in the output.
func (r *renderer) newline() {
	if r.mode == Plain {
		r.out = append(r.out, '\n')
		return
	}
	if len(r.out) == 0 {
		return
	}
	if r.nlRun >= 2 {
		return
	}
	r.out = append(r.out, '\n')
	r.nlRun++
}

// scalar converts a \uN parameter to a rune. RTF control word parameters are
// signed 16-bit values, so negative parameters wrap modulo 0x10000. Invalid
// code points render as '?'.
func scalar(param int) rune {
	if param < 0 {
		param += 0x10000
	}
	c := rune(param)
	if !utf8.ValidRune(c) {
		return '?'
	}
	return c
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
