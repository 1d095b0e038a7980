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

// Package rtf renders the RTF-like markup used by YDP dictionary records.
//
// Definition records in the .dat file are encoded in a small subset of RTF:
//
//  1. Groups: '{' opens a group and '}' closes it. Formatting state set
//     inside a group is discarded when the group closes.
//  2. Control words: a backslash followed by a word of ASCII letters and an
//     optional signed decimal parameter, e.g. \par, \cf2, \u322. A single
//     space after a control word is a delimiter and is not output.
//  3. Escapes: \'hh inserts the byte with hex value hh. \\, \{ and \}
//     insert the literal character.
//
// Only the control words the dictionary actually uses are interpreted:
//
//	\par, \line  line break
//	\pard        paragraph format reset (no line break)
//	\tab         tab character
//	\cfN         style bucket (N=2 marks list-like lines)
//	\saN         margin indent on a new line
//	\fN          font select; font 1 is the phonetic font
//	\qc          block used by YDP for hidden content
//	\uN          Unicode code point followed by one fallback byte
//
// All other control words are ignored. Record text is not UTF-8: outside the
// phonetic font it is CP1250, and in the phonetic font bytes 0x80..0x9F are
// custom glyph slots for pronunciation symbols. Rendering transcodes
// everything to UTF-8.
package rtf
