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
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// phoneticRunes maps bytes 0x80..0x9F of the phonetic font (\f1) to
// pronunciation symbols. In that font the 0x80..0x9F range holds custom
// glyph slots rather than CP1250 characters. Slots whose meaning has not
// been reverse engineered map to '?' so that a missing mapping is visible
// in the output instead of being silently wrong.
var phoneticRunes = [32]rune{
	'?', '?', 'ɔ', 'ʒ', '?', 'ʃ', 'ɛ', 'ʌ',
	'ə', 'θ', 'ɪ', 'ɑ', '?', 'ː', 'ˈ', '?',
	'ŋ', '?', '?', '?', '?', '?', '?', 'ð',
	'æ', '?', '?', '?', '?', '?', '?', '?',
}

// DecodeByte appends the UTF-8 rendering of a single record byte to dst and
// returns the extended buffer.
//
// When phonetic is true, bytes 0x80..0x9F are glyph slots of the phonetic
// font. Otherwise 0x7F renders as '~' (a YDP convention), bytes below 0x80
// pass through as ASCII, and bytes 0x80..0xFF are transcoded from CP1250.
// Bytes with no CP1250 mapping render as '?'.
func DecodeByte(dst []byte, b byte, phonetic bool) []byte {
	if phonetic && b >= 0x80 && b < 0xA0 {
		return utf8.AppendRune(dst, phoneticRunes[b-0x80])
	}
	if b == 0x7F {
		return append(dst, '~')
	}
	if b < 0x80 {
		return append(dst, b)
	}
	r := charmap.Windows1250.DecodeByte(b)
	if r == utf8.RuneError {
		r = '?'
	}
	return utf8.AppendRune(dst, r)
}
