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

package testutil

import (
	"encoding/binary"

	"github.com/ianlewis/go-ydpdict/idx"
)

// MakeIndex builds a .idx file image for the given word table entries. The
// word table is placed directly after the header; header bytes without a
// known meaning are left zero.
func MakeIndex(words []*idx.Word) []byte {
	const headerSize = 20

	b := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(b[0:4], idx.Magic)
	binary.LittleEndian.PutUint16(b[8:10], uint16(len(words)))
	binary.LittleEndian.PutUint32(b[16:20], headerSize)

	for _, w := range words {
		var prefix [8]byte
		binary.LittleEndian.PutUint32(prefix[4:8], w.Offset)
		b = append(b, prefix[:]...)
		b = append(b, []byte(w.Word)...)
		b = append(b, 0) // Add the zero byte terminator.
	}
	return b
}
