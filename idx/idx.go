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

package idx

import (
	"io"
	"sort"
	"strings"
)

// Word is a .idx word table entry.
type Word struct {
	// Word is the entry's word bytes as stored on disk.
	Word string

	// Offset is the offset of the word's definition record in the .dat
	// file.
	Offset uint32
}

// Idx is an in-memory .idx word table. Entries keep their on-disk table
// order. The table is immutable once loaded.
type Idx struct {
	words []*Word
}

// New reads a complete index from r. A short or malformed index returns an
// error and no partial table.
func New(r io.ReadCloser) (*Idx, error) {
	s, err := NewScanner(r)
	if err != nil {
		return nil, err
	}

	words := make([]*Word, 0, s.Count())
	for s.Scan() {
		words = append(words, s.Word())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return &Idx{words: words}, nil
}

// Len returns the number of words in the table.
func (idx *Idx) Len() int {
	return len(idx.words)
}

// Word returns the entry at table position i, or nil if i is out of range.
func (idx *Idx) Word(i int) *Word {
	if i < 0 || i >= len(idx.words) {
		return nil
	}
	return idx.words[i]
}

// FindExact returns the table position of the entry whose word is exactly
// word, or -1 if there is none.
//
// The binary search fast path assumes the table order matches byte-wise
// string ordering. That holds for most of the table but not all of it, so a
// miss falls back to a full linear scan; the scan is the source of truth.
func (idx *Idx) FindExact(word string) int {
	if word == "" {
		return -1
	}

	if i := idx.LowerBound(word); i < len(idx.words) && idx.words[i].Word == word {
		return i
	}

	for i, w := range idx.words {
		if w.Word == word {
			return i
		}
	}
	return -1
}

// LowerBound returns the position of the first entry whose word is not less
// than key, assuming sorted table order. The result is in [0, Len()].
func (idx *Idx) LowerBound(key string) int {
	return sort.Search(len(idx.words), func(i int) bool {
		return idx.words[i].Word >= key
	})
}

// FindFirstWithPrefix returns the position of the first entry whose word
// starts with prefix, assuming sorted table order, or -1 if there is none.
// The prefix test is case-sensitive.
func (idx *Idx) FindFirstWithPrefix(prefix string) int {
	if prefix == "" {
		return -1
	}
	i := idx.LowerBound(prefix)
	if i < len(idx.words) && strings.HasPrefix(idx.words[i].Word, prefix) {
		return i
	}
	return -1
}

// Suggest returns the table positions of up to maxResults entries whose
// words start with prefix, compared ASCII case-insensitively, in table
// order. A leading "to " in the prefix is stripped first since the
// dictionary indexes verbs without it.
func (idx *Idx) Suggest(prefix string, maxResults int) []int {
	if maxResults <= 0 {
		return nil
	}

	if len(prefix) >= 3 &&
		(prefix[0] == 't' || prefix[0] == 'T') &&
		(prefix[1] == 'o' || prefix[1] == 'O') &&
		prefix[2] == ' ' {
		prefix = prefix[3:]
	}
	if prefix == "" {
		return nil
	}

	var out []int
	for i, w := range idx.words {
		if len(out) >= maxResults {
			break
		}
		if hasPrefixFold(w.Word, prefix) {
			out = append(out, i)
		}
	}
	return out
}

// hasPrefixFold reports whether s starts with prefix under ASCII case
// folding. Bytes outside the ASCII letters compare verbatim.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lowerASCII(s[i]) != lowerASCII(prefix[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
