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

package ydpdict

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/ianlewis/go-ydpdict/dat"
	"github.com/ianlewis/go-ydpdict/idx"
	"github.com/ianlewis/go-ydpdict/rtf"
)

// ErrNotFound indicates that a word is not in the dictionary.
var ErrNotFound = errors.New("word not found")

// ErrOutOfRange indicates a word table position outside the loaded table.
var ErrOutOfRange = errors.New("index out of range")

// Options are options for opening a dictionary.
type Options struct {
	// DumpPath, when set, writes a tab-separated "index, offset, word"
	// dump of the loaded word table during Open. The dump is a diagnostic
	// convenience for analyzing collation and prefix-search issues; a
	// failure to write it does not fail Open and is reported by
	// [Dictionary.DumpErr].
	DumpPath string
}

// Dictionary is a YDP dictionary. The word table is loaded once by Open and
// is read-only afterward. The .dat file is reopened for each record read so
// a Dictionary holds no open file handles.
type Dictionary struct {
	idx *idx.Idx
	dat *dat.Dat

	dumpErr error
}

// Open opens the YDP dictionary described by the .idx file at indexPath and
// the .dat file at dataPath. A structural problem with the index (bad
// magic, truncation, unreadable file) fails Open entirely; no partially
// loaded dictionary is ever returned.
func Open(indexPath, dataPath string, opts *Options) (*Dictionary, error) {
	if opts == nil {
		opts = &Options{}
	}

	f, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", indexPath, err)
	}
	defer f.Close()

	index, err := idx.New(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", indexPath, err)
	}

	data, err := dat.New(dataPath)
	if err != nil {
		return nil, err
	}

	d := &Dictionary{
		idx: index,
		dat: data,
	}

	if opts.DumpPath != "" {
		d.dumpErr = writeIndexDump(opts.DumpPath, index)
	}

	return d, nil
}

// DumpErr returns the result of writing the index dump requested by
// [Options.DumpPath], or nil if no dump was requested or it succeeded.
func (d *Dictionary) DumpErr() error {
	return d.dumpErr
}

// Version returns a human readable description of the loaded dictionary.
func (d *Dictionary) Version() string {
	return fmt.Sprintf("ydpdict - idx loaded (%d words)", d.idx.Len())
}

// WordCount returns the number of words in the dictionary.
func (d *Dictionary) WordCount() int {
	return d.idx.Len()
}

// WordAt returns the word table entry at position i, or nil if i is out of
// range.
func (d *Dictionary) WordAt(i int) *idx.Word {
	return d.idx.Word(i)
}

// ReadRaw returns the raw markup bytes of the definition record for the
// word at table position i. A corrupt offset or record fails only this
// read; the loaded table and other lookups are unaffected.
func (d *Dictionary) ReadRaw(i int) ([]byte, error) {
	w := d.idx.Word(i)
	if w == nil {
		return nil, fmt.Errorf("%w: %d", ErrOutOfRange, i)
	}
	return d.dat.Record(w.Offset)
}

// RenderPlain renders the definition at table position i as plain UTF-8
// text with verbatim line breaks.
func (d *Dictionary) RenderPlain(i int) (string, error) {
	b, err := d.ReadRaw(i)
	if err != nil {
		return "", err
	}
	return rtf.Render(b, rtf.Plain), nil
}

// RenderCLI renders the definition at table position i as console-oriented
// UTF-8 text with collapsed blank lines, indentation and bullets.
func (d *Dictionary) RenderCLI(i int) (string, error) {
	b, err := d.ReadRaw(i)
	if err != nil {
		return "", err
	}
	return rtf.Render(b, rtf.CLI), nil
}

// PlainText renders the definition of word as plain text. It returns
// [ErrNotFound] if word is not in the dictionary.
func (d *Dictionary) PlainText(word string) (string, error) {
	i := d.FindExact(word)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNotFound, word)
	}
	return d.RenderPlain(i)
}

// FindExact returns the table position of word, or -1 if word is not in
// the dictionary.
func (d *Dictionary) FindExact(word string) int {
	return d.idx.FindExact(word)
}

// LowerBound returns the position of the first entry not less than key in
// sorted table order. The result is in [0, WordCount()].
func (d *Dictionary) LowerBound(key string) int {
	return d.idx.LowerBound(key)
}

// FindFirstWithPrefix returns the position of the first entry starting
// with prefix, or -1 if there is none.
func (d *Dictionary) FindFirstWithPrefix(prefix string) int {
	return d.idx.FindFirstWithPrefix(prefix)
}

// Suggest returns the table positions of up to maxResults entries whose
// words start with prefix, in table order. See [idx.Idx.Suggest] for the
// matching rules.
func (d *Dictionary) Suggest(prefix string, maxResults int) []int {
	return d.idx.Suggest(prefix, maxResults)
}

// writeIndexDump writes one "i<TAB>offset<TAB>word" line per table entry.
// The format is line based so it is easy to grep and diff.
func writeIndexDump(path string, index *idx.Idx) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating index dump: %w", err)
	}

	w := bufio.NewWriter(f)
	for i := 0; i < index.Len(); i++ {
		e := index.Word(i)
		fmt.Fprintf(w, "%d\t%d\t%s\n", i, e.Offset, e.Word)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing index dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index dump: %w", err)
	}
	return nil
}
