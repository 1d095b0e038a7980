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
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Magic is the magic number at the start of every .idx file.
const Magic = 0x8D4E11D5

const (
	// headerSize is the number of bytes covered by the fixed header fields.
	headerSize = 20

	// entryPrefixSize is the fixed-size prefix of a word table entry: four
	// reserved bytes followed by the 32-bit .dat offset.
	entryPrefixSize = 8
)

// ErrBadMagic indicates that the file is not a YDP index file.
var ErrBadMagic = errors.New("bad magic number")

// ErrTruncated indicates that the index file ended before the declared word
// table was fully read.
var ErrTruncated = errors.New("truncated index")

// Scanner scans the word table of a .idx file from start to end.
type Scanner struct {
	r     io.ReadCloser
	s     *bufio.Scanner
	count int
	left  int
	err   error
}

// NewScanner returns a new index scanner for r. The header is read and
// validated immediately. The Scanner assumes ownership of the reader and
// should be closed with the Close method.
func NewScanner(r io.ReadCloser) (*Scanner, error) {
	br := bufio.NewReader(r)

	var hdr [headerSize]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: short header", ErrTruncated)
		}
		return nil, fmt.Errorf("reading index header: %w", err)
	}

	if magic := binary.LittleEndian.Uint32(hdr[0:4]); magic != Magic {
		return nil, fmt.Errorf("%w: 0x%08x", ErrBadMagic, magic)
	}

	count := int(binary.LittleEndian.Uint16(hdr[8:10]))
	tableOffset := int64(binary.LittleEndian.Uint32(hdr[16:20]))
	if tableOffset < headerSize {
		return nil, fmt.Errorf("%w: word table offset %d inside header", ErrTruncated, tableOffset)
	}

	if _, err := io.CopyN(io.Discard, br, tableOffset-headerSize); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: word table offset %d past end of file", ErrTruncated, tableOffset)
		}
		return nil, fmt.Errorf("seeking to word table: %w", err)
	}

	s := &Scanner{
		r:     r,
		s:     bufio.NewScanner(br),
		count: count,
		left:  count,
	}
	s.s.Split(splitEntry)
	return s, nil
}

// Count returns the number of word table entries declared by the header.
func (s *Scanner) Count() int {
	return s.count
}

// Scan advances to the next word table entry. It returns false when the
// declared number of entries has been read or an error occurs.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.left == 0 {
		return false
	}
	if s.s.Scan() {
		s.left--
		return true
	}
	if err := s.s.Err(); err != nil {
		s.err = err
	} else {
		// Clean EOF with entries still owed by the header.
		s.err = fmt.Errorf("%w: %d of %d entries", ErrTruncated, s.count-s.left, s.count)
	}
	return false
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing idx file: %w", err)
	}
	return nil
}

// Word returns the current word table entry.
func (s *Scanner) Word() *Word {
	var w Word
	b := s.s.Bytes()
	if len(b) > entryPrefixSize {
		// The first four bytes of the entry prefix are reserved and of
		// unknown meaning; they are skipped, not interpreted.
		w.Offset = binary.LittleEndian.Uint32(b[4:entryPrefixSize])
		w.Word = string(b[entryPrefixSize : len(b)-1])
	}
	return &w
}

// splitEntry splits a single word table entry: the fixed-size prefix
// followed by a null-terminated word.
func splitEntry(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if len(data) > entryPrefixSize {
		if i := bytes.IndexByte(data[entryPrefixSize:], 0); i >= 0 {
			tokenSize := entryPrefixSize + i + 1
			return tokenSize, data[:tokenSize], nil
		}
	}
	if atEOF {
		// An entry started but its terminator never arrived.
		return 0, nil, fmt.Errorf("%w: unterminated entry", ErrTruncated)
	}

	// Request more data.
	return 0, nil, nil
}
