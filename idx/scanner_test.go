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

package idx_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ydpdict/idx"
	"github.com/ianlewis/go-ydpdict/internal/testutil"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected []*idx.Word
	}{
		{
			name:     "empty table",
			expected: nil,
		},
		{
			name: "single word",
			expected: []*idx.Word{
				{
					Word:   "house",
					Offset: 123,
				},
			},
		},
		{
			name: "multiple words",
			expected: []*idx.Word{
				{
					Word:   "house",
					Offset: 123,
				},
				{
					Word:   "house arrest",
					Offset: 456,
				},
				{
					Word:   "householder",
					Offset: 789,
				},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			b := testutil.MakeIndex(test.expected)

			s, err := idx.NewScanner(io.NopCloser(bytes.NewReader(b)))
			if err != nil {
				t.Fatal(err)
			}
			if want, got := len(test.expected), s.Count(); want != got {
				t.Fatalf("unexpected count; want: %d, got: %d", want, got)
			}

			var words []*idx.Word
			for s.Scan() {
				words = append(words, s.Word())
			}
			if err := s.Err(); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(test.expected, words); diff != "" {
				t.Fatalf("unexpected words (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestScanner_tablePadding tests that the scanner honors the header's word
// table offset.
func TestScanner_tablePadding(t *testing.T) {
	t.Parallel()

	words := []*idx.Word{
		{
			Word:   "pad",
			Offset: 99,
		},
	}
	b := testutil.MakeIndex(words)

	// Move the word table 16 bytes further into the file.
	padded := append([]byte{}, b[:20]...)
	padded = append(padded, make([]byte, 16)...)
	padded = append(padded, b[20:]...)
	binary.LittleEndian.PutUint32(padded[16:20], 36)

	s, err := idx.NewScanner(io.NopCloser(bytes.NewReader(padded)))
	if err != nil {
		t.Fatal(err)
	}

	var got []*idx.Word
	for s.Scan() {
		got = append(got, s.Word())
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(words, got); diff != "" {
		t.Fatalf("unexpected words (-want, +got):\n%s", diff)
	}
}

// TestScanner_errors tests structural failures.
func TestScanner_errors(t *testing.T) {
	t.Parallel()

	valid := testutil.MakeIndex([]*idx.Word{
		{
			Word:   "house",
			Offset: 123,
		},
		{
			Word:   "mouse",
			Offset: 456,
		},
	})

	tests := []struct {
		name    string
		data    []byte
		newErr  error
		scanErr error
	}{
		{
			name: "bad magic",
			data: func() []byte {
				b := append([]byte{}, valid...)
				b[0] ^= 0xFF
				return b
			}(),
			newErr: idx.ErrBadMagic,
		},
		{
			name:   "short header",
			data:   valid[:10],
			newErr: idx.ErrTruncated,
		},
		{
			name: "table offset past end of file",
			data: func() []byte {
				b := append([]byte{}, valid...)
				binary.LittleEndian.PutUint32(b[16:20], uint32(len(b)+100))
				return b
			}(),
			newErr: idx.ErrTruncated,
		},
		{
			name:    "unterminated word",
			data:    valid[:len(valid)-1],
			scanErr: idx.ErrTruncated,
		},
		{
			// The first entry is complete but the header declares two.
			name:    "missing entries",
			data:    valid[:34],
			scanErr: idx.ErrTruncated,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s, err := idx.NewScanner(io.NopCloser(bytes.NewReader(test.data)))
			if test.newErr != nil {
				if !errors.Is(err, test.newErr) {
					t.Fatalf("unexpected error; want: %v, got: %v", test.newErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			for s.Scan() {
			}
			if !errors.Is(s.Err(), test.scanErr) {
				t.Fatalf("unexpected error; want: %v, got: %v", test.scanErr, s.Err())
			}
		})
	}
}
