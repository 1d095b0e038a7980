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
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-ydpdict/idx"
	"github.com/ianlewis/go-ydpdict/internal/testutil"
)

func makeIdx(t *testing.T, words []string) *idx.Idx {
	t.Helper()

	entries := make([]*idx.Word, 0, len(words))
	for i, w := range words {
		entries = append(entries, &idx.Word{
			Word:   w,
			Offset: uint32(i * 100),
		})
	}

	index, err := idx.New(io.NopCloser(bytes.NewReader(testutil.MakeIndex(entries))))
	if err != nil {
		t.Fatal(err)
	}
	return index
}

// TestIdx_Word tests Idx.Word and Idx.Len.
func TestIdx_Word(t *testing.T) {
	t.Parallel()

	index := makeIdx(t, []string{"apple", "banana", "cherry"})

	if want, got := 3, index.Len(); want != got {
		t.Fatalf("unexpected length; want: %d, got: %d", want, got)
	}
	for i, want := range []string{"apple", "banana", "cherry"} {
		w := index.Word(i)
		if w == nil {
			t.Fatalf("Word(%d) is nil", i)
		}
		if w.Word != want {
			t.Fatalf("unexpected word; want: %q, got: %q", want, w.Word)
		}
	}
	if w := index.Word(-1); w != nil {
		t.Fatalf("expected nil, got: %v", w)
	}
	if w := index.Word(3); w != nil {
		t.Fatalf("expected nil, got: %v", w)
	}
}

// TestIdx_FindExact tests Idx.FindExact.
func TestIdx_FindExact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		words    []string
		query    string
		expected int
	}{
		{
			name:     "found sorted",
			words:    []string{"cat", "dog", "house", "mouse"},
			query:    "house",
			expected: 2,
		},
		{
			name:     "not found",
			words:    []string{"cat", "dog", "house"},
			query:    "nonexistentword",
			expected: -1,
		},
		{
			name:     "empty query",
			words:    []string{"cat"},
			query:    "",
			expected: -1,
		},
		{
			// The on-disk table order does not always match byte-wise
			// string ordering; the linear fallback must still find the
			// word when binary search misses.
			name:     "found unsorted",
			words:    []string{"zebra", "apple", "mango"},
			query:    "apple",
			expected: 1,
		},
		{
			name:     "case sensitive",
			words:    []string{"House"},
			query:    "house",
			expected: -1,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := makeIdx(t, test.words)
			if want, got := test.expected, index.FindExact(test.query); want != got {
				t.Fatalf("unexpected index; want: %d, got: %d", want, got)
			}
		})
	}
}

// TestIdx_LowerBound tests Idx.LowerBound.
func TestIdx_LowerBound(t *testing.T) {
	t.Parallel()

	index := makeIdx(t, []string{"cat", "dog", "house"})

	tests := []struct {
		key      string
		expected int
	}{
		{key: "", expected: 0},
		{key: "cat", expected: 0},
		{key: "cow", expected: 1},
		{key: "house", expected: 2},
		{key: "zebra", expected: 3},
	}

	for _, test := range tests {
		test := test
		if want, got := test.expected, index.LowerBound(test.key); want != got {
			t.Fatalf("LowerBound(%q); want: %d, got: %d", test.key, want, got)
		}
	}
}

// TestIdx_FindFirstWithPrefix tests Idx.FindFirstWithPrefix.
func TestIdx_FindFirstWithPrefix(t *testing.T) {
	t.Parallel()

	index := makeIdx(t, []string{"cat", "dog", "house", "householder"})

	tests := []struct {
		prefix   string
		expected int
	}{
		{prefix: "hous", expected: 2},
		{prefix: "house", expected: 2},
		{prefix: "dog", expected: 1},
		{prefix: "zzz", expected: -1},
		{prefix: "", expected: -1},
		{prefix: "HOUSE", expected: -1},
	}

	for _, test := range tests {
		test := test
		if want, got := test.expected, index.FindFirstWithPrefix(test.prefix); want != got {
			t.Fatalf("FindFirstWithPrefix(%q); want: %d, got: %d", test.prefix, want, got)
		}
	}
}

// TestIdx_Suggest tests Idx.Suggest.
func TestIdx_Suggest(t *testing.T) {
	t.Parallel()

	words := []string{"ran", "run", "runner", "running", "Rung", "walk"}

	tests := []struct {
		name       string
		prefix     string
		maxResults int
		expected   []int
	}{
		{
			name:       "prefix match in table order",
			prefix:     "run",
			maxResults: 10,
			expected:   []int{1, 2, 3, 4},
		},
		{
			name:       "to prefix stripped",
			prefix:     "to run",
			maxResults: 10,
			expected:   []int{1, 2, 3, 4},
		},
		{
			name:       "case insensitive",
			prefix:     "RUN",
			maxResults: 10,
			expected:   []int{1, 2, 3, 4},
		},
		{
			name:       "max results cap",
			prefix:     "run",
			maxResults: 2,
			expected:   []int{1, 2},
		},
		{
			name:       "bare to",
			prefix:     "to ",
			maxResults: 10,
			expected:   nil,
		},
		{
			name:       "zero max results",
			prefix:     "run",
			maxResults: 0,
			expected:   nil,
		},
		{
			name:       "no match",
			prefix:     "swim",
			maxResults: 10,
			expected:   nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := makeIdx(t, words)
			got := index.Suggest(test.prefix, test.maxResults)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Suggest (-want, +got):\n%s", diff)
			}
		})
	}
}
