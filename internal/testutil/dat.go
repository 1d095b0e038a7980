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
	"os"
	"path/filepath"
	"testing"
)

// MakeDat builds a .dat file image holding the given definition records and
// returns the image along with the offset of each record.
func MakeDat(records [][]byte) ([]byte, []uint32) {
	var b []byte
	offsets := make([]uint32, 0, len(records))

	for _, rec := range records {
		offsets = append(offsets, uint32(len(b)))
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(rec)))
		b = append(b, lenBuf[:]...)
		b = append(b, rec...)
	}
	return b, offsets
}

// WriteTempFile writes b to a new file in the test's temporary directory
// and returns its path.
func WriteTempFile(t *testing.T, name string, b []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
