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

package dat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

// MaxRecordSize is the largest definition record length accepted from the
// .dat file. Definitions are small; a larger declared length means the
// offset or the file is corrupt.
const MaxRecordSize = 4 << 20

// ErrRecordBounds indicates a record offset or length outside the .dat file.
var ErrRecordBounds = errors.New("record out of bounds")

// ErrRecordSize indicates a zero or implausibly large record length.
var ErrRecordSize = errors.New("bad record size")

// Dat reads definition records from a YDP .dat file. It holds the file path
// only; the file is reopened for every record read, so a Dat keeps no open
// handle between calls.
type Dat struct {
	path string
}

// New returns a Dat for the .dat file at path. The file is opened once to
// verify that it is readable.
func New(path string) (*Dat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dat file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("closing dat file: %w", err)
	}
	return &Dat{path: path}, nil
}

// Record returns the raw markup bytes of the record at offset. The record
// starts with a 32-bit little-endian length followed by exactly that many
// bytes. Any bounds violation or short read returns an error and no bytes;
// a partial record is never returned.
func (d *Dat) Record(offset uint32) ([]byte, error) {
	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("opening dat file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dat file: %w", err)
	}
	size := fi.Size()

	if int64(offset)+4 > size {
		return nil, fmt.Errorf("%w: offset %d, file size %d", ErrRecordBounds, offset, size)
	}

	var lenBuf [4]byte
	if _, err := f.ReadAt(lenBuf[:], int64(offset)); err != nil {
		return nil, fmt.Errorf("reading record length: %w", err)
	}
	recordLen := binary.LittleEndian.Uint32(lenBuf[:])

	if recordLen == 0 || recordLen > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d", ErrRecordSize, recordLen)
	}
	if int64(offset)+4+int64(recordLen) > size {
		return nil, fmt.Errorf("%w: offset %d, length %d, file size %d", ErrRecordBounds, offset, recordLen, size)
	}

	b := make([]byte, recordLen)
	if _, err := f.ReadAt(b, int64(offset)+4); err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}
	return b, nil
}
