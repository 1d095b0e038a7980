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

// Package idx implements reading YDP .idx files.
//
// The .idx file describes the dictionary's words and where each word's
// definition record lives in the companion .dat file. All integers are
// little-endian. The file starts with a fixed header:
//
//	offset 0: 32-bit magic number 0x8D4E11D5
//	offset 8: 16-bit word count
//	offset 16: 32-bit absolute offset of the word table
//
// The word table holds exactly word-count entries, each:
//
//  1. Four reserved bytes of unknown meaning, skipped.
//  2. The 32-bit offset of the word's definition record in the .dat file.
//  3. The word: bytes terminated by a null terminator ('\0'). The bytes are
//     kept as stored; they are compared in byte form for lookups and only
//     decoded when a definition is rendered.
//
// The on-disk table order is roughly alphabetical but does not match Go's
// byte-wise string ordering for every entry (compound and hyphenated words
// are known offenders), so lookups never rely on sorted order alone.
package idx
