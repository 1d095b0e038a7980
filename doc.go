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

// Package ydpdict implements a library for reading YDP (Collins/ydpdict)
// dictionaries in pure Go.
//
// A YDP dictionary consists of two files:
//
//  1. An .idx file holding the word table: each entry is a word and the
//     offset of its definition record in the .dat file.
//  2. A .dat file holding length-prefixed definition records written in a
//     small RTF-like markup language.
//
// The whole word table is loaded into memory when a dictionary is opened;
// definition records are read from the .dat file on demand and rendered to
// UTF-8 text. See the idx, dat and rtf packages for the file formats.
package ydpdict
