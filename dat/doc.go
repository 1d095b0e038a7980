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

// Package dat implements reading YDP .dat files.
//
// The .dat file is a sequence of definition records. Each record is a
// 32-bit little-endian length followed by exactly that many bytes of
// definition markup (see the rtf package). Records carry no delimiters or
// self-description beyond the length prefix; record boundaries come only
// from offsets recovered from the .idx file and the file is never scanned.
package dat
