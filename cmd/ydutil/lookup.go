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

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "print a word's definition",
	ArgsUsage: "WORD",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "print the plain text rendering without CLI layout",
		},
	},
	Action: func(c *cli.Context) error {
		word := strings.Join(c.Args().Slice(), " ")
		if word == "" {
			return fmt.Errorf("%w: no word given", ErrYdutil)
		}

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		i := d.FindExact(word)
		if i < 0 {
			// Nearest match so e.g. a verb typed with its "to" still
			// resolves.
			i = d.FindFirstWithPrefix(word)
		}
		if i < 0 {
			return fmt.Errorf("%w: %q not found", ErrYdutil, word)
		}

		var out string
		if c.Bool("plain") {
			out, err = d.RenderPlain(i)
		} else {
			out, err = d.RenderCLI(i)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(c.App.Writer, out)
		return nil
	},
}
