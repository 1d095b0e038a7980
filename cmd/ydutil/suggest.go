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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var suggestCommand = &cli.Command{
	Name:      "suggest",
	Usage:     "list words matching a prefix",
	ArgsUsage: "PREFIX",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "max",
			Usage:   "show at most `N` results",
			Aliases: []string{"n"},
			Value:   10,
		},
	},
	Action: func(c *cli.Context) error {
		prefix := strings.Join(c.Args().Slice(), " ")
		if prefix == "" {
			return fmt.Errorf("%w: no prefix given", ErrYdutil)
		}

		d, err := openDictionary(c)
		if err != nil {
			return err
		}

		tbl := table.New("Index", "Word").WithWriter(c.App.Writer)
		for _, i := range d.Suggest(prefix, c.Int("max")) {
			tbl.AddRow(i, d.WordAt(i).Word)
		}
		tbl.Print()
		return nil
	},
}
