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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-ydpdict"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrYdutil is a parent error for all command errors.
var ErrYdutil = errors.New("ydutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrYdutil)

// ErrNoDictionary indicates that no dictionary files could be located.
var ErrNoDictionary = fmt.Errorf("%w: no dictionary found", ErrYdutil)

// dictBaseNames are the file base names YDP ships dictionaries under.
// dict100 is English-Polish and dict101 is Polish-English.
var dictBaseNames = []string{"dict100", "dict101"}

//nolint:gochecknoinits // init needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli`
	// handles the flag with the root command such that it takes a command
	// name argument but we don't use commands that way.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newYdutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Read YDP dictionaries.",
		Description: strings.Join([]string{
			"YDP dictionary utility written in Go.",
			"http://github.com/ianlewis/go-ydpdict",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "index",
				Usage:   "read the word table from `FILE`",
				Aliases: []string{"i"},
			},
			&cli.StringFlag{
				Name:    "data",
				Usage:   "read definition records from `FILE`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:  "dump",
				Usage: "write a tab-separated dump of the word table to `FILE`",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			lookupCommand,
			suggestCommand,
			listCommand,
		},
	}
}

// openDictionary opens the dictionary named by the --index and --data flags,
// falling back to the default YDP file pair in the platform's dictionary
// locations.
func openDictionary(c *cli.Context) (*ydpdict.Dictionary, error) {
	indexPath := c.String("index")
	dataPath := c.String("data")

	if indexPath == "" || dataPath == "" {
		foundIdx, foundDat, err := findDictionary()
		if err != nil {
			return nil, err
		}
		if indexPath == "" {
			indexPath = foundIdx
		}
		if dataPath == "" {
			dataPath = foundDat
		}
	}

	d, err := ydpdict.Open(indexPath, dataPath, &ydpdict.Options{
		DumpPath: c.String("dump"),
	})
	if err != nil {
		return nil, err
	}
	if err := d.DumpErr(); err != nil {
		// The dump is a diagnostic convenience; report but continue.
		fmt.Fprintln(os.Stderr, err)
	}
	return d, nil
}

// findDictionary searches the platform's dictionary locations for a known
// .idx/.dat file pair.
func findDictionary() (string, string, error) {
	for _, dir := range dictLocations() {
		for _, base := range dictBaseNames {
			idxPath := filepath.Join(dir, base+".idx")
			datPath := filepath.Join(dir, base+".dat")
			if _, err := os.Stat(idxPath); err != nil {
				continue
			}
			if _, err := os.Stat(datPath); err != nil {
				continue
			}
			return idxPath, datPath, nil
		}
	}
	return "", "", ErrNoDictionary
}
