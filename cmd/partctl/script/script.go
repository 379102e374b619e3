// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package script is a tiny line-oriented grammar for recording and
// replaying a sequence of operations against a partctl list: one command
// per line, e.g. "insert 2 97 98 99" or "removerange 3 5". It exists so a
// test scenario or a bug report can be captured as a short text file
// instead of a sequence of flag invocations.
package script

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// Command is one line of a script: exactly one of its fields is set,
	// mirroring the teacher's ql.XCondition alternation style.
	Command struct {
		Add         *AddCmd         `"ADD" @@`
		Insert      *InsertCmd      `| "INSERT" @@`
		Remove      *RemoveCmd      `| "REMOVE" @@`
		RemoveVal   *RemoveValCmd   `| "REMOVEVAL" @@`
		RemoveRange *RemoveRangeCmd `| "REMOVERANGE" @@`
		Seed        *SeedCmd        `| "SEED" @@`
		Sort        bool            `| @"SORT"`
		Reverse     bool            `| @"REVERSE"`
		Print       bool            `| @"PRINT"`
		Capacity    bool            `| @"CAPACITY"`
		Trim        bool            `| @"TRIM"`
	}

	// AddCmd appends one or more values to the end of the list.
	AddCmd struct {
		Values []string `@(Ident | Number)+`
	}

	// InsertCmd opens a slot at Index and writes Values into it.
	InsertCmd struct {
		Index  int      `@Number`
		Values []string `@(Ident | Number)+`
	}

	// RemoveCmd deletes the element at Index.
	RemoveCmd struct {
		Index int `@Number`
	}

	// RemoveValCmd deletes the first occurrence of Value.
	RemoveValCmd struct {
		Value string `@(Ident | Number)`
	}

	// RemoveRangeCmd deletes Count elements starting at Index.
	RemoveRangeCmd struct {
		Index int `@Number`
		Count int `@Number`
	}

	// SeedCmd appends Count freshly generated ULID strings.
	SeedCmd struct {
		Count int `@Number`
	}
)

var (
	cmdLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Keyword", Pattern: `(?i)\b(ADD|INSERT|REMOVERANGE|REMOVEVAL|REMOVE|SEED|SORT|REVERSE|PRINT|CAPACITY|TRIM)\b`},
		{Name: "Number", Pattern: `[-+]?\d+`},
		{Name: "Ident", Pattern: `[^\s]+`},
		{Name: "whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Command](
		participle.Lexer(cmdLexer),
		participle.CaseInsensitive("Keyword"),
	)
)

// ParseLine parses a single non-empty, non-comment script line into a
// Command. Lines starting with "#" and blank lines return (nil, nil).
func ParseLine(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}
	cmd, err := parser.ParseString("", trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command=%q: %w", trimmed, err)
	}
	return cmd, nil
}
