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
package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vlistgo/vlist/cmd/partctl/script"
	"github.com/vlistgo/vlist/golibs/ulidutils"
	"github.com/vlistgo/vlist/pkg/partition"
	"github.com/vlistgo/vlist/pkg/vlist"
)

// runner replays a script against a single string-valued List, printing a
// line of output for each PRINT/CAPACITY command.
type runner struct {
	l   *vlist.List[string]
	out io.Writer
}

func newRunner(cfg vlist.Config, out io.Writer) *runner {
	return &runner{
		l:   vlist.NewWithConfig[string](cfg, partition.DefaultEqual[string]()),
		out: out,
	}
}

// run reads newline-delimited commands from src and applies each in turn,
// stopping at the first error.
func (r *runner) run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	for lineNo := 1; sc.Scan(); lineNo++ {
		cmd, err := script.ParseLine(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if cmd == nil {
			continue
		}
		if err := r.apply(cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func (r *runner) apply(cmd *script.Command) error {
	switch {
	case cmd.Add != nil:
		r.l.AddRange(cmd.Add.Values)
	case cmd.Insert != nil:
		return r.l.InsertRange(cmd.Insert.Index, cmd.Insert.Values)
	case cmd.Remove != nil:
		return r.l.RemoveAt(cmd.Remove.Index)
	case cmd.RemoveVal != nil:
		r.l.Remove(cmd.RemoveVal.Value)
	case cmd.RemoveRange != nil:
		return r.l.RemoveRange(cmd.RemoveRange.Index, cmd.RemoveRange.Count)
	case cmd.Seed != nil:
		values := make([]string, cmd.Seed.Count)
		for i := range values {
			values[i] = ulidutils.NewID()
		}
		r.l.AddRange(values)
	case cmd.Sort:
		return vlist.SortOrdered(r.l)
	case cmd.Reverse:
		r.l.Reverse()
	case cmd.Print:
		fmt.Fprintln(r.out, r.l.ToArray())
	case cmd.Capacity:
		fmt.Fprintf(r.out, "count=%d capacity=%d\n", r.l.Count(), r.l.Capacity())
	case cmd.Trim:
		r.l.TrimExcess()
	}
	return nil
}
