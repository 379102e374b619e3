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

// Command partctl is a small inspector for pkg/vlist: it replays a script
// (see cmd/partctl/script) against a List[string] and reports its shape.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vlistgo/vlist/golibs/cast"
	"github.com/vlistgo/vlist/golibs/ulidutils"
	"github.com/vlistgo/vlist/pkg/vlist"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile   string
		maxSegCap    int
		cacheSize    int
		trimSlack    int
		segCapSet    bool
		cacheSizeSet bool
		trimSlackSet bool
	)

	root := &cobra.Command{
		Use:     "partctl",
		Short:   "Replay a script of list operations against a vlist.List",
		Version: ulidutils.NewID(), // a fresh run identifier, printed by --version
	}

	run := &cobra.Command{
		Use:   "run [script-file]",
		Short: "Run a script file, or stdin if no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			var segCapOverride, cacheSizeOverride, trimSlackOverride *int
			if segCapSet {
				segCapOverride = &maxSegCap
			}
			if cacheSizeSet {
				cacheSizeOverride = &cacheSize
			}
			if trimSlackSet {
				trimSlackOverride = &trimSlack
			}
			cfg.MaxSegmentCapacity = cast.Value(segCapOverride, cfg.MaxSegmentCapacity)
			cfg.PositionCacheSize = cast.Value(cacheSizeOverride, cfg.PositionCacheSize)
			cfg.TrimSlack = cast.Value(trimSlackOverride, cfg.TrimSlack)

			src := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				src = f
			}
			return newRunner(cfg, os.Stdout).run(src)
		},
	}
	run.Flags().StringVar(&configFile, "config", "", "optional YAML/JSON config file")
	run.Flags().IntVar(&maxSegCap, "max-segment-capacity", 0, "override the configured segment capacity")
	run.Flags().IntVar(&cacheSize, "cache-size", 0, "override the configured position-cache size")
	run.Flags().IntVar(&trimSlack, "trim-slack", 0, "override the configured trim_excess slack tolerance")
	run.PreRun = func(cmd *cobra.Command, args []string) {
		segCapSet = cmd.Flags().Changed("max-segment-capacity")
		cacheSizeSet = cmd.Flags().Changed("cache-size")
		trimSlackSet = cmd.Flags().Changed("trim-slack")
	}

	root.AddCommand(run)
	return root
}

// loadConfig reads cfg from fileName if given, falling back to
// vlist.DefaultConfig() for every field the file doesn't set.
func loadConfig(fileName string) (vlist.Config, error) {
	if fileName == "" {
		return vlist.DefaultConfig(), nil
	}
	cfg, err := vlist.LoadConfig(fileName, "PARTCTL_")
	if err != nil {
		return vlist.Config{}, fmt.Errorf("loading config %s: %w", fileName, err)
	}
	return cfg, nil
}
