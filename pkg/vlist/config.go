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
package vlist

import (
	"github.com/vlistgo/vlist/golibs/config"
	"github.com/vlistgo/vlist/pkg/partition"
)

// Config is the process-wide, immutable-after-load tuning for every List
// created through NewWithConfig. It is loaded the way the rest of this
// module's configuration is: a YAML/JSON file optionally overridden by
// environment variables, via golibs/config.Enricher.
type Config struct {
	// MaxSegmentCapacity bounds any single segment's backing buffer. See
	// partition.DefaultMaxSegmentCapacity for the default.
	MaxSegmentCapacity int `json:"maxSegmentCapacity"`
	// PositionCacheSize is the number of recently resolved virtual-index
	// lookups a List's partition keeps around. 0 disables the cache.
	PositionCacheSize int `json:"positionCacheSize"`
	// TrimSlack is the capacity-over-count tolerance below which TrimExcess
	// leaves a List's backing storage alone. See
	// partition.DefaultTrimExcessSlack for the default.
	TrimSlack int `json:"trimSlack"`
}

// DefaultConfig mirrors the partition package's own defaults.
func DefaultConfig() Config {
	return Config{
		MaxSegmentCapacity: partition.DefaultMaxSegmentCapacity,
		PositionCacheSize:  8,
		TrimSlack:          partition.DefaultTrimExcessSlack,
	}
}

// LoadConfig builds a Config starting from DefaultConfig, optionally
// overridden by fileName (.yaml or .json, empty to skip) and then by any
// environment variables prefixed envPrefix (empty to skip), the same
// two-stage load every config.Enricher consumer in this module follows.
func LoadConfig(fileName, envPrefix string) (Config, error) {
	e := config.NewEnricher(DefaultConfig())
	if err := e.LoadFromFile(fileName); err != nil {
		return Config{}, err
	}
	if envPrefix != "" {
		if err := e.ApplyEnvVariables(envPrefix, "_"); err != nil {
			return Config{}, err
		}
	}
	return e.Value(), nil
}
