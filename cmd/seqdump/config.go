// Copyright 2022 The Impala-1 Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/BurntSushi/toml"

	"github.com/MyqueWooMiddo/Impala-1/pkg/common/moerr"
	"github.com/MyqueWooMiddo/Impala-1/pkg/container/types"
	"github.com/MyqueWooMiddo/Impala-1/pkg/logutil"
)

// Config drives one seqdump run. Example:
//
//	delimiter = "|"
//	workers = 4
//	estimate-ndv = true
//
//	[log]
//	level = "info"
//	format = "console"
//
//	[[column]]
//	type = "decimal8"
//	precision = 18
//	scale = 2
type Config struct {
	Delimiter   string             `toml:"delimiter"`
	Workers     int                `toml:"workers"`
	EstimateNdv bool               `toml:"estimate-ndv"`
	Log         logutil.LogConfig  `toml:"log"`
	Columns     []ColumnConfig     `toml:"column"`
}

type ColumnConfig struct {
	Type      string `toml:"type"`
	Precision int32  `toml:"precision"`
	Scale     int32  `toml:"scale"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, moerr.NewBadConfigNoCtx("parse %s: %v", path, err)
	}
	if cfg.Delimiter == "" {
		cfg.Delimiter = "|"
	}
	if len(cfg.Delimiter) != 1 {
		return nil, moerr.NewBadConfigNoCtx("delimiter must be one byte, got %q", cfg.Delimiter)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if len(cfg.Columns) == 0 {
		return nil, moerr.NewBadConfigNoCtx("no columns configured")
	}
	return &cfg, nil
}

// columnTypes validates the configured columns into type descriptors.
func (cfg *Config) columnTypes() ([]types.Type, error) {
	typs := make([]types.Type, len(cfg.Columns))
	for i, c := range cfg.Columns {
		var oid types.T
		switch c.Type {
		case "decimal4":
			oid = types.T_decimal4
		case "decimal8":
			oid = types.T_decimal8
		case "decimal16":
			oid = types.T_decimal16
		default:
			return nil, moerr.NewBadConfigNoCtx("column %d: unknown type %q", i, c.Type)
		}
		typ, err := types.New(oid, c.Precision, c.Scale)
		if err != nil {
			return nil, moerr.NewBadConfigNoCtx("column %d: %v", i, err)
		}
		typs[i] = typ
	}
	return typs, nil
}
