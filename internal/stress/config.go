// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package stress

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	flag "github.com/spf13/pflag"
)

const (
	defaultOps         = 100000
	defaultReaders     = 4
	defaultKeySpace    = 10000
	defaultBatchSize   = 64
	defaultVerifyEvery = 1000
	defaultSeed        = 1

	defaultLogFormat = "text"
	defaultLogLevel  = "info"
)

// Config is the soak workload configuration.
type Config struct {
	flagSet    *flag.FlagSet
	configFile string

	Log log.Config `toml:"log" json:"log"`

	// Ops is the number of updates the writer publishes.
	Ops int `toml:"ops" json:"ops"`
	// Readers is the number of goroutines checking published snapshots.
	Readers int `toml:"readers" json:"readers"`
	// KeySpace bounds the keys drawn by the writer to [0, KeySpace).
	KeySpace int `toml:"key-space" json:"key-space"`
	// BatchSize bounds the size of the maps merged by union and difference.
	BatchSize int `toml:"batch-size" json:"batch-size"`
	// VerifyEvery is how many updates the writer makes between comparisons
	// against its reference model.
	VerifyEvery int   `toml:"verify-every" json:"verify-every"`
	Seed        int64 `toml:"seed" json:"seed"`
}

// NewConfig returns a Config with its flags registered.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.flagSet = flag.NewFlagSet("wbt-stress", flag.ContinueOnError)
	fs := cfg.flagSet
	fs.StringVar(&cfg.configFile, "config", "", "config file")
	fs.IntVar(&cfg.Ops, "ops", 0, "number of updates to publish")
	fs.IntVar(&cfg.Readers, "readers", 0, "number of concurrent readers")
	fs.IntVar(&cfg.KeySpace, "key-space", 0, "keys are drawn from [0, key-space)")
	fs.IntVar(&cfg.BatchSize, "batch-size", 0, "maximum size of union and difference operands")
	fs.IntVar(&cfg.VerifyEvery, "verify-every", 0, "updates between full checks against the model")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed")
	fs.StringVarP(&cfg.Log.Level, "log-level", "L", "", "log level: debug, info, warn, error, fatal")
	fs.StringVar(&cfg.Log.File.Filename, "log-file", "", "log file path")
	return cfg
}

// Parse parses flag definitions from the argument list. A config file named
// by --config is decoded between two passes over the flags, so flags win.
func (c *Config) Parse(arguments []string) error {
	err := c.flagSet.Parse(arguments)
	if err != nil {
		return errors.WithStack(err)
	}

	var meta *toml.MetaData
	if c.configFile != "" {
		md, err := toml.DecodeFile(c.configFile, c)
		if err != nil {
			return errors.Annotatef(err, "decode %s", c.configFile)
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return errors.Errorf("config file %s contains unknown keys %v", c.configFile, undecoded)
		}
		meta = &md
	}

	err = c.flagSet.Parse(arguments)
	if err != nil {
		return errors.WithStack(err)
	}

	if len(c.flagSet.Args()) != 0 {
		return errors.Errorf("'%s' is an invalid flag", c.flagSet.Arg(0))
	}

	c.Adjust(meta)
	return c.Validate()
}

// Adjust fills in defaults for every setting left unset.
func (c *Config) Adjust(meta *toml.MetaData) {
	if len(c.Log.Format) == 0 {
		c.Log.Format = defaultLogFormat
	}
	if len(c.Log.Level) == 0 {
		c.Log.Level = defaultLogLevel
	}
	if !isDefined(meta, "ops") {
		adjustInt(&c.Ops, defaultOps)
	}
	if !isDefined(meta, "readers") {
		adjustInt(&c.Readers, defaultReaders)
	}
	if !isDefined(meta, "key-space") {
		adjustInt(&c.KeySpace, defaultKeySpace)
	}
	if !isDefined(meta, "batch-size") {
		adjustInt(&c.BatchSize, defaultBatchSize)
	}
	if !isDefined(meta, "verify-every") {
		adjustInt(&c.VerifyEvery, defaultVerifyEvery)
	}
	if !isDefined(meta, "seed") && c.Seed == 0 {
		c.Seed = defaultSeed
	}
}

// Validate rejects settings the workload cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Ops < 0:
		return errors.Errorf("ops must not be negative, got %d", c.Ops)
	case c.Readers < 0:
		return errors.Errorf("readers must not be negative, got %d", c.Readers)
	case c.KeySpace <= 0:
		return errors.Errorf("key-space must be positive, got %d", c.KeySpace)
	case c.BatchSize <= 0:
		return errors.Errorf("batch-size must be positive, got %d", c.BatchSize)
	case c.VerifyEvery <= 0:
		return errors.Errorf("verify-every must be positive, got %d", c.VerifyEvery)
	}
	return nil
}

func isDefined(meta *toml.MetaData, key string) bool {
	return meta != nil && meta.IsDefined(key)
}

func adjustInt(v *int, defValue int) {
	if *v == 0 {
		*v = defValue
	}
}
