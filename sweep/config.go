// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sweep

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Config describes a sweep campaign. It can be loaded from YAML:
//
//	binary: ./bin/MCC_030402_99106458
//	dataSizes: [150, 300, 600]
//	threads: [1, 2, 4, 8]
//	multipliers: [2, 3, 4]
//	input: data/%dK_set1.txt
//	delay: 1s
type Config struct {
	Space `yaml:",inline"`

	// Binary is the benchmark executable.
	Binary string `yaml:"binary"`

	// Dir is the benchmark's working directory.
	Dir string `yaml:"dir"`

	// Input is the input file name pattern. Its single %d verb is
	// replaced by the data size.
	Input string `yaml:"input"`

	// Unit is the size suffix passed with sizes.
	Unit string `yaml:"unit"`

	// Delay is the pause between runs, in time.ParseDuration syntax.
	Delay time.Duration `yaml:"delay"`
}

// DefaultConfig returns the configuration of the reference campaign:
// three data sizes, thread counts 1 through 1024, and table sizes of
// two, three and four fifths of the data size.
func DefaultConfig() Config {
	return Config{
		Space: Space{
			DataSizes:   []int{150, 300, 600},
			Threads:     PowersOfTwo(11),
			Multipliers: []int{2, 3, 4},
		},
		Binary: "./bin/MCC_030402_99106458",
		Input:  "data/%dK_set1.txt",
		Unit:   DefaultUnit,
		Delay:  time.Second,
	}
}

// LoadConfig reads a YAML Config from path. Keys missing from the file
// keep their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate reports an error if c cannot drive a sweep.
func (c Config) Validate() error {
	if err := c.Space.Validate(); err != nil {
		return err
	}
	if c.Binary == "" {
		return fmt.Errorf("sweep: no benchmark binary")
	}
	if strings.Count(c.Input, "%d") != 1 || strings.Count(c.Input, "%") != 1 {
		return fmt.Errorf("sweep: input pattern %q must contain exactly one %%d", c.Input)
	}
	if c.Delay < 0 {
		return fmt.Errorf("sweep: negative delay %s", c.Delay)
	}
	return nil
}

// InputPath returns the input file for dataSize.
func (c Config) InputPath(dataSize int) string {
	return fmt.Sprintf(c.Input, dataSize)
}

// Invoker returns an ExecInvoker for c.
func (c Config) Invoker() *ExecInvoker {
	return &ExecInvoker{Binary: c.Binary, Dir: c.Dir, Unit: c.Unit}
}
