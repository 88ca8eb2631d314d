package workload

import (
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultElements is the size of the sequential fill when no size is
// configured.
const DefaultElements = 100000

// Config describes a workload. It can be loaded from a TOML file:
//
//	seed = 42
//	elements = 100000
//	front = false
//	mixed_ops = 10000
//	verify = true
type Config struct {
	// Seed drives the mixed phase. Zero picks a random seed at run time.
	Seed uint64 `toml:"seed"`

	// Elements is the number of sequential integers pushed in the fill phase.
	Elements int `toml:"elements"`

	// Front fills with PushFront instead of PushBack.
	Front bool `toml:"front"`

	// MixedOps is the number of generated operations in the mixed phase.
	MixedOps int `toml:"mixed_ops"`

	// Verify checks the fill order and cross-checks the mixed phase against a
	// slice model. The model costs O(n) per front operation.
	Verify bool `toml:"verify"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Elements: DefaultElements,
		Verify:   true,
	}
}

// Validate checks that the configuration describes a runnable workload.
func (c *Config) Validate() error {
	if c.Elements < 0 {
		return errors.Errorf("elements must not be negative, got %d", c.Elements)
	}
	if c.MixedOps < 0 {
		return errors.Errorf("mixed_ops must not be negative, got %d", c.MixedOps)
	}
	return nil
}

// LoadFile reads a TOML workload file. Keys absent from the file keep their
// DefaultConfig values. Unknown keys are an error.
func LoadFile(path string) (*Config, error) {
	b, err := fs.ReadFile(fileSystem, path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read workload file %q", path)
	}
	c := DefaultConfig()
	md, err := toml.Decode(string(b), c)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse workload file %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys in workload file %q: %v", path, undecoded)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid workload file %q", path)
	}
	return c, nil
}
