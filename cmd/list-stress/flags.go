package main

import (
	"flag"
	"fmt"

	"hop.computer/deque/workload"
)

// stressFlags holds CLI arguments for list-stress.
type stressFlags struct {
	ConfigPath string
	Verbose    bool

	// Config is the workload after merging the config file and flags.
	Config workload.Config
}

// parseArgs parses os.Args style arguments. Values come from the defaults,
// then the -config file if one is given, then any flags set explicitly.
func parseArgs(args []string) (*stressFlags, error) {
	f := new(stressFlags)
	fs := new(flag.FlagSet)

	defaults := workload.DefaultConfig()
	var c workload.Config
	fs.StringVar(&f.ConfigPath, "config", "", "path to a TOML workload file")
	fs.BoolVar(&f.Verbose, "v", false, "enable debug logging")
	fs.IntVar(&c.Elements, "n", defaults.Elements, "number of sequential integers to push")
	fs.BoolVar(&c.Front, "front", defaults.Front, "fill with PushFront instead of PushBack")
	fs.IntVar(&c.MixedOps, "mixed", defaults.MixedOps, "number of generated push/pop operations")
	fs.Uint64Var(&c.Seed, "seed", defaults.Seed, "seed for generated operations, 0 for random")
	fs.BoolVar(&c.Verify, "verify", defaults.Verify, "check results against a reference model")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	merged := defaults
	if f.ConfigPath != "" {
		loaded, err := workload.LoadFile(f.ConfigPath)
		if err != nil {
			return nil, err
		}
		merged = loaded
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			merged.Elements = c.Elements
		case "front":
			merged.Front = c.Front
		case "mixed":
			merged.MixedOps = c.MixedOps
		case "seed":
			merged.Seed = c.Seed
		case "verify":
			merged.Verify = c.Verify
		}
	})
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	f.Config = *merged
	return f, nil
}
