// Package config loads .looksee.yaml, the optional defaults file for
// the looksee CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wonderchook/looksee/pkg/looksee"
)

// FileName is the config file looked for in the working directory and
// the user config directory, in that order.
const FileName = ".looksee.yaml"

// File is the parsed configuration. Visibility fields are pointers so
// an absent key leaves the built-in default untouched.
type File struct {
	Width      int    `yaml:"width,omitempty"`
	Theme      string `yaml:"theme,omitempty"`
	Public     *bool  `yaml:"public,omitempty"`
	Protected  *bool  `yaml:"protected,omitempty"`
	Private    *bool  `yaml:"private,omitempty"`
	Overridden *bool  `yaml:"overridden,omitempty"`
}

// Load reads the first config file found, falling back to an empty
// File when none exists. A malformed file earns a warning on stderr
// but never fails the run.
func Load() *File {
	return loadPath(findConfig())
}

func loadPath(path string) *File {
	cfg := &File{}
	if path == "" {
		return cfg
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", path, err)
		}
		return cfg
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error parsing config file %s: %v. Using defaults.\n", path, err)
		return &File{}
	}
	return cfg
}

// findConfig returns the path of the first config file present.
func findConfig() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "looksee", FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Options layers the file's visibility settings over base.
func (f *File) Options(base looksee.Options) looksee.Options {
	out := base.Clone()
	set := func(v looksee.Visibility, flag *bool) {
		if flag != nil {
			out[string(v)] = *flag
		}
	}
	set(looksee.Public, f.Public)
	set(looksee.Protected, f.Protected)
	set(looksee.Private, f.Private)
	set(looksee.Overridden, f.Overridden)
	return out
}
