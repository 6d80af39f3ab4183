package pipeline

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordvis/pkg/errors"
)

// LoadConfig reads pipeline options from a TOML file.
//
// Keys mirror the long CLI flags with dashes replaced by underscores:
//
//	format = "svg"
//	type = "sunburst"
//	max_rings = 8
//	ring_depth = 60.0
//	letter_spacing = 12.0
//	lightness = 0.8
//
// Keys left out keep their [DefaultOptions] value. Keys set to zero stay
// zero. Unknown keys are rejected so that a typo does not silently fall back
// to a default.
func LoadConfig(path string) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Options{}, errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
		}
		return Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return opts, nil
}
