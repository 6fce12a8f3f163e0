package graphio

import (
	"github.com/BurntSushi/toml"

	"github.com/lattica/lattica/pkg/errors"
	"github.com/lattica/lattica/pkg/layout"
)

// ReadOptionsFile decodes a TOML option file over the layout defaults, so an
// option file only needs to name the fields it changes. Unknown keys fail
// with INVALID_OPTION to catch typos.
func ReadOptionsFile(path string) (layout.Options, error) {
	opts := layout.DefaultOptions()
	meta, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidOption, err, "reading options file %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return opts, errors.New(errors.ErrCodeInvalidOption,
			"unknown option %q in %s", undecoded[0].String(), path)
	}
	return opts, nil
}
