package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// FileNames are the config file names looked for in each directory, in order.
var FileNames = []string{"mdxkit.toml", ".mdxkit.toml"}

// Load reads the config at path, or the nearest config above the working
// directory when path is empty. The result is defaulted and validated, and
// its output, content and nav paths are absolute. Spec files keep the form
// they were written in; use SpecPath to locate them.
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			return nil, err
		}
		path = found
	} else if err := requireFile(path); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, oops.With("path", path).Wrapf(err, "resolving config path")
	}

	cfg, err := decode(abs)
	if err != nil {
		return nil, err
	}

	cfg.ConfigDir = filepath.Dir(abs)
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Output = cfg.OutputDir()
	cfg.ContentDir = cfg.ContentRoot()
	cfg.NavFile = cfg.resolve(cfg.NavFile)

	return cfg, nil
}

func decode(path string) (*Config, error) {
	invalid := oops.Code("CONFIG_INVALID").With("path", path)

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, invalid.
			Hint("Check the TOML syntax of the config file").
			Wrapf(err, "reading config %q", path)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, invalid.
			Hint("Top-level keys, [nav], [site], [highlight], [display] and [openapi.<prefix>] tables are supported").
			Wrapf(err, "decoding config %q", path)
	}

	return cfg, nil
}

// FindConfigFile returns the first config file in the working directory or
// one of its parents.
func FindConfigFile() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", oops.Wrapf(err, "getting working directory")
	}

	for dir := wd; ; dir = filepath.Dir(dir) {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			ok, err := isFile(candidate)
			if err != nil {
				return "", err
			}
			if ok {
				return candidate, nil
			}
		}

		if filepath.Dir(dir) == dir {
			break
		}
	}

	return "", oops.
		Code("CONFIG_NOT_FOUND").
		With("searched_from", wd).
		Hint("Create mdxkit.toml at the root of your docs project or pass --config").
		Errorf("no mdxkit.toml or .mdxkit.toml found in %q or its parents", wd)
}

func requireFile(path string) error {
	ok, err := isFile(path)
	if err != nil {
		return err
	}
	if !ok {
		return oops.
			Code("CONFIG_NOT_FOUND").
			With("path", path).
			Hint("Pass the path of an existing mdxkit.toml to --config").
			Errorf("config file %q does not exist", path)
	}
	return nil
}

// isFile reports whether path names a regular file. Directories do not count.
func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, oops.With("path", path).Wrapf(err, "checking config file %q", path)
	}
}
