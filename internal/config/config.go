// Package config loads runtime settings for the browser.
//
// Settings come from an optional Lua rc file, the environment, and
// command-line flags, in increasing order of precedence. The rc file is
// evaluated in a Lua state with no standard libraries opened; it is a
// settings file, not a scripting surface.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
)

// EnvCatalog names the environment variable overriding the catalog path.
const EnvCatalog = "NTDOC_CATALOG"

// Config holds the resolved settings.
type Config struct {
	// CatalogPath is the catalog file to load. Empty means the catalog
	// compiled into the binary.
	CatalogPath string

	// Mouse enables mouse support in the interactive browser.
	Mouse bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{Mouse: true}
}

// DefaultPath returns the conventional rc file location
// (user config dir / ntdoc / init.lua).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "ntdoc", "init.lua"), nil
}

// Load resolves the configuration. With an empty path the conventional
// location is tried; a missing rc file is not an error there, while an
// explicitly named file must exist. The NTDOC_CATALOG environment
// variable overrides the rc file's catalog setting.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if defaultPath, err := DefaultPath(); err == nil {
			path = defaultPath
		}
	}

	if path != "" {
		err := cfg.loadLua(path)
		switch {
		case err == nil:
		case !explicit && errors.Is(err, os.ErrNotExist):
			// No rc file; defaults stand.
		default:
			return Config{}, err
		}
	}

	if catalog := os.Getenv(EnvCatalog); catalog != "" {
		cfg.CatalogPath = catalog
	}
	return cfg, nil
}

// loadLua evaluates the rc file and reads its globals.
func (c *Config) loadLua(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	state := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer state.Close()

	if err := state.DoFile(path); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if v := state.GetGlobal("catalog"); v != lua.LNil {
		str, ok := v.(lua.LString)
		if !ok {
			return fmt.Errorf("config %s: catalog must be a string, got %s", path, v.Type())
		}
		c.CatalogPath = string(str)
	}

	if v := state.GetGlobal("mouse"); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return fmt.Errorf("config %s: mouse must be a boolean, got %s", path, v.Type())
		}
		c.Mouse = bool(b)
	}

	return nil
}
