package config

import (
	"encoding/json"
	"os"
	"regexp"

	"github.com/aider-tools/aider-automation/pkg/domain/model"
	"github.com/aider-tools/aider-automation/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultPath is where Load looks when no --config flag is given and where
// the init command writes.
const DefaultPath = ".aider-automation.json"

var ptnEnvRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads, env-substitutes, parses, normalizes and validates the config
// file. Any ${VAR} reference pointing at an unset environment variable is a
// fatal configuration error, never silently left in place.
func Load(path string) (*model.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(types.ErrConfig, "failed to read config file",
			goerr.V("path", path),
			goerr.V("detail", err.Error()),
			goerr.V("hint", "run 'aider-automation init' to create a default config"),
		)
	}

	substituted, err := substituteEnv(string(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "in config file", goerr.V("path", path))
	}

	var cfg model.Config
	if err := json.Unmarshal([]byte(substituted), &cfg); err != nil {
		return nil, goerr.Wrap(types.ErrConfig, "config file is not valid JSON",
			goerr.V("path", path),
			goerr.V("detail", err.Error()),
		)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// substituteEnv expands every ${VAR} reference in the raw config text.
func substituteEnv(raw string) (string, error) {
	var missing []string

	out := ptnEnvRef.ReplaceAllStringFunc(raw, func(ref string) string {
		name := ptnEnvRef.FindStringSubmatch(ref)[1]
		v, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return v
	})

	if len(missing) > 0 {
		return "", goerr.Wrap(types.ErrConfig, "unresolved environment variable reference",
			goerr.V("variables", missing),
		)
	}
	return out, nil
}

// WriteDefault writes the starter config. An existing file is never
// overwritten unless force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		return goerr.Wrap(types.ErrConfig, "config file already exists",
			goerr.V("path", path),
			goerr.V("hint", "use --force to overwrite"),
		)
	}

	raw, err := json.MarshalIndent(model.DefaultConfig(), "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode default config")
	}

	if err := os.WriteFile(path, append(raw, '\n'), 0644); err != nil {
		return goerr.Wrap(err, "failed to write config file", goerr.V("path", path))
	}
	return nil
}
