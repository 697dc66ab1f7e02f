package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
//
// A variable PREFIX_LOG_LEVEL becomes the key "log_level". Values are
// kept as strings.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "SHORTCUTS_")
	mapping map[string]string // Env var -> config key
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "SHORTCUTS_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string),
		environ: os.Environ,
	}
}

// AddMapping maps an environment variable to an explicit config key,
// which may be dotted to address a nested table.
func (l *EnvLoader) AddMapping(envVar, configKey string) {
	l.mapping[envVar] = configKey
}

// Load reads environment variables and returns a configuration map.
// Empty values are treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || value == "" {
			continue
		}

		key, mapped := l.mapping[name]
		if !mapped {
			if !strings.HasPrefix(name, l.prefix) {
				continue
			}
			key = l.envToKey(name)
		}
		if key == "" {
			continue
		}
		setByPath(config, key, value)
	}

	return config, nil
}

// envToKey converts SHORTCUTS_LOG_LEVEL to log_level.
func (l *EnvLoader) envToKey(env string) string {
	return strings.ToLower(strings.TrimPrefix(env, l.prefix))
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
