package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgshift/pkg/errors"
	"github.com/arthur-debert/pkgshift/pkg/logging"
	"github.com/arthur-debert/pkgshift/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PKGSHIFT_"

// sections whose keys may be set from the environment as SECTION_KEY
var envSections = []string{"prune", "context", "output"}

// Options controls where configuration is read from.
type Options struct {
	// Root is searched for a project file. Empty means paths.ProjectRoot.
	Root string

	// Path names a config file explicitly; it must exist.
	Path string

	// Overrides are dotted keys applied last, e.g. "context.username".
	Overrides map[string]interface{}
}

// Load merges all configuration layers and validates the result.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Project or explicit file
	path, err := configFile(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("patterns", len(cfg.Patterns)).
		Strs("transforms", cfg.Transforms).
		Str("marker", cfg.Prune.Marker).
		Msg("Configuration loaded")
	return cfg, nil
}

// Default returns the embedded defaults alone.
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func configFile(opts Options) (string, error) {
	if opts.Path != "" {
		info, err := os.Stat(opts.Path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.Path).
				WithDetail("path", opts.Path)
		}
		if info.IsDir() {
			return "", errors.Newf(errors.ErrConfigLoad, "config path %s is a directory", opts.Path).
				WithDetail("path", opts.Path)
		}
		return opts.Path, nil
	}

	root := opts.Root
	if root == "" {
		r, err := paths.ProjectRoot()
		if err != nil {
			return "", err
		}
		root = r
	}
	if found := paths.FindProjectConfig(root); found != "" {
		return found, nil
	}
	if user := paths.UserConfigPath(); fileExists(user) {
		return user, nil
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// envKey maps PKGSHIFT_PRUNE_STALE_KIND to prune.stale_kind and
// PKGSHIFT_TRANSFORMS to a list. Variables outside the config tree, such as
// PKGSHIFT_ROOT, are skipped.
func envKey(key, value string) (string, interface{}) {
	name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if name == "transforms" {
		return name, splitList(value)
	}
	for _, section := range envSections {
		if rest, ok := strings.CutPrefix(name, section+"_"); ok && rest != "" {
			return section + "." + rest, value
		}
	}
	return "", nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
