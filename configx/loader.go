package configx

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const DefaultEnvPrefix = "UPLOAD_"

type (
	OptionModifier func(l *loader)

	loader struct {
		files             []string
		flags             *pflag.FlagSet
		envPrefix         string
		disableEnvLoading bool
		values            map[string]any
	}
)

func WithConfigFiles(files ...string) OptionModifier {
	return func(l *loader) {
		l.files = append(l.files, files...)
	}
}

// WithFlags overlays every flag that was explicitly set on the command line.
// Flag names map to keys by replacing "-" with "_".
func WithFlags(flags *pflag.FlagSet) OptionModifier {
	return func(l *loader) {
		l.flags = flags
	}
}

func WithEnvPrefix(prefix string) OptionModifier {
	return func(l *loader) {
		l.envPrefix = prefix
	}
}

func DisableEnvLoading() OptionModifier {
	return func(l *loader) {
		l.disableEnvLoading = true
	}
}

// WithValues sets values on top of every other source.
func WithValues(values map[string]any) OptionModifier {
	return func(l *loader) {
		for key, value := range values {
			l.values[key] = value
		}
	}
}

// Load reads defaults, then config files, then the environment, then flags,
// then forced values. Later sources win. The result is validated.
func Load(opts ...OptionModifier) (*Config, error) {
	l := &loader{envPrefix: DefaultEnvPrefix, values: map[string]any{}}
	for _, opt := range opts {
		opt(l)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, f := range l.files {
		if err := k.Load(file.Provider(f), json.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load config file %s", f)
		}
	}

	if !l.disableEnvLoading {
		prefix := l.envPrefix
		if err := k.Load(env.Provider(prefix, ".", func(s string) string {
			return strings.ToLower(strings.TrimPrefix(s, prefix))
		}), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if l.flags != nil {
		if err := k.Load(confmap.Provider(flagValues(l.flags), "."), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if len(l.values) > 0 {
		if err := k.Load(confmap.Provider(l.values, "."), nil); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	var c Config
	if err := k.Unmarshal("", &c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func flagValues(flags *pflag.FlagSet) map[string]any {
	out := map[string]any{}
	flags.Visit(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		switch f.Value.Type() {
		case "stringArray":
			v, _ := flags.GetStringArray(f.Name)
			out[key] = v
		case "stringSlice":
			v, _ := flags.GetStringSlice(f.Name)
			out[key] = v
		default:
			out[key] = f.Value.String()
		}
	})
	return out
}
