package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.dw1.io/safemath"
)

// configName is the config file name without extension.
const configName = ".castgen"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for castgen settings.
const envPrefix = "CASTGEN"

// LoadConfig loads configuration from defaults, the config file, env vars
// and flags, in increasing order of precedence.
//
// If configPath is non-empty it is used as the explicit config file path and
// must exist. Otherwise .castgen.yaml is looked up in the working directory
// and a missing file is not an error. flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault(KeyMaxLen, DefaultMaxLen)
	v.SetDefault(KeyPackage, DefaultPackage)
	v.SetDefault(KeyOut, DefaultOut)
	v.SetDefault(KeyTestOut, DefaultTestOut)
}

// decode coerces the raw settings. Values from env vars and YAML arrive as
// strings or arbitrary numbers, so max-len goes through cast and then a
// checked narrowing to uint8.
func decode(v *viper.Viper) (*Config, error) {
	n, err := cast.ToInt64E(v.Get(KeyMaxLen))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", KeyMaxLen)
	}

	maxLen, err := safemath.ConvertAny[uint8](n)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", KeyMaxLen)
	}

	pkg, err := cast.ToStringE(v.Get(KeyPackage))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", KeyPackage)
	}

	out, err := cast.ToStringE(v.Get(KeyOut))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", KeyOut)
	}

	testOut, err := cast.ToStringE(v.Get(KeyTestOut))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", KeyTestOut)
	}

	return &Config{
		Package: pkg,
		MaxLen:  maxLen,
		Out:     out,
		TestOut: testOut,
	}, nil
}
