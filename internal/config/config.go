package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix          = "JUNGLE"
	defaultHistoryFile = "/tmp/jungle_history.tmp"
	defaultPrompt      = "\033[32mjungle>\033[0m "
)

type Config struct {
	Debug       bool
	LogJSON     bool
	Bell        bool
	HistoryFile string
	Prompt      string
}

// Load resolves settings from flags, then JUNGLE_* environment variables,
// then an optional config file, then defaults.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("jungle", pflag.ContinueOnError)
	fs.Bool("debug", false, "enable debug logging")
	fs.Bool("log-json", false, "log as JSON instead of console text")
	fs.Bool("bell", false, "ring the terminal bell on captures and wins")
	fs.String("history-file", defaultHistoryFile, "readline history file")
	fs.String("prompt", defaultPrompt, "shell prompt")
	fs.String("config", "", "optional config file (yaml, toml or json)")
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "parse flags")
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	return &Config{
		Debug:       v.GetBool("debug"),
		LogJSON:     v.GetBool("log-json"),
		Bell:        v.GetBool("bell"),
		HistoryFile: v.GetString("history-file"),
		Prompt:      v.GetString("prompt"),
	}, nil
}
