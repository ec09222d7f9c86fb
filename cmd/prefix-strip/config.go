package main

import (
	"strings"

	"github.com/FZambia/viper-lite"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/pflag"

	"github.com/code-tool/prefix-strip/internal/rewrite"
)

type Config struct {
	// Logging section
	LogEncoding string `mapstructure:"log-encoding"`
	LogLevel    int    `mapstructure:"log-level"`

	LineBufferSize int `mapstructure:"line-buffer-size"`

	// Path of a node_exporter textfile, empty to disable
	MetricsTextfile string `mapstructure:"metrics-textfile"`
}

func parseCommandLineFlags() {
	pflag.String("log-encoding", "auto", "log encoding: auto, console or json")
	pflag.Int("log-level", 0, "log level, -1 debug, 0 info, 1 warn, 2 error")

	pflag.Int("line-buffer-size", rewrite.DefaultBufferSize, "Read buffer size (in bytes)")

	pflag.String("metrics-textfile", "", "write run metrics to this file in node_exporter textfile format")

	pflag.Parse()
}

func parseAllFlags() error {
	parseCommandLineFlags()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	return viper.BindPFlags(pflag.CommandLine)
}

func CreateConfigFromViper(v *viper.Viper) (*Config, error) {
	var conf Config

	err := v.UnmarshalExact(&conf)

	return &conf, err
}

func createConfig() (*Config, error) {
	if err := parseAllFlags(); err != nil {
		return nil, err
	}

	config, err := CreateConfigFromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}

	return config, nil
}
