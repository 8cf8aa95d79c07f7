package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	LoggerLevel      logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs         bool         `envconfig:"LOG_TO_ECS" default:"false"`
	Values           []string     `envconfig:"LIST_VALUES" default:"1,2,3"`
	Removals         []string     `envconfig:"LIST_REMOVALS" default:"2,1,3,5"`
	PrintToLog       bool         `envconfig:"LIST_PRINT_TO_LOG" default:"false"`
	MetricsAddr      string       `envconfig:"METRICS_ADDR"` // empty disables the http server
	MetricsNamespace string       `envconfig:"METRICS_NAMESPACE" default:"linked_list"`
}

func Process(prefix string) (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process(prefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func GetConfig() *Config {
	cfg, err := Process("")
	if err != nil {
		panic(err)
	}

	return cfg
}
