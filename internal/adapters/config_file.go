package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"artifactory-cleanup/internal/ports"
	"artifactory-cleanup/internal/types"
)

type ConfigFileAdapter struct{}

func NewConfigFileAdapter() ConfigFileAdapter {
	return ConfigFileAdapter{}
}

func (a ConfigFileAdapter) Load(path string) (types.CleanupConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CleanupConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("config file not found").
			WithCause(err)
	}
	var config types.CleanupConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return types.CleanupConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse config yaml").
			WithCause(err)
	}
	if config.TimeThresholdDays <= 0 {
		config.TimeThresholdDays = types.DefaultTimeThresholdDays
	}
	if strings.TrimSpace(config.LogLevel) == "" {
		config.LogLevel = "info"
	}
	return config, nil
}

var _ ports.ConfigPort = ConfigFileAdapter{}
