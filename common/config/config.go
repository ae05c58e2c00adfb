package config

import (
	"log/slog"
	"os"

	"github.com/eventflow-app/eventflow-api/common"
	"github.com/eventflow-app/eventflow-api/common/util"
	"github.com/eventflow-app/eventflow-api/type/shared"
	"gopkg.in/yaml.v3"
)

func LoadConfig() {
	config := new(shared.Config)

	yml, readErr := os.ReadFile("config.yml")

	if readErr != nil {
		slog.Error("Failed to read config.yml", "error", readErr)
		os.Exit(1)
	}

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		slog.Error("Failed to unmarshal config.yml", "error", unmarshalErr)
		os.Exit(1)
	}

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		slog.Error("Invalid config.yml", "error", validateErr)
		os.Exit(1)
	}

	common.Config = config
}
