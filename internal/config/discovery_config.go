package config

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type WeightsConfig struct {
	Skill    float64 `mapstructure:"skill" validate:"gte=0"`
	Role     float64 `mapstructure:"role" validate:"gte=0"`
	Location float64 `mapstructure:"location" validate:"gte=0"`
}

type DiscoveryConfig struct {
	PageSize            int           `mapstructure:"page_size" validate:"gte=1,lte=100"`
	SimilarDefaultLimit int           `mapstructure:"similar_default_limit" validate:"gte=1"`
	SimilarMaxLimit     int           `mapstructure:"similar_max_limit" validate:"gtefield=SimilarDefaultLimit"`
	SimilarMaxSkills    int           `mapstructure:"similar_max_skills" validate:"gte=1"`
	CandidatePool       int           `mapstructure:"candidate_pool" validate:"gte=1"`
	Weights             WeightsConfig `mapstructure:"weights"`
}

func (config DiscoveryConfig) validate() error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.Weights.Skill+config.Weights.Role+config.Weights.Location == 0 {
		return errors.New("at least one similarity weight must be positive")
	}
	return nil
}

func (config DiscoveryConfig) bindEnvironmentVariables() error {
	var errs []error

	if err := viper.BindEnv("discovery.weights.skill", "SIMILAR_SKILL_WEIGHT"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("discovery.weights.role", "SIMILAR_ROLE_WEIGHT"); err != nil {
		errs = append(errs, err)
	}
	if err := viper.BindEnv("discovery.weights.location", "SIMILAR_LOCATION_WEIGHT"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
