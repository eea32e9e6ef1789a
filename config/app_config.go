package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

// This is the global app config for the blockchain.
type AppConfig struct {
	// Divides GENESIS_DIFFICULTY to give how many 'F' a sealed hash needs.
	TARGET int `yaml:"target"`
	// Number of sentinel characters required at target 1.
	GENESIS_DIFFICULTY int `yaml:"genesis_difficulty"`
	// The fixed reward paid to the miner of each block.
	MINING_REWARD int64 `yaml:"mining_reward"`
	// Verify transaction signatures against the sender address on admission.
	VERIFY_SIGNATURES bool `yaml:"verify_signatures"`
	// Where rendered chain graphs are written.
	RENDER_DIR string `yaml:"render_dir"`
}

func Default() AppConfig {
	return AppConfig{
		TARGET:             1,
		GENESIS_DIFFICULTY: 4,
		MINING_REWARD:      100,
		VERIFY_SIGNATURES:  true,
		RENDER_DIR:         os.TempDir(),
	}
}

func (c AppConfig) Validate() error {
	if c.TARGET <= 0 {
		return errors.New("target must be positive")
	}
	if c.GENESIS_DIFFICULTY < 0 {
		return errors.New("genesis_difficulty must not be negative")
	}
	if c.MINING_REWARD <= 0 {
		return errors.New("mining_reward must be positive")
	}
	return nil
}

// ParseAppConfig reads a YAML config on top of the defaults.
func ParseAppConfig(path string) (AppConfig, error) {
	c := Default()
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(yamlFile, &c); err != nil {
		return c, err
	}
	return c, c.Validate()
}
