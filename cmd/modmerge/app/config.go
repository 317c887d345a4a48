package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/modsmith/modmerge/pkg/merge"
)

// Config holds the CLI configuration loaded from flags, environment
// variables, .env files, and the config file, in that precedence order.
type Config struct {
	ConfigFile string

	// Logging
	LogLevel  string
	LogFormat string

	// Default merge behavior; flags override per invocation
	Strategy         string
	UseExistingOrder bool
	AddNewComponents bool
	ValidateLinks    bool
	Sequential       bool

	// Heuristic defaults
	MinNameSimilarity float64
}

// LoadConfig loads configuration from all sources in order of precedence:
// command-line flags (handled by cobra), environment variables, .env
// files, the config file (~/.modmerge.yaml), and defaults.
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MODMERGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("strategy", merge.StrategyPreferIncoming.String())
	viper.SetDefault("add_new_components", true)
	viper.SetDefault("min_name_similarity", merge.DefaultHeuristics().MinNameSimilarity)
	viper.SetDefault("log_level", "info")

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".modmerge")
		}
	}

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	return &Config{
		ConfigFile:        viper.ConfigFileUsed(),
		LogLevel:          viper.GetString("log_level"),
		LogFormat:         viper.GetString("log_format"),
		Strategy:          viper.GetString("strategy"),
		UseExistingOrder:  viper.GetBool("use_existing_order"),
		AddNewComponents:  viper.GetBool("add_new_components"),
		ValidateLinks:     viper.GetBool("validate_links"),
		Sequential:        viper.GetBool("sequential"),
		MinNameSimilarity: viper.GetFloat64("min_name_similarity"),
	}, nil
}

// loadEnvFiles loads .env files from the working directory.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}
