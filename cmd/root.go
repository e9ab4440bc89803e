package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "jobapply"
)

type Config struct {
	Resume         string       `mapstructure:"resume"`
	JobDescription string       `mapstructure:"job-description"`
	Style          string       `mapstructure:"style"`
	OutputDir      string       `mapstructure:"output-dir"`
	Cache          *CacheConfig `mapstructure:"cache"`
	AI             *AIConfig    `mapstructure:"ai"`
}

type CacheConfig struct {
	Dir     string `mapstructure:"dir"`
	Enabled *bool  `mapstructure:"enabled"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobapply turns a resume and a job description into a tailored application email",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobapply.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: flags and environment variables can carry
	// a full run. A present but unparseable file is fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	applyDefaults(config)

	return config, nil
}

func applyDefaults(config *Config) {
	if config.Style == "" {
		config.Style = "auto"
	}
	if config.OutputDir == "" {
		config.OutputDir = "output"
	}
	if config.Cache == nil {
		config.Cache = &CacheConfig{}
	}
	if config.Cache.Dir == "" {
		config.Cache.Dir = "cache"
	}
	if config.AI == nil {
		config.AI = &AIConfig{}
	}
	if config.AI.Gemini == nil {
		config.AI.Gemini = &GeminiConfig{}
	}
	if config.AI.Gemini.MaxRetries == 0 {
		config.AI.Gemini.MaxRetries = 3
	}
}

func (c *CacheConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
