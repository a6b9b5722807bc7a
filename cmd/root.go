package cmd

import (
	"errors"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mockview/mockview/internal/behavior"
	"github.com/mockview/mockview/internal/evaluation"
	"github.com/mockview/mockview/internal/feedback"
	"github.com/mockview/mockview/internal/question"
)

const (
	app = "mockview"
)

// Config is the application configuration unmarshaled from the config file.
// Every section is optional; built-in defaults apply to whatever is omitted.
type Config struct {
	Interview *InterviewConfig `mapstructure:"interview"`
	AI        *AIConfig        `mapstructure:"ai"`
	// Roles are custom role definitions merged over the built-in catalog.
	Roles []map[string]any `mapstructure:"roles"`
}

// InterviewConfig groups the engine tunables.
type InterviewConfig struct {
	AverageQuestionTime time.Duration `mapstructure:"average-question-time"`
	EdgeCaseTolerance   int           `mapstructure:"edge-case-tolerance"`

	Evaluation *evaluation.Thresholds `mapstructure:"evaluation"`
	Behavior   *behavior.Limits       `mapstructure:"behavior"`
	Questions  *question.Config       `mapstructure:"questions"`
	Weights    *feedback.Weights      `mapstructure:"weights"`
}

// AIConfig configures the optional AI resume analyzer.
type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig stores Gemini provider configuration.
type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "mockview is a cli for running simulated job interviews with scored feedback",
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

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is mockview.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for the run command. If there is no config, the
	// built-in defaults are enough.
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return
		}
		// We can't proceed if an explicit config file parsed with error.
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

	return config, nil
}
