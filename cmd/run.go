package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/yksoni-monk/JobApplicationAI/internal/ai"
	"github.com/yksoni-monk/JobApplicationAI/internal/ai/gemini"
	"github.com/yksoni-monk/JobApplicationAI/internal/cache"
	"github.com/yksoni-monk/JobApplicationAI/internal/document"
	"github.com/yksoni-monk/JobApplicationAI/internal/email"
	"github.com/yksoni-monk/JobApplicationAI/internal/logger"
	"github.com/yksoni-monk/JobApplicationAI/internal/pipeline"
	"github.com/yksoni-monk/JobApplicationAI/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the jobapply workflow",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resume", "r", "", "path to the resume PDF")
	runCmd.Flags().String("job", "", "path to the job description text file")
	runCmd.Flags().StringP("style", "s", "", fmt.Sprintf("email style: auto or one of %s", strings.Join(email.Styles(), ", ")))
	runCmd.Flags().StringP("output-dir", "o", "", "directory for the generated email and results")
	runCmd.Flags().Bool("no-cache", false, "skip the document cache for this run")
	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before generating")

	viper.BindPFlag("resume", runCmd.Flags().Lookup("resume"))
	viper.BindPFlag("job-description", runCmd.Flags().Lookup("job"))
	viper.BindPFlag("style", runCmd.Flags().Lookup("style"))
	viper.BindPFlag("output-dir", runCmd.Flags().Lookup("output-dir"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobapply", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config.Resume == "" {
		logger.Fatal("a resume PDF is required", zap.String("hint", "pass --resume or set 'resume' in the configuration file"))
	}
	if config.JobDescription == "" {
		logger.Fatal("a job description file is required", zap.String("hint", "pass --job or set 'job-description' in the configuration file"))
	}

	documents := document.NewParser(buildCache(cmd, config, logger), logger)

	analyzer, generator := buildAI(ctx, config.AI, logger)

	if cmd.Flag("auto-approve").Value.String() == "false" {
		logger.Info("about to generate an application email",
			zap.String("resume", config.Resume),
			zap.String("job", config.JobDescription),
			zap.String("style", config.Style),
		)

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	p, err := pipeline.New(pipeline.Deps{
		Documents: documents,
		Generator: generator,
		Analyzer:  analyzer,
		Logger:    logger,
		OutputDir: config.OutputDir,
	})
	if err != nil {
		logger.Fatal("building the pipeline", zap.Error(err))
	}

	result, err := p.Run(ctx, config.Resume, config.JobDescription, config.Style)
	if err != nil {
		logger.Fatal("workflow failed", zap.Error(err))
	}

	printResult(result)
}

// buildCache returns nil when caching is turned off, which the parser treats
// as parse-every-time.
func buildCache(cmd *cobra.Command, config *Config, logger *zap.Logger) *cache.Cache {
	if cmd.Flag("no-cache").Value.String() == "true" || !config.Cache.IsEnabled() {
		logger.Info("document cache disabled")
		return nil
	}

	c, err := cache.New(config.Cache.Dir, logger)
	if err != nil {
		logger.Fatal("opening the document cache", zap.Error(err))
	}

	return c
}

func buildAI(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (pipeline.ResumeAnalyzer, ai.Generator) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		logger.Fatal("unsupported ai provider", zap.String("provider", cfg.Provider))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		logger.Fatal(
			"loading gemini api key",
			zap.Error(err),
			zap.String("hint", "set GEMINI_API_KEY_FILE environment variable or the 'ai.gemini.api-key-file' key in the configuration file"),
		)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		logger.Fatal("building the gemini generator", zap.Error(err))
	}

	if !cfg.Enabled {
		// The generator still powers summaries and refinement. Only the
		// structured resume analysis is optional.
		return nil, generator
	}

	return gemini.NewInsights(generator), generator
}

func printResult(result *pipeline.Result) {
	fmt.Println()
	fmt.Println("=== Workflow completed ===")
	fmt.Printf("Email style:        %s\n", result.EmailStyleUsed)
	fmt.Printf("Skill match score:  %.0f%%\n", result.Strategy.SkillMatchScore*100)
	fmt.Printf("Relevant sections:  %d\n", result.Strategy.RelevantExperienceCount)
	fmt.Printf("Assessment:         %s\n", result.Summary.OverallAssessment)
	fmt.Println()
	fmt.Printf("Email written to:   %s\n", result.EmailPath)
	fmt.Printf("Results written to: %s\n", result.ResultsPath)

	if result.RefinementSuggestions != "" {
		fmt.Println()
		fmt.Println("Refinement suggestions:")
		fmt.Println(result.RefinementSuggestions)
	}
}
