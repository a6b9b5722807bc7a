package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/behavior"
	"github.com/mockview/mockview/internal/catalog"
	"github.com/mockview/mockview/internal/controller"
	"github.com/mockview/mockview/internal/evaluation"
	"github.com/mockview/mockview/internal/feedback"
	"github.com/mockview/mockview/internal/interview"
	"github.com/mockview/mockview/internal/logger"
	"github.com/mockview/mockview/internal/question"
	"github.com/mockview/mockview/internal/resume"
	"github.com/mockview/mockview/internal/resume/gemini"
	"github.com/mockview/mockview/internal/resume/keyword"
	"github.com/mockview/mockview/internal/secrets"
	"github.com/mockview/mockview/internal/session"
)

const (
	PromptExit         = "Exit"
	PromptDumpReport   = "Dump report to file"
	PromptEndEarly     = "/end"
	defaultInteraction = interview.ModeAdaptive
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive mock interview",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("role", "", "job role id or name (prompted when unset)")
	runCmd.Flags().String("level", "", "experience level (prompted when unset)")
	runCmd.Flags().String("resume", "", "path to a plain-text resume file")
	runCmd.Flags().Bool("neutral", false, "disable tone adaptation")
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

	logger.Info("starting mockview", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	ctl, cat, err := buildController(ctx, config, logger)
	if err != nil {
		logger.Fatal("building the interview engine", zap.Error(err))
	}

	role, level, err := chooseRoleAndLevel(cmd, cat)
	if err != nil {
		logger.Fatal("choosing role and level", zap.Error(err))
	}

	mode := defaultInteraction
	if flagBool(cmd, "neutral") {
		mode = interview.ModeNeutral
	}

	sess, err := ctl.CreateSession(role, level, mode)
	if err != nil {
		logger.Fatal("creating session", zap.Error(err))
	}

	if path := flagString(cmd, "resume"); path != "" {
		uploadResume(ctx, ctl, sess.ID, path, logger)
	}

	first, err := ctl.StartInterview(sess.ID)
	if err != nil {
		logger.Fatal("starting interview", zap.Error(err))
	}

	progress, err := ctl.GetProgress(sess.ID)
	if err != nil {
		logger.Fatal("getting progress", zap.Error(err))
	}

	fmt.Printf("\n%d questions, roughly %s. Answer in free text; type %s to stop early.\n\n",
		progress.TotalQuestions, progress.ExpectedDuration, PromptEndEarly)

	report, err := interviewLoop(ctl, sess.ID, first)
	if err != nil {
		logger.Fatal("running interview", zap.Error(err))
	}

	fmt.Printf("\n%s\n", feedback.FormatReport(report))

	if err := continuationLoop(ctx, ctl, sess.ID, report, logger); err != nil && !errors.Is(err, errExit) {
		logger.Fatal("continuation", zap.Error(err))
	}
}

// interviewLoop drives question/answer turns until the engine completes the
// session, returning the feedback report.
func interviewLoop(ctl *controller.Controller, sessionID string, first *interview.Question) (*interview.FeedbackReport, error) {
	fmt.Printf("Question: %s\n", first.Text)

	for {
		answer, err := askAnswer()
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(strings.TrimSpace(answer), PromptEndEarly) {
			action, err := ctl.EndInterviewEarly(sessionID)
			if err != nil {
				return nil, err
			}
			fmt.Printf("\n%s\n", action.Message)
			return action.Report, nil
		}

		action, err := ctl.SubmitResponse(sessionID, answer)
		if err != nil {
			return nil, err
		}

		fmt.Printf("\n%s\n", action.Acknowledgment)

		switch action.Type {
		case interview.ActionComplete:
			fmt.Printf("%s\n", action.Message)
			return action.Report, nil
		case interview.ActionFollowUp, interview.ActionNextQuestion, interview.ActionRedirect:
			fmt.Printf("%s\n", action.Message)
		default:
			return nil, fmt.Errorf("unexpected action type: %s", action.Type)
		}
	}
}

// continuationLoop offers follow-on rounds after a finished interview.
func continuationLoop(ctx context.Context, ctl *controller.Controller, sessionID string, report *interview.FeedbackReport, logger *zap.Logger) error {
	for {
		options, err := ctl.GetContinuationOptions(sessionID)
		if err != nil {
			return err
		}

		items := make([]string, 0, len(options)+2)
		for _, option := range options {
			items = append(items, option.Label)
		}
		items = append(items, PromptDumpReport, PromptExit)

		prompt := promptui.Select{
			Label: "What next?",
			Items: items,
		}

		_, selected, err := prompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptExit:
			if err := ctl.CleanupSession(sessionID); err != nil {
				logger.Warn("cleaning up session", zap.Error(err))
			}
			return errExit
		case PromptDumpReport:
			filename, err := feedback.DumpToTmpFile(report)
			if err != nil {
				return fmt.Errorf("dump report to file: %w", err)
			}
			logger.Info("dumped report to file", zap.String("filename", filename))
		default:
			for _, option := range options {
				if option.Label != selected {
					continue
				}

				newID, err := ctl.ContinueWithNewSession(option)
				if err != nil {
					return err
				}

				first, err := ctl.StartInterview(newID)
				if err != nil {
					return err
				}

				newReport, err := interviewLoop(ctl, newID, first)
				if err != nil {
					return err
				}

				fmt.Printf("\n%s\n", feedback.FormatReport(newReport))
				sessionID, report = newID, newReport
				break
			}
		}
	}
}

func askAnswer() (string, error) {
	prompt := promptui.Prompt{
		Label: "Your answer",
	}
	return prompt.Run()
}

func chooseRoleAndLevel(cmd *cobra.Command, cat *catalog.Catalog) (string, string, error) {
	role := flagString(cmd, "role")
	if role == "" {
		prompt := promptui.Select{
			Label: "Choose a role",
			Items: cat.RoleIDs(),
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return "", "", err
		}
		role = selected
	}

	level := flagString(cmd, "level")
	if level == "" {
		prompt := promptui.Select{
			Label: "Choose an experience level",
			Items: cat.LevelNames(),
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return "", "", err
		}
		level = selected
	}

	return role, level, nil
}

func uploadResume(ctx context.Context, ctl *controller.Controller, sessionID, path string, logger *zap.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("reading resume file, proceeding without resume", zap.Error(err))
		return
	}

	analysis, err := ctl.UploadResume(ctx, sessionID, &interview.ResumeDocument{
		Title: path,
		Text:  string(data),
	})
	if err != nil {
		logger.Warn("uploading resume, proceeding without resume", zap.Error(err))
		return
	}

	logger.Info("resume analyzed",
		zap.Float64("alignment", analysis.AlignmentScore),
		zap.Int("matched_skills", len(analysis.MatchedSkills)),
	)
}

// buildController assembles the engine from the config.
func buildController(ctx context.Context, config *Config, log *zap.Logger) (*controller.Controller, *catalog.Catalog, error) {
	cat, err := catalog.New(configRoles(config)...)
	if err != nil {
		return nil, nil, fmt.Errorf("building role catalog: %w", err)
	}

	thresholds := evaluation.DefaultThresholds()
	limits := behavior.DefaultLimits()
	questionCfg := question.DefaultConfig()
	weights := feedback.DefaultWeights()
	ctlCfg := controller.DefaultConfig()

	if config != nil && config.Interview != nil {
		if config.Interview.Evaluation != nil {
			thresholds = *config.Interview.Evaluation
		}
		if config.Interview.Behavior != nil {
			limits = *config.Interview.Behavior
		}
		if config.Interview.Questions != nil {
			questionCfg = *config.Interview.Questions
		}
		if config.Interview.Weights != nil {
			weights = *config.Interview.Weights
		}
		if config.Interview.AverageQuestionTime > 0 {
			ctlCfg.AverageQuestionTime = config.Interview.AverageQuestionTime
		}
		if config.Interview.EdgeCaseTolerance > 0 {
			ctlCfg.EdgeCaseTolerance = config.Interview.EdgeCaseTolerance
		}
	}
	ctlCfg.BehaviorLimits = limits

	analyzer, err := newAnalyzer(ctx, configAI(config), log)
	if err != nil {
		log.Warn("falling back to the keyword resume analyzer", zap.Error(err))
		analyzer = keyword.New(log)
	}

	ctl := controller.New(ctlCfg, controller.Deps{
		Catalog:   cat,
		Sessions:  session.NewManager(session.NewMemoryStore(), log),
		Questions: question.New(questionCfg, nil, log),
		Evaluator: evaluation.New(thresholds, log),
		Feedback:  feedback.New(weights, log),
		Analyzer:  analyzer,
		Logger:    log,
	})

	return ctl, cat, nil
}

// newAnalyzer picks the resume analyzer: Gemini when enabled and configured,
// the keyword analyzer otherwise.
func newAnalyzer(ctx context.Context, cfg *AIConfig, log *zap.Logger) (resume.Analyzer, error) {
	if cfg == nil || !cfg.Enabled {
		return keyword.New(log), nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model)
	if err != nil {
		return nil, err
	}

	analyzerLogger := logger.WithProviderFields(log, "gemini", generator.Model())

	return gemini.NewAnalyzer(generator, cfg.Gemini.MaxLogLength, analyzerLogger), nil
}

func configRoles(config *Config) []map[string]any {
	if config == nil {
		return nil
	}
	return config.Roles
}

func configAI(config *Config) *AIConfig {
	if config == nil {
		return nil
	}
	return config.AI
}

func flagString(cmd *cobra.Command, name string) string {
	flag := cmd.Flag(name)
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(flag.Value.String())
}

func flagBool(cmd *cobra.Command, name string) bool {
	flag := cmd.Flag(name)
	if flag == nil {
		return false
	}
	return strings.EqualFold(flag.Value.String(), "true")
}
