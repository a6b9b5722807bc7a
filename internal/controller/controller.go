// Package controller is the top-level orchestrator of the interview engine:
// it drives the per-turn protocol across the catalog, question generator,
// evaluator, behavior classifier, feedback generator and session manager.
package controller

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/behavior"
	"github.com/mockview/mockview/internal/catalog"
	"github.com/mockview/mockview/internal/evaluation"
	"github.com/mockview/mockview/internal/feedback"
	"github.com/mockview/mockview/internal/interview"
	"github.com/mockview/mockview/internal/logger"
	"github.com/mockview/mockview/internal/question"
	"github.com/mockview/mockview/internal/resume"
	"github.com/mockview/mockview/internal/session"
)

// Config holds the controller tunables.
type Config struct {
	// AverageQuestionTime is the per-question planning constant used for
	// expected duration reporting.
	AverageQuestionTime time.Duration `mapstructure:"average-question-time"`
	// EdgeCaseTolerance is how many consecutive edge-case answers are
	// tolerated before the controller redirects instead of proceeding.
	EdgeCaseTolerance int `mapstructure:"edge-case-tolerance"`
	// BehaviorLimits tunes the classifier cutoffs.
	BehaviorLimits behavior.Limits `mapstructure:"behavior"`
}

// DefaultConfig returns the built-in controller tunables.
func DefaultConfig() Config {
	return Config{
		AverageQuestionTime: 3 * time.Minute,
		EdgeCaseTolerance:   3,
		BehaviorLimits:      behavior.DefaultLimits(),
	}
}

// Deps aggregates the collaborators the controller orchestrates.
type Deps struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Manager
	Questions *question.Generator
	Evaluator *evaluation.Evaluator
	Feedback  *feedback.Generator
	Analyzer  resume.Analyzer
	Logger    *zap.Logger
}

// Controller exposes the engine's inbound operations. All operations are
// synchronous; per-session calls are expected from a single logical caller.
type Controller struct {
	cfg  Config
	deps Deps
}

// New creates a controller. A nil logger falls back to a no-op one.
func New(cfg Config, deps Deps) *Controller {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if cfg.EdgeCaseTolerance <= 0 {
		cfg.EdgeCaseTolerance = DefaultConfig().EdgeCaseTolerance
	}
	if cfg.AverageQuestionTime <= 0 {
		cfg.AverageQuestionTime = DefaultConfig().AverageQuestionTime
	}

	return &Controller{cfg: cfg, deps: deps}
}

// CreateSession validates the role and level and creates an initialized
// session. roleIDOrName accepts either the role id or its display name.
func (c *Controller) CreateSession(roleIDOrName, level string, mode interview.InteractionMode) (*interview.Session, error) {
	role, err := c.deps.Catalog.RoleByName(roleIDOrName)
	if err != nil {
		return nil, err
	}

	lvl, err := c.deps.Catalog.Level(level)
	if err != nil {
		return nil, err
	}

	return c.deps.Sessions.Create(role, lvl, mode), nil
}

// UploadResume runs the analysis collaborator on the document and stores the
// result on the session. Analyzer failures are absorbed: the session gets a
// minimal zero-alignment analysis and the interview can proceed.
func (c *Controller) UploadResume(ctx context.Context, sessionID string, doc *interview.ResumeDocument) (*interview.ResumeAnalysis, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	analysis := c.analyze(ctx, sess, doc)

	if err := c.deps.Sessions.AttachResume(sessionID, analysis); err != nil {
		return nil, err
	}

	return analysis, nil
}

func (c *Controller) analyze(ctx context.Context, sess *interview.Session, doc *interview.ResumeDocument) *interview.ResumeAnalysis {
	log := logger.WithSessionFields(c.deps.Logger, sess.ID, sess.Role.ID, sess.Level.Level)

	if c.deps.Analyzer == nil {
		log.Warn("no resume analyzer configured, storing minimal analysis")
		return interview.MinimalAnalysis(sess.Role)
	}

	analysis, err := c.deps.Analyzer.Analyze(ctx, doc, sess.Role)
	if err != nil || analysis == nil {
		log.Warn("resume analysis failed, degrading to minimal analysis", zap.Error(err))
		return interview.MinimalAnalysis(sess.Role)
	}

	log.Info("resume analyzed",
		zap.Float64("alignment", analysis.AlignmentScore),
		zap.Int("matched_skills", len(analysis.MatchedSkills)),
	)
	return analysis
}

// StartInterview generates the question set and moves the session to
// in-progress, returning the first question.
func (c *Controller) StartInterview(sessionID string) (*interview.Question, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	questions := c.deps.Questions.InitialSet(sess.Role, sess.Level, sess.ResumeAnalysis, sess.FocusCategory)

	sess, err = c.deps.Sessions.Start(sessionID, questions)
	if err != nil {
		return nil, err
	}

	return sess.CurrentQuestion(), nil
}

// SubmitResponse processes one candidate answer: evaluate, classify, then
// decide between follow-up, next question, redirect and completion.
func (c *Controller) SubmitResponse(sessionID, text string) (*interview.Action, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != interview.StatusInProgress {
		return nil, &interview.InvalidStateTransitionError{
			SessionID: sess.ID,
			Current:   sess.Status,
			Action:    session.ActionSubmitResponse,
		}
	}

	current := sess.CurrentQuestion()
	if current == nil {
		return nil, fmt.Errorf("session %s: no current question", sess.ID)
	}

	resp := interview.NewResponse(current.ID, text, sess.LastAskedAt)
	eval := c.deps.Evaluator.Evaluate(resp, current, sess.Role)

	classifier := behavior.New(c.cfg.BehaviorLimits, sess.Role.TechnicalSkills, c.deps.Logger)
	classified := classifier.Classify(resp)
	c.deps.Sessions.RecordBehavior(sess, classified.Type)

	if err := c.deps.Sessions.RecordResponse(sess, resp, eval); err != nil {
		return nil, err
	}

	log := logger.WithSessionFields(c.deps.Logger, sess.ID, sess.Role.ID, sess.Level.Level)
	log.Debug("response processed",
		zap.String("question_id", current.ID),
		zap.String("behavior", string(classified.Type)),
		zap.Bool("needs_follow_up", eval.NeedsFollowUp),
	)

	if classified.Type == interview.BehaviorEdgeCase && sess.EdgeCaseStreak >= c.cfg.EdgeCaseTolerance {
		return c.redirect(sess, current, classified.Type, eval), nil
	}

	return c.decide(sess, current, classified.Type, eval)
}

// redirect repeats the current question with a constraint explanation
// instead of advancing the interview.
func (c *Controller) redirect(sess *interview.Session, current *interview.Question, t interview.BehaviorType, eval *interview.Evaluation) *interview.Action {
	// The answer that triggered the redirect does not count as progress.
	delete(sess.Responses, current.ID)
	delete(sess.Evaluations, current.ID)

	message := c.adapt(sess, t,
		fmt.Sprintf("We still need an answer to continue: %s", current.Text))

	sess.LastAskedAt = time.Now()

	return &interview.Action{
		Type:           interview.ActionRedirect,
		Question:       current,
		Behavior:       t,
		Evaluation:     eval,
		Acknowledgment: behavior.Acknowledgment(t),
		Message:        message,
	}
}

func (c *Controller) decide(sess *interview.Session, current *interview.Question, t interview.BehaviorType, eval *interview.Evaluation) (*interview.Action, error) {
	parent := c.followUpParent(sess, current)

	if eval.NeedsFollowUp && parent != nil && parent.FollowUpCount < c.deps.Questions.MaxFollowUps() {
		followUp, err := c.deps.Questions.FollowUp(parent, eval.FollowUpReason)
		if err != nil {
			return nil, fmt.Errorf("generating follow-up: %w", err)
		}

		sess.InsertAfterCurrent(followUp)
		sess.Current++
		sess.LastAskedAt = time.Now()

		return &interview.Action{
			Type:           interview.ActionFollowUp,
			Question:       followUp,
			Behavior:       t,
			Evaluation:     eval,
			Acknowledgment: behavior.Acknowledgment(t),
			Message:        c.adapt(sess, t, followUp.Text),
		}, nil
	}

	if next := sess.NextUnanswered(); next >= 0 {
		sess.Current = next
		sess.LastAskedAt = time.Now()
		nextQuestion := sess.Questions[next]

		return &interview.Action{
			Type:           interview.ActionNextQuestion,
			Question:       nextQuestion,
			Behavior:       t,
			Evaluation:     eval,
			Acknowledgment: behavior.Acknowledgment(t),
			Message:        c.adapt(sess, t, behavior.Transition(t)+"\n\n"+nextQuestion.Text),
		}, nil
	}

	report := c.deps.Feedback.Generate(sess, false)
	if err := c.deps.Sessions.Complete(sess, report, false); err != nil {
		return nil, err
	}

	return &interview.Action{
		Type:           interview.ActionComplete,
		Behavior:       t,
		Evaluation:     eval,
		Acknowledgment: behavior.Acknowledgment(t),
		Message:        c.adapt(sess, t, "That was the last question. Your feedback report is ready."),
		Report:         report,
	}, nil
}

// followUpParent resolves the question the follow-up cap applies to: the
// current question itself, or its original parent when the current question
// is already a follow-up (chains stay one level deep).
func (c *Controller) followUpParent(sess *interview.Session, current *interview.Question) *interview.Question {
	if !current.IsFollowUp() {
		return current
	}
	return sess.FindQuestion(current.ParentQuestionID)
}

// EndInterviewEarly terminates an in-progress session and returns a complete
// action with a partial report built from the answers so far.
func (c *Controller) EndInterviewEarly(sessionID string) (*interview.Action, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	report := c.deps.Feedback.Generate(sess, true)
	if err := c.deps.Sessions.Complete(sess, report, true); err != nil {
		return nil, err
	}

	return &interview.Action{
		Type:           interview.ActionComplete,
		Behavior:       sess.Behavior,
		Acknowledgment: behavior.Acknowledgment(sess.Behavior),
		Message:        "The interview ended early. Your feedback covers the questions answered so far.",
		Report:         report,
	}, nil
}

// CleanupSession destroys the session state.
func (c *Controller) CleanupSession(sessionID string) error {
	return c.deps.Sessions.Cleanup(sessionID)
}

// adapt applies behavior-matched rewriting unless the session runs in
// neutral mode.
func (c *Controller) adapt(sess *interview.Session, t interview.BehaviorType, content string) string {
	if sess.Mode == interview.ModeNeutral {
		return content
	}
	return behavior.AdaptResponse(t, content)
}
