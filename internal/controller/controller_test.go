package controller

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/mockview/mockview/internal/catalog"
	"github.com/mockview/mockview/internal/evaluation"
	"github.com/mockview/mockview/internal/feedback"
	"github.com/mockview/mockview/internal/interview"
	"github.com/mockview/mockview/internal/question"
	"github.com/mockview/mockview/internal/session"
)

// stubAnalyzer returns a fixed analysis or error.
type stubAnalyzer struct {
	analysis *interview.ResumeAnalysis
	err      error
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ *interview.ResumeDocument, _ *interview.JobRole) (*interview.ResumeAnalysis, error) {
	return s.analysis, s.err
}

// solidAnswer clears every follow-up threshold without tripping the chatty
// word limit.
const solidAnswer = "First, I looked at the constraints because the requirements were vague and the deadline was close. " +
	"Then I sketched two designs and compared them, which means the team could weigh the trade-offs explicitly. " +
	"As a result we picked the simpler one and shipped it in stages. " +
	"Finally, I wrote down what we learned so the next project starts faster."

const vagueAnswer = "I worked on a team project."

func newTestController(t *testing.T, analyzer *stubAnalyzer) *Controller {
	t.Helper()

	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("building catalog: %s", err)
	}

	deps := Deps{
		Catalog:   cat,
		Sessions:  session.NewManager(session.NewMemoryStore(), nil),
		Questions: question.New(question.DefaultConfig(), rand.New(rand.NewSource(1)), nil),
		Evaluator: evaluation.New(evaluation.DefaultThresholds(), nil),
		Feedback:  feedback.New(feedback.DefaultWeights(), nil),
	}
	if analyzer != nil {
		deps.Analyzer = analyzer
	}

	return New(DefaultConfig(), deps)
}

func startSession(t *testing.T, c *Controller, mode interview.InteractionMode) (*interview.Session, *interview.Question) {
	t.Helper()

	sess, err := c.CreateSession("software-engineer", "mid", mode)
	if err != nil {
		t.Fatalf("create session: %s", err)
	}
	first, err := c.StartInterview(sess.ID)
	if err != nil {
		t.Fatalf("start interview: %s", err)
	}
	if first == nil {
		t.Fatalf("start must return the first question")
	}
	return sess, first
}

func TestFullInterviewReachesCompletion(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	total := len(sess.Questions)

	var final *interview.Action
	for turn := 0; turn < 50; turn++ {
		action, err := c.SubmitResponse(sess.ID, solidAnswer)
		if err != nil {
			t.Fatalf("turn %d: %s", turn, err)
		}
		if action.Type == interview.ActionComplete {
			final = action
			break
		}
		if action.Type != interview.ActionNextQuestion {
			t.Fatalf("turn %d: solid answers must advance, got %s", turn, action.Type)
		}
	}

	if final == nil {
		t.Fatalf("interview never completed")
	}
	if final.Report == nil {
		t.Fatalf("completion must carry the feedback report")
	}
	if sess.Status != interview.StatusCompleted {
		t.Fatalf("expected completed session, got %s", sess.Status)
	}
	if len(sess.Responses) != total {
		t.Fatalf("expected %d responses, got %d", total, len(sess.Responses))
	}
	if len(final.Report.QuestionBreakdown) != total {
		t.Fatalf("report breakdown has %d entries, want %d", len(final.Report.QuestionBreakdown), total)
	}
}

func TestVagueAnswerTriggersFollowUp(t *testing.T) {
	c := newTestController(t, nil)
	sess, first := startSession(t, c, "")

	action, err := c.SubmitResponse(sess.ID, vagueAnswer)
	if err != nil {
		t.Fatalf("submit: %s", err)
	}

	if action.Type != interview.ActionFollowUp {
		t.Fatalf("expected a follow-up, got %s", action.Type)
	}
	if action.Question.ParentQuestionID != first.ID {
		t.Fatalf("follow-up not linked to the original question")
	}
	if sess.CurrentQuestion() != action.Question {
		t.Fatalf("session must now point at the follow-up")
	}
}

func TestFollowUpCapThenAdvance(t *testing.T) {
	c := newTestController(t, nil)
	sess, first := startSession(t, c, "")

	for i := 0; i < 2; i++ {
		action, err := c.SubmitResponse(sess.ID, vagueAnswer)
		if err != nil {
			t.Fatalf("submit %d: %s", i, err)
		}
		if action.Type != interview.ActionFollowUp {
			t.Fatalf("submit %d: expected follow-up, got %s", i, action.Type)
		}
		// Both follow-ups hang off the original question, never off each other.
		if action.Question.ParentQuestionID != first.ID {
			t.Fatalf("submit %d: follow-up chained off %q instead of the original", i, action.Question.ParentQuestionID)
		}
	}

	action, err := c.SubmitResponse(sess.ID, vagueAnswer)
	if err != nil {
		t.Fatalf("submit after cap: %s", err)
	}
	if action.Type != interview.ActionNextQuestion {
		t.Fatalf("after the follow-up cap the interview must move on, got %s", action.Type)
	}
	if action.Question.IsFollowUp() {
		t.Fatalf("expected an original question after the cap")
	}
}

func TestSkipRequestExplainsConstraint(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	action, err := c.SubmitResponse(sess.ID, "skip question")
	if err != nil {
		t.Fatalf("submit: %s", err)
	}

	if action.Behavior != interview.BehaviorEdgeCase {
		t.Fatalf("expected edge-case behavior, got %s", action.Behavior)
	}
	if !strings.Contains(action.Message, "not supported") {
		t.Fatalf("message must explain that skipping is not supported, got %q", action.Message)
	}
	if sess.Status != interview.StatusInProgress {
		t.Fatalf("a skip request must not end the interview, got %s", sess.Status)
	}
}

func TestRepeatedSkipsRedirect(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	var action *interview.Action
	var err error
	for i := 0; i < DefaultConfig().EdgeCaseTolerance; i++ {
		action, err = c.SubmitResponse(sess.ID, "skip question")
		if err != nil {
			t.Fatalf("submit %d: %s", i, err)
		}
	}

	if action.Type != interview.ActionRedirect {
		t.Fatalf("expected a redirect after %d skips, got %s", DefaultConfig().EdgeCaseTolerance, action.Type)
	}
	if action.Question != sess.CurrentQuestion() {
		t.Fatalf("redirect must repeat the current question")
	}
	// The skipped answer is withdrawn, it must not count as progress.
	if _, ok := sess.Responses[action.Question.ID]; ok {
		t.Fatalf("the redirected question must still be unanswered")
	}
}

func TestNeutralModeSkipsAdaptation(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, interview.ModeNeutral)

	action, err := c.SubmitResponse(sess.ID, "skip question")
	if err != nil {
		t.Fatalf("submit: %s", err)
	}

	if strings.Contains(action.Message, "not supported") {
		t.Fatalf("neutral mode must not rewrite messages, got %q", action.Message)
	}
}

func TestResumeUploadPersonalizesQuestions(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &interview.ResumeAnalysis{
		Skills:         []string{"Python", "React", "AWS"},
		MatchedSkills:  []string{"Python", "React", "AWS"},
		AlignmentScore: 25,
	}}
	c := newTestController(t, analyzer)

	sess, err := c.CreateSession("Software Engineer", "senior", "")
	if err != nil {
		t.Fatalf("create session: %s", err)
	}

	doc := &interview.ResumeDocument{Text: "Skills: Python, React, AWS"}
	analysis, err := c.UploadResume(context.Background(), sess.ID, doc)
	if err != nil {
		t.Fatalf("upload resume: %s", err)
	}
	if len(analysis.MatchedSkills) != 3 {
		t.Fatalf("expected 3 matched skills, got %+v", analysis)
	}

	if _, err := c.StartInterview(sess.ID); err != nil {
		t.Fatalf("start interview: %s", err)
	}

	personalized := 0
	for _, q := range sess.Questions {
		if q.ResumeContext != "" {
			personalized++
			if !strings.Contains(q.Text, q.ResumeContext) {
				t.Fatalf("personalized question does not mention the skill: %+v", q)
			}
		}
	}
	if personalized == 0 {
		t.Fatalf("expected resume-personalized questions in the set")
	}
}

func TestAnalyzerFailureDegradesToMinimalAnalysis(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("quota exceeded")}
	c := newTestController(t, analyzer)

	sess, err := c.CreateSession("software-engineer", "mid", "")
	if err != nil {
		t.Fatalf("create session: %s", err)
	}

	analysis, err := c.UploadResume(context.Background(), sess.ID, &interview.ResumeDocument{Text: "whatever"})
	if err != nil {
		t.Fatalf("a failing analyzer must degrade, not error: %s", err)
	}

	if analysis.AlignmentScore != 0 {
		t.Fatalf("minimal analysis must have zero alignment, got %.1f", analysis.AlignmentScore)
	}
	if len(analysis.MissingSkills) == 0 {
		t.Fatalf("minimal analysis must list the role skills as missing")
	}

	// The interview still starts normally.
	if _, err := c.StartInterview(sess.ID); err != nil {
		t.Fatalf("start after degraded analysis: %s", err)
	}
}

func TestSubmitBeforeStartFails(t *testing.T) {
	c := newTestController(t, nil)

	sess, err := c.CreateSession("software-engineer", "entry", "")
	if err != nil {
		t.Fatalf("create session: %s", err)
	}

	_, err = c.SubmitResponse(sess.ID, solidAnswer)
	if !interview.IsInvalidStateTransition(err) {
		t.Fatalf("expected invalid state transition, got %v", err)
	}
}

func TestUnknownRoleAndSessionErrors(t *testing.T) {
	c := newTestController(t, nil)

	if _, err := c.CreateSession("astronaut", "mid", ""); !interview.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for unknown role, got %v", err)
	}
	if _, err := c.CreateSession("software-engineer", "principal", ""); !interview.IsInvalidInput(err) {
		t.Fatalf("expected invalid input for unknown level, got %v", err)
	}
	if _, err := c.StartInterview("missing"); !interview.IsSessionNotFound(err) {
		t.Fatalf("expected session not found, got %v", err)
	}
}

func TestProgressTracksAnswers(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	progress, err := c.GetProgress(sess.ID)
	if err != nil {
		t.Fatalf("progress: %s", err)
	}
	if progress.AnsweredQuestions != 0 || progress.PercentComplete != 0 {
		t.Fatalf("fresh interview must be at zero progress, got %+v", progress)
	}
	if progress.TotalQuestions != len(sess.Questions) {
		t.Fatalf("total mismatch: %d vs %d", progress.TotalQuestions, len(sess.Questions))
	}
	if progress.ExpectedDuration != c.GetExpectedDuration(progress.TotalQuestions) {
		t.Fatalf("expected duration mismatch")
	}

	if _, err := c.SubmitResponse(sess.ID, solidAnswer); err != nil {
		t.Fatalf("submit: %s", err)
	}

	progress, err = c.GetProgress(sess.ID)
	if err != nil {
		t.Fatalf("progress: %s", err)
	}
	if progress.AnsweredQuestions != 1 {
		t.Fatalf("expected 1 answered, got %d", progress.AnsweredQuestions)
	}
	if progress.PercentComplete <= 0 || progress.PercentComplete > 100 {
		t.Fatalf("percent out of range: %.1f", progress.PercentComplete)
	}
}

func TestEndInterviewEarlyProducesPartialReport(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	if _, err := c.SubmitResponse(sess.ID, solidAnswer); err != nil {
		t.Fatalf("submit: %s", err)
	}

	action, err := c.EndInterviewEarly(sess.ID)
	if err != nil {
		t.Fatalf("end early: %s", err)
	}

	if action.Type != interview.ActionComplete {
		t.Fatalf("expected a complete action, got %s", action.Type)
	}
	if action.Report == nil || !action.Report.EndedEarly {
		t.Fatalf("early termination must yield an early-flagged report")
	}
	if sess.Status != interview.StatusEndedEarly {
		t.Fatalf("expected ended-early status, got %s", sess.Status)
	}
	if len(action.Report.QuestionBreakdown) != 1 {
		t.Fatalf("partial report must cover the answered question only, got %d", len(action.Report.QuestionBreakdown))
	}
}

func TestContinuationOptionsAndTopicDrill(t *testing.T) {
	c := newTestController(t, nil)
	sess, _ := startSession(t, c, "")

	if _, err := c.GetContinuationOptions(sess.ID); !interview.IsInvalidStateTransition(err) {
		t.Fatalf("continuation before completion must fail, got %v", err)
	}

	// Weak answers guarantee improvement areas and thus topic drills.
	if _, err := c.EndInterviewEarly(sess.ID); err != nil {
		t.Fatalf("end early: %s", err)
	}

	options, err := c.GetContinuationOptions(sess.ID)
	if err != nil {
		t.Fatalf("continuation options: %s", err)
	}
	if len(options) == 0 || options[0].Kind != ContinuationNewRound {
		t.Fatalf("expected a new-round option first, got %+v", options)
	}

	newID, err := c.ContinueWithNewSession(ContinuationOption{
		Kind:  ContinuationTopicDrill,
		Role:  "software-engineer",
		Level: "mid",
		Topic: "system design",
	})
	if err != nil {
		t.Fatalf("continue: %s", err)
	}
	if newID == sess.ID {
		t.Fatalf("continuation must create a distinct session")
	}

	fresh, err := c.deps.Sessions.Get(newID)
	if err != nil {
		t.Fatalf("get new session: %s", err)
	}
	if fresh.FocusCategory != "system design" {
		t.Fatalf("topic drill must set the focus category, got %q", fresh.FocusCategory)
	}
	if fresh.Status != interview.StatusInitialized {
		t.Fatalf("continuation session must start fresh, got %s", fresh.Status)
	}
}

func TestBackToBackSessionsStayIsolated(t *testing.T) {
	c := newTestController(t, nil)

	first, _ := startSession(t, c, "")
	if _, err := c.SubmitResponse(first.ID, solidAnswer); err != nil {
		t.Fatalf("submit: %s", err)
	}

	second, _ := startSession(t, c, "")
	if second.ID == first.ID {
		t.Fatalf("sessions must have distinct ids")
	}
	if len(second.Responses) != 0 {
		t.Fatalf("second session leaked responses from the first")
	}
	if len(first.Responses) != 1 {
		t.Fatalf("first session lost its response")
	}
}
