package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// Action names used in state transition errors.
const (
	ActionUploadResume   = "upload resume"
	ActionStartInterview = "start interview"
	ActionSubmitResponse = "submit response"
	ActionEndEarly       = "end early"
)

// transitions maps action names to the statuses they are valid from. Any
// other combination fails with an InvalidStateTransitionError.
var transitions = map[string][]interview.SessionStatus{
	ActionUploadResume:   {interview.StatusInitialized},
	ActionStartInterview: {interview.StatusInitialized},
	ActionSubmitResponse: {interview.StatusInProgress},
	ActionEndEarly:       {interview.StatusInProgress},
}

// Manager owns session lifecycles: creation, the transition table, response
// bookkeeping and cleanup.
type Manager struct {
	store  Store
	logger *zap.Logger
}

// NewManager creates a manager over the given store. A nil logger falls back
// to a no-op one.
func NewManager(store Store, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Create makes a fresh initialized session for the role and level.
func (m *Manager) Create(role *interview.JobRole, level interview.ExperienceLevel, mode interview.InteractionMode) *interview.Session {
	if mode == "" {
		mode = interview.ModeAdaptive
	}

	session := &interview.Session{
		ID:             uuid.NewString(),
		Role:           role,
		Level:          level,
		Mode:           mode,
		Responses:      make(map[string]*interview.Response),
		Evaluations:    make(map[string]*interview.Evaluation),
		BehaviorCounts: make(map[interview.BehaviorType]int),
		Behavior:       interview.BehaviorStandard,
		Status:         interview.StatusInitialized,
	}
	m.store.Put(session)

	m.logger.Info("session created",
		zap.String("session_id", session.ID),
		zap.String("role", role.ID),
		zap.String("level", level.Level),
		zap.String("mode", string(mode)),
	)

	return session
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*interview.Session, error) {
	return m.store.Get(id)
}

// AttachResume stores a resume analysis on an initialized session.
func (m *Manager) AttachResume(id string, analysis *interview.ResumeAnalysis) error {
	session, err := m.store.Get(id)
	if err != nil {
		return err
	}
	if err := ensure(session, ActionUploadResume); err != nil {
		return err
	}

	session.ResumeAnalysis = analysis
	return nil
}

// Start moves the session to in-progress with the given question set.
func (m *Manager) Start(id string, questions []*interview.Question) (*interview.Session, error) {
	session, err := m.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := ensure(session, ActionStartInterview); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("session %s: cannot start with an empty question set", id)
	}

	session.Questions = questions
	session.Current = 0
	session.Status = interview.StatusInProgress
	session.StartTime = time.Now()
	session.LastAskedAt = session.StartTime

	m.logger.Info("interview started",
		zap.String("session_id", session.ID),
		zap.Int("questions", len(questions)),
	)

	return session, nil
}

// RecordResponse stores a response and its evaluation for a question of the
// session, keeping the responses/evaluations keys a subset of question ids.
func (m *Manager) RecordResponse(session *interview.Session, resp *interview.Response, eval *interview.Evaluation) error {
	if err := ensure(session, ActionSubmitResponse); err != nil {
		return err
	}
	if session.FindQuestion(resp.QuestionID) == nil {
		return fmt.Errorf("session %s: question %s is not part of this session", session.ID, resp.QuestionID)
	}

	session.Responses[resp.QuestionID] = resp
	session.Evaluations[resp.QuestionID] = eval
	return nil
}

// RecordBehavior updates the session's active behavior classification and
// its running counts.
func (m *Manager) RecordBehavior(session *interview.Session, t interview.BehaviorType) {
	session.Behavior = t
	session.BehaviorCounts[t]++

	if t == interview.BehaviorEdgeCase {
		session.EdgeCaseStreak++
	} else {
		session.EdgeCaseStreak = 0
	}
}

// Complete moves an in-progress session to its terminal state and attaches
// the report. Early termination is validated as the "end early" action.
func (m *Manager) Complete(session *interview.Session, report *interview.FeedbackReport, early bool) error {
	action := ActionSubmitResponse
	status := interview.StatusCompleted
	if early {
		action = ActionEndEarly
		status = interview.StatusEndedEarly
	}

	if err := ensure(session, action); err != nil {
		return err
	}

	session.Status = status
	session.EndTime = time.Now()
	session.Report = report

	m.logger.Info("session finished",
		zap.String("session_id", session.ID),
		zap.String("status", string(status)),
		zap.Int("answered", session.AnsweredCount()),
	)

	return nil
}

// Cleanup destroys the session. The id becomes unknown afterwards.
func (m *Manager) Cleanup(id string) error {
	if err := m.store.Delete(id); err != nil {
		return err
	}
	m.logger.Info("session cleaned up", zap.String("session_id", id))
	return nil
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	return m.store.Len()
}

func ensure(session *interview.Session, action string) error {
	for _, status := range transitions[action] {
		if session.Status == status {
			return nil
		}
	}

	return &interview.InvalidStateTransitionError{
		SessionID: session.ID,
		Current:   session.Status,
		Action:    action,
	}
}
