package interview

import "time"

// SessionStatus is the lifecycle state of an interview session.
type SessionStatus string

const (
	StatusInitialized SessionStatus = "initialized"
	StatusInProgress  SessionStatus = "in-progress"
	StatusCompleted   SessionStatus = "completed"
	StatusEndedEarly  SessionStatus = "ended-early"
)

// InteractionMode controls how strongly the engine adapts its tone
// to the candidate's communication style.
type InteractionMode string

const (
	// ModeAdaptive rewrites engine messages to match the classified behavior.
	ModeAdaptive InteractionMode = "adaptive"
	// ModeNeutral keeps every message in a neutral professional register.
	ModeNeutral InteractionMode = "neutral"
)

// Session is one end-to-end interview attempt. It is owned by the session
// manager for its whole lifetime and is not safe for concurrent use; callers
// embedding the engine behind a concurrent server must serialize access per
// session id.
type Session struct {
	ID             string
	Role           *JobRole
	Level          ExperienceLevel
	Mode           InteractionMode
	ResumeAnalysis *ResumeAnalysis

	// Questions is the ordered question list. Follow-ups are inserted right
	// after the question that spawned them.
	Questions   []*Question
	Responses   map[string]*Response
	Evaluations map[string]*Evaluation

	// Current is the index of the question currently presented to the candidate.
	Current int

	Behavior       BehaviorType
	BehaviorCounts map[BehaviorType]int
	// EdgeCaseStreak counts consecutive edge-case classified answers. It is
	// reset by any other classification.
	EdgeCaseStreak int

	// FocusCategory biases question generation toward a single category.
	// Set only for topic-drill continuation sessions.
	FocusCategory string

	Status    SessionStatus
	StartTime time.Time
	EndTime   time.Time
	// LastAskedAt is when the current question was presented. Used to compute
	// per-response timing.
	LastAskedAt time.Time

	Report *FeedbackReport
}

// CurrentQuestion returns the question currently awaiting an answer,
// or nil when the question list is exhausted.
func (s *Session) CurrentQuestion() *Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Current]
}

// FindQuestion returns the question with the given id, or nil.
func (s *Session) FindQuestion(id string) *Question {
	for _, q := range s.Questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// AnsweredCount returns the number of questions with a stored evaluation.
func (s *Session) AnsweredCount() int {
	return len(s.Evaluations)
}

// NextUnanswered returns the index of the first question after the current one
// without an evaluation, or -1 when every remaining question is answered.
func (s *Session) NextUnanswered() int {
	for i := s.Current + 1; i < len(s.Questions); i++ {
		if _, ok := s.Evaluations[s.Questions[i].ID]; !ok {
			return i
		}
	}
	return -1
}

// InsertAfterCurrent places q immediately after the current question,
// preserving the order of everything else.
func (s *Session) InsertAfterCurrent(q *Question) {
	at := s.Current + 1
	s.Questions = append(s.Questions, nil)
	copy(s.Questions[at+1:], s.Questions[at:])
	s.Questions[at] = q
}

// Terminal reports whether the session reached a terminal lifecycle state.
func (s *Session) Terminal() bool {
	return s.Status == StatusCompleted || s.Status == StatusEndedEarly
}
