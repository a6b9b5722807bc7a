package controller

import (
	"time"

	"github.com/mockview/mockview/internal/interview"
)

// Progress reports how far a session has advanced.
type Progress struct {
	AnsweredQuestions int
	TotalQuestions    int
	PercentComplete   float64
	ExpectedDuration  time.Duration
	Status            interview.SessionStatus
}

// GetProgress returns the session's progress. Follow-ups count toward the
// total as they are spawned, so the percentage can dip when a follow-up is
// added.
func (c *Controller) GetProgress(sessionID string) (*Progress, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	total := len(sess.Questions)
	answered := sess.AnsweredCount()

	percent := 0.0
	if total > 0 {
		percent = 100 * float64(answered) / float64(total)
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return &Progress{
		AnsweredQuestions: answered,
		TotalQuestions:    total,
		PercentComplete:   percent,
		ExpectedDuration:  c.GetExpectedDuration(total),
		Status:            sess.Status,
	}, nil
}

// GetExpectedDuration is the planned interview length for the given question
// count, using the configured average question time.
func (c *Controller) GetExpectedDuration(totalQuestions int) time.Duration {
	if totalQuestions < 0 {
		totalQuestions = 0
	}
	return time.Duration(totalQuestions) * c.cfg.AverageQuestionTime
}
