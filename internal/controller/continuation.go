package controller

import (
	"fmt"

	"github.com/mockview/mockview/internal/interview"
)

// Continuation option kinds.
const (
	ContinuationNewRound   = "new-round"
	ContinuationTopicDrill = "topic-drill"
)

// ContinuationOption describes one way to keep practicing after a session
// finished. Choosing one creates a fresh session; the finished session is
// never mutated.
type ContinuationOption struct {
	Kind  string
	Label string

	Role  string
	Level string
	Mode  interview.InteractionMode
	// Topic is set for topic-drill options: the new session focuses its
	// questions on this category.
	Topic string
}

// GetContinuationOptions lists follow-on rounds for a finished session: a
// full new round plus a topic drill per reported improvement area.
func (c *Controller) GetContinuationOptions(sessionID string) ([]ContinuationOption, error) {
	sess, err := c.deps.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Terminal() {
		return nil, &interview.InvalidStateTransitionError{
			SessionID: sess.ID,
			Current:   sess.Status,
			Action:    "get continuation options",
		}
	}

	options := []ContinuationOption{
		{
			Kind:  ContinuationNewRound,
			Label: fmt.Sprintf("Another full round as %s (%s)", sess.Role.Name, sess.Level.Level),
			Role:  sess.Role.ID,
			Level: sess.Level.Level,
			Mode:  sess.Mode,
		},
	}

	if sess.Report != nil {
		for _, improvement := range sess.Report.Improvements {
			options = append(options, ContinuationOption{
				Kind:  ContinuationTopicDrill,
				Label: fmt.Sprintf("Drill into %s (%s priority)", improvement.Category, improvement.Priority),
				Role:  sess.Role.ID,
				Level: sess.Level.Level,
				Mode:  sess.Mode,
				Topic: improvement.Category,
			})
		}
	}

	return options, nil
}

// ContinueWithNewSession spins up a fresh session from a continuation
// option and returns its id. This is session creation, not state mutation of
// the old session.
func (c *Controller) ContinueWithNewSession(option ContinuationOption) (string, error) {
	sess, err := c.CreateSession(option.Role, option.Level, option.Mode)
	if err != nil {
		return "", err
	}

	if option.Kind == ContinuationTopicDrill && option.Topic != "" {
		sess.FocusCategory = option.Topic
	}

	return sess.ID, nil
}
