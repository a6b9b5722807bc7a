package interview

import (
	"strings"
	"time"
)

// Response is one candidate answer. Immutable once stored; a later answer to
// the same question id replaces the previous one.
type Response struct {
	QuestionID   string
	Text         string
	Timestamp    time.Time
	WordCount    int
	ResponseTime time.Duration
}

// NewResponse builds a response for the given question, computing the word
// count from the text.
func NewResponse(questionID, text string, asked time.Time) *Response {
	now := time.Now()

	var elapsed time.Duration
	if !asked.IsZero() && now.After(asked) {
		elapsed = now.Sub(asked)
	}

	return &Response{
		QuestionID:   questionID,
		Text:         text,
		Timestamp:    now,
		WordCount:    len(strings.Fields(text)),
		ResponseTime: elapsed,
	}
}

// Evaluation is the scored assessment of a single response. All scores are on
// a 0..10 scale.
type Evaluation struct {
	QuestionID        string
	DepthScore        float64
	ClarityScore      float64
	CompletenessScore float64

	// TechnicalAccuracy is populated only for technical questions;
	// TechnicalScored reports whether it carries a value.
	TechnicalAccuracy float64
	TechnicalScored   bool

	NeedsFollowUp  bool
	FollowUpReason string
}
