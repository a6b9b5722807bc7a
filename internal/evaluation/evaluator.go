// Package evaluation scores candidate answers against question expectations.
// The evaluator never fails: missing or empty text degrades every score to
// its minimum instead of returning an error.
package evaluation

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// Thresholds are the tunable scoring constants. The numbers are heuristic
// product choices, kept configurable instead of baked into the logic.
type Thresholds struct {
	// LowScore is the cutoff under which a dimension counts as low quality.
	LowScore float64 `mapstructure:"low-score"`
	// MinWords is the floor under which an answer is implausibly short and
	// always triggers a follow-up.
	MinWords int `mapstructure:"min-words"`
	// ShortAnswerWords is the bound under which clarity is penalized.
	ShortAnswerWords int `mapstructure:"short-answer-words"`
	// DepthSaturationWords is where the word-count contribution to depth
	// stops growing.
	DepthSaturationWords int `mapstructure:"depth-saturation-words"`
}

// DefaultThresholds returns the built-in scoring constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowScore:             5.0,
		MinWords:             5,
		ShortAnswerWords:     10,
		DepthSaturationWords: 120,
	}
}

var reasoningMarkers = []string{
	"because", "therefore", "which means", "as a result",
	"so that", "leads to", "the reason", "in order to",
}

var discourseConnectors = []string{
	"first", "then", "next", "finally", "however",
	"for example", "for instance", "additionally", "on the other hand",
}

// Deficiency names used as follow-up reasons.
const (
	ReasonBrevity      = "brevity"
	ReasonDepth        = "depth"
	ReasonClarity      = "clarity"
	ReasonCompleteness = "completeness"
)

// Evaluator scores single responses.
type Evaluator struct {
	thresholds Thresholds
	logger     *zap.Logger
}

// New creates an evaluator. A nil logger falls back to a no-op one.
func New(thresholds Thresholds, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if thresholds.DepthSaturationWords <= 0 {
		thresholds = DefaultThresholds()
	}

	return &Evaluator{thresholds: thresholds, logger: logger}
}

// Evaluate scores the response against the question it answers. The role
// supplies the technical vocabulary used for accuracy scoring of technical
// questions; it may be nil.
func (e *Evaluator) Evaluate(resp *interview.Response, question *interview.Question, role *interview.JobRole) *interview.Evaluation {
	eval := &interview.Evaluation{}
	if question != nil {
		eval.QuestionID = question.ID
	}

	text := ""
	words := 0
	if resp != nil {
		text = strings.ToLower(strings.TrimSpace(resp.Text))
		words = resp.WordCount
		if words == 0 {
			words = len(strings.Fields(text))
		}
	}

	if text == "" {
		eval.NeedsFollowUp = true
		eval.FollowUpReason = ReasonBrevity
		if question != nil && question.Type == interview.QuestionTechnical {
			eval.TechnicalScored = true
		}
		return eval
	}

	eval.DepthScore = e.scoreDepth(text, words)
	eval.ClarityScore = e.scoreClarity(text, words)
	eval.CompletenessScore = e.scoreCompleteness(text, question, eval)

	if question != nil && question.Type == interview.QuestionTechnical {
		eval.TechnicalAccuracy = scoreTechnicalAccuracy(text, role)
		eval.TechnicalScored = true
	}

	eval.NeedsFollowUp, eval.FollowUpReason = e.decideFollowUp(eval, words)

	e.logger.Debug("evaluated response",
		zap.String("question_id", eval.QuestionID),
		zap.Int("words", words),
		zap.Float64("depth", eval.DepthScore),
		zap.Float64("clarity", eval.ClarityScore),
		zap.Float64("completeness", eval.CompletenessScore),
		zap.Bool("needs_follow_up", eval.NeedsFollowUp),
	)

	return eval
}

// scoreDepth scales with word count up to the saturation bound and rewards
// multi-step reasoning markers.
func (e *Evaluator) scoreDepth(text string, words int) float64 {
	saturation := e.thresholds.DepthSaturationWords

	capped := words
	if capped > saturation {
		capped = saturation
	}
	score := 7.0 * float64(capped) / float64(saturation)

	bonus := 0.0
	for _, marker := range reasoningMarkers {
		if strings.Contains(text, marker) {
			bonus++
		}
		if bonus >= 3 {
			break
		}
	}

	return clampScore(score + bonus)
}

// scoreClarity penalizes extremely short or run-on unstructured text and
// rewards discourse connectors and sentence boundaries.
func (e *Evaluator) scoreClarity(text string, words int) float64 {
	score := 5.0

	if words < e.thresholds.ShortAnswerWords {
		score -= 3
	}

	sentences := strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
	switch {
	case sentences == 0 && words > 30:
		// One long breathless run.
		score -= 2
	case sentences > 0:
		score += 2
	}

	for _, connector := range discourseConnectors {
		if strings.Contains(text, connector) {
			score++
		}
		if score >= 10 {
			break
		}
	}

	return clampScore(score)
}

// scoreCompleteness is the fraction of expected elements mentioned in the
// answer. Without expected elements it derives from depth and clarity.
func (e *Evaluator) scoreCompleteness(text string, question *interview.Question, eval *interview.Evaluation) float64 {
	if question == nil || len(question.ExpectedElements) == 0 {
		return clampScore((eval.DepthScore + eval.ClarityScore) / 2)
	}

	matched := 0
	for _, element := range question.ExpectedElements {
		if strings.Contains(text, strings.ToLower(element)) {
			matched++
		}
	}

	return clampScore(10 * float64(matched) / float64(len(question.ExpectedElements)))
}

func scoreTechnicalAccuracy(text string, role *interview.JobRole) float64 {
	if role == nil {
		return 0
	}

	hits := 0
	for _, skill := range role.TechnicalSkills {
		if strings.Contains(text, strings.ToLower(skill)) {
			hits++
		}
	}

	// Three distinct role-relevant terms already indicate solid grounding.
	return clampScore(10 * float64(hits) / 3)
}

func (e *Evaluator) decideFollowUp(eval *interview.Evaluation, words int) (bool, string) {
	if words < e.thresholds.MinWords {
		return true, ReasonBrevity
	}

	type dimension struct {
		name  string
		score float64
	}
	dims := []dimension{
		{ReasonDepth, eval.DepthScore},
		{ReasonClarity, eval.ClarityScore},
		{ReasonCompleteness, eval.CompletenessScore},
	}

	low := 0
	worst := dims[0]
	for _, d := range dims {
		if d.score < e.thresholds.LowScore {
			low++
		}
		if d.score < worst.score {
			worst = d
		}
	}

	if low >= 2 {
		return true, worst.name
	}

	return false, ""
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
