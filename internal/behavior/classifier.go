// Package behavior labels the candidate's communication pattern and adapts
// engine messages to it. Classification is an ordered rule table; the first
// matching rule wins, which keeps precedence explicit and every branch
// directly testable.
package behavior

import (
	"strings"

	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// Limits are the tunable classification cutoffs.
type Limits struct {
	// ChattyWords is the word count above which an answer counts as chatty.
	ChattyWords int `mapstructure:"chatty-words"`
	// EfficientWords is the word count under which a dense technical answer
	// counts as efficient.
	EfficientWords int `mapstructure:"efficient-words"`
	// TangentMarkers is how many off-topic markers make an answer chatty
	// regardless of length.
	TangentMarkers int `mapstructure:"tangent-markers"`
}

// DefaultLimits returns the built-in classification cutoffs.
func DefaultLimits() Limits {
	return Limits{
		ChattyWords:    150,
		EfficientWords: 30,
		TangentMarkers: 2,
	}
}

var edgeCaseMarkers = []string{
	"skip", "next question", "pass on this", "refuse",
	"won't answer", "not answering", "don't want to answer",
}

var confusionMarkers = []string{
	"don't understand", "do not understand", "not sure what you mean",
	"can you help", "can you explain", "what do you mean",
	"confused", "can you rephrase", "what does that mean",
}

var tangentMarkers = []string{
	"by the way", "funny story", "speaking of", "reminds me",
	"off topic", "anyway", "long story short", "as i always say",
}

// Result is the classification outcome: the behavior type and the name of the
// rule that produced it.
type Result struct {
	Type interview.BehaviorType
	Rule string
}

// rule is one entry of the ordered decision table.
type rule struct {
	name    string
	kind    interview.BehaviorType
	matches func(c *Classifier, text string, words int) bool
}

// Classifier classifies responses against a role's technical vocabulary.
type Classifier struct {
	limits     Limits
	vocabulary []string
	logger     *zap.Logger
}

// New creates a classifier. The vocabulary is the role's technical skill list
// used for the efficient-answer density check; it may be empty.
func New(limits Limits, vocabulary []string, logger *zap.Logger) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limits.ChattyWords <= 0 {
		limits = DefaultLimits()
	}

	lowered := make([]string, 0, len(vocabulary))
	for _, term := range vocabulary {
		lowered = append(lowered, strings.ToLower(term))
	}

	return &Classifier{limits: limits, vocabulary: lowered, logger: logger}
}

// Rules are evaluated strictly in this order to avoid ambiguity between
// overlapping signals.
var rules = []rule{
	{
		name: "edge_case",
		kind: interview.BehaviorEdgeCase,
		matches: func(c *Classifier, text string, words int) bool {
			if text == "" {
				return true
			}
			for _, marker := range edgeCaseMarkers {
				if strings.Contains(text, marker) {
					return true
				}
			}
			return false
		},
	},
	{
		name: "confused",
		kind: interview.BehaviorConfused,
		matches: func(c *Classifier, text string, words int) bool {
			for _, marker := range confusionMarkers {
				if strings.Contains(text, marker) {
					return true
				}
			}
			// A bare question back at the interviewer.
			return words <= 12 && strings.HasSuffix(text, "?")
		},
	},
	{
		name: "chatty",
		kind: interview.BehaviorChatty,
		matches: func(c *Classifier, text string, words int) bool {
			if words > c.limits.ChattyWords {
				return true
			}
			tangents := 0
			for _, marker := range tangentMarkers {
				if strings.Contains(text, marker) {
					tangents++
				}
			}
			return tangents >= c.limits.TangentMarkers
		},
	},
	{
		name: "efficient",
		kind: interview.BehaviorEfficient,
		matches: func(c *Classifier, text string, words int) bool {
			if words == 0 || words >= c.limits.EfficientWords {
				return false
			}
			return c.technicalTerms(text) >= 2
		},
	},
	{
		name: "standard",
		kind: interview.BehaviorStandard,
		matches: func(*Classifier, string, int) bool { return true },
	},
}

// Classify labels the latest response. It never fails; unmatched input is
// standard by the final catch-all rule.
func (c *Classifier) Classify(resp *interview.Response) Result {
	text := ""
	words := 0
	if resp != nil {
		text = strings.ToLower(strings.TrimSpace(resp.Text))
		words = resp.WordCount
		if words == 0 {
			words = len(strings.Fields(text))
		}
	}

	for _, r := range rules {
		if r.matches(c, text, words) {
			c.logger.Debug("classified response",
				zap.String("rule", r.name),
				zap.Int("words", words),
			)
			return Result{Type: r.kind, Rule: r.name}
		}
	}

	// Unreachable: the last rule always matches.
	return Result{Type: interview.BehaviorStandard, Rule: "standard"}
}

func (c *Classifier) technicalTerms(text string) int {
	count := 0
	for _, term := range c.vocabulary {
		if strings.Contains(text, term) {
			count++
		}
	}
	return count
}
