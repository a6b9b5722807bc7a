// Package feedback aggregates a session's evaluations into the final scored
// report. It works with any number of answered questions, so early-terminated
// sessions still get a well-formed partial report.
package feedback

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// Weights control the overall score combination. The 50/50 split is a
// product decision, kept configurable.
type Weights struct {
	Communication float64 `mapstructure:"communication"`
	Technical     float64 `mapstructure:"technical"`
}

// DefaultWeights returns the built-in score weighting.
func DefaultWeights() Weights {
	return Weights{Communication: 0.5, Technical: 0.5}
}

// gradeBands are fixed percentage cutoffs, highest first.
var gradeBands = []struct {
	min   float64
	grade string
}{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
	{0, "F"},
}

// improvementCutoff is the per-category average under which a category lands
// in the improvements list; strengthCutoff is where it counts as a strength.
const (
	strengthCutoff    = 7.0
	improvementCutoff = 6.0
)

// Generator builds feedback reports.
type Generator struct {
	weights Weights
	logger  *zap.Logger
}

// New creates a feedback generator. A nil logger falls back to a no-op one.
func New(weights Weights, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if weights.Communication <= 0 && weights.Technical <= 0 {
		weights = DefaultWeights()
	}

	return &Generator{weights: weights, logger: logger}
}

// Generate builds the report from the session's answered questions. It never
// fails: a session with zero answers produces a zero-scored report with an
// empty breakdown.
func (g *Generator) Generate(session *interview.Session, endedEarly bool) *interview.FeedbackReport {
	report := &interview.FeedbackReport{
		SessionID:  session.ID,
		EndedEarly: endedEarly,
	}

	breakdown := answeredBreakdown(session)
	report.QuestionBreakdown = breakdown

	report.Communication = g.communicationScores(session, breakdown)
	report.Technical = g.technicalScores(breakdown)

	report.OverallScore = g.overall(report.Communication.Total, report.Technical.Total)
	report.OverallGrade = gradeFor(report.OverallScore, 100)

	report.Strengths, report.Improvements = categoryFindings(breakdown)

	if session.ResumeAnalysis != nil {
		report.ResumeAlignment = &interview.ResumeAlignment{
			Score:         session.ResumeAnalysis.AlignmentScore,
			MatchedSkills: session.ResumeAnalysis.MatchedSkills,
			MissingSkills: session.ResumeAnalysis.MissingSkills,
		}
	}

	report.Summary = summarize(report)

	g.logger.Info("feedback report generated",
		zap.String("session_id", session.ID),
		zap.Float64("overall", report.OverallScore),
		zap.String("grade", report.OverallGrade),
		zap.Int("answered", len(breakdown)),
		zap.Bool("ended_early", endedEarly),
	)

	return report
}

func answeredBreakdown(session *interview.Session) []interview.QuestionResult {
	results := make([]interview.QuestionResult, 0, len(session.Evaluations))
	for _, q := range session.Questions {
		eval, ok := session.Evaluations[q.ID]
		if !ok {
			continue
		}
		results = append(results, interview.QuestionResult{
			Question:   q,
			Response:   session.Responses[q.ID],
			Evaluation: eval,
		})
	}
	return results
}

func (g *Generator) communicationScores(session *interview.Session, breakdown []interview.QuestionResult) interview.CommunicationScores {
	var scores interview.CommunicationScores
	if len(breakdown) == 0 {
		scores.Grade = gradeFor(0, 40)
		return scores
	}

	clarity, depth := 0.0, 0.0
	for _, r := range breakdown {
		clarity += r.Evaluation.ClarityScore
		depth += r.Evaluation.DepthScore
	}
	n := float64(len(breakdown))
	clarity /= n
	depth /= n

	scores.Clarity = clarity
	scores.Articulation = clamp10((clarity + depth) / 2)

	// Persistent chatty or confused classification depresses structure;
	// edge-case incidents depress professionalism.
	structurePenalty := behaviorShare(session, interview.BehaviorChatty)*3 +
		behaviorShare(session, interview.BehaviorConfused)*2
	scores.Structure = clamp10(clarity - structurePenalty)

	scores.Professionalism = clamp10(8 - behaviorShare(session, interview.BehaviorEdgeCase)*8 + behaviorShare(session, interview.BehaviorStandard)*2)

	scores.Total = scores.Clarity + scores.Articulation + scores.Structure + scores.Professionalism
	scores.Grade = gradeFor(scores.Total, 40)
	return scores
}

func (g *Generator) technicalScores(breakdown []interview.QuestionResult) interview.TechnicalScores {
	var scores interview.TechnicalScores

	depth, accuracy, relevance := 0.0, 0.0, 0.0
	n := 0.0
	for _, r := range breakdown {
		if r.Question.Type != interview.QuestionTechnical {
			continue
		}
		depth += r.Evaluation.DepthScore
		accuracy += r.Evaluation.TechnicalAccuracy
		relevance += r.Evaluation.CompletenessScore
		n++
	}

	if n > 0 {
		scores.Depth = depth / n
		scores.Accuracy = accuracy / n
		scores.Relevance = relevance / n
		scores.ProblemSolving = clamp10((scores.Depth + scores.Relevance) / 2)
	}

	scores.Total = scores.Depth + scores.Accuracy + scores.Relevance + scores.ProblemSolving
	scores.Grade = gradeFor(scores.Total, 40)
	return scores
}

func (g *Generator) overall(communication, technical float64) float64 {
	totalWeight := g.weights.Communication + g.weights.Technical
	if totalWeight == 0 {
		return 0
	}

	// Both totals are out of 40; normalize the weighted mix to 100.
	weighted := (g.weights.Communication*communication + g.weights.Technical*technical) / totalWeight
	score := weighted / 40 * 100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func categoryFindings(breakdown []interview.QuestionResult) ([]string, []interview.Improvement) {
	type tally struct {
		name  string
		sum   float64
		count float64
	}

	tallies := make(map[string]*tally)
	order := make([]string, 0)
	for _, r := range breakdown {
		t, ok := tallies[r.Question.Category]
		if !ok {
			t = &tally{name: r.Question.Category}
			tallies[r.Question.Category] = t
			order = append(order, r.Question.Category)
		}
		t.sum += composite(r.Evaluation)
		t.count++
	}

	strengths := make([]string, 0)
	improvements := make([]interview.Improvement, 0)
	averages := make(map[string]float64)

	for _, name := range order {
		t := tallies[name]
		avg := t.sum / t.count
		averages[name] = avg

		switch {
		case avg >= strengthCutoff:
			strengths = append(strengths, fmt.Sprintf("Consistently strong answers in %s", name))
		case avg < improvementCutoff:
			improvements = append(improvements, interview.Improvement{
				Category:    name,
				Priority:    priorityFor(avg),
				Observation: fmt.Sprintf("Answers in %s averaged %.1f/10", name, avg),
				Suggestion:  fmt.Sprintf("Practice structured answers in %s: state the situation, your reasoning, and the outcome", name),
			})
		}
	}

	// Worst category first.
	sort.SliceStable(improvements, func(i, j int) bool {
		return averages[improvements[i].Category] < averages[improvements[j].Category]
	})

	return strengths, improvements
}

func composite(eval *interview.Evaluation) float64 {
	score := (eval.DepthScore + eval.ClarityScore + eval.CompletenessScore) / 3
	if eval.TechnicalScored {
		score = (score*3 + eval.TechnicalAccuracy) / 4
	}
	return score
}

// priorityFor ranks an improvement by how far below the cutoff it sits.
func priorityFor(avg float64) interview.ImprovementPriority {
	switch {
	case avg < 3:
		return interview.PriorityHigh
	case avg < 4.5:
		return interview.PriorityMedium
	default:
		return interview.PriorityLow
	}
}

func gradeFor(score, max float64) string {
	if max <= 0 {
		return "F"
	}

	percent := score / max * 100
	for _, band := range gradeBands {
		if percent >= band.min {
			return band.grade
		}
	}
	return "F"
}

func behaviorShare(session *interview.Session, t interview.BehaviorType) float64 {
	total := 0
	for _, count := range session.BehaviorCounts {
		total += count
	}
	if total == 0 {
		return 0
	}
	return float64(session.BehaviorCounts[t]) / float64(total)
}

func summarize(report *interview.FeedbackReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall grade %s (%.0f/100).", report.OverallGrade, report.OverallScore)

	if len(report.Strengths) > 0 {
		fmt.Fprintf(&b, " Top strength: %s.", strings.ToLower(report.Strengths[0][:1])+report.Strengths[0][1:])
	}
	if len(report.Improvements) > 0 {
		fmt.Fprintf(&b, " Main area to improve: %s (%s priority).",
			report.Improvements[0].Category, report.Improvements[0].Priority)
	}
	if report.EndedEarly {
		b.WriteString(" The interview ended early; scores reflect the questions answered so far.")
	}

	return b.String()
}

func clamp10(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
