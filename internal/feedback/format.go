package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mockview/mockview/internal/interview"
)

// FormatReport renders the report as readable text for terminal output.
func FormatReport(report *interview.FeedbackReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall: %.0f/100 (grade %s)\n", report.OverallScore, report.OverallGrade)
	fmt.Fprintf(&b, "Communication: %.1f/40 (grade %s): clarity %.1f, articulation %.1f, structure %.1f, professionalism %.1f\n",
		report.Communication.Total, report.Communication.Grade,
		report.Communication.Clarity, report.Communication.Articulation,
		report.Communication.Structure, report.Communication.Professionalism,
	)
	fmt.Fprintf(&b, "Technical: %.1f/40 (grade %s): depth %.1f, accuracy %.1f, relevance %.1f, problem solving %.1f\n",
		report.Technical.Total, report.Technical.Grade,
		report.Technical.Depth, report.Technical.Accuracy,
		report.Technical.Relevance, report.Technical.ProblemSolving,
	)

	if len(report.Strengths) > 0 {
		b.WriteString("\nStrengths:\n")
		for _, s := range report.Strengths {
			fmt.Fprintf(&b, "  + %s\n", s)
		}
	}

	if len(report.Improvements) > 0 {
		b.WriteString("\nImprovements (worst first):\n")
		for _, imp := range report.Improvements {
			fmt.Fprintf(&b, "  - [%s] %s: %s. %s\n", imp.Priority, imp.Category, imp.Observation, imp.Suggestion)
		}
	}

	if report.ResumeAlignment != nil {
		fmt.Fprintf(&b, "\nResume alignment: %.0f%% (matched: %s; missing: %s)\n",
			report.ResumeAlignment.Score,
			joinOrNone(report.ResumeAlignment.MatchedSkills),
			joinOrNone(report.ResumeAlignment.MissingSkills),
		)
	}

	if len(report.QuestionBreakdown) > 0 {
		b.WriteString("\nPer-question breakdown:\n")
		for i, r := range report.QuestionBreakdown {
			fmt.Fprintf(&b, "  %d. [%s/%s] depth %.1f, clarity %.1f, completeness %.1f",
				i+1, r.Question.Type, r.Question.Category,
				r.Evaluation.DepthScore, r.Evaluation.ClarityScore, r.Evaluation.CompletenessScore,
			)
			if r.Evaluation.TechnicalScored {
				fmt.Fprintf(&b, ", technical accuracy %.1f", r.Evaluation.TechnicalAccuracy)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%s\n", report.Summary)

	return b.String()
}

// DumpToTmpFile writes the report as indented JSON to a temporary file and
// returns its path.
func DumpToTmpFile(report *interview.FeedbackReport) (string, error) {
	file, err := os.CreateTemp("", "interview_report_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
