// Package keyword is the heuristic resume analyzer. It needs no external
// service: skills are keyword-matched against the role's technical skill
// list and the alignment score is the matched fraction.
package keyword

import (
	"context"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// sections is the pre-structured shape an upstream parser may place in
// ResumeDocument.Raw.
type sections struct {
	Skills     []string `mapstructure:"skills"`
	Experience []string `mapstructure:"experience"`
	Projects   []string `mapstructure:"projects"`
}

var experienceMarkers = []string{"worked", "engineer", "developer", "years", "led", "managed", "responsible"}

var projectMarkers = []string{"project", "built", "developed", "created", "implemented", "designed"}

// Analyzer extracts skills, experience and projects from free resume text or
// pre-structured sections.
type Analyzer struct {
	logger *zap.Logger
}

// New creates a keyword analyzer. A nil logger falls back to a no-op one.
func New(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger}
}

// Analyze never fails on thin input: an empty document yields a minimal
// zero-alignment analysis. The only error path is a malformed structured
// payload in doc.Raw.
func (a *Analyzer) Analyze(_ context.Context, doc *interview.ResumeDocument, role *interview.JobRole) (*interview.ResumeAnalysis, error) {
	if doc == nil || (strings.TrimSpace(doc.Text) == "" && len(doc.Raw) == 0) {
		a.logger.Warn("empty resume document, returning minimal analysis")
		return interview.MinimalAnalysis(role), nil
	}

	analysis := &interview.ResumeAnalysis{}

	if len(doc.Raw) > 0 {
		var s sections
		if err := mapstructure.Decode(doc.Raw, &s); err != nil {
			return nil, fmt.Errorf("decoding structured resume sections: %w", err)
		}
		analysis.Skills = append(analysis.Skills, s.Skills...)
		analysis.Experience = append(analysis.Experience, s.Experience...)
		analysis.Projects = append(analysis.Projects, s.Projects...)
	}

	text := strings.ToLower(doc.Text)
	extractFromText(text, analysis)

	a.match(analysis, role, text)

	analysis.Summary = fmt.Sprintf("%d skills found, %d matched the role", len(analysis.Skills), len(analysis.MatchedSkills))

	a.logger.Debug("resume analyzed",
		zap.Int("skills", len(analysis.Skills)),
		zap.Int("matched", len(analysis.MatchedSkills)),
		zap.Float64("alignment", analysis.AlignmentScore),
	)

	return analysis, nil
}

// extractFromText scans line by line: an explicit skills section is split on
// commas, other lines are bucketed by experience and project markers.
func extractFromText(text string, analysis *interview.ResumeAnalysis) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "skills:"); ok {
			for _, skill := range strings.Split(rest, ",") {
				if skill = strings.TrimSpace(skill); skill != "" {
					analysis.Skills = append(analysis.Skills, skill)
				}
			}
			continue
		}

		if containsAny(line, projectMarkers) {
			analysis.Projects = append(analysis.Projects, line)
		} else if containsAny(line, experienceMarkers) {
			analysis.Experience = append(analysis.Experience, line)
		}
	}
}

// match computes matched/missing role skills and the alignment percentage.
// A role skill counts as matched when it appears in the extracted skills or
// anywhere in the resume text.
func (a *Analyzer) match(analysis *interview.ResumeAnalysis, role *interview.JobRole, text string) {
	if role == nil || len(role.TechnicalSkills) == 0 {
		return
	}

	lowerSkills := make([]string, 0, len(analysis.Skills))
	for _, s := range analysis.Skills {
		lowerSkills = append(lowerSkills, strings.ToLower(s))
	}

	for _, required := range role.TechnicalSkills {
		key := strings.ToLower(required)

		found := strings.Contains(text, key)
		if !found {
			for _, s := range lowerSkills {
				if strings.Contains(s, key) || strings.Contains(key, s) {
					found = true
					break
				}
			}
		}

		if found {
			analysis.MatchedSkills = append(analysis.MatchedSkills, required)
		} else {
			analysis.MissingSkills = append(analysis.MissingSkills, required)
		}
	}

	analysis.AlignmentScore = 100 * float64(len(analysis.MatchedSkills)) / float64(len(role.TechnicalSkills))
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
