package keyword

import (
	"context"
	"testing"

	"github.com/mockview/mockview/internal/interview"
)

var role = &interview.JobRole{
	ID:              "software-engineer",
	TechnicalSkills: []string{"Python", "React", "AWS", "Kubernetes"},
}

func TestAnalyzeExtractsSkillsFromText(t *testing.T) {
	doc := &interview.ResumeDocument{
		Text: "Skills: Python, React, AWS\n" +
			"Worked five years as a backend engineer at a payments company.\n" +
			"Built a real-time fraud detection project.",
	}

	analysis, err := New(nil).Analyze(context.Background(), doc, role)
	if err != nil {
		t.Fatalf("analyze: %s", err)
	}

	if len(analysis.Skills) != 3 {
		t.Fatalf("expected 3 extracted skills, got %+v", analysis.Skills)
	}
	if len(analysis.MatchedSkills) != 3 {
		t.Fatalf("expected Python, React and AWS matched, got %+v", analysis.MatchedSkills)
	}
	if len(analysis.MissingSkills) != 1 || analysis.MissingSkills[0] != "Kubernetes" {
		t.Fatalf("expected Kubernetes missing, got %+v", analysis.MissingSkills)
	}
	if analysis.AlignmentScore != 75 {
		t.Fatalf("expected 75%% alignment, got %.1f", analysis.AlignmentScore)
	}
	if len(analysis.Experience) == 0 {
		t.Fatalf("experience line not extracted")
	}
	if len(analysis.Projects) == 0 {
		t.Fatalf("project line not extracted")
	}
}

func TestAnalyzeStructuredSections(t *testing.T) {
	doc := &interview.ResumeDocument{
		Raw: map[string]any{
			"skills":     []string{"python", "kubernetes"},
			"experience": []string{"6 years of infrastructure work"},
			"projects":   []string{"migrated a monolith to services"},
		},
	}

	analysis, err := New(nil).Analyze(context.Background(), doc, role)
	if err != nil {
		t.Fatalf("analyze: %s", err)
	}

	if len(analysis.MatchedSkills) != 2 {
		t.Fatalf("expected 2 matched skills from sections, got %+v", analysis.MatchedSkills)
	}
	if analysis.AlignmentScore != 50 {
		t.Fatalf("expected 50%% alignment, got %.1f", analysis.AlignmentScore)
	}
}

func TestAnalyzeEmptyDocumentIsMinimal(t *testing.T) {
	analysis, err := New(nil).Analyze(context.Background(), &interview.ResumeDocument{Text: "  "}, role)
	if err != nil {
		t.Fatalf("analyze: %s", err)
	}

	if analysis.AlignmentScore != 0 {
		t.Fatalf("expected zero alignment, got %.1f", analysis.AlignmentScore)
	}
	if len(analysis.MissingSkills) != len(role.TechnicalSkills) {
		t.Fatalf("every role skill must be missing, got %+v", analysis.MissingSkills)
	}
}

func TestAnalyzeMalformedSectionsFails(t *testing.T) {
	doc := &interview.ResumeDocument{
		Raw: map[string]any{"skills": 42},
	}

	if _, err := New(nil).Analyze(context.Background(), doc, role); err == nil {
		t.Fatalf("expected an error for a malformed structured payload")
	}
}

func TestAnalyzeNilRoleSkipsMatching(t *testing.T) {
	doc := &interview.ResumeDocument{Text: "Skills: Python"}

	analysis, err := New(nil).Analyze(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("analyze: %s", err)
	}
	if len(analysis.MatchedSkills) != 0 || analysis.AlignmentScore != 0 {
		t.Fatalf("nil role must produce no matches, got %+v", analysis)
	}
}
