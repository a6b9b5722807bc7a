// Package gemini is the Gemini-backed resume analyzer. The prompt asks for a
// strict JSON shape; the response is parsed defensively since models wrap
// output in fences or return loosely typed values.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
	"github.com/mockview/mockview/internal/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Analyzer implements resume.Analyzer on top of a content generator.
type Analyzer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewAnalyzer creates a Gemini-backed analyzer. maxLogLength bounds prompt
// and response previews in debug logs.
func NewAnalyzer(generator contentGenerator, maxLogLength int, log *zap.Logger) *Analyzer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Analyzer{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Analyze sends the resume and role to Gemini and parses the structured
// analysis out of the response.
func (a *Analyzer) Analyze(ctx context.Context, doc *interview.ResumeDocument, role *interview.JobRole) (*interview.ResumeAnalysis, error) {
	if doc == nil || strings.TrimSpace(doc.Text) == "" {
		return nil, fmt.Errorf("resume text is required")
	}
	if role == nil {
		return nil, fmt.Errorf("role is required")
	}

	roleJSON, err := json.MarshalIndent(map[string]any{
		"id":               role.ID,
		"name":             role.Name,
		"technical_skills": role.TechnicalSkills,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal role payload: %w", err)
	}

	prompt := buildPrompt(doc.Text, string(roleJSON))

	a.logger.Debug("gemini resume analysis request",
		zap.String("role", role.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini resume analysis response",
		zap.String("role", role.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, a.maxLogLen)),
	)

	analysis, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	return analysis, nil
}

func buildPrompt(resumeText, roleJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME_TEXT}}\n\nRole:\n{{ROLE_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{RESUME_TEXT}}", resumeText)
	prompt = strings.ReplaceAll(prompt, "{{ROLE_JSON}}", roleJSON)
	return prompt
}

func parseResponse(raw string) (*interview.ResumeAnalysis, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["alignment_score"])
	if math.IsNaN(score) {
		score = 0
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &interview.ResumeAnalysis{
		Skills:         coerceStrings(data["skills"]),
		Experience:     coerceStrings(data["experience"]),
		Projects:       coerceStrings(data["projects"]),
		MatchedSkills:  coerceStrings(data["matched_skills"]),
		MissingSkills:  coerceStrings(data["missing_skills"]),
		AlignmentScore: score,
		Summary:        coerceString(data["summary"]),
	}, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := coerceString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
