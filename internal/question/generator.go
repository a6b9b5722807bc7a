// Package question builds the ordered question set for a session and spawns
// targeted follow-ups for low-quality answers.
package question

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mockview/mockview/internal/interview"
)

// Config holds the generation tunables.
type Config struct {
	MinQuestions int `mapstructure:"min-questions"`
	MaxQuestions int `mapstructure:"max-questions"`
	// TechnicalRatioMin/Max bound the randomized share of technical
	// questions in the initial set.
	TechnicalRatioMin float64 `mapstructure:"technical-ratio-min"`
	TechnicalRatioMax float64 `mapstructure:"technical-ratio-max"`
	// MaxFollowUps caps follow-ups per parent question.
	MaxFollowUps int `mapstructure:"max-follow-ups"`
	// MaxResumeQuestions caps how many questions get personalized from the
	// resume analysis.
	MaxResumeQuestions int `mapstructure:"max-resume-questions"`
}

// DefaultConfig returns the built-in generation tunables.
func DefaultConfig() Config {
	return Config{
		MinQuestions:       5,
		MaxQuestions:       10,
		TechnicalRatioMin:  0.4,
		TechnicalRatioMax:  0.7,
		MaxFollowUps:       2,
		MaxResumeQuestions: 3,
	}
}

// Generator produces question sets and follow-ups.
type Generator struct {
	cfg    Config
	rand   *rand.Rand
	logger *zap.Logger
}

// New creates a generator. A nil rnd gets a time-seeded source; tests pass a
// fixed seed for determinism.
func New(cfg Config, rnd *rand.Rand, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MaxQuestions <= 0 {
		cfg = DefaultConfig()
	}

	return &Generator{cfg: cfg, rand: rnd, logger: logger}
}

// InitialSet produces the ordered question list for the given role and level.
// When a resume analysis is present, a subset of technical questions is
// personalized with resume context. focusCategory, when non-empty and known
// to the role, biases selection toward that category (topic-drill rounds).
func (g *Generator) InitialSet(role *interview.JobRole, level interview.ExperienceLevel, analysis *interview.ResumeAnalysis, focusCategory string) []*interview.Question {
	total := g.questionCount(level.ExpectedDepth)
	technical, behavioral := splitCategories(role)

	techCount := g.technicalCount(total, role, technical, behavioral)

	questions := make([]*interview.Question, 0, total)
	previousCategory := ""
	usedTexts := make(map[string]bool)

	order := g.typeOrder(total, techCount)
	for _, isTechnical := range order {
		pool := behavioral
		if isTechnical {
			pool = technical
		}

		category := g.pickCategory(pool, previousCategory, focusCategory)
		previousCategory = category.Name

		tmpl := g.pickTemplate(category.Name, isTechnical, usedTexts)
		usedTexts[tmpl.Text] = true

		qType := interview.QuestionBehavioral
		if isTechnical {
			qType = interview.QuestionTechnical
		}

		questions = append(questions, &interview.Question{
			ID:               uuid.NewString(),
			Type:             qType,
			Text:             tmpl.Text,
			Category:         category.Name,
			Difficulty:       adjustDifficulty(tmpl.Difficulty, level.ExpectedDepth),
			ExpectedElements: tmpl.Elements,
		})
	}

	g.personalize(questions, analysis)

	g.logger.Debug("generated question set",
		zap.String("role", role.ID),
		zap.String("level", level.Level),
		zap.Int("total", len(questions)),
		zap.Int("technical", techCount),
	)

	return questions
}

// FollowUp produces a single targeted follow-up narrower than the parent.
// The parent must be an original question, not itself a follow-up, and must
// be under the follow-up cap; the parent's FollowUpCount is incremented.
func (g *Generator) FollowUp(parent *interview.Question, reason string) (*interview.Question, error) {
	if parent == nil {
		return nil, fmt.Errorf("parent question is required")
	}
	if parent.IsFollowUp() {
		return nil, fmt.Errorf("follow-up chains are one level deep; use the original question as parent")
	}
	if parent.FollowUpCount >= g.cfg.MaxFollowUps {
		return nil, fmt.Errorf("question %s: %w", parent.ID, interview.ErrFollowUpLimit)
	}

	text, ok := followUpTemplates[reason]
	if !ok {
		text = followUpFallback
	}

	parent.FollowUpCount++

	difficulty := parent.Difficulty - 1
	if difficulty < 1 {
		difficulty = 1
	}

	return &interview.Question{
		ID:               uuid.NewString(),
		Type:             parent.Type,
		Text:             text,
		Category:         parent.Category,
		Difficulty:       difficulty,
		ExpectedElements: parent.ExpectedElements,
		ParentQuestionID: parent.ID,
	}, nil
}

// MaxFollowUps exposes the configured cap for the controller's enforcement.
func (g *Generator) MaxFollowUps() int {
	return g.cfg.MaxFollowUps
}

// questionCount maps expected depth into the configured question range.
func (g *Generator) questionCount(depth float64) int {
	n := g.cfg.MinQuestions + int(depth/2)
	if n < g.cfg.MinQuestions {
		n = g.cfg.MinQuestions
	}
	if n > g.cfg.MaxQuestions {
		n = g.cfg.MaxQuestions
	}
	return n
}

// technicalCount samples a ratio in the configured band, biased toward the
// role's technical focus weight share.
func (g *Generator) technicalCount(total int, role *interview.JobRole, technical, behavioral []interview.QuestionCategory) int {
	if len(technical) == 0 {
		return 0
	}
	if len(behavioral) == 0 {
		return total
	}

	min, max := g.cfg.TechnicalRatioMin, g.cfg.TechnicalRatioMax
	sampled := min + g.rand.Float64()*(max-min)
	focus := technicalWeightShare(role)
	ratio := 0.7*sampled + 0.3*(min+(max-min)*focus)
	if ratio < min {
		ratio = min
	}
	if ratio > max {
		ratio = max
	}

	count := int(math.Round(float64(total) * ratio))
	if count < 1 {
		count = 1
	}
	if count >= total {
		count = total - 1
	}
	return count
}

// typeOrder spreads technical questions across the set instead of bunching
// them at either end.
func (g *Generator) typeOrder(total, technical int) []bool {
	order := make([]bool, total)
	for i := 0; i < technical; i++ {
		order[i] = true
	}
	g.rand.Shuffle(total, func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return order
}

// pickCategory does a weighted draw from the pool, avoiding an immediate
// repeat of the previous category when alternatives exist. A matching focus
// category always wins.
func (g *Generator) pickCategory(pool []interview.QuestionCategory, previous, focus string) interview.QuestionCategory {
	if focus != "" {
		for _, c := range pool {
			if strings.EqualFold(c.Name, focus) {
				return c
			}
		}
	}

	candidates := pool
	if len(pool) > 1 && previous != "" {
		filtered := make([]interview.QuestionCategory, 0, len(pool))
		for _, c := range pool {
			if c.Name != previous {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	totalWeight := 0.0
	for _, c := range candidates {
		totalWeight += c.Weight
	}

	draw := g.rand.Float64() * totalWeight
	for _, c := range candidates {
		draw -= c.Weight
		if draw <= 0 {
			return c
		}
	}
	return candidates[len(candidates)-1]
}

func (g *Generator) pickTemplate(category string, technical bool, used map[string]bool) template {
	templates := templatesFor(category, technical)

	fresh := make([]template, 0, len(templates))
	for _, t := range templates {
		if !used[t.Text] {
			fresh = append(fresh, t)
		}
	}
	if len(fresh) == 0 {
		fresh = templates
	}

	return fresh[g.rand.Intn(len(fresh))]
}

// personalize tags technical questions with resume context, one matched
// skill per question, preferring questions whose category or expected
// elements intersect the skill.
func (g *Generator) personalize(questions []*interview.Question, analysis *interview.ResumeAnalysis) {
	if analysis == nil || len(analysis.MatchedSkills) == 0 {
		return
	}

	limit := g.cfg.MaxResumeQuestions
	tagged := 0
	for _, skill := range analysis.MatchedSkills {
		if tagged >= limit {
			break
		}

		q := pickResumeTarget(questions, skill)
		if q == nil {
			break
		}

		q.ResumeContext = skill
		q.Text = fmt.Sprintf(resumeTemplate, skill)
		q.ExpectedElements = []string{strings.ToLower(skill), "trade-off", "problem"}
		tagged++
	}
}

func pickResumeTarget(questions []*interview.Question, skill string) *interview.Question {
	skill = strings.ToLower(skill)

	// First pass: a technical question already touching the skill area.
	for _, q := range questions {
		if q.Type != interview.QuestionTechnical || q.ResumeContext != "" {
			continue
		}
		if strings.Contains(strings.ToLower(q.Category), skill) {
			return q
		}
		for _, element := range q.ExpectedElements {
			if strings.Contains(strings.ToLower(element), skill) {
				return q
			}
		}
	}

	// Fallback: any untagged technical question.
	for _, q := range questions {
		if q.Type == interview.QuestionTechnical && q.ResumeContext == "" {
			return q
		}
	}
	return nil
}

func splitCategories(role *interview.JobRole) (technical, behavioral []interview.QuestionCategory) {
	for _, c := range role.QuestionCategories {
		if c.TechnicalFocus {
			technical = append(technical, c)
		} else {
			behavioral = append(behavioral, c)
		}
	}
	return technical, behavioral
}

func technicalWeightShare(role *interview.JobRole) float64 {
	total, technical := 0.0, 0.0
	for _, c := range role.QuestionCategories {
		total += c.Weight
		if c.TechnicalFocus {
			technical += c.Weight
		}
	}
	if total == 0 {
		return 0.5
	}
	return technical / total
}

func adjustDifficulty(base int, depth float64) int {
	d := base + (int(depth)-5)/2
	if d < 1 {
		d = 1
	}
	if d > 10 {
		d = 10
	}
	return d
}
