package interview

// QuestionCategory is one weighted question area of a job role.
type QuestionCategory struct {
	Name           string  `mapstructure:"name"`
	Weight         float64 `mapstructure:"weight"`
	TechnicalFocus bool    `mapstructure:"technical-focus"`
}

// JobRole describes a job role the engine can interview for. Roles are
// immutable after catalog construction and shared read-only across sessions.
type JobRole struct {
	ID                     string             `mapstructure:"id"`
	Name                   string             `mapstructure:"name"`
	TechnicalSkills        []string           `mapstructure:"technical-skills"`
	BehavioralCompetencies []string           `mapstructure:"behavioral-competencies"`
	QuestionCategories     []QuestionCategory `mapstructure:"question-categories"`
}

// ExperienceLevel describes a seniority band. ExpectedDepth drives the size
// of the generated question set and the answer depth expectations.
type ExperienceLevel struct {
	Level         string
	YearsMin      int
	YearsMax      int
	ExpectedDepth float64
}
