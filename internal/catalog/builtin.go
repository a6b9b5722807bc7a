package catalog

import "github.com/mockview/mockview/internal/interview"

func builtinLevels() []interview.ExperienceLevel {
	return []interview.ExperienceLevel{
		{Level: "entry", YearsMin: 0, YearsMax: 2, ExpectedDepth: 3},
		{Level: "mid", YearsMin: 2, YearsMax: 5, ExpectedDepth: 5},
		{Level: "senior", YearsMin: 5, YearsMax: 10, ExpectedDepth: 7},
		{Level: "lead", YearsMin: 8, YearsMax: 20, ExpectedDepth: 8},
	}
}

func builtinRoles() []*interview.JobRole {
	return []*interview.JobRole{
		{
			ID:   "software-engineer",
			Name: "Software Engineer",
			TechnicalSkills: []string{
				"python", "go", "java", "javascript", "react", "sql",
				"aws", "docker", "kubernetes", "rest", "git", "testing",
			},
			BehavioralCompetencies: []string{
				"teamwork", "communication", "ownership", "mentoring", "prioritization",
			},
			QuestionCategories: []interview.QuestionCategory{
				{Name: "algorithms", Weight: 0.25, TechnicalFocus: true},
				{Name: "system design", Weight: 0.25, TechnicalFocus: true},
				{Name: "coding practices", Weight: 0.2, TechnicalFocus: true},
				{Name: "collaboration", Weight: 0.15, TechnicalFocus: false},
				{Name: "problem solving", Weight: 0.15, TechnicalFocus: false},
			},
		},
		{
			ID:   "data-scientist",
			Name: "Data Scientist",
			TechnicalSkills: []string{
				"python", "pandas", "numpy", "sql", "statistics",
				"machine learning", "tensorflow", "visualization", "spark",
			},
			BehavioralCompetencies: []string{
				"communication", "stakeholder management", "curiosity", "rigor",
			},
			QuestionCategories: []interview.QuestionCategory{
				{Name: "statistics", Weight: 0.3, TechnicalFocus: true},
				{Name: "machine learning", Weight: 0.3, TechnicalFocus: true},
				{Name: "data engineering", Weight: 0.15, TechnicalFocus: true},
				{Name: "business impact", Weight: 0.25, TechnicalFocus: false},
			},
		},
		{
			ID:   "devops-engineer",
			Name: "DevOps Engineer",
			TechnicalSkills: []string{
				"linux", "kubernetes", "docker", "terraform", "aws",
				"ci/cd", "monitoring", "ansible", "networking", "bash",
			},
			BehavioralCompetencies: []string{
				"incident response", "communication", "automation mindset", "reliability",
			},
			QuestionCategories: []interview.QuestionCategory{
				{Name: "infrastructure", Weight: 0.3, TechnicalFocus: true},
				{Name: "automation", Weight: 0.25, TechnicalFocus: true},
				{Name: "reliability", Weight: 0.25, TechnicalFocus: true},
				{Name: "incident handling", Weight: 0.2, TechnicalFocus: false},
			},
		},
		{
			ID:   "product-manager",
			Name: "Product Manager",
			TechnicalSkills: []string{
				"analytics", "sql", "a/b testing", "roadmapping", "metrics",
			},
			BehavioralCompetencies: []string{
				"stakeholder management", "prioritization", "communication",
				"customer empathy", "leadership",
			},
			QuestionCategories: []interview.QuestionCategory{
				{Name: "product sense", Weight: 0.3, TechnicalFocus: false},
				{Name: "analytics", Weight: 0.25, TechnicalFocus: true},
				{Name: "execution", Weight: 0.25, TechnicalFocus: false},
				{Name: "leadership", Weight: 0.2, TechnicalFocus: false},
			},
		},
	}
}
