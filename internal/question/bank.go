package question

import "fmt"

// template is one question blueprint. Difficulty is the base value before
// level adjustment.
type template struct {
	Text       string
	Elements   []string
	Difficulty int
}

// bank maps category names to their question blueprints. Categories missing
// from the bank fall back to the generic technical or behavioral templates.
var bank = map[string][]template{
	"algorithms": {
		{
			Text:       "Walk me through how you would detect a cycle in a linked list, and the complexity of your approach.",
			Elements:   []string{"pointer", "complexity", "o(n)"},
			Difficulty: 5,
		},
		{
			Text:       "You need to find the k most frequent items in a large stream. How do you approach it?",
			Elements:   []string{"heap", "hash", "complexity"},
			Difficulty: 6,
		},
		{
			Text:       "When would you prefer a hash map over a sorted structure, and what does it cost you?",
			Elements:   []string{"lookup", "ordering", "memory"},
			Difficulty: 4,
		},
	},
	"system design": {
		{
			Text:       "Design a URL shortener that must survive a viral link. What are the main components?",
			Elements:   []string{"storage", "cache", "scale"},
			Difficulty: 6,
		},
		{
			Text:       "How would you design rate limiting for a public API?",
			Elements:   []string{"token", "window", "distributed"},
			Difficulty: 5,
		},
		{
			Text:       "A service you own starts timing out under load. How do you diagnose and fix it?",
			Elements:   []string{"metrics", "bottleneck", "cache"},
			Difficulty: 6,
		},
	},
	"coding practices": {
		{
			Text:       "How do you decide what to cover with tests when time is limited?",
			Elements:   []string{"risk", "coverage", "regression"},
			Difficulty: 4,
		},
		{
			Text:       "Describe your approach to reviewing a large pull request from a teammate.",
			Elements:   []string{"review", "feedback", "scope"},
			Difficulty: 3,
		},
	},
	"statistics": {
		{
			Text:       "Explain p-values to a non-technical stakeholder and where they mislead.",
			Elements:   []string{"significance", "hypothesis", "sample"},
			Difficulty: 5,
		},
		{
			Text:       "Your A/B test shows a 2% lift. How do you decide whether to ship?",
			Elements:   []string{"significance", "power", "effect"},
			Difficulty: 6,
		},
	},
	"machine learning": {
		{
			Text:       "How do you detect and handle overfitting in a model headed for production?",
			Elements:   []string{"validation", "regularization", "generalization"},
			Difficulty: 5,
		},
		{
			Text:       "Walk me through how you would debug a model whose offline metrics look good but online performance is poor.",
			Elements:   []string{"drift", "leakage", "distribution"},
			Difficulty: 7,
		},
	},
	"data engineering": {
		{
			Text:       "A daily pipeline feeding your dashboards starts failing silently. How do you make it reliable?",
			Elements:   []string{"monitoring", "idempotent", "backfill"},
			Difficulty: 5,
		},
	},
	"infrastructure": {
		{
			Text:       "How would you structure Terraform for a platform serving many teams?",
			Elements:   []string{"module", "state", "environment"},
			Difficulty: 6,
		},
		{
			Text:       "Explain how you would roll out a risky change to a production Kubernetes cluster.",
			Elements:   []string{"canary", "rollback", "monitoring"},
			Difficulty: 6,
		},
	},
	"automation": {
		{
			Text:       "Describe a manual process you automated end to end. What broke first?",
			Elements:   []string{"pipeline", "failure", "iteration"},
			Difficulty: 4,
		},
	},
	"reliability": {
		{
			Text:       "How do you set and defend an error budget for a service?",
			Elements:   []string{"slo", "budget", "tradeoff"},
			Difficulty: 6,
		},
	},
	"analytics": {
		{
			Text:       "A key product metric dropped 10% overnight. Walk me through your first hour.",
			Elements:   []string{"segment", "instrumentation", "hypothesis"},
			Difficulty: 5,
		},
	},
	// Behavioral categories.
	"collaboration": {
		{
			Text:       "Tell me about a time you disagreed with a teammate on a technical decision. How was it resolved?",
			Elements:   []string{"disagree", "listen", "outcome"},
			Difficulty: 4,
		},
		{
			Text:       "Describe working with a colleague whose working style clashed with yours.",
			Elements:   []string{"style", "adapt", "result"},
			Difficulty: 4,
		},
	},
	"problem solving": {
		{
			Text:       "Tell me about the hardest bug or problem you untangled. What made it hard?",
			Elements:   []string{"investigate", "root cause", "fix"},
			Difficulty: 5,
		},
	},
	"business impact": {
		{
			Text:       "Describe an analysis of yours that changed a business decision.",
			Elements:   []string{"stakeholder", "decision", "impact"},
			Difficulty: 5,
		},
	},
	"incident handling": {
		{
			Text:       "Walk me through the worst incident you were on call for.",
			Elements:   []string{"detection", "mitigation", "postmortem"},
			Difficulty: 5,
		},
	},
	"product sense": {
		{
			Text:       "Pick a product you use daily. What would you improve first and why?",
			Elements:   []string{"user", "tradeoff", "metric"},
			Difficulty: 4,
		},
	},
	"execution": {
		{
			Text:       "Tell me about shipping something under a deadline you thought was unrealistic.",
			Elements:   []string{"scope", "prioritize", "deliver"},
			Difficulty: 4,
		},
	},
	"leadership": {
		{
			Text:       "Describe a time you had to bring a group to a decision without formal authority.",
			Elements:   []string{"influence", "alignment", "decision"},
			Difficulty: 5,
		},
	},
}

var genericTechnical = []template{
	{
		Text:       "Describe a technically challenging piece of work in %s you are proud of, and the decisions behind it.",
		Elements:   []string{"decision", "tradeoff", "result"},
		Difficulty: 5,
	},
}

var genericBehavioral = []template{
	{
		Text:       "Tell me about a situation related to %s that tested you, and what you took from it.",
		Elements:   []string{"situation", "action", "result"},
		Difficulty: 4,
	},
}

// resumeTemplate personalizes a technical question around a skill found on
// the candidate's resume.
const resumeTemplate = "Your resume mentions %[1]s. Describe a specific problem you solved with %[1]s and the trade-offs you faced."

// followUpTemplates are keyed by the evaluator's deficiency names. Each
// narrows the parent question instead of repeating it.
var followUpTemplates = map[string]string{
	"brevity":      "That was quite brief. Could you expand on your previous answer with a concrete example?",
	"depth":        "Let's go one level deeper: what was the reasoning behind the approach you just described?",
	"clarity":      "Could you restate the key point of your answer in two or three clear sentences?",
	"completeness": "You covered part of it. What else would someone need to consider in that situation?",
}

const followUpFallback = "Could you tell me more about that?"

// templatesFor returns the blueprints for a category, falling back to the
// generic set with the category name interpolated.
func templatesFor(category string, technical bool) []template {
	if ts, ok := bank[category]; ok {
		return ts
	}

	generic := genericBehavioral
	if technical {
		generic = genericTechnical
	}

	out := make([]template, 0, len(generic))
	for _, t := range generic {
		out = append(out, template{
			Text:       fmt.Sprintf(t.Text, category),
			Elements:   t.Elements,
			Difficulty: t.Difficulty,
		})
	}
	return out
}
