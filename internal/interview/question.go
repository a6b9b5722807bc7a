package interview

// QuestionType distinguishes technical questions from behavioral ones.
type QuestionType string

const (
	QuestionTechnical  QuestionType = "technical"
	QuestionBehavioral QuestionType = "behavioral"
)

// Question is a single interview question. Follow-ups form a one-level tree:
// every follow-up links to the original question via ParentQuestionID and
// never spawns deeper nesting.
type Question struct {
	ID         string
	Type       QuestionType
	Text       string
	Category   string
	Difficulty int

	// ResumeContext references a skill, experience or project taken from the
	// candidate's resume when the question was personalized. Empty otherwise.
	ResumeContext string

	// ExpectedElements are keywords a complete answer is expected to touch.
	ExpectedElements []string

	ParentQuestionID string
	// FollowUpCount tracks how many follow-ups were spawned from this
	// question. Meaningful only on parents.
	FollowUpCount int
}

// IsFollowUp reports whether the question was spawned from another one.
func (q *Question) IsFollowUp() bool {
	return q.ParentQuestionID != ""
}
