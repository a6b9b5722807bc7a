package interview

// CommunicationScores are the communication sub-scores, each 0..10,
// summing to Total out of 40.
type CommunicationScores struct {
	Clarity         float64
	Articulation    float64
	Structure       float64
	Professionalism float64
	Total           float64
	Grade           string
}

// TechnicalScores are the technical sub-scores, each 0..10, aggregated from
// technical questions only, summing to Total out of 40.
type TechnicalScores struct {
	Depth          float64
	Accuracy       float64
	Relevance      float64
	ProblemSolving float64
	Total          float64
	Grade          string
}

// ImprovementPriority ranks how urgently a category needs work.
type ImprovementPriority string

const (
	PriorityHigh   ImprovementPriority = "high"
	PriorityMedium ImprovementPriority = "medium"
	PriorityLow    ImprovementPriority = "low"
)

// Improvement is one area the candidate should work on, worst-first in the
// report.
type Improvement struct {
	Category    string
	Priority    ImprovementPriority
	Observation string
	Suggestion  string
}

// ResumeAlignment is the resume-to-role match summary, present only when a
// resume was uploaded.
type ResumeAlignment struct {
	Score         float64
	MatchedSkills []string
	MissingSkills []string
}

// QuestionResult is one entry of the per-question breakdown.
type QuestionResult struct {
	Question   *Question
	Response   *Response
	Evaluation *Evaluation
}

// FeedbackReport is the final scored summary of an interview. Created once at
// completion or early termination and immutable afterwards.
type FeedbackReport struct {
	SessionID string

	Communication CommunicationScores
	Technical     TechnicalScores

	// OverallScore is the weighted combination of the two sub-totals,
	// normalized to 0..100.
	OverallScore float64
	OverallGrade string

	Strengths    []string
	Improvements []Improvement

	ResumeAlignment *ResumeAlignment

	// QuestionBreakdown covers answered questions only, so partial reports
	// from early termination are well-formed with any count of answers.
	QuestionBreakdown []QuestionResult

	Summary string

	EndedEarly bool
}
