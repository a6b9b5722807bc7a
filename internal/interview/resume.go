package interview

// ResumeDocument is the raw resume handed to the analysis collaborator.
// Raw optionally carries pre-structured sections decoded from an upstream
// parser; the engine treats it as opaque.
type ResumeDocument struct {
	Title string
	Text  string
	Raw   map[string]any
}

// ResumeAnalysis is the analysis collaborator's output. The engine uses it
// only for question personalization and feedback alignment.
type ResumeAnalysis struct {
	Skills     []string
	Experience []string
	Projects   []string

	MatchedSkills []string
	MissingSkills []string
	// AlignmentScore measures how well the resume matches the role, 0..100.
	AlignmentScore float64

	Summary string
}

// MinimalAnalysis returns the degraded analysis used when the collaborator
// fails or the resume is empty: zero alignment, no matches, interview
// proceeds without personalization.
func MinimalAnalysis(role *JobRole) *ResumeAnalysis {
	analysis := &ResumeAnalysis{
		AlignmentScore: 0,
		Summary:        "resume could not be analyzed",
	}
	if role != nil {
		analysis.MissingSkills = append(analysis.MissingSkills, role.TechnicalSkills...)
	}
	return analysis
}
