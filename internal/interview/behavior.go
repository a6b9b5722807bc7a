package interview

// BehaviorType classifies the candidate's communication style from the latest
// answer. One active value per session, updated after every response.
type BehaviorType string

const (
	// BehaviorEdgeCase marks attempted illegitimate actions: skip requests,
	// refusals, empty or nonsensical input.
	BehaviorEdgeCase BehaviorType = "edge-case"
	// BehaviorConfused marks answers with explicit confusion markers.
	BehaviorConfused BehaviorType = "confused"
	// BehaviorChatty marks long or tangent-heavy answers.
	BehaviorChatty BehaviorType = "chatty"
	// BehaviorEfficient marks short, dense, technical answers.
	BehaviorEfficient BehaviorType = "efficient"
	// BehaviorStandard is the default when no other rule matches.
	BehaviorStandard BehaviorType = "standard"
)

// ActionType is the engine's decision after processing a response.
type ActionType string

const (
	// ActionFollowUp presents a narrower follow-up to the same question.
	ActionFollowUp ActionType = "follow-up"
	// ActionNextQuestion advances to the next unanswered question.
	ActionNextQuestion ActionType = "next-question"
	// ActionRedirect communicates a constraint instead of advancing, used
	// when repeated edge-case input exceeds the tolerance.
	ActionRedirect ActionType = "redirect"
	// ActionComplete ends the interview and carries the feedback report.
	ActionComplete ActionType = "complete"
)

// Action is the per-turn result returned to the caller after a submitted
// response (or an early termination).
type Action struct {
	Type ActionType

	// Question is the next question to present. Set for follow-up and
	// next-question actions, and for redirect (repeating the current one).
	Question *Question

	// Acknowledgment is a short phrase matching the classified behavior.
	Acknowledgment string
	// Message is the engine's message to the candidate, adapted to the
	// session's interaction mode and behavior type.
	Message string

	Behavior   BehaviorType
	Evaluation *Evaluation

	// Report is set only on complete actions.
	Report *FeedbackReport
}
