package behavior

import (
	"fmt"
	"strings"

	"github.com/mockview/mockview/internal/interview"
)

// Acknowledgment returns a short phrase matching the classified behavior,
// spoken before the engine's next step.
func Acknowledgment(t interview.BehaviorType) string {
	switch t {
	case interview.BehaviorEfficient:
		return "Noted."
	case interview.BehaviorChatty:
		return "Thanks, there is a lot in there."
	case interview.BehaviorConfused:
		return "No problem, let me help."
	case interview.BehaviorEdgeCase:
		return "I hear you."
	default:
		return "Thank you for your answer."
	}
}

// Transition returns a phrase bridging to the next step of the interview.
func Transition(t interview.BehaviorType) string {
	switch t {
	case interview.BehaviorEfficient:
		return "Next:"
	case interview.BehaviorChatty:
		return "Let's keep focus and move to the next question."
	case interview.BehaviorConfused:
		return "Take your time with the next one."
	case interview.BehaviorEdgeCase:
		return "Let's continue with the interview."
	default:
		return "Moving on to the next question."
	}
}

// AdaptResponse rewrites content to match the target verbosity and tone for
// the classified behavior: terse for efficient, elaborated with guidance for
// confused, redirecting for chatty, explanatory of constraints for edge-case,
// neutral-professional otherwise.
func AdaptResponse(t interview.BehaviorType, content string) string {
	content = strings.TrimSpace(content)

	switch t {
	case interview.BehaviorEfficient:
		return content
	case interview.BehaviorConfused:
		return fmt.Sprintf(
			"%s\n\nIf anything is unclear, describe your thinking step by step; there is no single right answer, and partial reasoning counts.",
			content,
		)
	case interview.BehaviorChatty:
		return fmt.Sprintf(
			"To make the most of our time, try to keep the answer focused on the question itself. %s",
			content,
		)
	case interview.BehaviorEdgeCase:
		return fmt.Sprintf(
			"Skipping or declining questions is not supported in this interview: every question feeds your final feedback. If a question feels too hard, describe what you do know or ask for a clarification instead. %s",
			content,
		)
	default:
		return content
	}
}
