package behavior

import (
	"strings"
	"testing"

	"github.com/mockview/mockview/internal/interview"
)

func TestAdaptResponsePerBehavior(t *testing.T) {
	content := "Describe a recent production incident you handled."

	efficient := AdaptResponse(interview.BehaviorEfficient, content)
	if efficient != content {
		t.Fatalf("efficient adaptation must stay terse, got %q", efficient)
	}

	confused := AdaptResponse(interview.BehaviorConfused, content)
	if !strings.Contains(confused, "step by step") {
		t.Fatalf("confused adaptation must add guidance, got %q", confused)
	}
	if !strings.Contains(confused, content) {
		t.Fatalf("confused adaptation must keep the content, got %q", confused)
	}

	chatty := AdaptResponse(interview.BehaviorChatty, content)
	if !strings.Contains(chatty, "focused") {
		t.Fatalf("chatty adaptation must redirect, got %q", chatty)
	}

	edge := AdaptResponse(interview.BehaviorEdgeCase, content)
	if !strings.Contains(edge, "not supported") {
		t.Fatalf("edge-case adaptation must explain the constraint, got %q", edge)
	}

	standard := AdaptResponse(interview.BehaviorStandard, content)
	if standard != content {
		t.Fatalf("standard adaptation must pass through, got %q", standard)
	}
}

func TestAcknowledgmentCoversEveryBehavior(t *testing.T) {
	behaviors := []interview.BehaviorType{
		interview.BehaviorStandard,
		interview.BehaviorEfficient,
		interview.BehaviorChatty,
		interview.BehaviorConfused,
		interview.BehaviorEdgeCase,
	}

	for _, b := range behaviors {
		if Acknowledgment(b) == "" {
			t.Fatalf("empty acknowledgment for %s", b)
		}
		if Transition(b) == "" {
			t.Fatalf("empty transition for %s", b)
		}
	}
}
