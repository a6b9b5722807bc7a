package behavior

import (
	"strings"
	"testing"
	"time"

	"github.com/mockview/mockview/internal/interview"
)

var vocabulary = []string{"Python", "React", "AWS", "SQL", "Docker"}

func classify(t *testing.T, text string) Result {
	t.Helper()

	c := New(DefaultLimits(), vocabulary, nil)
	return c.Classify(interview.NewResponse("q1", text, time.Now()))
}

func TestClassifyRules(t *testing.T) {
	cases := []struct {
		name string
		text string
		want interview.BehaviorType
	}{
		{
			name: "skip request is an edge case",
			text: "skip question",
			want: interview.BehaviorEdgeCase,
		},
		{
			name: "refusal is an edge case",
			text: "I don't want to answer that one.",
			want: interview.BehaviorEdgeCase,
		},
		{
			name: "empty answer is an edge case",
			text: "   ",
			want: interview.BehaviorEdgeCase,
		},
		{
			name: "explicit confusion marker",
			text: "Sorry, I don't understand the question at all.",
			want: interview.BehaviorConfused,
		},
		{
			name: "short question back at the interviewer",
			text: "What is a race condition?",
			want: interview.BehaviorConfused,
		},
		{
			name: "word count over the chatty limit",
			text: strings.Repeat("and then we talked about it some more ", 20),
			want: interview.BehaviorChatty,
		},
		{
			name: "two tangent markers",
			text: "By the way, funny story, this reminds me of my first job where we shipped on Fridays.",
			want: interview.BehaviorChatty,
		},
		{
			name: "short dense technical answer is efficient",
			text: "Python service on AWS, SQL for persistence, Docker for packaging.",
			want: interview.BehaviorEfficient,
		},
		{
			name: "ordinary answer is standard",
			text: "I designed the ingestion pipeline and reviewed the rollout plan with my team over two sprints.",
			want: interview.BehaviorStandard,
		},
		{
			name: "short but non-technical answer is standard",
			text: "We shipped it on time after some discussion.",
			want: interview.BehaviorStandard,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(t, tc.text)
			if got.Type != tc.want {
				t.Fatalf("got %s (rule %s), want %s", got.Type, got.Rule, tc.want)
			}
		})
	}
}

func TestClassifyPrecedenceEdgeCaseBeatsChatty(t *testing.T) {
	// Over the chatty word limit but containing a refusal marker.
	text := "skip " + strings.Repeat("this is a very long digression about many unrelated things ", 20)

	got := classify(t, text)
	if got.Type != interview.BehaviorEdgeCase {
		t.Fatalf("edge case must win over chatty, got %s", got.Type)
	}
}

func TestClassifyPrecedenceConfusedBeatsEfficient(t *testing.T) {
	got := classify(t, "Can you explain what Docker and AWS mean here?")
	if got.Type != interview.BehaviorConfused {
		t.Fatalf("confused must win over efficient, got %s", got.Type)
	}
}

func TestClassifyNilResponseIsEdgeCase(t *testing.T) {
	c := New(DefaultLimits(), nil, nil)
	got := c.Classify(nil)
	if got.Type != interview.BehaviorEdgeCase {
		t.Fatalf("nil response should classify as edge case, got %s", got.Type)
	}
}

func TestClassifyCustomLimits(t *testing.T) {
	c := New(Limits{ChattyWords: 5, EfficientWords: 30, TangentMarkers: 2}, vocabulary, nil)

	got := c.Classify(interview.NewResponse("q1", "one two three four five six seven", time.Now()))
	if got.Type != interview.BehaviorChatty {
		t.Fatalf("expected chatty with a lowered word limit, got %s", got.Type)
	}
}
