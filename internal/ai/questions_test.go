package ai

import (
	"context"
	"errors"
	"testing"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func TestStripFences(t *testing.T) {
	cases := []struct{ in, want string }{
		{`[{"id":1}]`, `[{"id":1}]`},
		{"```json\n[{\"id\":1}]\n```", `[{"id":1}]`},
		{"```\n[]\n```", `[]`},
		{"  [1,2]  ", `[1,2]`},
	}
	for _, c := range cases {
		if got := stripFences(c.in); got != c.want {
			t.Errorf("stripFences(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMCQsFromModel(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" +
		`[{"id":1,"q":"What is 2+2?","options":["1","2","3","4"],"answer":"4"}]` +
		"\n```"}
	g := NewQuestionGenerator(stub)

	questions := g.MCQs(context.Background(), QuestionRequest{Count: 1})
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Answer != "4" {
		t.Errorf("unexpected answer %q", questions[0].Answer)
	}
}

func TestMCQsFallbackOnError(t *testing.T) {
	g := NewQuestionGenerator(&stubGenerator{err: errors.New("quota exceeded")})

	questions := g.MCQs(context.Background(), QuestionRequest{Count: 8})
	if len(questions) != 8 {
		t.Fatalf("fallback should honor count, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options", i, len(q.Options))
		}
	}
}

func TestMCQsFallbackOnMalformed(t *testing.T) {
	g := NewQuestionGenerator(&stubGenerator{response: "Sorry, I cannot help with that."})

	questions := g.MCQs(context.Background(), QuestionRequest{})
	if len(questions) != 5 {
		t.Fatalf("default count should be 5, got %d", len(questions))
	}
}

func TestQuestionCountIsBounded(t *testing.T) {
	g := NewQuestionGenerator(nil)

	questions := g.MCQs(context.Background(), QuestionRequest{Count: 5_000_000})
	if len(questions) != maxQuestionCount {
		t.Fatalf("oversized count should be capped at %d, got %d", maxQuestionCount, len(questions))
	}

	challenges := g.Coding(context.Background(), QuestionRequest{Count: 9999})
	if len(challenges) != maxQuestionCount {
		t.Fatalf("oversized coding count should be capped at %d, got %d", maxQuestionCount, len(challenges))
	}

	if got := g.MCQs(context.Background(), QuestionRequest{Count: -3}); len(got) != 5 {
		t.Fatalf("negative count should fall back to the default, got %d", len(got))
	}
}

func TestCodingWithoutClient(t *testing.T) {
	g := NewQuestionGenerator(nil)

	questions := g.Coding(context.Background(), QuestionRequest{Count: 2})
	if len(questions) != 2 {
		t.Fatalf("expected 2 challenges, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Q == "" || q.Title == "" {
			t.Errorf("fallback challenge is incomplete: %+v", q)
		}
	}
}

func TestParseMCQsRejectsBadShapes(t *testing.T) {
	if _, err := parseMCQs(`[]`); err == nil {
		t.Error("empty array should be rejected")
	}
	if _, err := parseMCQs(`[{"id":1,"q":"x","options":["a","b"],"answer":"a"}]`); err == nil {
		t.Error("wrong option count should be rejected")
	}
	if _, err := parseCoding(`[{"id":1,"title":"x"}]`); err == nil {
		t.Error("challenge without statement should be rejected")
	}
}
