package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// TextGenerator is the single capability the question generator needs
// from the model client.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// MCQQuestion is one multiple-choice screening question.
type MCQQuestion struct {
	ID      int      `json:"id"`
	Q       string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

// CodingQuestion is one coding challenge for the second round.
type CodingQuestion struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Q       string `json:"q"`
	Example string `json:"example"`
}

// QuestionRequest describes one generation call.
type QuestionRequest struct {
	Difficulty string `json:"difficulty"`
	Domain     string `json:"domain"`
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
}

// maxQuestionCount bounds one generation call. The request is public,
// so the count caps both the prompt and the fallback allocation.
const maxQuestionCount = 50

func (r *QuestionRequest) defaults() {
	if r.Difficulty == "" {
		r.Difficulty = "Medium"
	}
	if r.Domain == "" {
		r.Domain = "Software Engineering"
	}
	if r.Topic == "" {
		r.Topic = "General"
	}
	if r.Count <= 0 {
		r.Count = 5
	}
	if r.Count > maxQuestionCount {
		r.Count = maxQuestionCount
	}
}

// QuestionGenerator produces assessment question sets via the model,
// falling back to a built-in bank whenever the model is unavailable or
// returns something unparseable. It never fails a caller.
type QuestionGenerator struct {
	client TextGenerator // nil when no API key is configured
}

// NewQuestionGenerator wires the generator; client may be nil.
func NewQuestionGenerator(client TextGenerator) *QuestionGenerator {
	return &QuestionGenerator{client: client}
}

// MCQs returns a set of multiple-choice questions.
func (g *QuestionGenerator) MCQs(ctx context.Context, req QuestionRequest) []MCQQuestion {
	req.defaults()

	if g.client != nil {
		raw, err := g.client.GenerateContent(ctx, mcqPrompt(req.Count, req.Difficulty, req.Domain, req.Topic))
		if err == nil {
			if questions, perr := parseMCQs(raw); perr == nil {
				return questions
			} else {
				log.Printf("⚠️ MCQ response unparseable, using fallback: %v", perr)
			}
		} else {
			log.Printf("⚠️ MCQ generation failed, using fallback: %v", err)
		}
	}

	return fallbackMCQs(req.Count)
}

// Coding returns a set of coding challenges.
func (g *QuestionGenerator) Coding(ctx context.Context, req QuestionRequest) []CodingQuestion {
	req.defaults()

	if g.client != nil {
		raw, err := g.client.GenerateContent(ctx, codingPrompt(req.Count, req.Difficulty, req.Domain, req.Topic))
		if err == nil {
			if questions, perr := parseCoding(raw); perr == nil {
				return questions
			} else {
				log.Printf("⚠️ Coding response unparseable, using fallback: %v", perr)
			}
		} else {
			log.Printf("⚠️ Coding generation failed, using fallback: %v", err)
		}
	}

	return fallbackCoding(req.Count)
}

// stripFences removes a surrounding markdown code fence the model
// sometimes wraps JSON in despite instructions.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func parseMCQs(raw string) ([]MCQQuestion, error) {
	var questions []MCQQuestion
	if err := json.Unmarshal([]byte(stripFences(raw)), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("empty question set")
	}
	for i, q := range questions {
		if q.Q == "" || len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d is malformed", i+1)
		}
	}
	return questions, nil
}

func parseCoding(raw string) ([]CodingQuestion, error) {
	var questions []CodingQuestion
	if err := json.Unmarshal([]byte(stripFences(raw)), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("empty question set")
	}
	for i, q := range questions {
		if q.Q == "" {
			return nil, fmt.Errorf("challenge %d is malformed", i+1)
		}
	}
	return questions, nil
}

var mcqBank = []MCQQuestion{
	{
		Q:       "Which HTTP status code indicates a resource was created?",
		Options: []string{"200", "201", "301", "404"},
		Answer:  "201",
	},
	{
		Q:       "What is the time complexity of binary search on a sorted array?",
		Options: []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
		Answer:  "O(log n)",
	},
	{
		Q:       "Which data structure uses FIFO ordering?",
		Options: []string{"Stack", "Queue", "Tree", "Heap"},
		Answer:  "Queue",
	},
	{
		Q:       "In SQL, which clause filters rows after aggregation?",
		Options: []string{"WHERE", "GROUP BY", "HAVING", "ORDER BY"},
		Answer:  "HAVING",
	},
	{
		Q:       "Which of these is NOT a valid JSON value type?",
		Options: []string{"string", "number", "function", "boolean"},
		Answer:  "function",
	},
}

var codingBank = []CodingQuestion{
	{
		Title:   "Reverse Words",
		Q:       "Given a sentence, reverse the order of its words while keeping the words themselves intact.",
		Example: "Input: \"hello world foo\" -> Output: \"foo world hello\"",
	},
	{
		Title:   "First Unique Character",
		Q:       "Return the index of the first non-repeating character in a string, or -1 if none exists.",
		Example: "Input: \"leetcode\" -> Output: 0",
	},
	{
		Title:   "Two Sum",
		Q:       "Given an array of integers and a target, return the indices of two numbers that add up to the target.",
		Example: "Input: nums=[2,7,11,15], target=9 -> Output: [0,1]",
	},
}

// fallbackMCQs cycles the built-in bank so any requested count is met.
func fallbackMCQs(count int) []MCQQuestion {
	out := make([]MCQQuestion, count)
	for i := 0; i < count; i++ {
		q := mcqBank[i%len(mcqBank)]
		q.ID = i + 1
		out[i] = q
	}
	return out
}

func fallbackCoding(count int) []CodingQuestion {
	out := make([]CodingQuestion, count)
	for i := 0; i < count; i++ {
		q := codingBank[i%len(codingBank)]
		q.ID = i + 1
		out[i] = q
	}
	return out
}
