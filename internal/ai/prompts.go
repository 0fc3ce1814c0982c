package ai

import "fmt"

func mcqPrompt(count int, difficulty, domain, topic string) string {
	return fmt.Sprintf(`Generate exactly %d multiple choice questions for a technical screening.
Difficulty: %s. Domain: %s. Topic: %s.

Return ONLY a JSON array, no prose and no markdown fences, where each element has this shape:
{"id": 1, "q": "question text", "options": ["A", "B", "C", "D"], "answer": "the correct option text"}

Every question must have exactly 4 options and the answer must be one of them.`,
		count, difficulty, domain, topic)
}

func codingPrompt(count int, difficulty, domain, topic string) string {
	return fmt.Sprintf(`Generate exactly %d coding challenges for a technical assessment.
Difficulty: %s. Domain: %s. Topic: %s.

Return ONLY a JSON array, no prose and no markdown fences, where each element has this shape:
{"id": 1, "title": "short title", "q": "full problem statement", "example": "sample input and output"}`,
		count, difficulty, domain, topic)
}
