package quizgen

import (
	"fmt"
	"strings"
)

const promptSchema = `{"questions":[{"prompt":"question text","options":["option 1","option 2","option 3","option 4"],"answer":0}]}`

// BuildPrompt renders the single generation instruction sent upstream.
// It pins the response to the exact schema parseQuiz validates, so any
// deviation is a parse failure rather than a guessing game.
func BuildPrompt(req Request, count int) string {
	var b strings.Builder
	b.WriteString("Text:\n")
	b.WriteString(strings.TrimSpace(req.SourceText))
	b.WriteString("\n\n")
	b.WriteString("You are an expert in generating MCQ quizzes based on provided content.\n")
	fmt.Fprintf(&b, "Given the above text, create a quiz of exactly %d multiple choice questions with a difficulty level of %s.\n", count, req.Difficulty)
	b.WriteString("Ensure the questions are unique, directly answerable from the text, and appropriate for the difficulty level.\n")
	fmt.Fprintf(&b, "Each question must have exactly %d distinct options, and \"answer\" must be the zero-based index of the correct option.\n\n", OptionsPerQuestion)
	b.WriteString("You MUST format your response as a single, valid JSON object. Do not include ANY text, comments, or markdown formatting (like ```json) before or after the JSON object.\n")
	b.WriteString("Your response must follow this structure precisely:\n")
	b.WriteString(promptSchema)
	b.WriteString("\n")
	return b.String()
}
