package quizgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	req := Request{SourceText: "  photosynthesis converts light into energy  ", Difficulty: Hard}
	prompt := BuildPrompt(req, 5)

	assert.Contains(t, prompt, "photosynthesis converts light into energy")
	assert.Contains(t, prompt, "exactly 5 multiple choice questions")
	assert.Contains(t, prompt, "difficulty level of hard")
	assert.Contains(t, prompt, promptSchema)
	assert.Contains(t, prompt, "zero-based index")
	assert.False(t, strings.Contains(prompt, "  photosynthesis"), "source text is trimmed before embedding")
}
