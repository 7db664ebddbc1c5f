package quizgen

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizforge/quizforge/internal/providers"
	"github.com/quizforge/quizforge/internal/telemetry"
)

func TestMain(m *testing.M) {
	telemetry.Init(telemetry.Config{Level: "disabled"})
	os.Exit(m.Run())
}

// fakeClient records calls and replays a canned reply or error.
type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) Name() providers.SourceName { return "FAKE" }

func (f *fakeClient) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateEmptyInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		fake := &fakeClient{reply: validPayload(5)}
		gen := NewGenerator(fake, 5)

		quiz, err := gen.Generate(context.Background(), Request{SourceText: text, Difficulty: Easy})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Nil(t, quiz)
		assert.Zero(t, fake.calls, "no provider call may happen on invalid input")
	}
}

func TestGenerateUnknownDifficulty(t *testing.T) {
	fake := &fakeClient{reply: validPayload(5)}
	gen := NewGenerator(fake, 5)

	_, err := gen.Generate(context.Background(), Request{SourceText: "some text", Difficulty: "brutal"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Zero(t, fake.calls)
}

func TestGenerateUpstreamFailure(t *testing.T) {
	fake := &fakeClient{err: errors.New("gemini http 503 Service Unavailable")}
	gen := NewGenerator(fake, 5)

	quiz, err := gen.Generate(context.Background(), Request{SourceText: "some text", Difficulty: Hard})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
	assert.Nil(t, quiz)
	assert.Equal(t, 1, fake.calls)
}

func TestGenerateMalformedReply(t *testing.T) {
	fake := &fakeClient{reply: `{"questions":[{"prompt":"q","answer":0}]}`}
	gen := NewGenerator(fake, 1)

	quiz, err := gen.Generate(context.Background(), Request{SourceText: "some text", Difficulty: Medium})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
	assert.Nil(t, quiz)
}

func TestGenerateSuccess(t *testing.T) {
	fake := &fakeClient{reply: validPayload(5)}
	gen := NewGenerator(fake, 5)

	quiz, err := gen.Generate(context.Background(), Request{SourceText: "the moon orbits the earth", Difficulty: Medium})
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, Medium, quiz.Difficulty)
	require.Len(t, quiz.Questions, 5)
	for _, q := range quiz.Questions {
		assert.Len(t, q.Options, OptionsPerQuestion)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, OptionsPerQuestion)
	}
	assert.Equal(t, 1, fake.calls)
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{
		"easy": Easy, "Medium": Medium, " HARD ": Hard,
	} {
		got, err := ParseDifficulty(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("impossible")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
