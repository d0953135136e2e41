package services

import (
	"testing"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorySummaries(t *testing.T) {
	t.Parallel()

	words := []models.Word{
		{Word: "CAT", Category: "Animals", Difficulty: 1},
		{Word: "PARLIAMENT", Category: "Politics", Difficulty: 4},
		{Word: "RHINOCEROS", Category: "Animals", Difficulty: 3},
		{Word: "DOG", Category: "Animals", Difficulty: 1},
	}

	summaries := CategorySummaries(words)
	require.Len(t, summaries, 2)

	// Categories keep first-encountered order
	assert.Equal(t, "Animals", summaries[0].Category)
	assert.Equal(t, 3, summaries[0].WordCount)
	assert.InDelta(t, 5.0/3.0, summaries[0].AverageDifficulty, 1e-9)

	assert.Equal(t, "Politics", summaries[1].Category)
	assert.Equal(t, 1, summaries[1].WordCount)
	assert.InDelta(t, 4.0, summaries[1].AverageDifficulty, 1e-9)
}

func TestCategorySummaries_Empty(t *testing.T) {
	t.Parallel()

	summaries := CategorySummaries(nil)
	assert.Empty(t, summaries)
}
