package services

import (
	"testing"
	"time"

	"hangman/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFor(word string, success bool, attempts int, wrongLetters string, playedAt time.Time) models.GameHistory {
	return models.GameHistory{
		StudentID:    "s1",
		WordID:       word,
		Word:         &models.Word{ID: word, Word: word},
		IsSuccess:    success,
		Attempts:     attempts,
		WrongLetters: wrongLetters,
		PlayedAt:     playedAt,
	}
}

func TestBuildGameStatistics_EmptyHistories(t *testing.T) {
	t.Parallel()

	stats := BuildGameStatistics(nil, models.RoleStudent, nil)

	assert.Equal(t, 0, stats.TotalGames)
	assert.Equal(t, 0, stats.GamesWon)
	assert.Equal(t, 0, stats.GamesLost)
	assert.Zero(t, stats.WinRate)
	assert.Zero(t, stats.AverageAttempts)
	assert.Empty(t, stats.MostMissedLetters)
	assert.Empty(t, stats.BestPerformingWord)
	assert.Empty(t, stats.WorstPerformingWord)
	assert.NotNil(t, stats.TimeDistribution)
	assert.Empty(t, stats.TimeDistribution)
	assert.NotNil(t, stats.ProgressTrend)
	assert.Empty(t, stats.ProgressTrend)
}

func TestBuildGameStatistics_StudentTotals(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	histories := []models.GameHistory{
		historyFor("CAT", true, 5, "X,Y", at),
		historyFor("CAT", true, 3, "", at),
		historyFor("DOG", false, 13, "A,B,X", at),
		historyFor("DOG", false, 12, "X", at),
	}

	stats := BuildGameStatistics(histories, models.RoleStudent, nil)

	assert.Equal(t, 4, stats.TotalGames)
	assert.Equal(t, 2, stats.GamesWon)
	assert.Equal(t, 2, stats.GamesLost)
	assert.InDelta(t, 50.0, stats.WinRate, 1e-9)
	assert.InDelta(t, 8.25, stats.AverageAttempts, 1e-9)

	// CAT won both plays, DOG lost both
	assert.Equal(t, "CAT", stats.BestPerformingWord)
	assert.Equal(t, "DOG", stats.WorstPerformingWord)
}

func TestBuildGameStatistics_MostMissedLetters(t *testing.T) {
	t.Parallel()

	at := time.Now()

	tests := []struct {
		name      string
		histories []models.GameHistory
		expected  string
	}{
		{
			name: "top three by count",
			histories: []models.GameHistory{
				historyFor("CAT", false, 10, "X,Y,Z", at),
				historyFor("CAT", false, 10, "X,Y", at),
				historyFor("CAT", false, 10, "X,Q", at),
			},
			expected: "X,Y,Z",
		},
		{
			name: "ties keep first-encountered order",
			histories: []models.GameHistory{
				historyFor("CAT", false, 10, "M,N,O", at),
			},
			expected: "M,N,O",
		},
		{
			name: "fewer than three letters",
			histories: []models.GameHistory{
				historyFor("CAT", true, 4, "Q", at),
			},
			expected: "Q",
		},
		{
			name: "no wrong letters at all",
			histories: []models.GameHistory{
				historyFor("CAT", true, 3, "", at),
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stats := BuildGameStatistics(tt.histories, models.RoleAdmin, nil)
			assert.Equal(t, tt.expected, stats.MostMissedLetters)
		})
	}
}

func TestBuildGameStatistics_TimeDistributionBuckets(t *testing.T) {
	t.Parallel()

	histories := []models.GameHistory{
		historyFor("CAT", true, 3, "", time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC)),
		historyFor("CAT", true, 3, "", time.Date(2026, 3, 14, 9, 55, 0, 0, time.UTC)),
		historyFor("CAT", false, 11, "", time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)),
	}

	stats := BuildGameStatistics(histories, models.RoleStudent, nil)

	// Hours are zero-padded
	assert.Equal(t, 2, stats.TimeDistribution["09:00"])
	assert.Equal(t, 1, stats.TimeDistribution["23:00"])
	assert.Len(t, stats.TimeDistribution, 2)
}

func TestBuildGameStatistics_ProgressTrendOrdering(t *testing.T) {
	t.Parallel()

	histories := []models.GameHistory{
		historyFor("CAT", false, 12, "", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)),
		historyFor("CAT", true, 4, "", time.Date(2026, 3, 13, 10, 0, 0, 0, time.UTC)),
		historyFor("CAT", true, 5, "", time.Date(2026, 3, 15, 11, 0, 0, 0, time.UTC)),
	}

	stats := BuildGameStatistics(histories, models.RoleStudent, nil)

	require.Len(t, stats.ProgressTrend, 2)
	assert.Equal(t, "2026-03-13", stats.ProgressTrend[0].Date)
	assert.InDelta(t, 100.0, stats.ProgressTrend[0].WinRate, 1e-9)
	assert.Equal(t, "2026-03-15", stats.ProgressTrend[1].Date)
	assert.InDelta(t, 50.0, stats.ProgressTrend[1].WinRate, 1e-9)
}

func TestBuildGameStatistics_TeacherUsesClassAverage(t *testing.T) {
	t.Parallel()

	at := time.Now()
	histories := []models.GameHistory{
		historyFor("CAT", true, 3, "", at),
		historyFor("CAT", true, 4, "X", at),
		historyFor("DOG", false, 12, "A,B", at),
		historyFor("DOG", false, 13, "A", at),
	}

	avg := 0.75
	stats := BuildGameStatistics(histories, models.RoleTeacher, &avg)

	// Won/lost/win-rate come from the class-wide average, not the records
	assert.Equal(t, 4, stats.TotalGames)
	assert.Equal(t, 3, stats.GamesWon)
	assert.Equal(t, 1, stats.GamesLost)
	assert.InDelta(t, 75.0, stats.WinRate, 1e-9)

	// Everything else still derives from the records
	assert.InDelta(t, 8.0, stats.AverageAttempts, 1e-9)
	assert.Equal(t, "CAT", stats.BestPerformingWord)
	assert.Equal(t, "DOG", stats.WorstPerformingWord)
	assert.Equal(t, "A", stats.MostMissedLetters[:1])
}

func TestBuildGameStatistics_TeacherWithoutAverage(t *testing.T) {
	t.Parallel()

	histories := []models.GameHistory{
		historyFor("CAT", true, 3, "", time.Now()),
	}

	stats := BuildGameStatistics(histories, models.RoleTeacher, nil)

	// No assignments to average over yields the empty snapshot
	assert.Equal(t, 0, stats.TotalGames)
	assert.Equal(t, 0, stats.GamesWon)
	assert.Zero(t, stats.WinRate)
	assert.Empty(t, stats.ProgressTrend)
}

func TestBuildGameStatistics_WordPerformanceRatios(t *testing.T) {
	t.Parallel()

	at := time.Now()
	histories := []models.GameHistory{
		historyFor("CAT", true, 3, "", at),
		historyFor("CAT", false, 11, "", at),
		historyFor("CAT", true, 4, "", at),
		historyFor("DOG", false, 12, "", at),
	}

	stats := BuildGameStatistics(histories, models.RoleStudent, nil)

	// CAT at 2/3 beats DOG at 0/1
	assert.Equal(t, "CAT", stats.BestPerformingWord)
	assert.Equal(t, "DOG", stats.WorstPerformingWord)
}

func TestBuildGameStatistics_WordPerformanceTies(t *testing.T) {
	t.Parallel()

	at := time.Now()

	// Both words at 100%: first encountered wins best; both at 0% would win
	// worst the same way
	histories := []models.GameHistory{
		historyFor("CAT", true, 3, "", at),
		historyFor("DOG", true, 4, "", at),
	}

	stats := BuildGameStatistics(histories, models.RoleStudent, nil)
	assert.Equal(t, "CAT", stats.BestPerformingWord)
	assert.Equal(t, "CAT", stats.WorstPerformingWord)
}
