package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"hangman/models"
)

// GameStatistics is a computed, non-persisted summary of a set of game
// records. TimeDistribution buckets games by hour of day ("HH:00");
// ProgressTrend lists per-day win rates ordered by date ascending.
type GameStatistics struct {
	TotalGames          int            `json:"total_games"`
	GamesWon            int            `json:"games_won"`
	GamesLost           int            `json:"games_lost"`
	WinRate             float64        `json:"win_rate"`
	AverageAttempts     float64        `json:"average_attempts"`
	MostMissedLetters   string         `json:"most_missed_letters"`
	BestPerformingWord  string         `json:"best_performing_word"`
	WorstPerformingWord string         `json:"worst_performing_word"`
	TimeDistribution    map[string]int `json:"time_distribution"`
	ProgressTrend       []DailyWinRate `json:"progress_trend"`
}

// DailyWinRate is one day of the progress trend
type DailyWinRate struct {
	Date    string  `json:"date"`
	WinRate float64 `json:"win_rate"`
}

// BuildGameStatistics reduces a list of game records into summary metrics.
//
// For teachers, won/lost counts and the win rate are not derived from the
// record slice: they come from the class-wide average success across all
// students of the teacher's courses (teacherAvg), while every other field
// still derives from the records. The two denominators can therefore
// disagree; the behavior is kept deliberately so teacher dashboards reflect
// whole-class performance. A nil teacherAvg means the teacher has nothing
// assigned to average over, and yields the empty snapshot.
func BuildGameStatistics(histories []models.GameHistory, role models.Role, teacherAvg *float64) GameStatistics {
	if len(histories) == 0 {
		return emptyStatistics()
	}

	total := len(histories)
	wins := 0
	attempts := 0
	for _, h := range histories {
		if h.IsSuccess {
			wins++
		}
		attempts += h.Attempts
	}

	stats := GameStatistics{
		TotalGames:          total,
		GamesWon:            wins,
		GamesLost:           total - wins,
		WinRate:             winRate(wins, total),
		AverageAttempts:     float64(attempts) / float64(total),
		MostMissedLetters:   mostMissedLetters(histories),
		TimeDistribution:    timeDistribution(histories),
		ProgressTrend:       progressTrend(histories),
	}
	stats.BestPerformingWord, stats.WorstPerformingWord = wordPerformance(histories)

	if role == models.RoleTeacher {
		if teacherAvg == nil {
			return emptyStatistics()
		}
		stats.GamesWon = int(math.Round(float64(total) * *teacherAvg))
		stats.GamesLost = total - stats.GamesWon
		stats.WinRate = *teacherAvg * 100
	}

	return stats
}

func winRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}

// mostMissedLetters tallies the wrong letters of every record and returns
// the top three joined with commas. Ties keep the order in which a letter
// was first encountered across the record list.
func mostMissedLetters(histories []models.GameHistory) string {
	var order []string
	counts := make(map[string]int)
	for _, h := range histories {
		if h.WrongLetters == "" {
			continue
		}
		for _, letter := range strings.Split(h.WrongLetters, ",") {
			if letter == "" {
				continue
			}
			if _, seen := counts[letter]; !seen {
				order = append(order, letter)
			}
			counts[letter]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 3 {
		order = order[:3]
	}
	return strings.Join(order, ",")
}

// wordPerformance groups records by word and returns the words with the
// highest and lowest success ratio. Ties go to the word first encountered.
func wordPerformance(histories []models.GameHistory) (best, worst string) {
	type tally struct {
		plays int
		wins  int
	}
	var order []string
	tallies := make(map[string]*tally)
	for _, h := range histories {
		if h.Word == nil {
			continue
		}
		text := h.Word.Word
		t, seen := tallies[text]
		if !seen {
			t = &tally{}
			tallies[text] = t
			order = append(order, text)
		}
		t.plays++
		if h.IsSuccess {
			t.wins++
		}
	}
	if len(order) == 0 {
		return "", ""
	}

	bestRatio, worstRatio := -1.0, 2.0
	for _, text := range order {
		t := tallies[text]
		ratio := float64(t.wins) / float64(t.plays)
		if ratio > bestRatio {
			bestRatio, best = ratio, text
		}
		if ratio < worstRatio {
			worstRatio, worst = ratio, text
		}
	}
	return best, worst
}

func timeDistribution(histories []models.GameHistory) map[string]int {
	distribution := make(map[string]int)
	for _, h := range histories {
		bucket := fmt.Sprintf("%02d:00", h.PlayedAt.Hour())
		distribution[bucket]++
	}
	return distribution
}

func progressTrend(histories []models.GameHistory) []DailyWinRate {
	type tally struct {
		plays int
		wins  int
	}
	daily := make(map[string]*tally)
	for _, h := range histories {
		date := h.PlayedAt.Format("2006-01-02")
		t, seen := daily[date]
		if !seen {
			t = &tally{}
			daily[date] = t
		}
		t.plays++
		if h.IsSuccess {
			t.wins++
		}
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]DailyWinRate, 0, len(dates))
	for _, date := range dates {
		t := daily[date]
		trend = append(trend, DailyWinRate{Date: date, WinRate: winRate(t.wins, t.plays)})
	}
	return trend
}

func emptyStatistics() GameStatistics {
	return GameStatistics{
		TimeDistribution: make(map[string]int),
		ProgressTrend:    []DailyWinRate{},
	}
}
