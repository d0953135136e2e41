package services

import (
	"fmt"

	"hangman/models"

	"github.com/xuri/excelize/v2"
)

// BuildClassReport renders one course's play history and statistics into an
// xlsx workbook for download by a teacher of record or an admin
func BuildClassReport(actor *models.User, courseID string) (*excelize.File, error) {
	if err := ValidateCourseAccess(actor, courseID); err != nil {
		return nil, err
	}

	histories, err := FindByCourse(courseID)
	if err != nil {
		return nil, err
	}
	stats := BuildGameStatistics(histories, models.RoleAdmin, nil)

	f := excelize.NewFile()
	sheet := "Games"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student", "Word", "Category", "Success", "Wrong Attempts", "Wrong Letters", "Played At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, h := range histories {
		values := []interface{}{
			studentName(h),
			wordText(h),
			wordCategory(h),
			h.IsSuccess,
			h.Attempts,
			h.WrongLetters,
			h.PlayedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	rows := [][]interface{}{
		{"Total games", stats.TotalGames},
		{"Games won", stats.GamesWon},
		{"Games lost", stats.GamesLost},
		{"Win rate", fmt.Sprintf("%.1f%%", stats.WinRate)},
		{"Average wrong attempts", fmt.Sprintf("%.2f", stats.AverageAttempts)},
		{"Most missed letters", stats.MostMissedLetters},
		{"Best performing word", stats.BestPerformingWord},
		{"Worst performing word", stats.WorstPerformingWord},
	}
	for i, pair := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		f.SetCellValue(summary, keyCell, pair[0])
		f.SetCellValue(summary, valCell, pair[1])
	}

	return f, nil
}

func studentName(h models.GameHistory) string {
	if h.Student != nil {
		return h.Student.Username
	}
	return h.StudentID
}

func wordText(h models.GameHistory) string {
	if h.Word != nil {
		return h.Word.Word
	}
	return ""
}

func wordCategory(h models.GameHistory) string {
	if h.Word != nil {
		return h.Word.Category
	}
	return ""
}
