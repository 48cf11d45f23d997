package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/hri-lab/robot-survey/internal/models"
)

// EncodeExcel writes the same flattened table as EncodeCSV into a
// single-sheet XLSX workbook. Some collecting forms only accept
// spreadsheets, so both formats are offered on the completion screen.
func EncodeExcel(records []models.RobotAssessment) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	f := excelize.NewFile()
	sheetName := "Assessments"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		f.SetCellValue(sheetName, cell, header)
	}

	rowNum := 2
	for i, rec := range records {
		if len(rec.Ratings) != len(rec.QuestionsSnapshot) {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.RobotID, ErrMalformedRecord)
		}

		for qi, question := range rec.QuestionsSnapshot {
			row := []interface{}{
				rec.UserName,
				rec.UserAge,
				rec.UserGender,
				rec.UserMajor,
				rec.RobotID,
				rec.RobotName,
				rec.RobotImageRef,
				formatTimestamp(rec.CompletedAt),
				rec.OverallScore,
				question.ID,
				question.Category,
				question.SubCategory,
				question.Text,
				rec.Ratings[qi],
			}

			cell := "A" + strconv.Itoa(rowNum)
			if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write Excel row: %w", err)
			}
			rowNum++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return buf.Bytes(), nil
}
