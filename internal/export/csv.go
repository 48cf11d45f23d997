package export

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hri-lab/robot-survey/internal/models"
)

var (
	// ErrNoData is returned when an export is attempted before any robot
	// has been assessed.
	ErrNoData = errors.New("no completed assessments to export")

	// ErrMalformedRecord is returned when a record's ratings and question
	// snapshot are not index-aligned.
	ErrMalformedRecord = errors.New("ratings and question snapshot length mismatch")
)

// timestampLayout matches the ISO-8601 form the collecting form expects
// (millisecond precision, UTC).
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// csvHeader is the fixed column order. The bilingual labels carry the
// identifiers the downstream analysis scripts key on.
var csvHeader = []string{
	"用户姓名 (UserName)",
	"用户年龄 (UserAge)",
	"用户性别 (UserGender)",
	"用户专业 (UserMajor)",
	"机器人ID (RobotID)",
	"机器人名称 (RobotName)",
	"机器人图片URL (RobotImageURL)",
	"评估时间戳 (Timestamp)",
	"机器人综合评分 (OverallRobotScore)",
	"问题ID (QuestionID)",
	"问题分类 (Category)",
	"问题子分类 (SubCategory)",
	"问题文本 (QuestionText)",
	"单项评分 (IndividualScore)",
}

// EncodeCSV serializes completed assessments as one header row plus one row
// per question per record. String fields are always double-quoted with
// internal quotes doubled; numeric fields are bare. Rows are joined with
// "\n" and there is no trailing newline. Same input, same bytes.
//
// encoding/csv cannot produce this format: it quotes fields only when
// forced to and terminates rows with "\r\n".
func EncodeCSV(records []models.RobotAssessment) (string, error) {
	if len(records) == 0 {
		return "", ErrNoData
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for i, rec := range records {
		if len(rec.Ratings) != len(rec.QuestionsSnapshot) {
			return "", fmt.Errorf("record %d (%s): %w", i, rec.RobotID, ErrMalformedRecord)
		}

		for qi, question := range rec.QuestionsSnapshot {
			row := []string{
				quote(rec.UserName),
				strconv.Itoa(rec.UserAge),
				quote(rec.UserGender),
				quote(rec.UserMajor),
				quote(rec.RobotID),
				quote(rec.RobotName),
				quote(rec.RobotImageRef),
				quote(formatTimestamp(rec.CompletedAt)),
				strconv.Itoa(rec.OverallScore),
				quote(question.ID),
				quote(question.Category),
				quote(question.SubCategory),
				quote(question.Text),
				strconv.Itoa(rec.Ratings[qi]),
			}
			b.WriteByte('\n')
			b.WriteString(strings.Join(row, ","))
		}
	}

	return b.String(), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
