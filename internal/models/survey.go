package models

import "time"

// SessionState tracks where a participant is in the assessment flow.
type SessionState string

const (
	StateCollectingInfo SessionState = "collecting_info"
	StateRating         SessionState = "rating"
	StateCompleted      SessionState = "completed"
)

// Gender labels offered to participants. The survey is administered in
// Chinese, so the stored values are the Chinese labels.
type Gender string

const (
	GenderMale        Gender = "男"
	GenderFemale      Gender = "女"
	GenderOther       Gender = "其他"
	GenderUndisclosed Gender = "不愿透露"
)

// Robot is one subject of the survey: an image plus an identity.
// Catalog entries are immutable once loaded.
type Robot struct {
	ID       string `json:"id" validate:"required"`
	ImageRef string `json:"filename" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Question is one item of the fixed questionnaire.
type Question struct {
	ID          string `json:"id" validate:"required"`
	Category    string `json:"category" validate:"required"`
	SubCategory string `json:"sub_category" validate:"required"`
	Text        string `json:"text" validate:"required"`
}

// ParticipantInfo is captured once per session and immutable thereafter.
// Age arrives as a string from the input form and must parse to a positive
// integer; the session validates it before the first rating pass starts.
type ParticipantInfo struct {
	Name         string `json:"name" validate:"required"`
	Age          string `json:"age" validate:"required,number_positive"`
	Gender       string `json:"gender" validate:"required,gender"`
	FieldOfStudy string `json:"field_of_study" validate:"required"`
}

// RobotAssessment is the immutable snapshot of one robot's completed
// ratings, produced when the participant saves and advances. Ratings and
// QuestionsSnapshot are index-aligned and reflect the shuffled order the
// questions were shown in.
type RobotAssessment struct {
	RobotID           string     `json:"robot_id"`
	RobotName         string     `json:"robot_name"`
	RobotImageRef     string     `json:"robot_image_url"`
	CompletedAt       time.Time  `json:"timestamp"`
	Ratings           []int      `json:"slider_values"`
	QuestionsSnapshot []Question `json:"questions_snapshot"`
	OverallScore      int        `json:"overall_score"`
	UserName          string     `json:"user_name"`
	UserAge           int        `json:"user_age"`
	UserGender        string     `json:"user_gender"`
	UserMajor         string     `json:"user_major"`
	DurationSeconds   int        `json:"duration_seconds"`
}
