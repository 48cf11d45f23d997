package session

import (
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hri-lab/robot-survey/internal/catalog"
	apperrors "github.com/hri-lab/robot-survey/internal/errors"
	"github.com/hri-lab/robot-survey/internal/events"
	"github.com/hri-lab/robot-survey/internal/models"
)

// fixedClock is a manually advanced clock for duration assertions.
type fixedClock struct {
	now time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func testCatalogs(t *testing.T, robots, questions int) (*catalog.RobotCatalog, *catalog.QuestionCatalog) {
	t.Helper()

	rs := make([]models.Robot, robots)
	for i := range rs {
		id := string(rune('a' + i))
		rs[i] = models.Robot{ID: "robot-" + id, ImageRef: "/robot-images/" + id + ".jpg", Name: "bot-" + id}
	}
	qs := make([]models.Question, questions)
	for i := range qs {
		id := string(rune('a' + i))
		qs[i] = models.Question{ID: "q-" + id, Category: "cat", SubCategory: "sub", Text: "问题 " + id}
	}

	robotCat, err := catalog.NewRobotCatalog(rs)
	require.NoError(t, err)
	questionCat, err := catalog.NewQuestionCatalog(qs)
	require.NoError(t, err)
	return robotCat, questionCat
}

func testSession(t *testing.T, robots, questions int) (*Session, *fixedClock, *events.MockEventPublisher) {
	t.Helper()

	robotCat, questionCat := testCatalogs(t, robots, questions)
	clock := newFixedClock()
	publisher := events.NewMockEventPublisher(slog.Default())

	sess, err := New(robotCat, questionCat, Config{
		RobotsPerSession: robots,
		Rand:             rand.New(rand.NewSource(1)),
		Clock:            clock.Now,
		Publisher:        publisher,
	})
	require.NoError(t, err)
	return sess, clock, publisher
}

func validInfo() models.ParticipantInfo {
	return models.ParticipantInfo{
		Name:         "Li",
		Age:          "20",
		Gender:       "女",
		FieldOfStudy: "CS",
	}
}

func answerAll(t *testing.T, sess *Session, value int) {
	t.Helper()
	for i := range sess.Questions() {
		require.NoError(t, sess.UpdateRating(i, value))
	}
}

// ===== PARTICIPANT INFO =====

func TestSubmitParticipantInfo_Valid(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)

	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	assert.Equal(t, models.StateRating, sess.State())
	assert.Equal(t, 0, sess.CurrentIndex())
	assert.Len(t, sess.Questions(), 4)

	// Fresh rating state: all sliders at the midpoint, nothing answered.
	for _, v := range sess.SliderValues() {
		assert.Equal(t, catalog.InitialSliderValue, v)
	}
	for _, answered := range sess.Answered() {
		assert.False(t, answered)
	}
}

func TestSubmitParticipantInfo_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		info  models.ParticipantInfo
		field string
	}{
		{"empty name", models.ParticipantInfo{Age: "20", Gender: "男", FieldOfStudy: "CS"}, "name"},
		{"empty age", models.ParticipantInfo{Name: "Li", Gender: "男", FieldOfStudy: "CS"}, "age"},
		{"empty gender", models.ParticipantInfo{Name: "Li", Age: "20", FieldOfStudy: "CS"}, "gender"},
		{"empty major", models.ParticipantInfo{Name: "Li", Age: "20", Gender: "男"}, "field_of_study"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _, _ := testSession(t, 3, 4)

			err := sess.SubmitParticipantInfo(tt.info)
			require.Error(t, err)

			var fieldErrs apperrors.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.NotEmpty(t, fieldErrs)
			assert.Equal(t, tt.field, fieldErrs[0].Field)

			// Session stays in the info-collection state.
			assert.Equal(t, models.StateCollectingInfo, sess.State())
		})
	}
}

func TestSubmitParticipantInfo_BadAge(t *testing.T) {
	for _, age := range []string{"abc", "0", "-5", "3.5"} {
		t.Run(age, func(t *testing.T) {
			sess, _, _ := testSession(t, 3, 4)

			info := validInfo()
			info.Age = age
			err := sess.SubmitParticipantInfo(info)

			var fieldErrs apperrors.ValidationErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, models.StateCollectingInfo, sess.State())
		})
	}
}

func TestSubmitParticipantInfo_BadGenderLabel(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)

	info := validInfo()
	info.Gender = "unknown"
	err := sess.SubmitParticipantInfo(info)

	var fieldErrs apperrors.ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "gender", fieldErrs[0].Field)
}

func TestSubmitParticipantInfo_Twice(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)

	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))
	assert.ErrorIs(t, sess.SubmitParticipantInfo(validInfo()), ErrInfoAlreadySubmitted)
}

// ===== RATING =====

func TestUpdateRating_Bounds(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	assert.ErrorIs(t, sess.UpdateRating(-1, 50), ErrInvalidQuestionIndex)
	assert.ErrorIs(t, sess.UpdateRating(4, 50), ErrInvalidQuestionIndex)
	assert.ErrorIs(t, sess.UpdateRating(0, -1), ErrInvalidRatingValue)
	assert.ErrorIs(t, sess.UpdateRating(0, 101), ErrInvalidRatingValue)

	// Nothing answered after a rejected update.
	assert.Equal(t, 0, sess.AnsweredCount())
}

func TestUpdateRating_BeforeInfoSubmitted(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)

	assert.ErrorIs(t, sess.UpdateRating(0, 50), ErrNotRating)
}

func TestUpdateRating_MarksAnswered(t *testing.T) {
	sess, _, _ := testSession(t, 3, 4)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	require.NoError(t, sess.UpdateRating(2, 80))

	assert.Equal(t, 80, sess.SliderValues()[2])
	assert.True(t, sess.Answered()[2])
	assert.Equal(t, 1, sess.AnsweredCount())
}

// ===== COMPLETION GATING =====

func TestSaveAndAdvance_IncompleteGating(t *testing.T) {
	sess, _, _ := testSession(t, 1, 27)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	// 26 of 27 answered.
	for i := 0; i < 26; i++ {
		require.NoError(t, sess.UpdateRating(i, 60))
	}

	_, err := sess.SaveAndAdvance()
	var incomplete *IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 1, incomplete.Unanswered)
	assert.True(t, IsIncomplete(err))

	// State unchanged on failure.
	assert.Equal(t, 0, sess.CurrentIndex())
	assert.Empty(t, sess.CompletedAssessments())
	assert.Equal(t, models.StateRating, sess.State())

	// Answering the last question unlocks the save.
	require.NoError(t, sess.UpdateRating(26, 60))
	_, err = sess.SaveAndAdvance()
	require.NoError(t, err)
	assert.Equal(t, 1, sess.CurrentIndex())
}

// ===== SCORING =====

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 50, overallScore([]int{0, 50, 100}))
	assert.Equal(t, 50, overallScore([]int{50, 50, 50, 50}))
	assert.Equal(t, 0, overallScore(nil))
	// Half-away-from-zero: mean 50.5 rounds up.
	assert.Equal(t, 51, overallScore([]int{50, 51}))
}

func TestSaveAndAdvance_RecordContents(t *testing.T) {
	sess, clock, _ := testSession(t, 2, 3)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	robot, ok := sess.CurrentRobot()
	require.True(t, ok)
	questions := sess.Questions()

	require.NoError(t, sess.UpdateRating(0, 0))
	require.NoError(t, sess.UpdateRating(1, 50))
	require.NoError(t, sess.UpdateRating(2, 100))
	clock.Advance(95 * time.Second)

	record, err := sess.SaveAndAdvance()
	require.NoError(t, err)

	assert.Equal(t, robot.ID, record.RobotID)
	assert.Equal(t, robot.Name, record.RobotName)
	assert.Equal(t, robot.ImageRef, record.RobotImageRef)
	assert.Equal(t, []int{0, 50, 100}, record.Ratings)
	assert.Equal(t, questions, record.QuestionsSnapshot)
	assert.Equal(t, 50, record.OverallScore)
	assert.Equal(t, 95, record.DurationSeconds)
	assert.Equal(t, "Li", record.UserName)
	assert.Equal(t, 20, record.UserAge)
	assert.Equal(t, "女", record.UserGender)
	assert.Equal(t, "CS", record.UserMajor)
	assert.Equal(t, clock.Now(), record.CompletedAt)
}

func TestSaveAndAdvance_DurationClampedAtZero(t *testing.T) {
	sess, clock, _ := testSession(t, 1, 2)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))
	answerAll(t, sess, 40)

	// Clock skew: time going backwards must not yield a negative duration.
	clock.Advance(-30 * time.Second)

	record, err := sess.SaveAndAdvance()
	require.NoError(t, err)
	assert.Equal(t, 0, record.DurationSeconds)
}

func TestSaveAndAdvance_FreshStateForNextRobot(t *testing.T) {
	sess, clock, _ := testSession(t, 2, 3)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))
	answerAll(t, sess, 77)
	clock.Advance(time.Minute)

	_, err := sess.SaveAndAdvance()
	require.NoError(t, err)

	// Fresh pass for robot 1: sliders back to midpoint, flags cleared,
	// timer restarted.
	assert.Equal(t, models.StateRating, sess.State())
	for _, v := range sess.SliderValues() {
		assert.Equal(t, catalog.InitialSliderValue, v)
	}
	assert.Equal(t, 0, sess.AnsweredCount())
	assert.Equal(t, time.Duration(0), sess.Elapsed())
}

func TestSaveAndAdvance_ReshufflesQuestionsPerRobot(t *testing.T) {
	robotCat, _ := testCatalogs(t, 2, 1)
	clock := newFixedClock()

	sess, err := New(robotCat, catalog.DefaultQuestions(), Config{
		RobotsPerSession: 2,
		Rand:             rand.New(rand.NewSource(11)),
		Clock:            clock.Now,
	})
	require.NoError(t, err)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	firstOrder := questionIDs(sess.Questions())
	answerAll(t, sess, 60)
	_, err = sess.SaveAndAdvance()
	require.NoError(t, err)

	// Robot 1 gets the same questionnaire in its own order, not the order
	// robot 0 saw.
	secondOrder := questionIDs(sess.Questions())
	assert.ElementsMatch(t, firstOrder, secondOrder)
	assert.NotEqual(t, firstOrder, secondOrder)
}

func questionIDs(questions []models.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

// ===== MONOTONICITY AND TERMINAL STABILITY =====

func TestSession_Monotonicity(t *testing.T) {
	sess, _, _ := testSession(t, 3, 2)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	for round := 0; round < 3; round++ {
		// Index never decreases and always equals completed count.
		assert.Equal(t, round, sess.CurrentIndex())
		assert.Len(t, sess.CompletedAssessments(), round)

		// A failed save must not move anything.
		_, err := sess.SaveAndAdvance()
		assert.True(t, IsIncomplete(err))
		assert.Equal(t, round, sess.CurrentIndex())

		answerAll(t, sess, 60)
		_, err = sess.SaveAndAdvance()
		require.NoError(t, err)
	}

	assert.Equal(t, models.StateCompleted, sess.State())
	assert.Equal(t, 3, sess.CurrentIndex())
	assert.Len(t, sess.CompletedAssessments(), 3)
}

func TestSession_TerminalStability(t *testing.T) {
	sess, _, _ := testSession(t, 1, 2)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))
	answerAll(t, sess, 30)
	_, err := sess.SaveAndAdvance()
	require.NoError(t, err)
	require.Equal(t, models.StateCompleted, sess.State())

	before := sess.CompletedAssessments()

	assert.ErrorIs(t, sess.UpdateRating(0, 99), ErrSessionCompleted)
	_, err = sess.SaveAndAdvance()
	assert.ErrorIs(t, err, ErrSessionCompleted)
	assert.ErrorIs(t, sess.SubmitParticipantInfo(validInfo()), ErrSessionCompleted)

	assert.Equal(t, before, sess.CompletedAssessments())
	assert.Equal(t, 1, sess.CurrentIndex())

	_, ok := sess.CurrentRobot()
	assert.False(t, ok)
}

// ===== EVENTS =====

func TestSession_PublishesTransitionEvents(t *testing.T) {
	sess, _, publisher := testSession(t, 2, 2)

	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))
	for round := 0; round < 2; round++ {
		answerAll(t, sess, 50)
		_, err := sess.SaveAndAdvance()
		require.NoError(t, err)
	}

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 4)
	assert.Equal(t, events.SessionStarted, published[0].Type)
	assert.Equal(t, events.RobotAssessed, published[1].Type)
	assert.Equal(t, events.RobotAssessed, published[2].Type)
	assert.Equal(t, events.SessionCompleted, published[3].Type)

	for _, e := range published {
		assert.Equal(t, sess.ID(), e.SessionID)
		assert.NotEmpty(t, e.ID)
	}
	assert.Equal(t, 0, published[1].RobotIndex)
	assert.Equal(t, 1, published[2].RobotIndex)
}

// ===== EXPORT =====

func TestExportCSV_BeforeAnyAssessment(t *testing.T) {
	sess, _, _ := testSession(t, 2, 2)
	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	_, err := sess.ExportCSV()
	assert.Error(t, err)
}

func TestSession_EndToEnd(t *testing.T) {
	const (
		robotCount    = 3
		questionCount = 5
	)
	sess, clock, _ := testSession(t, robotCount, questionCount)

	require.NoError(t, sess.SubmitParticipantInfo(validInfo()))

	for round := 0; round < robotCount; round++ {
		answerAll(t, sess, 40+round)
		clock.Advance(30 * time.Second)
		_, err := sess.SaveAndAdvance()
		require.NoError(t, err)
	}

	require.Equal(t, models.StateCompleted, sess.State())

	out, err := sess.ExportCSV()
	require.NoError(t, err)
	assert.Len(t, strings.Split(out, "\n"), 1+robotCount*questionCount)

	// Export is repeatable and does not disturb the session.
	again, err := sess.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.Equal(t, robotCount, sess.CurrentIndex())

	xlsx, err := sess.ExportExcel()
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)

	name := sess.ExportFilename("csv")
	assert.True(t, strings.HasPrefix(name, "robot_assessments_Li_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}

func TestNew_InvalidSampleSize(t *testing.T) {
	robotCat, questionCat := testCatalogs(t, 3, 2)

	_, err := New(robotCat, questionCat, Config{
		RobotsPerSession: -1,
		Rand:             rand.New(rand.NewSource(1)),
	})
	assert.ErrorIs(t, err, catalog.ErrInvalidSampleSize)
}

func TestNew_SessionShorterThanRequested(t *testing.T) {
	robotCat, questionCat := testCatalogs(t, 2, 2)

	sess, err := New(robotCat, questionCat, Config{
		RobotsPerSession: 10,
		Rand:             rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	assert.Len(t, sess.Robots(), 2)
}
