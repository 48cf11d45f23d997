package session

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hri-lab/robot-survey/internal/catalog"
	apperrors "github.com/hri-lab/robot-survey/internal/errors"
	"github.com/hri-lab/robot-survey/internal/events"
	"github.com/hri-lab/robot-survey/internal/export"
	"github.com/hri-lab/robot-survey/internal/models"
	"github.com/hri-lab/robot-survey/internal/utils"
	"github.com/hri-lab/robot-survey/internal/validator"
)

// DefaultRobotsPerSession is how many robots each participant assesses.
const DefaultRobotsPerSession = 3

// Config carries the session's collaborators. Zero values get sensible
// defaults; Rand and Clock exist so tests can pin sampling and durations.
type Config struct {
	RobotsPerSession int
	ExportPrefix     string
	Rand             *rand.Rand
	Clock            func() time.Time
	Logger           utils.Logger
	Publisher        events.EventPublisher
	Validator        *validator.Validator
}

// Session is one participant's run through the sampled robots. It is the
// single owner of all assessment state; the presentation layer reads
// through accessors and mutates only through the operations below. All
// operations are synchronous and all-or-nothing: on any error the session
// is exactly as it was before the call.
//
// Session is not safe for concurrent use. The survey is driven by one
// event loop; observers of the published events must treat it read-only.
type Session struct {
	id    string
	state models.SessionState

	robots    []models.Robot
	questions *catalog.QuestionCatalog

	participant    models.ParticipantInfo
	participantAge int

	// Per-robot rating pass, reset at every pass boundary.
	shuffled  []models.Question
	sliders   []int
	answered  []bool
	startedAt time.Time

	current   int
	completed []models.RobotAssessment

	exportPrefix string
	rng          *rand.Rand
	clock        func() time.Time
	logger       utils.Logger
	publisher    events.EventPublisher
	validator    *validator.Validator
}

// New samples robots from the catalog and creates a session waiting for
// participant info. A RobotsPerSession larger than the catalog yields a
// shorter session, never an error; zero or negative is rejected by Sample.
func New(robots *catalog.RobotCatalog, questions *catalog.QuestionCatalog, cfg Config) (*Session, error) {
	if cfg.RobotsPerSession == 0 {
		cfg.RobotsPerSession = DefaultRobotsPerSession
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = utils.NewDefaultLogger()
	}
	if cfg.Validator == nil {
		cfg.Validator = validator.New()
	}
	if cfg.ExportPrefix == "" {
		cfg.ExportPrefix = export.DefaultPrefix
	}

	selected, err := robots.Sample(cfg.Rand, cfg.RobotsPerSession)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:           uuid.NewString(),
		state:        models.StateCollectingInfo,
		robots:       selected,
		questions:    questions,
		exportPrefix: cfg.ExportPrefix,
		rng:          cfg.Rand,
		clock:        cfg.Clock,
		publisher:    cfg.Publisher,
		validator:    cfg.Validator,
	}
	s.logger = cfg.Logger.With("session_id", s.id)

	s.logger.Info("Session created",
		"robots", len(s.robots),
		"questions", questions.Len())

	return s, nil
}

// ===== OPERATIONS =====

// SubmitParticipantInfo validates the four participant fields and, on
// success, starts the first rating pass. On failure the session stays in
// the info-collection state and the returned ValidationErrors name every
// failing field.
func (s *Session) SubmitParticipantInfo(info models.ParticipantInfo) error {
	switch s.state {
	case models.StateRating:
		return ErrInfoAlreadySubmitted
	case models.StateCompleted:
		return ErrSessionCompleted
	}

	info.Name = strings.TrimSpace(info.Name)
	info.Age = strings.TrimSpace(info.Age)
	info.FieldOfStudy = strings.TrimSpace(info.FieldOfStudy)

	if err := s.validator.Validate(info); err != nil {
		fieldErrs := apperrors.ToValidationErrors(err)
		s.logger.Warn("Participant info rejected",
			"field_errors", len(fieldErrs))
		return fieldErrs
	}

	age, err := strconv.Atoi(info.Age)
	if err != nil || age <= 0 {
		// Unreachable once the number_positive rule passed; keep the
		// session consistent anyway.
		return apperrors.ValidationErrors{
			*apperrors.NewValidationError("age", "must be a positive whole number", info.Age),
		}
	}

	s.participant = info
	s.participantAge = age
	s.state = models.StateRating
	s.beginRatingPass()

	s.logger.Info("Participant info accepted, rating started",
		"participant", info.Name,
		"robots", len(s.robots))

	event := events.NewSessionEvent(events.SessionStarted, s.id)
	event.RobotsTotal = len(s.robots)
	s.publish(event)

	return nil
}

// UpdateRating sets one slider and marks its question answered. No state
// transition happens and nothing else is touched.
func (s *Session) UpdateRating(questionIndex, value int) error {
	switch s.state {
	case models.StateCollectingInfo:
		return ErrNotRating
	case models.StateCompleted:
		return ErrSessionCompleted
	}

	if questionIndex < 0 || questionIndex >= len(s.shuffled) {
		return ErrInvalidQuestionIndex
	}
	if value < 0 || value > 100 {
		return ErrInvalidRatingValue
	}

	s.sliders[questionIndex] = value
	s.answered[questionIndex] = true
	return nil
}

// SaveAndAdvance snapshots the current robot's assessment and moves to the
// next robot, or to the completed state after the last one. It refuses to
// save while any question is unanswered.
func (s *Session) SaveAndAdvance() (*models.RobotAssessment, error) {
	switch s.state {
	case models.StateCollectingInfo:
		return nil, ErrNotRating
	case models.StateCompleted:
		return nil, ErrSessionCompleted
	}

	unanswered := 0
	for _, done := range s.answered {
		if !done {
			unanswered++
		}
	}
	if unanswered > 0 {
		return nil, &IncompleteError{Unanswered: unanswered}
	}

	now := s.clock()
	duration := int(math.Round(now.Sub(s.startedAt).Seconds()))
	if duration < 0 {
		duration = 0
	}

	robot := s.robots[s.current]
	record := models.RobotAssessment{
		RobotID:           robot.ID,
		RobotName:         robot.Name,
		RobotImageRef:     robot.ImageRef,
		CompletedAt:       now,
		Ratings:           append([]int(nil), s.sliders...),
		QuestionsSnapshot: append([]models.Question(nil), s.shuffled...),
		OverallScore:      overallScore(s.sliders),
		UserName:          s.participant.Name,
		UserAge:           s.participantAge,
		UserGender:        s.participant.Gender,
		UserMajor:         s.participant.FieldOfStudy,
		DurationSeconds:   duration,
	}

	s.completed = append(s.completed, record)
	s.current++

	s.logger.Info("Robot assessment saved",
		"robot_id", robot.ID,
		"overall_score", record.OverallScore,
		"duration_seconds", duration,
		"progress", s.current,
		"total", len(s.robots))

	event := events.NewSessionEvent(events.RobotAssessed, s.id)
	event.RobotID = robot.ID
	event.RobotName = robot.Name
	event.RobotIndex = s.current - 1
	event.RobotsTotal = len(s.robots)
	event.OverallScore = record.OverallScore
	event.DurationSeconds = duration
	s.publish(event)

	if s.current < len(s.robots) {
		s.beginRatingPass()
	} else {
		s.state = models.StateCompleted
		s.logger.Info("Session completed", "assessments", len(s.completed))
		s.publish(events.NewSessionEvent(events.SessionCompleted, s.id))
	}

	return &record, nil
}

// ExportCSV serializes all completed assessments. Read-only and callable
// repeatedly; fails only when nothing has been completed yet.
func (s *Session) ExportCSV() (string, error) {
	return export.EncodeCSV(s.completed)
}

// ExportExcel is the XLSX counterpart of ExportCSV.
func (s *Session) ExportExcel() ([]byte, error) {
	return export.EncodeExcel(s.completed)
}

// ExportFilename returns the conventional download name for this session.
func (s *Session) ExportFilename(ext string) string {
	return export.Filename(s.exportPrefix, s.participant.Name, s.clock(), ext)
}

// ===== ACCESSORS =====

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() models.SessionState {
	return s.state
}

// Robots returns a copy of the sampled robots in session order.
func (s *Session) Robots() []models.Robot {
	return append([]models.Robot(nil), s.robots...)
}

// CurrentRobot returns the robot under assessment, or false outside a
// rating pass.
func (s *Session) CurrentRobot() (models.Robot, bool) {
	if s.state != models.StateRating {
		return models.Robot{}, false
	}
	return s.robots[s.current], true
}

func (s *Session) CurrentIndex() int {
	return s.current
}

// Questions returns a copy of the shuffled order shown for the current
// rating pass.
func (s *Session) Questions() []models.Question {
	return append([]models.Question(nil), s.shuffled...)
}

// SliderValues returns a copy of the current slider positions.
func (s *Session) SliderValues() []int {
	return append([]int(nil), s.sliders...)
}

// Answered returns a copy of the per-question answered flags.
func (s *Session) Answered() []bool {
	return append([]bool(nil), s.answered...)
}

// AnsweredCount returns how many questions have been rated so far in the
// current pass.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, done := range s.answered {
		if done {
			n++
		}
	}
	return n
}

// CompletedAssessments returns a copy of the finished records in order.
func (s *Session) CompletedAssessments() []models.RobotAssessment {
	return append([]models.RobotAssessment(nil), s.completed...)
}

func (s *Session) Participant() models.ParticipantInfo {
	return s.participant
}

// Progress is the completed fraction in [0, 1].
func (s *Session) Progress() float64 {
	if len(s.robots) == 0 {
		return 0
	}
	return float64(len(s.completed)) / float64(len(s.robots))
}

// Elapsed reports time spent on the current robot. Advisory only: timers
// display it and must never feed it back into session state.
func (s *Session) Elapsed() time.Duration {
	if s.state != models.StateRating {
		return 0
	}
	elapsed := s.clock().Sub(s.startedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ===== INTERNALS =====

// beginRatingPass reshuffles the questionnaire and resets sliders, answered
// flags and the pass start instant. Each robot gets its own question order.
func (s *Session) beginRatingPass() {
	s.shuffled = s.questions.Shuffle(s.rng)
	s.sliders = make([]int, len(s.shuffled))
	for i := range s.sliders {
		s.sliders[i] = catalog.InitialSliderValue
	}
	s.answered = make([]bool, len(s.shuffled))
	s.startedAt = s.clock()
}

func (s *Session) publish(event *events.SessionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSessionEvent(context.Background(), event); err != nil {
		s.logger.LogError(err, "Failed to publish session event", "event_type", event.Type)
	}
}

// overallScore is the rounded arithmetic mean, half away from zero, the
// mean of no values being 0.
func overallScore(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}
