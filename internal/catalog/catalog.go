package catalog

import (
	"errors"
	"math/rand"

	"github.com/hri-lab/robot-survey/internal/models"
)

var (
	ErrInvalidSampleSize = errors.New("sample size must be positive")
	ErrEmptyCatalog      = errors.New("catalog is empty")
)

// shuffled returns a uniform random permutation of items (Fisher-Yates).
// The input slice is never touched.
func shuffled[T any](rng *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// RobotCatalog is a fixed, ordered collection of survey subjects.
type RobotCatalog struct {
	robots []models.Robot
}

// NewRobotCatalog copies robots into an immutable catalog.
func NewRobotCatalog(robots []models.Robot) (*RobotCatalog, error) {
	if len(robots) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &RobotCatalog{robots: make([]models.Robot, len(robots))}
	copy(c.robots, robots)
	return c, nil
}

// DefaultRobots returns the catalog built from the static robot-image list.
func DefaultRobots() *RobotCatalog {
	c, err := NewRobotCatalog(defaultRobots)
	if err != nil {
		panic(err) // static list, cannot be empty
	}
	return c
}

func (c *RobotCatalog) Len() int {
	return len(c.robots)
}

// Robots returns a copy of the full ordered list.
func (c *RobotCatalog) Robots() []models.Robot {
	out := make([]models.Robot, len(c.robots))
	copy(out, c.robots)
	return out
}

// Sample draws min(k, Len()) robots uniformly at random without
// replacement. Returning fewer than k when the catalog is smaller is
// documented behavior, not an error.
func (c *RobotCatalog) Sample(rng *rand.Rand, k int) ([]models.Robot, error) {
	if k <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if k > len(c.robots) {
		k = len(c.robots)
	}
	return shuffled(rng, c.robots)[:k], nil
}

// QuestionCatalog is the fixed, ordered questionnaire.
type QuestionCatalog struct {
	questions []models.Question
}

// NewQuestionCatalog copies questions into an immutable catalog.
func NewQuestionCatalog(questions []models.Question) (*QuestionCatalog, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &QuestionCatalog{questions: make([]models.Question, len(questions))}
	copy(c.questions, questions)
	return c, nil
}

// DefaultQuestions returns the standard 27-item perception questionnaire.
func DefaultQuestions() *QuestionCatalog {
	c, err := NewQuestionCatalog(assessmentQuestions)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *QuestionCatalog) Len() int {
	return len(c.questions)
}

// Questions returns a copy of the catalog in its canonical order.
func (c *QuestionCatalog) Questions() []models.Question {
	out := make([]models.Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Shuffle returns a full uniform permutation of the questionnaire.
func (c *QuestionCatalog) Shuffle(rng *rand.Rand) []models.Question {
	return shuffled(rng, c.questions)
}
