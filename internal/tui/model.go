package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	apperrors "github.com/hri-lab/robot-survey/internal/errors"
	"github.com/hri-lab/robot-survey/internal/models"
	"github.com/hri-lab/robot-survey/internal/session"
)

type screen int

const (
	screenForm screen = iota
	screenRating
	screenDone
)

// Form focus slots, top to bottom.
const (
	focusName = iota
	focusAge
	focusGender
	focusMajor
	focusCount
)

var genderChoices = []models.Gender{
	models.GenderMale,
	models.GenderFemale,
	models.GenderOther,
	models.GenderUndisclosed,
}

// tickMsg drives the advisory elapsed-time display once per second.
type tickMsg time.Time

// Options configures the survey UI.
type Options struct {
	Session   *session.Session
	BasePath  string
	ExportDir string
}

// Model is the root Bubble Tea model. It owns no survey state of its own:
// every rating, transition and export goes through the session, and the
// model re-reads session accessors when it renders.
type Model struct {
	sess      *session.Session
	basePath  string
	exportDir string

	width  int
	height int
	scr    screen

	// Participant form
	inputs    [3]textinput.Model // name, age, major
	focus     int
	genderIdx int

	// Rating pass
	cursor int

	statusMsg  string
	errMsg     string
	exportedTo string
}

// NewModel creates the root model over an already-constructed session.
func NewModel(opts Options) Model {
	name := textinput.New()
	name.Placeholder = "请输入您的姓名"
	name.Focus()

	age := textinput.New()
	age.Placeholder = "请输入您的年龄"

	major := textinput.New()
	major.Placeholder = "请输入您所学的专业"

	return Model{
		sess:      opts.Session,
		basePath:  opts.BasePath,
		exportDir: opts.ExportDir,
		inputs:    [3]textinput.Model{name, age, major},
	}
}

func (m Model) Init() tea.Cmd {
	return m.inputs[0].Focus()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.scr == screenRating {
			// Keep ticking so the elapsed display refreshes.
			return m, tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.scr {
		case screenForm:
			return m.updateForm(msg)
		case screenRating:
			return m.updateRating(msg)
		case screenDone:
			return m.updateDone(msg)
		}
	}

	return m, nil
}

// ===== PARTICIPANT FORM =====

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "left", "right":
		if m.focus == focusGender {
			step := 1
			if msg.String() == "left" {
				step = len(genderChoices) - 1
			}
			m.genderIdx = (m.genderIdx + step) % len(genderChoices)
			return m, nil
		}

	case "enter":
		return m.submitInfo()
	}

	if idx, ok := inputSlot(m.focus); ok {
		// Age accepts digits only; the session still validates the value.
		if m.focus == focusAge {
			key := msg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.inputs[idx], cmd = m.inputs[idx].Update(msg)
		return m, cmd
	}

	return m, nil
}

// inputSlot maps a focus slot to its text input, if it has one.
func inputSlot(focus int) (int, bool) {
	switch focus {
	case focusName:
		return 0, true
	case focusAge:
		return 1, true
	case focusMajor:
		return 2, true
	}
	return 0, false
}

func (m Model) moveFocus(step int) Model {
	if idx, ok := inputSlot(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus + step + focusCount) % focusCount
	if idx, ok := inputSlot(m.focus); ok {
		m.inputs[idx].Focus()
	}
	return m
}

func (m Model) submitInfo() (tea.Model, tea.Cmd) {
	info := models.ParticipantInfo{
		Name:         m.inputs[0].Value(),
		Age:          m.inputs[1].Value(),
		Gender:       string(genderChoices[m.genderIdx]),
		FieldOfStudy: m.inputs[2].Value(),
	}

	if err := m.sess.SubmitParticipantInfo(info); err != nil {
		if apperrors.IsValidation(err) {
			m.errMsg = "请填写完整信息：" + err.Error()
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}

	m.errMsg = ""
	m.statusMsg = fmt.Sprintf("%s，欢迎参与机器人评估！", info.Name)
	m.scr = screenRating
	m.cursor = 0
	return m, tickCmd()
}

// ===== RATING PASS =====

func (m Model) updateRating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questionCount := len(m.sess.Questions())

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < questionCount-1 {
			m.cursor++
		}
		return m, nil

	case "left", "h":
		return m.adjustSlider(-1), nil

	case "right", "l":
		return m.adjustSlider(+1), nil

	case "pgup":
		return m.adjustSlider(-10), nil

	case "pgdown":
		return m.adjustSlider(+10), nil

	case "enter", " ", "space":
		// Confirm the slider where it stands (counts as answered even at
		// the initial midpoint).
		return m.adjustSlider(0), nil

	case "s":
		return m.saveAndAdvance()
	}

	return m, nil
}

// adjustSlider moves the focused slider by delta. Clamping to [0,100] is
// this layer's job; the session rejects out-of-range values outright.
func (m Model) adjustSlider(delta int) Model {
	values := m.sess.SliderValues()
	if m.cursor >= len(values) {
		return m
	}

	value := values[m.cursor] + delta
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	if err := m.sess.UpdateRating(m.cursor, value); err != nil {
		m.errMsg = err.Error()
		return m
	}
	m.errMsg = ""
	return m
}

func (m Model) saveAndAdvance() (tea.Model, tea.Cmd) {
	robot, _ := m.sess.CurrentRobot()

	record, err := m.sess.SaveAndAdvance()
	if err != nil {
		var incomplete *session.IncompleteError
		if errors.As(err, &incomplete) {
			m.errMsg = fmt.Sprintf("还有 %d 道问题未评分，请完成所有问题后再继续。", incomplete.Unanswered)
		} else {
			m.errMsg = err.Error()
		}
		return m, nil
	}

	m.errMsg = ""
	m.statusMsg = fmt.Sprintf("已保存对%s的评估，总分: %d%%，耗时: %s",
		robot.Name, record.OverallScore, formatDuration(record.DurationSeconds))
	m.cursor = 0

	if m.sess.State() == models.StateCompleted {
		m.scr = screenDone
	}
	return m, nil
}

// ===== COMPLETION =====

func (m Model) updateDone(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "e":
		return m.exportFile("csv"), nil
	case "x":
		return m.exportFile("xlsx"), nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) exportFile(ext string) Model {
	var data []byte

	switch ext {
	case "csv":
		content, err := m.sess.ExportCSV()
		if err != nil {
			m.errMsg = "导出失败: " + err.Error()
			return m
		}
		data = []byte(content)
	case "xlsx":
		content, err := m.sess.ExportExcel()
		if err != nil {
			m.errMsg = "导出失败: " + err.Error()
			return m
		}
		data = content
	}

	path := filepath.Join(m.exportDir, m.sess.ExportFilename(ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.errMsg = "写入文件失败: " + err.Error()
		return m
	}

	m.errMsg = ""
	m.exportedTo = path
	return m
}
