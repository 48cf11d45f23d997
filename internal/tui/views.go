package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/hri-lab/robot-survey/internal/assets"
)

const (
	appTitle = "智视未来 · 机器人评估"

	// How many questions are visible at once in the rating list.
	questionWindow = 7

	sliderWidth   = 30
	progressWidth = 40
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var body string
	switch m.scr {
	case screenForm:
		body = m.viewForm()
	case screenRating:
		body = m.viewRating()
	case screenDone:
		body = m.viewDone()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(appTitle))
	b.WriteString("\n\n")
	b.WriteString(body)

	if m.statusMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(okStyle.Render(m.statusMsg))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	v.SetContent(b.String())
	return v
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("参与者信息"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("请先填写您的基本信息再开始评估"))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		slot  int
	}{
		{"姓名", focusName},
		{"年龄", focusAge},
		{"性别", focusGender},
		{"专业", focusMajor},
	}

	for _, row := range rows {
		marker := "  "
		if m.focus == row.slot {
			marker = cursorStyle.Render("> ")
		}

		var field string
		if row.slot == focusGender {
			field = m.viewGenderPicker()
		} else {
			idx, _ := inputSlot(row.slot)
			field = m.inputs[idx].View()
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", marker, labelStyle.Render(row.label), field))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Tab/↑↓ 切换  ←→ 选择性别  Enter 开始评估  Ctrl+C 退出"))
	return b.String()
}

func (m Model) viewGenderPicker() string {
	parts := make([]string, len(genderChoices))
	for i, g := range genderChoices {
		if i == m.genderIdx {
			parts[i] = cursorStyle.Render("[" + string(g) + "]")
		} else {
			parts[i] = labelStyle.Render(" " + string(g) + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) viewRating() string {
	robot, ok := m.sess.CurrentRobot()
	if !ok {
		return ""
	}

	var b strings.Builder

	robots := m.sess.Robots()
	b.WriteString(sectionStyle.Render(
		fmt.Sprintf("机器人 %d / %d：%s", m.sess.CurrentIndex()+1, len(robots), robot.Name)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("图片: " + assets.Resolve(robot.ImageRef, m.basePath)))
	b.WriteString("\n\n")

	b.WriteString(renderProgressBar(m.sess.Progress(), progressWidth))
	b.WriteString(labelStyle.Render(
		fmt.Sprintf("   已答 %d/%d   耗时 %s",
			m.sess.AnsweredCount(), len(m.sess.Questions()),
			formatDuration(int(m.sess.Elapsed().Seconds())))))
	b.WriteString("\n\n")

	questions := m.sess.Questions()
	values := m.sess.SliderValues()
	answered := m.sess.Answered()

	start, end := listWindow(m.cursor, len(questions), questionWindow)
	if start > 0 {
		b.WriteString(labelStyle.Render("  ↑ …"))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		marker := "  "
		text := questions[i].Text
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			text = cursorStyle.Render(text)
		}
		b.WriteString(marker + text + "\n")
		b.WriteString("  " + renderSlider(values[i], sliderWidth, answered[i]) + "\n")
	}

	if end < len(questions) {
		b.WriteString(labelStyle.Render("  ↓ …"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑↓ 选择问题  ←→ 调整评分  PgUp/PgDn ±10  空格 确认当前值  s 保存并继续"))
	return b.String()
}

// listWindow centers the cursor inside a window of at most size items.
func listWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

func (m Model) viewDone() string {
	var b strings.Builder

	robots := m.sess.Robots()
	b.WriteString(sectionStyle.Render("评估完成"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("感谢您的参与！您已完成所有 %d 个机器人的评估。\n\n", len(robots)))
	b.WriteString("请导出评估数据并上传到收集表单：\n")
	b.WriteString(labelStyle.Render("  e  导出 CSV\n"))
	b.WriteString(labelStyle.Render("  x  导出 Excel\n"))
	b.WriteString(labelStyle.Render("  q  退出\n"))

	if m.exportedTo != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("已导出: " + m.exportedTo))
	}

	return b.String()
}
