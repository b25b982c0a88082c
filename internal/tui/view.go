package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/protocol"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	helperStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	recordingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	sentenceFrame  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
)

func (m *model) View() string {
	v := m.engine.View()
	c := copyFor(v.Language)

	var body string
	switch v.Stage {
	case protocol.StagePreview:
		body = m.viewPreview(v, c)
	case protocol.StagePractice:
		body = m.viewTrial(v, c, true)
	case protocol.StagePracticeComplete:
		body = m.viewPracticeComplete(c)
	case protocol.StagePrompt:
		body = m.viewPrompt(c)
	case protocol.StageEmotionIntro:
		body = m.viewEmotionIntro(v, c)
	case protocol.StageSentence:
		body = m.viewTrial(v, c, false)
	case protocol.StageComplete:
		body = m.viewComplete(v, c)
	}

	parts := []string{body}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	parts = append(parts, helperStyle.Render(c.QuitHint))
	return strings.Join(parts, "\n\n") + "\n"
}

func (m *model) viewPreview(v protocol.View, c copyText) string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Accent))
	lines := []string{
		titleStyle.Render(c.PreviewTitle),
		helperStyle.Render(c.Tagline),
		"",
		wordwrap.String(c.PreviewBody, m.wrapWidth()),
		"",
		accent.Render(v.CategoryLabel) + "  " + helperStyle.Render(v.CategoryDescription),
		"",
		helperStyle.Render(c.PreviewHint),
		helperStyle.Render(c.LanguageToggleHint),
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewPracticeComplete(c copyText) string {
	lines := []string{
		titleStyle.Render(c.PracticeCompleteTitle),
		"",
		wordwrap.String(c.PracticeCompleteBody, m.wrapWidth()),
		"",
		helperStyle.Render(c.PracticeCompleteHint),
		helperStyle.Render(c.LanguageToggleHint),
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewPrompt(c copyText) string {
	lines := []string{
		titleStyle.Render(c.PromptTitle),
		"",
		wordwrap.String(c.PromptBody, m.wrapWidth()),
		"",
		m.nameInput.View(),
		"",
		helperStyle.Render(c.PromptHint),
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewEmotionIntro(v protocol.View, c copyText) string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Accent))
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(v.Subtle))
	lines := []string{
		helperStyle.Render(fmt.Sprintf("%d / %d", v.CategoryIndex+1, v.CategoryCount)),
		"",
		accent.Render(v.CategoryLabel),
		subtle.Render(wordwrap.String(v.CategoryDescription, m.wrapWidth())),
		"",
		m.progressBar(v),
		"",
		helperStyle.Render(c.IntroHint),
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewTrial(v protocol.View, c copyText, practice bool) string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Accent))

	header := accent.Render(v.CategoryLabel)
	if practice {
		header = titleStyle.Render(c.PracticeTitle) + "  " + header
	}

	sentence := sentenceFrame.Render(wordwrap.String(v.SentenceText, m.wrapWidth()-8))

	status := []string{
		fmt.Sprintf("%s %d / %d", c.ProgressLabel, v.Progress.Current, v.Progress.Total),
		fmt.Sprintf("%s %.1fs", c.ElapsedLabel, float64(v.ElapsedMs)/1000),
	}
	switch v.MicPermission {
	case capture.PermissionGranted:
		status = append(status, recordingStyle.Render(c.RecordingBadge))
	case capture.PermissionDenied:
		status = append(status, errorStyle.Render(c.MicDenied))
	}

	hint := c.SentenceHint
	if practice {
		hint = c.PracticeHint
	}

	lines := []string{
		header,
		"",
		sentence,
		"",
		m.progressBar(v),
		helperStyle.Render(strings.Join(status, "   ")),
		"",
		helperStyle.Render(hint),
	}
	return strings.Join(lines, "\n")
}

func (m *model) viewComplete(v protocol.View, c copyText) string {
	stats := statsStyle.Render(fmt.Sprintf("%d sentences · %d emotions · avg %.1fs per sentence",
		v.LogCount, v.DistinctEmotions, float64(v.AvgDurationMs)/1000))
	lines := []string{
		titleStyle.Render(c.CompleteTitle),
		"",
		wordwrap.String(c.CompleteBody, m.wrapWidth()),
		stats,
	}
	if m.mirrorCount >= 0 {
		lines = append(lines, statsStyle.Render(fmt.Sprintf(c.MirroredLabel, m.mirrorCount, v.LogCount)))
	}
	lines = append(lines, "", helperStyle.Render(c.CompleteHint))
	if m.infoMessage != "" {
		lines = append(lines, "", statsStyle.Render(fmt.Sprintf(c.ExportSaved, m.infoMessage)))
	}
	return strings.Join(lines, "\n")
}

func (m *model) progressBar(v protocol.View) string {
	if v.Progress.Total <= 0 {
		return ""
	}
	width := m.wrapWidth()
	if width > 40 {
		width = 40
	}
	opts := []progress.Option{progress.WithoutPercentage()}
	if v.Accent != "" {
		opts = append(opts, progress.WithSolidFill(v.Accent))
	} else {
		opts = append(opts, progress.WithDefaultGradient())
	}
	bar := progress.New(opts...)
	bar.Width = width
	return bar.ViewAs(float64(v.Progress.Current) / float64(v.Progress.Total))
}

func (m *model) wrapWidth() int {
	width := m.width - 4
	if width < 30 {
		width = 30
	}
	return width
}
