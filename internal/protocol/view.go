package protocol

import (
	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/catalog"
)

type Progress struct {
	Current int
	Total   int
}

// View is the read-only snapshot the presentation layer renders from. It
// carries everything a screen needs so the renderer never reaches into
// engine state.
type View struct {
	Stage    Stage
	Language catalog.Language

	CategoryLabel       string
	CategoryDescription string
	CategoryIndex       int
	CategoryCount       int

	SentenceID   int
	SentenceText string
	Accent       string
	Subtle       string

	Progress      Progress
	ElapsedMs     int64
	CanContinue   bool
	MicPermission capture.PermissionState

	PracticeIndex int
	PracticeCount int

	ParticipantName string

	LogCount         int
	DistinctEmotions int
	AvgDurationMs    int64
}

func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := View{
		Stage:         e.stage,
		Language:      e.language,
		CategoryCount: len(e.sequence),
		CategoryIndex: e.categoryIndex,
		Progress:      Progress{Total: e.total},
		CanContinue:   e.canContinue,
		PracticeIndex: e.practiceIndex,
		PracticeCount: len(e.practice),
		LogCount:      len(e.log),
	}
	if e.recorder != nil {
		v.MicPermission = e.recorder.Permission()
	} else {
		v.MicPermission = capture.PermissionDenied
	}
	if e.session != nil {
		v.ParticipantName = e.session.ParticipantName
	}

	switch e.stage {
	case StagePreview:
		sample := e.sequence[0]
		v.CategoryLabel = sample.Label
		v.CategoryDescription = sample.Description
		v.SentenceID = sample.Sentences[0].ID
		v.SentenceText = sample.Sentences[0].Text
		v.Accent = sample.Palette.Accent
		v.Subtle = sample.Palette.Subtle
		v.Progress.Current = 1
	case StagePractice:
		sample := e.sequence[0]
		v.CategoryLabel = sample.Label
		v.Accent = sample.Palette.Accent
		v.Subtle = sample.Palette.Subtle
		if e.practiceIndex >= 0 && e.practiceIndex < len(e.practice) {
			v.SentenceID = e.practice[e.practiceIndex].ID
			v.SentenceText = e.practice[e.practiceIndex].Text
		}
		v.Progress = Progress{Current: e.practiceIndex + 1, Total: len(e.practice)}
		v.ElapsedMs = e.elapsedLocked()
	case StageEmotionIntro, StageSentence:
		category, sentence, ok := e.currentLocked()
		if !ok {
			break
		}
		v.CategoryLabel = category.Label
		v.CategoryDescription = category.Description
		v.Accent = category.Palette.Accent
		v.Subtle = category.Palette.Subtle
		v.Progress.Current = e.overallProgressLocked()
		if e.stage == StageSentence {
			v.SentenceID = sentence.ID
			v.SentenceText = sentence.Text
			v.ElapsedMs = e.elapsedLocked()
		}
	case StageComplete:
		v.DistinctEmotions = e.distinctEmotionsLocked()
		v.AvgDurationMs = e.avgDurationLocked()
		v.Progress.Current = e.total
	}
	return v
}

func (e *Engine) elapsedLocked() int64 {
	if e.sentenceShownAt.IsZero() {
		return 0
	}
	elapsed := e.now().Sub(e.sentenceShownAt).Milliseconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// overallProgressLocked counts stimuli completed in prior categories plus
// the one on screen. Informational only; never used for control decisions.
func (e *Engine) overallProgressLocked() int {
	completed := 0
	for i := 0; i < e.categoryIndex && i < len(e.sequence); i++ {
		completed += len(e.sequence[i].Sentences)
	}
	if e.stage == StageSentence {
		return completed + e.sentenceIndex + 1
	}
	return completed
}

func (e *Engine) distinctEmotionsLocked() int {
	seen := map[string]struct{}{}
	for _, entry := range e.log {
		seen[entry.EmotionID] = struct{}{}
	}
	return len(seen)
}

func (e *Engine) avgDurationLocked() int64 {
	if len(e.log) == 0 {
		return 0
	}
	var total int64
	for _, entry := range e.log {
		total += entry.DurationMs
	}
	return total / int64(len(e.log))
}
