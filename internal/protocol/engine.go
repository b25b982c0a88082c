// Package protocol owns the session state machine: stage transitions,
// per-trial timing, the append-only session log, and the capture/upload
// side effects folded into it. Nothing in here is fatal; capture and upload
// failures degrade to a session without audio or without a remote mirror.
package protocol

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/catalog"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/foxseedlab/emovoice/internal/uploader"
)

type Stage int

const (
	StagePreview Stage = iota
	StagePractice
	StagePracticeComplete
	StagePrompt
	StageEmotionIntro
	StageSentence
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StagePreview:
		return "preview"
	case StagePractice:
		return "practice"
	case StagePracticeComplete:
		return "practiceComplete"
	case StagePrompt:
		return "prompt"
	case StageEmotionIntro:
		return "emotionIntro"
	case StageSentence:
		return "sentence"
	case StageComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session identifies one run from intake to completion.
type Session struct {
	ID              string
	StartedAt       time.Time
	ParticipantName string
	Language        catalog.Language
}

// SessionLogEntry is one completed real trial. Entries are append-only; the
// only mutation ever applied is attaching the remote audio reference once an
// upload settles.
type SessionLogEntry struct {
	EmotionID           string `json:"emotionId"`
	EmotionLabel        string `json:"emotionLabel"`
	SentenceID          int    `json:"sentenceId"`
	SentenceText        string `json:"sentenceText"`
	SessionID           string `json:"sessionId"`
	SessionStartedAtMs  int64  `json:"sessionStartedAtMs"`
	SentenceShownAtMs   int64  `json:"sentenceShownAtMs"`
	ContinuePressedAtMs int64  `json:"continuePressedAtMs"`
	DurationMs          int64  `json:"durationMs"`
	ParticipantName     string `json:"participantName"`
	LocalAudioURL       string `json:"localAudioUrl,omitempty"`
	RemoteAudioURL      string `json:"remoteAudioUrl,omitempty"`
}

type Engine struct {
	recorder      capture.Recorder
	uploader      uploader.Uploader
	recordingsDir string
	now           func() time.Time
	newSessionID  func() string

	mu                  sync.Mutex
	language            catalog.Language
	sequence            []catalog.Category
	practice            []catalog.Sentence
	total               int
	stage               Stage
	practiceIndex       int
	categoryIndex       int
	sentenceIndex       int
	session             *Session
	log                 []SessionLogEntry
	canContinue         bool
	sentenceShownAt     time.Time
	notConfiguredLogged bool

	uploadWG sync.WaitGroup
}

func NewEngine(cfg *config.Config, rec capture.Recorder, up uploader.Uploader) *Engine {
	e := &Engine{
		recorder:      rec,
		uploader:      up,
		recordingsDir: cfg.RecordingsDir,
		now:           time.Now,
		newSessionID:  uuid.NewString,
		stage:         StagePreview,
	}
	e.setLanguageLocked(catalog.Language(cfg.ProtocolLanguage))
	return e
}

func (e *Engine) setLanguageLocked(lang catalog.Language) {
	e.language = lang
	e.sequence = catalog.Sequence(lang)
	e.practice = catalog.PracticeSentences(lang)
	e.total = catalog.TotalSentences(lang)
}

// SetLanguage re-resolves the stimulus sequence. Allowed only before a
// session has started; once intake is submitted the language is fixed.
func (e *Engine) SetLanguage(lang catalog.Language) {
	if !catalog.Supported(lang) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.stage {
	case StagePreview, StagePractice, StagePracticeComplete, StagePrompt:
		e.setLanguageLocked(lang)
	}
}

// Apply consumes one command synchronously. Unknown or out-of-stage commands
// are no-ops; the state machine never throws into the presentation layer.
func (e *Engine) Apply(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case StartPractice:
		e.startPractice(ctx)
	case FinishPractice:
		e.finishPractice()
	case SubmitIntake:
		return e.beginSession(c.Name)
	case BeginCategory:
		e.beginCategory(ctx)
	case Continue:
		e.handleContinue(ctx)
	}
	return nil
}

func (e *Engine) startPractice(ctx context.Context) {
	e.mu.Lock()
	if e.stage != StagePreview {
		e.mu.Unlock()
		return
	}
	e.stage = StagePractice
	e.practiceIndex = 0
	e.enterTrialLocked()
	e.mu.Unlock()
	e.startCapture(ctx)
}

func (e *Engine) finishPractice() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stage != StagePracticeComplete {
		return
	}
	e.stage = StagePrompt
}

func (e *Engine) beginSession(name string) error {
	name = strings.TrimSpace(name)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stage != StagePrompt {
		return nil
	}
	if name == "" {
		return errors.New("participant name is required")
	}
	e.session = &Session{
		ID:              e.newSessionID(),
		StartedAt:       e.now(),
		ParticipantName: name,
		Language:        e.language,
	}
	e.categoryIndex = 0
	e.sentenceIndex = 0
	e.log = nil
	e.stage = StageEmotionIntro
	slog.Info("session started",
		"session_id", e.session.ID,
		"language", string(e.language),
		"total_sentences", e.total)
	return nil
}

func (e *Engine) beginCategory(ctx context.Context) {
	e.mu.Lock()
	if e.stage != StageEmotionIntro {
		e.mu.Unlock()
		return
	}
	if _, _, ok := e.currentLocked(); !ok {
		e.mu.Unlock()
		slog.Error("no stimulus at trial position; refusing to start category",
			"category_index", e.categoryIndex, "sentence_index", e.sentenceIndex)
		return
	}
	e.stage = StageSentence
	e.enterTrialLocked()
	e.mu.Unlock()
	e.startCapture(ctx)
}

// enterTrialLocked is the unconditional entry action for every stimulus
// change: stamp the shown time and re-arm the continue action.
func (e *Engine) enterTrialLocked() {
	e.sentenceShownAt = e.now()
	e.canContinue = true
}

func (e *Engine) handleContinue(ctx context.Context) {
	e.mu.Lock()
	if !e.canContinue || (e.stage != StageSentence && e.stage != StagePractice) {
		e.mu.Unlock()
		return
	}
	e.canContinue = false
	stage := e.stage
	pressedAt := e.now()
	shownAt := e.sentenceShownAt
	e.mu.Unlock()

	result := e.stopCapture(ctx)

	if stage == StagePractice {
		e.advancePractice(ctx)
		return
	}

	e.mu.Lock()
	category, sentence, ok := e.currentLocked()
	if !ok || e.session == nil {
		e.mu.Unlock()
		slog.Error("no stimulus at trial position; halting advance",
			"category_index", e.categoryIndex, "sentence_index", e.sentenceIndex)
		return
	}
	session := *e.session
	e.mu.Unlock()

	entry := e.buildEntry(session, category, sentence, shownAt, pressedAt)
	if result != nil {
		entry.LocalAudioURL = e.saveClip(session.ID, entry.EmotionID, entry.SentenceID, result)
	}

	e.mu.Lock()
	e.log = append(e.log, entry)
	entering := e.advanceLocked(category)
	e.mu.Unlock()

	slog.Info("trial completed",
		"session_id", session.ID,
		"emotion_id", entry.EmotionID,
		"sentence_id", entry.SentenceID,
		"duration_ms", entry.DurationMs)

	if entering {
		e.startCapture(ctx)
	}
	e.dispatchUpload(entry, result)
}

// buildEntry computes timing for one trial. A missing shown timestamp clamps
// the duration to zero instead of propagating an undefined value.
func (e *Engine) buildEntry(session Session, category catalog.Category, sentence catalog.Sentence, shownAt, pressedAt time.Time) SessionLogEntry {
	shownMs := pressedAt.UnixMilli()
	durationMs := int64(0)
	if !shownAt.IsZero() {
		shownMs = shownAt.UnixMilli()
		durationMs = pressedAt.Sub(shownAt).Milliseconds()
		if durationMs < 0 {
			durationMs = 0
		}
	}
	return SessionLogEntry{
		EmotionID:           string(category.ID),
		EmotionLabel:        category.Label,
		SentenceID:          sentence.ID,
		SentenceText:        sentence.Text,
		SessionID:           session.ID,
		SessionStartedAtMs:  session.StartedAt.UnixMilli(),
		SentenceShownAtMs:   shownMs,
		ContinuePressedAtMs: pressedAt.UnixMilli(),
		DurationMs:          durationMs,
		ParticipantName:     session.ParticipantName,
	}
}

// advanceLocked applies the transition table after a logged trial and
// reports whether the next stage is another sentence trial.
func (e *Engine) advanceLocked(category catalog.Category) bool {
	switch {
	case e.sentenceIndex < len(category.Sentences)-1:
		e.sentenceIndex++
		e.enterTrialLocked()
		return true
	case e.categoryIndex < len(e.sequence)-1:
		e.categoryIndex++
		e.sentenceIndex = 0
		e.stage = StageEmotionIntro
		return false
	default:
		e.stage = StageComplete
		if e.session != nil {
			slog.Info("session complete", "session_id", e.session.ID, "entries", len(e.log))
		}
		return false
	}
}

func (e *Engine) advancePractice(ctx context.Context) {
	e.mu.Lock()
	if e.practiceIndex < len(e.practice)-1 {
		e.practiceIndex++
		e.enterTrialLocked()
		e.mu.Unlock()
		e.startCapture(ctx)
		return
	}
	e.stage = StagePracticeComplete
	e.mu.Unlock()
}

func (e *Engine) currentLocked() (catalog.Category, catalog.Sentence, bool) {
	if e.categoryIndex < 0 || e.categoryIndex >= len(e.sequence) {
		return catalog.Category{}, catalog.Sentence{}, false
	}
	category := e.sequence[e.categoryIndex]
	if e.sentenceIndex < 0 || e.sentenceIndex >= len(category.Sentences) {
		return catalog.Category{}, catalog.Sentence{}, false
	}
	return category, category.Sentences[e.sentenceIndex], true
}

func (e *Engine) startCapture(ctx context.Context) {
	if e.recorder == nil {
		return
	}
	if e.recorder.Permission() == capture.PermissionIdle {
		if err := e.recorder.RequestPermission(ctx); err != nil {
			slog.Warn("microphone unavailable; session continues without audio", "error", err)
			return
		}
	}
	if e.recorder.Permission() != capture.PermissionGranted {
		return
	}
	if err := e.recorder.Start(ctx); err != nil {
		slog.Warn("failed to start recording; trial continues without audio", "error", err)
	}
}

func (e *Engine) stopCapture(ctx context.Context) *capture.Result {
	if e.recorder == nil {
		return nil
	}
	result, err := e.recorder.Stop(ctx)
	if err != nil {
		slog.Warn("failed to stop recording; trial continues without audio", "error", err)
		return nil
	}
	return result
}

func (e *Engine) saveClip(sessionID, emotionID string, sentenceID int, result *capture.Result) string {
	dir := filepath.Join(e.recordingsDir, sessionID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("failed to create recordings directory", "error", err, "dir", dir)
		return ""
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.wav", emotionID, sentenceID))
	if err := os.WriteFile(path, result.Clip, 0o644); err != nil {
		slog.Warn("failed to write clip", "error", err, "path", path)
		return ""
	}
	return path
}

// dispatchUpload mirrors the entry to the remote store without blocking the
// advance to the next trial.
func (e *Engine) dispatchUpload(entry SessionLogEntry, result *capture.Result) {
	if e.uploader == nil {
		e.logNotConfiguredOnce()
		return
	}
	input := uploader.SentenceLogInput{
		SessionID:       entry.SessionID,
		ParticipantName: entry.ParticipantName,
		EmotionID:       entry.EmotionID,
		EmotionLabel:    entry.EmotionLabel,
		SentenceID:      entry.SentenceID,
		SentenceText:    entry.SentenceText,
		ShownAt:         time.UnixMilli(entry.SentenceShownAtMs),
		PressedAt:       time.UnixMilli(entry.ContinuePressedAtMs),
		DurationMs:      entry.DurationMs,
		LocalAudioURL:   entry.LocalAudioURL,
	}
	var clip []byte
	var contentType string
	if result != nil {
		clip = result.Clip
		contentType = result.ContentType
	}
	e.uploadWG.Add(1)
	go func() {
		defer e.uploadWG.Done()
		res, err := e.uploader.UploadSentenceLog(context.Background(), input, clip, contentType)
		if err != nil {
			if errors.Is(err, uploader.ErrNotConfigured) {
				e.logNotConfiguredOnce()
				return
			}
			slog.Error("sentence upload failed; local entry keeps its timing record",
				"error", err,
				"session_id", entry.SessionID,
				"sentence_id", entry.SentenceID)
			return
		}
		if res.RemoteAudioURL != "" {
			e.attachRemoteAudio(entry.SessionID, entry.EmotionID, entry.SentenceID, res.RemoteAudioURL)
		}
	}()
}

func (e *Engine) logNotConfiguredOnce() {
	e.mu.Lock()
	logged := e.notConfiguredLogged
	e.notConfiguredLogged = true
	e.mu.Unlock()
	if !logged {
		slog.Info("remote store not configured; session log stays local only")
	}
}

// attachRemoteAudio patches the matching entry by session and stimulus
// identity, not by position, so late or reordered completions stay correct.
func (e *Engine) attachRemoteAudio(sessionID, emotionID string, sentenceID int, url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.log {
		entry := &e.log[i]
		if entry.SessionID == sessionID && entry.EmotionID == emotionID && entry.SentenceID == sentenceID && entry.RemoteAudioURL == "" {
			entry.RemoteAudioURL = url
			return
		}
	}
}

// RemoteMirrorCount reports how many of this session's entries reached the
// remote store. ErrNotConfigured when no session or no remote store exists.
func (e *Engine) RemoteMirrorCount(ctx context.Context) (int, error) {
	e.mu.Lock()
	session := e.session
	e.mu.Unlock()
	if e.uploader == nil || session == nil {
		return 0, uploader.ErrNotConfigured
	}
	return e.uploader.SessionMirrorCount(ctx, session.ID)
}

// Log returns a copy of the accumulated session log.
func (e *Engine) Log() []SessionLogEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]SessionLogEntry, len(e.log))
	copy(out, e.log)
	return out
}

func (e *Engine) Session() *Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return nil
	}
	s := *e.session
	return &s
}

// Dispose releases the capture device. Safe on any stage.
func (e *Engine) Dispose() {
	if e.recorder != nil {
		e.recorder.Dispose()
	}
}
