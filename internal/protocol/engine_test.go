package protocol

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/foxseedlab/emovoice/internal/capture"
	"github.com/foxseedlab/emovoice/internal/catalog"
	"github.com/foxseedlab/emovoice/internal/config"
	"github.com/foxseedlab/emovoice/internal/uploader"
)

type mockRecorder struct {
	mu         sync.Mutex
	permission capture.PermissionState
	deny       bool
	startCalls int
	stopCalls  int
	recording  bool
	disposed   bool
	clip       []byte
}

func (m *mockRecorder) RequestPermission(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.permission {
	case capture.PermissionGranted:
		return nil
	case capture.PermissionDenied:
		return capture.ErrPermissionDenied
	}
	if m.deny {
		m.permission = capture.PermissionDenied
		return capture.ErrPermissionDenied
	}
	m.permission = capture.PermissionGranted
	return nil
}

func (m *mockRecorder) Permission() capture.PermissionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.permission
}

func (m *mockRecorder) Start(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startCalls++
	m.recording = true
	return nil
}

func (m *mockRecorder) Stop(_ context.Context) (*capture.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	if !m.recording {
		return nil, nil
	}
	m.recording = false
	now := time.Now()
	return &capture.Result{
		Clip:        m.clip,
		ContentType: "audio/wav",
		StartedAt:   now.Add(-time.Second),
		EndedAt:     now,
		Duration:    time.Second,
	}, nil
}

func (m *mockRecorder) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposed = true
}

type mockUploader struct {
	mu        sync.Mutex
	calls     []uploader.SentenceLogInput
	err       error
	result    uploader.Result
	mirrorErr error
}

func (m *mockUploader) UploadSentenceLog(_ context.Context, input uploader.SentenceLogInput, _ []byte, _ string) (uploader.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, input)
	if m.err != nil {
		return uploader.Result{}, m.err
	}
	return m.result, nil
}

func (m *mockUploader) SessionMirrorCount(_ context.Context, sessionID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.mirrorErr != nil {
		return 0, m.mirrorErr
	}
	count := 0
	for _, call := range m.calls {
		if call.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}

func (m *mockUploader) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.UnixMilli(1_700_000_000_000)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestEngine(t *testing.T, rec capture.Recorder, up uploader.Uploader) *Engine {
	t.Helper()
	cfg := &config.Config{
		Env:              "test",
		ProtocolLanguage: "en",
		RecordingsDir:    t.TempDir(),
	}
	return NewEngine(cfg, rec, up)
}

func apply(t *testing.T, e *Engine, cmd Command) {
	t.Helper()
	if err := e.Apply(context.Background(), cmd); err != nil {
		t.Fatalf("apply %T: %v", cmd, err)
	}
}

func startSession(t *testing.T, e *Engine, name string) {
	t.Helper()
	apply(t, e, StartPractice{})
	apply(t, e, Continue{})
	apply(t, e, Continue{})
	apply(t, e, FinishPractice{})
	apply(t, e, SubmitIntake{Name: name})
}

func runToComplete(t *testing.T, e *Engine) {
	t.Helper()
	for _, category := range catalog.Sequence(catalog.LanguageEnglish) {
		apply(t, e, BeginCategory{})
		for range category.Sentences {
			apply(t, e, Continue{})
		}
	}
}

func TestFullRun_LogCoversEveryStimulusInOrder(t *testing.T) {
	rec := &mockRecorder{clip: []byte("pcm")}
	e := newTestEngine(t, rec, nil)

	startSession(t, e, "Jordan")
	runToComplete(t, e)

	if got := e.View().Stage; got != StageComplete {
		t.Fatalf("expected complete stage, got %s", got)
	}
	log := e.Log()
	total := catalog.TotalSentences(catalog.LanguageEnglish)
	if len(log) != total {
		t.Fatalf("expected %d entries, got %d", total, len(log))
	}

	i := 0
	sessionID := log[0].SessionID
	for _, category := range catalog.Sequence(catalog.LanguageEnglish) {
		for _, sentence := range category.Sentences {
			entry := log[i]
			if entry.EmotionID != string(category.ID) || entry.SentenceID != sentence.ID {
				t.Fatalf("entry %d out of order: got (%s, %d), want (%s, %d)",
					i, entry.EmotionID, entry.SentenceID, category.ID, sentence.ID)
			}
			if entry.SessionID != sessionID {
				t.Fatalf("entry %d has a different session id", i)
			}
			if entry.DurationMs < 0 || entry.ContinuePressedAtMs < entry.SentenceShownAtMs {
				t.Fatalf("entry %d has inconsistent timing: %+v", i, entry)
			}
			if entry.ParticipantName != "Jordan" {
				t.Fatalf("entry %d lost the participant name", i)
			}
			i++
		}
	}
}

func TestTimedTrialScenario(t *testing.T) {
	clock := newFakeClock()
	e := newTestEngine(t, nil, nil)
	e.now = clock.now

	apply(t, e, StartPractice{})
	apply(t, e, Continue{})
	apply(t, e, Continue{})
	apply(t, e, FinishPractice{})
	apply(t, e, SubmitIntake{Name: "Jordan"})

	v := e.View()
	if v.Stage != StageEmotionIntro || v.CategoryLabel != "Neutral Baseline" {
		t.Fatalf("expected neutral baseline intro, got %s %q", v.Stage, v.CategoryLabel)
	}

	apply(t, e, BeginCategory{})
	v = e.View()
	if v.Stage != StageSentence || v.SentenceID != 1 || !v.CanContinue {
		t.Fatalf("unexpected first trial view: %+v", v)
	}
	if v.ElapsedMs != 0 {
		t.Fatalf("expected elapsed 0 at trial entry, got %d", v.ElapsedMs)
	}

	clock.advance(2000 * time.Millisecond)
	apply(t, e, Continue{})

	log := e.Log()
	if len(log) != 1 {
		t.Fatalf("expected one entry, got %d", len(log))
	}
	if log[0].DurationMs != 2000 || log[0].SentenceID != 1 {
		t.Fatalf("unexpected entry: %+v", log[0])
	}
	v = e.View()
	if v.Stage != StageSentence || v.SentenceID != 2 {
		t.Fatalf("expected the second sentence of category 0, got %+v", v)
	}
}

func TestContinueGuard_NoOpWhenDisabledOrOutOfStage(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	apply(t, e, StartPractice{})
	apply(t, e, Continue{})
	apply(t, e, Continue{})
	apply(t, e, FinishPractice{})
	apply(t, e, SubmitIntake{Name: "Jordan"})

	// Continue outside Sentence/Practice is a no-op.
	apply(t, e, Continue{})
	if got := e.View().Stage; got != StageEmotionIntro {
		t.Fatalf("expected emotionIntro, got %s", got)
	}
	if len(e.Log()) != 0 {
		t.Fatal("expected no entries")
	}

	apply(t, e, BeginCategory{})
	e.mu.Lock()
	e.canContinue = false
	e.mu.Unlock()
	apply(t, e, Continue{})
	if len(e.Log()) != 0 {
		t.Fatal("expected disabled continue to be a no-op")
	}
	if got := e.View().Stage; got != StageSentence {
		t.Fatalf("expected to stay in sentence, got %s", got)
	}
}

func TestPractice_NeverLoggedNeverUploaded(t *testing.T) {
	up := &mockUploader{}
	e := newTestEngine(t, &mockRecorder{}, up)

	apply(t, e, StartPractice{})
	practice := catalog.PracticeSentences(catalog.LanguageEnglish)
	for range practice {
		apply(t, e, Continue{})
	}
	if got := e.View().Stage; got != StagePracticeComplete {
		t.Fatalf("expected practiceComplete, got %s", got)
	}
	if len(e.Log()) != 0 {
		t.Fatal("practice trials must not be logged")
	}
	e.uploadWG.Wait()
	if up.callCount() != 0 {
		t.Fatal("practice trials must not be uploaded")
	}
}

func TestUploadFailure_KeepsLocalEntryAndAdvances(t *testing.T) {
	up := &mockUploader{err: errors.New("network down")}
	e := newTestEngine(t, &mockRecorder{clip: []byte("pcm")}, up)

	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})
	apply(t, e, Continue{})
	e.uploadWG.Wait()

	log := e.Log()
	if len(log) != 1 {
		t.Fatalf("expected one entry, got %d", len(log))
	}
	entry := log[0]
	if entry.RemoteAudioURL != "" {
		t.Fatal("expected no remote reference after upload failure")
	}
	if entry.SentenceID != 1 || entry.LocalAudioURL == "" {
		t.Fatalf("core fields must survive an upload failure: %+v", entry)
	}
	if got := e.View().Stage; got != StageSentence {
		t.Fatalf("expected advancement to the next trial, got %s", got)
	}
}

func TestUploadSuccess_PatchesEntryByStimulusKey(t *testing.T) {
	up := &mockUploader{result: uploader.Result{RemoteAudioURL: "https://cdn.example/clip.wav", RemoteRowID: "row-1"}}
	e := newTestEngine(t, &mockRecorder{clip: []byte("pcm")}, up)

	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})
	apply(t, e, Continue{})
	e.uploadWG.Wait()

	log := e.Log()
	if len(log) != 1 {
		t.Fatalf("expected one entry, got %d", len(log))
	}
	if log[0].RemoteAudioURL != "https://cdn.example/clip.wav" {
		t.Fatalf("expected remote reference to be attached, got %q", log[0].RemoteAudioURL)
	}
	if up.callCount() != 1 {
		t.Fatalf("expected one upload, got %d", up.callCount())
	}
}

func TestPermissionDenied_SessionProceedsWithoutAudio(t *testing.T) {
	rec := &mockRecorder{deny: true}
	e := newTestEngine(t, rec, nil)

	startSession(t, e, "Jordan")
	runToComplete(t, e)

	log := e.Log()
	if len(log) != catalog.TotalSentences(catalog.LanguageEnglish) {
		t.Fatalf("expected a full log, got %d entries", len(log))
	}
	for i, entry := range log {
		if entry.LocalAudioURL != "" || entry.RemoteAudioURL != "" {
			t.Fatalf("entry %d should have no audio reference: %+v", i, entry)
		}
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.startCalls != 0 {
		t.Fatalf("recorder must not start after denial, got %d starts", rec.startCalls)
	}
}

func TestSubmitIntake_RequiresNonEmptyName(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	apply(t, e, StartPractice{})
	apply(t, e, Continue{})
	apply(t, e, Continue{})
	apply(t, e, FinishPractice{})

	if err := e.Apply(context.Background(), SubmitIntake{Name: "   "}); err == nil {
		t.Fatal("expected error for blank participant name")
	}
	if got := e.View().Stage; got != StagePrompt {
		t.Fatalf("expected to stay in prompt, got %s", got)
	}
}

func TestSessionIDs_DifferAcrossSessions(t *testing.T) {
	first := newTestEngine(t, nil, nil)
	second := newTestEngine(t, nil, nil)
	startSession(t, first, "Jordan")
	startSession(t, second, "Jordan")

	a, b := first.Session(), second.Session()
	if a == nil || b == nil || a.ID == "" || b.ID == "" {
		t.Fatal("expected session ids to be assigned")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct session ids")
	}
}

func TestRemoteMirrorCount(t *testing.T) {
	up := &mockUploader{}
	e := newTestEngine(t, nil, up)

	if _, err := e.RemoteMirrorCount(context.Background()); !errors.Is(err, uploader.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured before a session, got %v", err)
	}

	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})
	apply(t, e, Continue{})
	apply(t, e, Continue{})
	e.uploadWG.Wait()

	count, err := e.RemoteMirrorCount(context.Background())
	if err != nil {
		t.Fatalf("mirror count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 mirrored entries, got %d", count)
	}
}

func TestRemoteMirrorCount_NoUploader(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	startSession(t, e, "Jordan")

	if _, err := e.RemoteMirrorCount(context.Background()); !errors.Is(err, uploader.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestMissingStimulus_HaltsInsteadOfAdvancing(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})

	e.mu.Lock()
	e.categoryIndex = 99
	e.mu.Unlock()

	apply(t, e, Continue{})
	if len(e.Log()) != 0 {
		t.Fatal("expected no entry for a missing stimulus")
	}
	if got := e.View().Stage; got != StageSentence {
		t.Fatalf("expected stage to freeze, got %s", got)
	}
}

func TestProgressCounter(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})

	firstCategory := catalog.Sequence(catalog.LanguageEnglish)[0]
	for range firstCategory.Sentences {
		apply(t, e, Continue{})
	}
	v := e.View()
	if v.Stage != StageEmotionIntro {
		t.Fatalf("expected emotionIntro after the first category, got %s", v.Stage)
	}
	if v.Progress.Current != len(firstCategory.Sentences) {
		t.Fatalf("expected progress %d between categories, got %d", len(firstCategory.Sentences), v.Progress.Current)
	}

	apply(t, e, BeginCategory{})
	v = e.View()
	if v.Progress.Current != len(firstCategory.Sentences)+1 {
		t.Fatalf("expected progress %d on the next trial, got %d", len(firstCategory.Sentences)+1, v.Progress.Current)
	}
}

func TestSetLanguage_LockedOnceSessionStarts(t *testing.T) {
	e := newTestEngine(t, nil, nil)
	e.SetLanguage(catalog.LanguageJapanese)
	if got := e.View().Language; got != catalog.LanguageJapanese {
		t.Fatalf("expected ja before intake, got %s", got)
	}

	startSession(t, e, "Jordan")
	e.SetLanguage(catalog.LanguageEnglish)
	if got := e.View().Language; got != catalog.LanguageJapanese {
		t.Fatalf("language must be fixed after intake, got %s", got)
	}
}

func TestRecordingLifecyclePerTrial(t *testing.T) {
	rec := &mockRecorder{clip: []byte("pcm")}
	e := newTestEngine(t, rec, nil)

	startSession(t, e, "Jordan")
	apply(t, e, BeginCategory{})
	apply(t, e, Continue{})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	// Two practice trials plus two real trials started so far.
	if rec.startCalls != 4 {
		t.Fatalf("expected 4 recording starts, got %d", rec.startCalls)
	}
	if !rec.recording {
		t.Fatal("expected a recording to be active on the current trial")
	}
}
