package tui

import "github.com/foxseedlab/emovoice/internal/catalog"

// copyText is the full screen copy for one language. Every user-facing
// string lives here so the renderer stays free of literals.
type copyText struct {
	Tagline string

	PreviewTitle string
	PreviewBody  string
	PreviewHint  string

	PracticeTitle string
	PracticeHint  string

	PracticeCompleteTitle string
	PracticeCompleteBody  string
	PracticeCompleteHint  string

	PromptTitle     string
	PromptBody      string
	NamePlaceholder string
	PromptHint      string

	IntroHint    string
	SentenceHint string

	CompleteTitle string
	CompleteBody  string
	CompleteHint  string

	ProgressLabel  string
	ElapsedLabel   string
	RecordingBadge string
	MicDenied      string

	ExportSaved   string
	ExportFailed  string
	MirroredLabel string

	LanguageToggleHint string
	QuitHint           string
}

var copyEN = copyText{
	Tagline: "Read each sentence aloud with the emotion shown.",

	PreviewTitle: "Emotional Speech Session",
	PreviewBody:  "You will read short sentences aloud, one at a time, in the emotional tone shown on screen. Your voice may be recorded while a sentence is visible.",
	PreviewHint:  "Press Enter to try a short practice round.",

	PracticeTitle: "Practice",
	PracticeHint:  "Read the sentence aloud, then press Enter to continue.",

	PracticeCompleteTitle: "Practice Complete",
	PracticeCompleteBody:  "That is exactly how the real session works. Practice readings are not kept.",
	PracticeCompleteHint:  "Press Enter when you are ready to begin.",

	PromptTitle:     "Before We Start",
	PromptBody:      "Enter the participant name to attach to this session.",
	NamePlaceholder: "Participant name",
	PromptHint:      "Press Enter to start the session.",

	IntroHint:    "Press Enter to begin this emotion.",
	SentenceHint: "Read aloud, then press Enter.",

	CompleteTitle: "Session Complete",
	CompleteBody:  "Thank you. Every sentence has been logged.",
	CompleteHint:  "Press e to export the session log as JSON, q to quit.",

	ProgressLabel:  "Sentence",
	ElapsedLabel:   "Elapsed",
	RecordingBadge: "● REC",
	MicDenied:      "Microphone unavailable; continuing without audio.",

	ExportSaved:   "Session log saved to %s",
	ExportFailed:  "Export failed: %v",
	MirroredLabel: "%d of %d entries mirrored to the remote store.",

	LanguageToggleHint: "Press l to switch language (en/ja).",
	QuitHint:           "Ctrl+C to quit.",
}

var copyJA = copyText{
	Tagline: "画面に表示された感情を込めて、文章を声に出して読んでください。",

	PreviewTitle: "感情音声セッション",
	PreviewBody:  "短い文章を一つずつ、画面に表示された感情のトーンで読み上げていただきます。文章が表示されている間、音声が録音されることがあります。",
	PreviewHint:  "Enter キーで練習を始めます。",

	PracticeTitle: "練習",
	PracticeHint:  "文章を読み上げたら Enter キーを押してください。",

	PracticeCompleteTitle: "練習終了",
	PracticeCompleteBody:  "本番も同じ流れで進みます。練習の読み上げは保存されません。",
	PracticeCompleteHint:  "準備ができたら Enter キーを押してください。",

	PromptTitle:     "開始の前に",
	PromptBody:      "このセッションに記録する参加者名を入力してください。",
	NamePlaceholder: "参加者名",
	PromptHint:      "Enter キーでセッションを開始します。",

	IntroHint:    "Enter キーでこの感情を開始します。",
	SentenceHint: "読み上げたら Enter キーを押してください。",

	CompleteTitle: "セッション終了",
	CompleteBody:  "ありがとうございました。すべての文章が記録されました。",
	CompleteHint:  "e キーで JSON をエクスポート、q キーで終了します。",

	ProgressLabel:  "文",
	ElapsedLabel:   "経過",
	RecordingBadge: "● 録音中",
	MicDenied:      "マイクが利用できないため、音声なしで続行します。",

	ExportSaved:   "セッションログを %s に保存しました",
	ExportFailed:  "エクスポートに失敗しました: %v",
	MirroredLabel: "%d / %d 件のエントリをリモートストアに保存しました。",

	LanguageToggleHint: "l キーで言語を切り替え (en/ja)。",
	QuitHint:           "Ctrl+C で終了。",
}

func copyFor(lang catalog.Language) copyText {
	if lang == catalog.LanguageJapanese {
		return copyJA
	}
	return copyEN
}
