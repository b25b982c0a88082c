package protocol

// Commands are the explicit messages the presentation layer feeds into the
// engine. Pointer clicks and key presses map to the same command and are
// therefore guarded identically.
type Command interface {
	isCommand()
}

// StartPractice moves Preview to Practice.
type StartPractice struct{}

// FinishPractice moves PracticeComplete to Prompt.
type FinishPractice struct{}

// SubmitIntake starts a fresh session from Prompt. The name must be
// non-empty after trimming.
type SubmitIntake struct {
	Name string
}

// BeginCategory moves EmotionIntro into the category's first sentence.
type BeginCategory struct{}

// Continue completes the active trial (real or practice).
type Continue struct{}

func (StartPractice) isCommand()  {}
func (FinishPractice) isCommand() {}
func (SubmitIntake) isCommand()   {}
func (BeginCategory) isCommand()  {}
func (Continue) isCommand()       {}
