// Package catalog holds the immutable, language-parameterized stimulus
// sequence the protocol walks through. Pure data; no behavior beyond lookup.
package catalog

type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

type CategoryID string

const (
	CategoryNeutralBaseline     CategoryID = "neutral_baseline"
	CategoryHighArousalPositive CategoryID = "high_arousal_positive"
	CategoryHighArousalNegative CategoryID = "high_arousal_negative"
	CategoryLowArousalPositive  CategoryID = "low_arousal_positive"
	CategoryLowArousalNegative  CategoryID = "low_arousal_negative"
	CategoryHighExpectation     CategoryID = "high_expectation"
	CategoryLowExpectation      CategoryID = "low_expectation"
)

type Sentence struct {
	ID   int
	Text string
}

type Palette struct {
	Accent string
	Subtle string
}

type Category struct {
	ID          CategoryID
	Label       string
	Description string
	Palette     Palette
	Sentences   []Sentence
}

// PracticeSentenceCount is the size of the practice prefix drawn from the
// first category. Practice reuses those sentence ids on purpose.
const PracticeSentenceCount = 2

func Supported(lang Language) bool {
	switch lang {
	case LanguageEnglish, LanguageJapanese:
		return true
	}
	return false
}

// Sequence returns the full ordered category list for a language. Unsupported
// languages fall back to English so callers never see an empty catalog.
func Sequence(lang Language) []Category {
	if lang == LanguageJapanese {
		return japaneseSequence
	}
	return englishSequence
}

func TotalSentences(lang Language) int {
	total := 0
	for _, c := range Sequence(lang) {
		total += len(c.Sentences)
	}
	return total
}

func PracticeSentences(lang Language) []Sentence {
	first := Sequence(lang)[0].Sentences
	n := PracticeSentenceCount
	if n > len(first) {
		n = len(first)
	}
	return first[:n]
}
