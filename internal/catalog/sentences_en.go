package catalog

var englishSequence = []Category{
	{
		ID:          CategoryNeutralBaseline,
		Label:       "Neutral Baseline",
		Description: "Center yourself with a steady, neutral delivery.",
		Palette:     Palette{Accent: "#E3E7F1", Subtle: "#6E768C"},
		Sentences: []Sentence{
			{ID: 1, Text: "The meeting is scheduled for three o'clock."},
			{ID: 2, Text: "Please place the notebook on the desk."},
			{ID: 3, Text: "The train arrives at platform four."},
			{ID: 4, Text: "The sample was stored at room temperature."},
		},
	},
	{
		ID:          CategoryHighArousalPositive,
		Label:       "High Arousal Positive",
		Description: "Let the words carry excitement and uplift.",
		Palette:     Palette{Accent: "#F9E6D8", Subtle: "#C66C3A"},
		Sentences: []Sentence{
			{ID: 5, Text: "The grant was approved faster than anyone expected!"},
			{ID: 6, Text: "We just hit the target and the team is cheering."},
			{ID: 7, Text: "The lights came on and the crowd roared to life."},
			{ID: 8, Text: "Every sensor reported a perfect score."},
		},
	},
	{
		ID:          CategoryHighArousalNegative,
		Label:       "High Arousal Negative",
		Description: "Channel urgency, tension, or alarm.",
		Palette:     Palette{Accent: "#F6DADB", Subtle: "#A54141"},
		Sentences: []Sentence{
			{ID: 9, Text: "The alarms are blaring and no one is responding."},
			{ID: 10, Text: "They ignored the protocol and the sample ruptured."},
			{ID: 11, Text: "We are running out of time and the door is locked."},
			{ID: 12, Text: "The sky darkened so quickly that the street emptied."},
		},
	},
	{
		ID:          CategoryLowArousalPositive,
		Label:       "Low Arousal Positive",
		Description: "Speak with calm optimism and warmth.",
		Palette:     Palette{Accent: "#DBF0EA", Subtle: "#4A7F70"},
		Sentences: []Sentence{
			{ID: 13, Text: "The lake is still and the cabin lights glow."},
			{ID: 14, Text: "Fresh tea is steeping beside the open window."},
			{ID: 15, Text: "Every email in the queue is finally answered."},
			{ID: 16, Text: "We will review the results together tomorrow."},
		},
	},
	{
		ID:          CategoryLowArousalNegative,
		Label:       "Low Arousal Negative",
		Description: "Allow weight and heaviness to guide the pacing.",
		Palette:     Palette{Accent: "#E7E3ED", Subtle: "#5F5369"},
		Sentences: []Sentence{
			{ID: 17, Text: "The hallway feels longer at this hour."},
			{ID: 18, Text: "Another request came in just as we were leaving."},
			{ID: 19, Text: "The voicemail light keeps blinking in the dark."},
			{ID: 20, Text: "Only two chairs remain around the table."},
		},
	},
	{
		ID:          CategoryHighExpectation,
		Label:       "High Expectation",
		Description: "Hold a confident, anticipatory tone.",
		Palette:     Palette{Accent: "#F1E8D7", Subtle: "#8A6D36"},
		Sentences: []Sentence{
			{ID: 21, Text: "The envelope is sealed and waiting to be opened."},
			{ID: 22, Text: "We double-checked the numbers before submitting."},
			{ID: 23, Text: "Everyone paused, listening for the announcement."},
			{ID: 24, Text: "The final chord is hanging in the air."},
		},
	},
	{
		ID:          CategoryLowExpectation,
		Label:       "Low Expectation",
		Description: "Let resignation and acceptance soften the delivery.",
		Palette:     Palette{Accent: "#E6ECF0", Subtle: "#6A7681"},
		Sentences: []Sentence{
			{ID: 25, Text: "The line will probably stay this long all evening."},
			{ID: 26, Text: "The report may not change anyone's mind."},
			{ID: 27, Text: "We can file the appeal, but nothing is guaranteed."},
			{ID: 28, Text: "Tomorrow will look a lot like today."},
		},
	},
}
