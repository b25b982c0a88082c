package catalog

// Sentence ids deliberately match the English catalog so analyses can join
// trials across languages.
var japaneseSequence = []Category{
	{
		ID:          CategoryNeutralBaseline,
		Label:       "ニュートラル",
		Description: "落ち着いた、平坦な読み上げで基準を作ります。",
		Palette:     Palette{Accent: "#E3E7F1", Subtle: "#6E768C"},
		Sentences: []Sentence{
			{ID: 1, Text: "会議は三時に予定されています。"},
			{ID: 2, Text: "ノートを机の上に置いてください。"},
			{ID: 3, Text: "電車は四番線に到着します。"},
			{ID: 4, Text: "サンプルは室温で保管されていました。"},
		},
	},
	{
		ID:          CategoryHighArousalPositive,
		Label:       "高覚醒・ポジティブ",
		Description: "言葉に興奮と高揚感を乗せてください。",
		Palette:     Palette{Accent: "#F9E6D8", Subtle: "#C66C3A"},
		Sentences: []Sentence{
			{ID: 5, Text: "助成金が予想よりずっと早く承認されました！"},
			{ID: 6, Text: "目標を達成して、チーム全員が歓声を上げています。"},
			{ID: 7, Text: "照明がついた瞬間、観客がどっと沸きました。"},
			{ID: 8, Text: "すべてのセンサーが満点を記録しました。"},
		},
	},
	{
		ID:          CategoryHighArousalNegative,
		Label:       "高覚醒・ネガティブ",
		Description: "切迫感、緊張、警戒を込めてください。",
		Palette:     Palette{Accent: "#F6DADB", Subtle: "#A54141"},
		Sentences: []Sentence{
			{ID: 9, Text: "警報が鳴り響いているのに、誰も応答しません。"},
			{ID: 10, Text: "手順を無視した結果、サンプルが破裂しました。"},
			{ID: 11, Text: "時間がないのに、ドアには鍵がかかっています。"},
			{ID: 12, Text: "空があっという間に暗くなり、通りから人が消えました。"},
		},
	},
	{
		ID:          CategoryLowArousalPositive,
		Label:       "低覚醒・ポジティブ",
		Description: "穏やかな楽観と温かさをもって話してください。",
		Palette:     Palette{Accent: "#DBF0EA", Subtle: "#4A7F70"},
		Sentences: []Sentence{
			{ID: 13, Text: "湖は静かで、小屋の明かりが灯っています。"},
			{ID: 14, Text: "開いた窓のそばで、淹れたてのお茶が蒸らされています。"},
			{ID: 15, Text: "溜まっていたメールに、ようやく全部返信できました。"},
			{ID: 16, Text: "結果は明日、一緒に確認しましょう。"},
		},
	},
	{
		ID:          CategoryLowArousalNegative,
		Label:       "低覚醒・ネガティブ",
		Description: "重さと気だるさに読み方を委ねてください。",
		Palette:     Palette{Accent: "#E7E3ED", Subtle: "#5F5369"},
		Sentences: []Sentence{
			{ID: 17, Text: "この時間の廊下は、いつもより長く感じます。"},
			{ID: 18, Text: "帰ろうとした矢先に、また依頼が届きました。"},
			{ID: 19, Text: "留守番電話のランプが、暗闇で点滅し続けています。"},
			{ID: 20, Text: "テーブルの周りには、椅子が二脚しか残っていません。"},
		},
	},
	{
		ID:          CategoryHighExpectation,
		Label:       "高期待",
		Description: "自信と期待のこもった調子を保ってください。",
		Palette:     Palette{Accent: "#F1E8D7", Subtle: "#8A6D36"},
		Sentences: []Sentence{
			{ID: 21, Text: "封筒は封をされたまま、開かれるのを待っています。"},
			{ID: 22, Text: "提出前に数字を二重に確認しました。"},
			{ID: 23, Text: "全員が手を止めて、発表に耳を澄ませました。"},
			{ID: 24, Text: "最後の和音が、空気の中に漂っています。"},
		},
	},
	{
		ID:          CategoryLowExpectation,
		Label:       "低期待",
		Description: "諦めと受容で、語り口を和らげてください。",
		Palette:     Palette{Accent: "#E6ECF0", Subtle: "#6A7681"},
		Sentences: []Sentence{
			{ID: 25, Text: "この行列は、おそらく夜までこのままでしょう。"},
			{ID: 26, Text: "この報告書で、誰かの考えが変わるとは限りません。"},
			{ID: 27, Text: "申し立てはできますが、何も保証されていません。"},
			{ID: 28, Text: "明日も、今日とほとんど同じ一日になるでしょう。"},
		},
	},
}
