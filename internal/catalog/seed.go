package catalog

// seed defines the 8 crystal paths in display order.
var seed = []Path{
	{
		ID:    "ruby",
		Name:  "Ruby",
		Theme: "Vitality & Passion",
		Stages: [StagesPerPath]string{
			"Ground into your body with a morning energy meditation",
			"Name the pursuit that sets you alight and write it down",
			"Act on your passion for ten minutes, then reflect in your journal",
		},
	},
	{
		ID:    "citrine",
		Name:  "Citrine",
		Theme: "Abundance",
		Stages: [StagesPerPath]string{
			"List three things you already have that once felt out of reach",
			"Visualize a day lived in plenty, in detail",
			"Give something away and notice what flows back",
		},
	},
	{
		ID:    "amethyst",
		Name:  "Amethyst",
		Theme: "Calm & Intuition",
		Stages: [StagesPerPath]string{
			"Sit with your breath for five unhurried minutes",
			"Note the first quiet impulse you ignored today",
			"Follow one intuition without second-guessing it",
		},
	},
	{
		ID:    "rose-quartz",
		Name:  "Rose Quartz",
		Theme: "Self-Compassion",
		Stages: [StagesPerPath]string{
			"Write yourself the note you would send a struggling friend",
			"Replace one self-criticism with a plain observation",
			"Spend an evening doing something purely because it is kind to you",
		},
	},
	{
		ID:    "obsidian",
		Name:  "Obsidian",
		Theme: "Release",
		Stages: [StagesPerPath]string{
			"Name the weight you have been carrying",
			"Write it a farewell letter you never send",
			"Mark the release with a closing breath practice",
		},
	},
	{
		ID:    "moonstone",
		Name:  "Moonstone",
		Theme: "New Beginnings",
		Stages: [StagesPerPath]string{
			"Describe the person you are becoming, in present tense",
			"Do one small thing that person would do",
			"Retire one habit that belongs to who you were",
		},
	},
	{
		ID:    "jade",
		Name:  "Jade",
		Theme: "Balance",
		Stages: [StagesPerPath]string{
			"Map where your hours actually went this week",
			"Trade one obligation for one restoration",
			"Close the day with a gratitude entry about the trade",
		},
	},
	{
		ID:    "clear-quartz",
		Name:  "Clear Quartz",
		Theme: "Clarity",
		Stages: [StagesPerPath]string{
			"Write down the one question you keep avoiding",
			"Answer it badly, quickly, honestly",
			"Distill the answer into a single guiding sentence",
		},
	},
}
