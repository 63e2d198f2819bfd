package assessment

// seedQuestions is the built-in placement quiz: five vocabulary
// questions, three reading, three cultural. The speaking section has
// no questions; it is scored from the transcript alone.
var seedQuestions = []Question{
	// Vocabulary (5)
	{
		ID:      "vocab-01",
		Section: SectionVocabulary,
		Text:    "A colleague says the meeting was \"pushed back\". The meeting was…",
		Options: []Option{
			{ID: "a", Text: "cancelled"},
			{ID: "b", Text: "delayed", Correct: true},
			{ID: "c", Text: "moved earlier"},
		},
	},
	{
		ID:      "vocab-02",
		Section: SectionVocabulary,
		Text:    "\"Deadline\" most nearly means…",
		Options: []Option{
			{ID: "a", Text: "the latest time something is due", Correct: true},
			{ID: "b", Text: "a dangerous situation"},
			{ID: "c", Text: "a phone line that is not working"},
		},
	},
	{
		ID:      "vocab-03",
		Section: SectionVocabulary,
		Text:    "To \"follow up\" on an email is to…",
		Options: []Option{
			{ID: "a", Text: "delete it"},
			{ID: "b", Text: "forward it to your manager"},
			{ID: "c", Text: "check on it again later", Correct: true},
		},
	},
	{
		ID:      "vocab-04",
		Section: SectionVocabulary,
		Text:    "If a task is \"on hold\", it is…",
		Options: []Option{
			{ID: "a", Text: "paused", Correct: true},
			{ID: "b", Text: "finished"},
			{ID: "c", Text: "urgent"},
		},
	},
	{
		ID:      "vocab-05",
		Section: SectionVocabulary,
		Text:    "A \"shift\" at work is…",
		Options: []Option{
			{ID: "a", Text: "a scheduled block of working hours", Correct: true},
			{ID: "b", Text: "a change of office"},
			{ID: "c", Text: "a type of uniform"},
		},
	},

	// Reading (3)
	{
		ID:      "read-01",
		Section: SectionReading,
		Text:    "\"Staff must badge in before entering the lab.\" What is required?",
		Options: []Option{
			{ID: "a", Text: "Wearing a lab coat"},
			{ID: "b", Text: "Using an ID card at the door", Correct: true},
			{ID: "c", Text: "Signing a paper logbook"},
		},
	},
	{
		ID:      "read-02",
		Section: SectionReading,
		Text:    "\"The elevator is out of service; please use the stairs.\" You should…",
		Options: []Option{
			{ID: "a", Text: "wait for the elevator"},
			{ID: "b", Text: "call maintenance"},
			{ID: "c", Text: "take the stairs", Correct: true},
		},
	},
	{
		ID:      "read-03",
		Section: SectionReading,
		Text:    "\"Submit timesheets no later than Friday noon.\" When are timesheets due?",
		Options: []Option{
			{ID: "a", Text: "By 12:00 on Friday", Correct: true},
			{ID: "b", Text: "Any time on Friday"},
			{ID: "c", Text: "Monday morning"},
		},
	},

	// Cultural (3)
	{
		ID:      "cult-01",
		Section: SectionCultural,
		Text:    "A coworker says \"Let's touch base next week.\" They want to…",
		Options: []Option{
			{ID: "a", Text: "have a brief check-in", Correct: true},
			{ID: "b", Text: "play a team sport"},
			{ID: "c", Text: "postpone the project"},
		},
	},
	{
		ID:      "cult-02",
		Section: SectionCultural,
		Text:    "Your manager asks \"Could you possibly look at this today?\" This is…",
		Options: []Option{
			{ID: "a", Text: "an optional suggestion"},
			{ID: "b", Text: "a polite request they expect you to do", Correct: true},
			{ID: "c", Text: "a criticism of your work"},
		},
	},
	{
		ID:      "cult-03",
		Section: SectionCultural,
		Text:    "In a stand-up meeting it is most appropriate to…",
		Options: []Option{
			{ID: "a", Text: "give a short status and raise blockers", Correct: true},
			{ID: "b", Text: "present slides in detail"},
			{ID: "c", Text: "stay silent unless asked"},
		},
	},
}

// Questions returns the placement quiz in presentation order.
func Questions() []Question {
	out := make([]Question, len(seedQuestions))
	copy(out, seedQuestions)
	return out
}
