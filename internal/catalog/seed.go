package catalog

func init() {
	idx = buildIndex(seedIndustries)
}

// seedIndustries defines the built-in curricula.
// Three industries, three modules each, sequenced from workplace basics
// to specialist communication. Lesson and module IDs are unique across
// the whole catalog.
var seedIndustries = []Industry{
	{
		Key:  "healthcare",
		Name: "Healthcare",
		Modules: []Module{
			{
				ID:               "health-foundations",
				Title:            "Clinical Workplace Basics",
				Description:      "Greetings, shift handovers, and everyday ward vocabulary",
				EstimatedMinutes: 45,
				Lessons: []Lesson{
					{ID: "health-foundations-01", Title: "Meeting Patients and Colleagues", Type: TypeDialogue, DurationMinutes: 10, Content: "Introductions at the nurses' station and on rounds"},
					{ID: "health-foundations-02", Title: "Ward Vocabulary", Type: TypeVocabulary, DurationMinutes: 15, Content: "Equipment, departments, and common charting terms"},
					{ID: "health-foundations-03", Title: "Shift Handover Practice", Type: TypeExercise, DurationMinutes: 20, Content: "Structured SBAR-style handover drills"},
				},
			},
			{
				ID:               "health-patient-care",
				Title:            "Patient Communication",
				Description:      "Taking histories, explaining procedures, reassurance",
				EstimatedMinutes: 55,
				Lessons: []Lesson{
					{ID: "health-patient-care-01", Title: "Taking a Patient History", Type: TypeDialogue, DurationMinutes: 15, Content: "Open and closed questions for intake interviews"},
					{ID: "health-patient-care-02", Title: "Symptoms and Body Systems", Type: TypeVocabulary, DurationMinutes: 15, Content: "Describing pain, symptoms, and anatomy in plain language"},
					{ID: "health-patient-care-03", Title: "Explaining a Procedure", Type: TypeSpeaking, DurationMinutes: 25, Content: "Consent conversations and pre-procedure explanations"},
				},
			},
			{
				ID:               "health-specialist",
				Title:            "Clinical Documentation & Teams",
				Description:      "Notes, referrals, and multidisciplinary meetings",
				EstimatedMinutes: 60,
				Lessons: []Lesson{
					{ID: "health-specialist-01", Title: "Writing Clinical Notes", Type: TypeExercise, DurationMinutes: 20, Content: "Concise, unambiguous progress notes"},
					{ID: "health-specialist-02", Title: "Referral Language", Type: TypeVocabulary, DurationMinutes: 15, Content: "Formal register for referral letters"},
					{ID: "health-specialist-03", Title: "Case Conference Role-Play", Type: TypeSpeaking, DurationMinutes: 25, Content: "Presenting a patient to a multidisciplinary team"},
				},
			},
		},
	},
	{
		Key:  "technology",
		Name: "Technology",
		Modules: []Module{
			{
				ID:               "tech-foundations",
				Title:            "Tech Workplace Basics",
				Description:      "Standups, tickets, and everyday engineering vocabulary",
				EstimatedMinutes: 40,
				Lessons: []Lesson{
					{ID: "tech-foundations-01", Title: "Daily Standup", Type: TypeDialogue, DurationMinutes: 10, Content: "Yesterday, today, blockers: the standup formula"},
					{ID: "tech-foundations-02", Title: "Engineering Vocabulary", Type: TypeVocabulary, DurationMinutes: 15, Content: "Deploys, rollbacks, incidents, and sprints"},
					{ID: "tech-foundations-03", Title: "Writing a Ticket", Type: TypeExercise, DurationMinutes: 15, Content: "Reproduction steps and acceptance criteria"},
				},
			},
			{
				ID:               "tech-collaboration",
				Title:            "Code Review & Collaboration",
				Description:      "Giving and receiving feedback without friction",
				EstimatedMinutes: 50,
				Lessons: []Lesson{
					{ID: "tech-collaboration-01", Title: "Code Review Comments", Type: TypeExercise, DurationMinutes: 15, Content: "Suggesting changes diplomatically"},
					{ID: "tech-collaboration-02", Title: "Disagreeing Productively", Type: TypeDialogue, DurationMinutes: 15, Content: "Pushing back on a design in a meeting"},
					{ID: "tech-collaboration-03", Title: "Pairing Session Practice", Type: TypeSpeaking, DurationMinutes: 20, Content: "Narrating your thinking while coding"},
				},
			},
			{
				ID:               "tech-stakeholders",
				Title:            "Presenting to Stakeholders",
				Description:      "Demos, incident reports, and non-technical audiences",
				EstimatedMinutes: 55,
				Lessons: []Lesson{
					{ID: "tech-stakeholders-01", Title: "Demo Day Language", Type: TypeSpeaking, DurationMinutes: 20, Content: "Presenting a feature to product and sales"},
					{ID: "tech-stakeholders-02", Title: "Incident Postmortems", Type: TypeExercise, DurationMinutes: 20, Content: "Blameless write-ups and timelines"},
					{ID: "tech-stakeholders-03", Title: "Explaining Tradeoffs", Type: TypeDialogue, DurationMinutes: 15, Content: "Translating technical debt for executives"},
				},
			},
		},
	},
	{
		Key:  "hospitality",
		Name: "Hospitality",
		Modules: []Module{
			{
				ID:               "hosp-foundations",
				Title:            "Front Desk Basics",
				Description:      "Check-in, check-out, and guest-facing vocabulary",
				EstimatedMinutes: 40,
				Lessons: []Lesson{
					{ID: "hosp-foundations-01", Title: "Welcoming a Guest", Type: TypeDialogue, DurationMinutes: 10, Content: "Check-in scripts and warm openings"},
					{ID: "hosp-foundations-02", Title: "Hotel Vocabulary", Type: TypeVocabulary, DurationMinutes: 15, Content: "Rooms, rates, amenities, and housekeeping"},
					{ID: "hosp-foundations-03", Title: "Taking a Reservation", Type: TypeExercise, DurationMinutes: 15, Content: "Dates, rates, and confirmation numbers by phone"},
				},
			},
			{
				ID:               "hosp-service",
				Title:            "Guest Service & Recovery",
				Description:      "Requests, complaints, and de-escalation",
				EstimatedMinutes: 50,
				Lessons: []Lesson{
					{ID: "hosp-service-01", Title: "Handling Requests", Type: TypeDialogue, DurationMinutes: 15, Content: "Polite offers and alternatives"},
					{ID: "hosp-service-02", Title: "Complaint Vocabulary", Type: TypeVocabulary, DurationMinutes: 15, Content: "Apology language and service recovery phrases"},
					{ID: "hosp-service-03", Title: "De-escalation Role-Play", Type: TypeSpeaking, DurationMinutes: 20, Content: "Calming an upset guest at the desk"},
				},
			},
			{
				ID:               "hosp-events",
				Title:            "Events & Upselling",
				Description:      "Banquets, group bookings, and suggestive selling",
				EstimatedMinutes: 55,
				Lessons: []Lesson{
					{ID: "hosp-events-01", Title: "Event Coordination Calls", Type: TypeDialogue, DurationMinutes: 20, Content: "Logistics language for group bookings"},
					{ID: "hosp-events-02", Title: "Upselling Phrases", Type: TypeVocabulary, DurationMinutes: 15, Content: "Upgrades, packages, and add-ons"},
					{ID: "hosp-events-03", Title: "Banquet Briefing Practice", Type: TypeSpeaking, DurationMinutes: 20, Content: "Briefing staff before a function"},
				},
			},
		},
	},
}
