package services

type phaseGuidance struct {
	minRelativeDay int
	maxRelativeDay int
	physicalEnergy string
	socialEnergy   string
	emotionalState string
	cognition      string
	selfPerception string
	libido         string
	training       TrainingGuidance
	work           WorkGuidance
	relationships  RelationshipGuidance
	risks          []string
}

func (row phaseGuidance) contains(relativeDay int) bool {
	return relativeDay >= row.minRelativeDay && relativeDay <= row.maxRelativeDay
}

// phaseGuidanceTable covers relative days -14..13 in seven contiguous ranges. Rows are read-only.
var phaseGuidanceTable = []phaseGuidance{
	{
		minRelativeDay: -14,
		maxRelativeDay: -10,
		physicalEnergy: "Low to medium-low",
		socialEnergy:   "Low",
		emotionalState: "Introspective and sensitive. Many people feel a need for quiet and rest.",
		cognition:      "May experience slight mental fog in the first days",
		selfPerception: "More self-critical or vulnerable",
		libido:         "Low in most (though some experience an increase just after bleeding starts)",
		training: TrainingGuidance{
			HighEnergy: "Light strength work with focus on technique, Zone 2 cardio (short duration)",
			LowEnergy:  "Gentle mobility, walking, restorative yoga",
			Notes:      "Listen to your body carefully during menstruation",
		},
		work: WorkGuidance{
			Ideal: []string{"Planning and organization", "Closing out tasks", "Deep individual work", "Documentation"},
			Avoid: []string{"High-stakes presentations", "Intensive networking"},
		},
		relationships: RelationshipGuidance{
			Needs:         "Greater need for care and safe space",
			Communication: "Direct and gentle communication works best",
		},
		risks: []string{"Fatigue", "Menstrual pain", "Low iron if bleeding is heavy"},
	},
	{
		minRelativeDay: -9,
		maxRelativeDay: -6,
		physicalEnergy: "Medium to medium-high",
		socialEnergy:   "Increasing",
		emotionalState: "Growing optimism and motivation",
		cognition:      "High mental clarity and creativity emerging",
		selfPerception: "Notable improvement in self-image",
		libido:         "Rising progressively",
		training: TrainingGuidance{
			HighEnergy: "Excellent window for strength progression, moderate intervals, volume increases",
			LowEnergy:  "Zone 2 cardio, technique practice, steady state training",
			Notes:      "Good phase to build training volume",
		},
		work: WorkGuidance{
			Ideal: []string{"Starting new projects", "Strategic planning", "Important meetings", "Creative work"},
		},
		relationships: RelationshipGuidance{
			Needs:         "Greater openness to connection",
			Communication: "Good time for important conversations",
		},
		risks: []string{"Overestimating capacity and loading too much training volume"},
	},
	{
		minRelativeDay: -5,
		maxRelativeDay: -3,
		physicalEnergy: "High",
		socialEnergy:   "High",
		emotionalState: "Confidence and drive peak",
		cognition:      "Excellent multitasking ability",
		selfPerception: "Increased self-esteem",
		libido:         "High and rising",
		training: TrainingGuidance{
			HighEnergy: "Optimal time for intense strength, power work, HIIT, personal records (if recovery supports it)",
			LowEnergy:  "Moderate strength training, tempo runs",
			Notes:      "Peak performance window - but don't skip recovery",
		},
		work: WorkGuidance{
			Ideal: []string{"Presentations", "Networking events", "Public speaking", "Negotiations", "Leadership moments"},
		},
		relationships: RelationshipGuidance{
			Needs:         "More desire for closeness and playfulness",
			Communication: "Assertive and clear communication comes naturally",
		},
		risks: []string{"Excess intensity without adequate recovery", "Overcommitment"},
	},
	{
		minRelativeDay: -2,
		maxRelativeDay: 1,
		physicalEnergy: "High (individual variation)",
		socialEnergy:   "Very high",
		emotionalState: "Expansive and magnetic for many people",
		cognition:      "Quick, interaction-oriented",
		selfPerception: "Heightened sense of attractiveness",
		libido:         "Peak likely",
		training: TrainingGuidance{
			HighEnergy: "Power and high performance work. Ensure thorough warm-up (possible increased joint laxity)",
			LowEnergy:  "Moderate intensity training with good form focus",
			Notes:      "Watch for joint stability - warm up thoroughly",
		},
		work: WorkGuidance{
			Ideal: []string{"Sales", "Interviews", "Negotiations", "Social events", "Networking"},
		},
		relationships: RelationshipGuidance{
			Needs:         "Greater sexual desire and connection",
			Communication: "May have heightened interpersonal sensitivity",
		},
		risks: []string{"Social overcommitment", "Joint injury if not warming up properly"},
	},
	{
		minRelativeDay: 2,
		maxRelativeDay: 7,
		physicalEnergy: "Medium stable",
		socialEnergy:   "Medium",
		emotionalState: "More pragmatic and execution-focused",
		cognition:      "Good sustained focus",
		selfPerception: "Neutral with possible mild bloating",
		libido:         "Medium",
		training: TrainingGuidance{
			HighEnergy: "Strength maintenance/moderate progression, Zone 2/tempo cardio",
			LowEnergy:  "Steady state training, technique work",
			Notes:      "Hydration is key - body temperature elevated",
		},
		work: WorkGuidance{
			Ideal: []string{"Execution", "Process work", "Organization", "Technical tasks"},
		},
		relationships: RelationshipGuidance{
			Needs:         "More need for structure and clarity",
			Communication: "Direct and practical communication preferred",
		},
		risks: []string{"Increased heat perception and fatigue in intense training"},
	},
	{
		minRelativeDay: 8,
		maxRelativeDay: 10,
		physicalEnergy: "Medium-low",
		socialEnergy:   "Medium-low",
		emotionalState: "Mild irritability possible",
		cognition:      "Slower if sleep is poor",
		selfPerception: "More bloating and body sensitivity",
		libido:         "Declining",
		training: TrainingGuidance{
			HighEnergy: "Reduce training volume, maintain moderate intensity",
			LowEnergy:  "Focus on recovery, light activity, mobility",
			Notes:      "Prioritize recovery over volume",
		},
		work: WorkGuidance{
			Ideal: []string{"Routine tasks", "Review work", "Documentation", "Organization"},
			Avoid: []string{"Intense creative demands", "High-pressure deadlines if possible"},
		},
		relationships: RelationshipGuidance{
			Needs:         "Greater emotional sensitivity",
			Communication: "Extra patience and clarity needed",
		},
		risks: []string{"PMS symptoms beginning"},
	},
	{
		minRelativeDay: 11,
		maxRelativeDay: 13,
		physicalEnergy: "Low",
		socialEnergy:   "Low",
		emotionalState: "Greater emotional variability for many",
		cognition:      "Difficulty concentrating if PMS present",
		selfPerception: "More self-critical",
		libido:         "Low",
		training: TrainingGuidance{
			HighEnergy: "Active recovery, walking, gentle movement",
			LowEnergy:  "Mobility, stretching, very light activity or rest",
			Notes:      "Avoid HIIT if fatigue is high",
		},
		work: WorkGuidance{
			Ideal: []string{"Simple tasks", "Low-stakes work"},
			Avoid: []string{"Critical negotiations", "High-pressure presentations", "Complex problem-solving"},
		},
		relationships: RelationshipGuidance{
			Needs:         "Greater need for space and understanding",
			Communication: "Direct but gentle approach works best",
		},
		risks: []string{"Significant PMS or PMDD symptoms if severe", "Low frustration tolerance"},
	},
}

func lookupPhaseGuidance(relativeDay int) (phaseGuidance, bool) {
	for _, row := range phaseGuidanceTable {
		if row.contains(relativeDay) {
			return row, true
		}
	}
	return phaseGuidance{}, false
}

func defaultPredictions() DayPredictions {
	return DayPredictions{
		PhysicalEnergy: "medium",
		SocialEnergy:   "medium",
		EmotionalState: "Neutral",
		Cognition:      "Normal",
		SelfPerception: "Normal",
		Libido:         "medium",
		Training: TrainingGuidance{
			HighEnergy: "Moderate training",
			LowEnergy:  "Light activity",
		},
		Work: WorkGuidance{
			Ideal: []string{"General tasks"},
			Avoid: []string{},
		},
		Relationships: RelationshipGuidance{
			Needs:         "Normal connection",
			Communication: "Clear and direct",
		},
		Risks: []string{},
	}
}
