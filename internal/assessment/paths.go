package assessment

import "github.com/fluentpath/fluentpath/internal/catalog"

// intensiveModules is the fixed broad set recommended when three or
// more skills are weak.
var intensiveModules = []string{
	"grammar-foundations",
	"core-vocabulary",
	"speaking-confidence",
	"reading-comprehension",
	"workplace-culture",
	"listening-skills",
}

// balancedModules is the fixed set recommended when no skill is weak.
var balancedModules = []string{
	"conversation-practice",
	"advanced-vocabulary",
	"workplace-culture",
}

// focusedModules maps the most prominent weakness to its remedial
// module list.
var focusedModules = map[Skill][]string{
	SkillSpeaking:   {"speaking-confidence", "pronunciation-drills", "conversation-practice"},
	SkillVocabulary: {"core-vocabulary", "word-families", "vocabulary-in-context"},
	SkillReading:    {"reading-comprehension", "skimming-and-scanning", "workplace-documents"},
	SkillCultural:   {"workplace-culture", "small-talk", "politeness-strategies"},
	SkillListening:  {"listening-skills", "accents-and-speed", "meeting-comprehension"},
}

// industryModules resolves the industry-specific modules prepended to
// every recommendation list: the first two modules of the industry's
// curriculum. An unknown industry contributes nothing.
func industryModules(industryKey string) []string {
	ind, err := catalog.Load(industryKey)
	if err != nil {
		return nil
	}
	var out []string
	for i, m := range ind.Modules {
		if i == 2 {
			break
		}
		out = append(out, m.ID)
	}
	return out
}

// dedupe removes repeated IDs, preserving first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
