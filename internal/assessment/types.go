// Package assessment converts a placement-quiz transcript into a
// numeric skill profile and a recommended learning path.
//
// The speaking score is an engagement proxy derived from transcript
// length and token density, not a pronunciation or fluency grader; it
// measures that the learner spoke, not how well.
package assessment

// Section identifies which skill a quiz question probes.
type Section string

const (
	SectionVocabulary Section = "vocabulary"
	SectionReading    Section = "reading"
	SectionCultural   Section = "cultural"
)

// Option is one selectable answer for a question.
type Option struct {
	ID      string
	Text    string
	Correct bool
}

// Question is a single placement-quiz question.
type Question struct {
	ID      string
	Section Section
	Text    string
	Options []Option
}

// AnswerSet is the transient quiz response: question ID to selected
// option ID, plus the free-text transcript captured during the
// speaking exercise. Missing answers score as incorrect; scoring
// never fails.
type AnswerSet struct {
	Answers    map[string]string
	Transcript string
}

// Path labels the recommended learning intensity.
type Path string

const (
	PathIntensive Path = "intensive"
	PathFocused   Path = "focused"
	PathBalanced  Path = "balanced"
)

// Skill identifies one of the five scored dimensions.
type Skill string

const (
	SkillSpeaking   Skill = "speaking"
	SkillVocabulary Skill = "vocabulary"
	SkillReading    Skill = "reading"
	SkillCultural   Skill = "cultural"
	SkillListening  Skill = "listening"
)

// skillPriority is the fixed tie-break order for picking the most
// prominent weakness.
var skillPriority = []Skill{
	SkillSpeaking,
	SkillVocabulary,
	SkillReading,
	SkillCultural,
	SkillListening,
}

// Result is the scored skill profile. All scores are on a 0–5 scale;
// Overall is the arithmetic mean of the five.
type Result struct {
	Speaking   float64
	Vocabulary float64
	Reading    float64
	Cultural   float64
	Listening  float64
	Overall    float64
	Path       Path
	Modules    []string // ordered, deduplicated recommendations
}

// Score returns the value for a named skill dimension.
func (r Result) Score(s Skill) float64 {
	switch s {
	case SkillSpeaking:
		return r.Speaking
	case SkillVocabulary:
		return r.Vocabulary
	case SkillReading:
		return r.Reading
	case SkillCultural:
		return r.Cultural
	case SkillListening:
		return r.Listening
	default:
		return 0
	}
}
