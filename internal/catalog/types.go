package catalog

// LessonType identifies the kind of content a lesson carries.
type LessonType string

const (
	TypeDialogue   LessonType = "dialogue"
	TypeVocabulary LessonType = "vocabulary"
	TypeExercise   LessonType = "exercise"
	TypeSpeaking   LessonType = "speaking"
)

// AllLessonTypes returns all lesson types in display order.
func AllLessonTypes() []LessonType {
	return []LessonType{TypeDialogue, TypeVocabulary, TypeExercise, TypeSpeaking}
}

// DisplayName returns a human-readable label for the lesson type.
func (t LessonType) DisplayName() string {
	switch t {
	case TypeDialogue:
		return "Dialogue"
	case TypeVocabulary:
		return "Vocabulary"
	case TypeExercise:
		return "Exercise"
	case TypeSpeaking:
		return "Speaking Practice"
	default:
		return string(t)
	}
}

// Lesson is a single unit of content within a module.
// Lesson IDs are stable strings unique across the whole catalog,
// not just within their module.
type Lesson struct {
	ID              string
	Title           string
	Type            LessonType
	DurationMinutes int
	Content         string
}

// Module is an ordered group of lessons within an industry curriculum.
type Module struct {
	ID               string
	Title            string
	Description      string
	EstimatedMinutes int
	Lessons          []Lesson
}

// Industry is a complete curriculum for one professional field.
// Modules are ordered; progression policy unlocks them sequentially.
type Industry struct {
	Key     string
	Name    string
	Modules []Module
}

// LessonCount returns the total number of lessons across all modules.
func (ind Industry) LessonCount() int {
	n := 0
	for _, m := range ind.Modules {
		n += len(m.Lessons)
	}
	return n
}
