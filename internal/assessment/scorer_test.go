package assessment

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// correctAnswers maps every seed question to its correct option.
func correctAnswers(t *testing.T) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, q := range seedQuestions {
		for _, opt := range q.Options {
			if opt.Correct {
				out[q.ID] = opt.ID
			}
		}
	}
	return out
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestSectionScore_FourOfFiveVocabulary(t *testing.T) {
	answers := correctAnswers(t)
	answers["vocab-05"] = "b" // wrong

	got := sectionScore(SectionVocabulary, answers)
	if !approx(got, 4.0) {
		t.Errorf("vocabulary score = %v, want 4.0", got)
	}
}

func TestSectionScore_MissingAnswersAreIncorrect(t *testing.T) {
	if got := sectionScore(SectionReading, nil); !approx(got, 0) {
		t.Errorf("reading score with no answers = %v, want 0", got)
	}
	if got := sectionScore(SectionReading, map[string]string{"read-01": "zzz"}); !approx(got, 0) {
		t.Errorf("reading score with unknown option = %v, want 0", got)
	}
}

func TestSpeakingScore_Thresholds(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		want       float64
	}{
		{"empty", "", 2},
		{"filler only", "um uh ok no", 2},
		{"four tokens", "hello doctor please nurse", 3},
		{
			"seven tokens over fifty chars",
			"I enjoy working together with patients every single morning",
			4,
		},
		{
			"many tokens over a hundred chars",
			"Every morning I enjoy speaking together with patients about treatment because clear communication always improves their recovery outcomes",
			5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := speakingScore(tt.transcript); !approx(got, tt.want) {
				t.Errorf("speakingScore = %v, want %v (tokens=%d len=%d)",
					got, tt.want, qualifyingTokens(tt.transcript), len(tt.transcript))
			}
		})
	}
}

func TestQualifyingTokens(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a b c", 0},
		{"hello world", 2}, // hello has e+o, world only o
		{"HELLO", 1},       // case-insensitive
	}

	for _, tt := range tests {
		if got := qualifyingTokens(tt.in); got != tt.want {
			t.Errorf("qualifyingTokens(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestScore_FocusedCulturalScenario(t *testing.T) {
	answers := correctAnswers(t)
	answers["vocab-05"] = "b" // vocab 4/5 -> 4.0
	answers["read-03"] = "b"  // reading 2/3 -> ~3.33
	answers["cult-02"] = "a"  // cultural 1/3 -> ~1.67
	answers["cult-03"] = "b"

	set := AnswerSet{
		Answers:    answers,
		Transcript: "I enjoy working together with patients every single morning",
	}

	r := Score(set, "healthcare")

	if !approx(r.Vocabulary, 4.0) {
		t.Errorf("Vocabulary = %v, want 4.0", r.Vocabulary)
	}
	if !approx(r.Reading, 10.0/3) {
		t.Errorf("Reading = %v, want %v", r.Reading, 10.0/3)
	}
	if !approx(r.Cultural, 5.0/3) {
		t.Errorf("Cultural = %v, want %v", r.Cultural, 5.0/3)
	}
	if !approx(r.Speaking, 4) {
		t.Errorf("Speaking = %v, want 4", r.Speaking)
	}
	if !approx(r.Listening, (4.0+10.0/3)/2) {
		t.Errorf("Listening = %v, want mean of vocabulary and reading", r.Listening)
	}

	// Cultural is the only weakness -> focused path.
	if r.Path != PathFocused {
		t.Fatalf("Path = %q, want %q", r.Path, PathFocused)
	}
	want := []string{
		"health-foundations", "health-patient-care",
		"workplace-culture", "small-talk", "politeness-strategies",
	}
	if !reflect.DeepEqual(r.Modules, want) {
		t.Errorf("Modules = %v, want %v", r.Modules, want)
	}
}

func TestScore_EmptyAnswerSetIsIntensive(t *testing.T) {
	r := Score(AnswerSet{}, "technology")

	if r.Path != PathIntensive {
		t.Errorf("Path = %q, want %q", r.Path, PathIntensive)
	}
	if len(r.Modules) == 0 {
		t.Error("intensive path must carry module recommendations")
	}
	if r.Modules[0] != "tech-foundations" {
		t.Errorf("Modules[0] = %q, want industry module first", r.Modules[0])
	}
}

func TestScore_AllCorrectIsBalanced(t *testing.T) {
	set := AnswerSet{
		Answers:    correctAnswers(t),
		Transcript: strings.Repeat("communication matters because listening carefully improves understanding ", 3),
	}

	r := Score(set, "hospitality")
	if r.Path != PathBalanced {
		t.Errorf("Path = %q, want %q (weaknesses: %v)", r.Path, PathBalanced, Weaknesses(r))
	}
	if !approx(r.Vocabulary, 5) || !approx(r.Reading, 5) || !approx(r.Cultural, 5) {
		t.Errorf("section scores = %v/%v/%v, want 5 each", r.Vocabulary, r.Reading, r.Cultural)
	}
}

func TestScore_Deterministic(t *testing.T) {
	set := AnswerSet{
		Answers:    map[string]string{"vocab-01": "b", "read-01": "b", "cult-01": "a"},
		Transcript: "short answer",
	}

	first := Score(set, "healthcare")
	for i := 0; i < 5; i++ {
		if got := Score(set, "healthcare"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Score not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestScore_UnknownIndustryHasNoPrepend(t *testing.T) {
	r := Score(AnswerSet{}, "aerospace")
	if len(r.Modules) != len(intensiveModules) {
		t.Errorf("Modules = %v, want only the intensive set", r.Modules)
	}
}

func TestScore_DeduplicatesPreservingOrder(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dedupe = %v, want %v", got, want)
	}
}

func TestMostProminent_TieBreaksByPriority(t *testing.T) {
	r := Result{Speaking: 2, Vocabulary: 2, Reading: 4, Cultural: 4, Listening: 4}
	got := mostProminent(r, []Skill{SkillSpeaking, SkillVocabulary})
	if got != SkillSpeaking {
		t.Errorf("mostProminent = %q, want speaking on tie", got)
	}

	r2 := Result{Speaking: 2.5, Vocabulary: 1, Reading: 4, Cultural: 4, Listening: 4}
	got2 := mostProminent(r2, []Skill{SkillSpeaking, SkillVocabulary})
	if got2 != SkillVocabulary {
		t.Errorf("mostProminent = %q, want the lower score", got2)
	}
}
