package assessment

import "strings"

// Weakness and strength cutoffs on the 0–5 scale.
const (
	weaknessBelow = 3.0
	strengthFrom  = 3.5
)

// Score converts an answer set into a skill profile and learning-path
// recommendation. It is pure and deterministic: the same answer set
// and industry always produce the same result, including module
// order. Missing or unknown answers count as incorrect; Score never
// fails.
func Score(set AnswerSet, industryKey string) Result {
	r := Result{
		Speaking:   speakingScore(set.Transcript),
		Vocabulary: sectionScore(SectionVocabulary, set.Answers),
		Reading:    sectionScore(SectionReading, set.Answers),
		Cultural:   sectionScore(SectionCultural, set.Answers),
	}
	// No independent listening data is collected; listening is proxied
	// by the comprehension sections.
	r.Listening = (r.Vocabulary + r.Reading) / 2
	r.Overall = (r.Speaking + r.Vocabulary + r.Reading + r.Cultural + r.Listening) / 5

	r.Path, r.Modules = recommend(r, industryKey)
	return r
}

// sectionScore returns (correct / total) * 5 for one quiz section.
// A section with no questions scores 0.
func sectionScore(sec Section, answers map[string]string) float64 {
	total, correct := 0, 0
	for _, q := range seedQuestions {
		if q.Section != sec {
			continue
		}
		total++
		selected, ok := answers[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == selected && opt.Correct {
				correct++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 5
}

// speakingScore grades engagement with the speaking exercise from the
// free-text transcript. A qualifying token is a word with at least two
// vowels, a coarse proxy for substantive speech over filler.
func speakingScore(transcript string) float64 {
	tokens := qualifyingTokens(transcript)
	length := len(transcript)

	switch {
	case tokens > 8 && length > 100:
		return 5
	case tokens > 5 && length > 50:
		return 4
	case tokens > 3:
		return 3
	default:
		return 2
	}
}

// qualifyingTokens counts words containing two or more vowels.
func qualifyingTokens(transcript string) int {
	count := 0
	for _, word := range strings.Fields(transcript) {
		vowels := 0
		for _, r := range strings.ToLower(word) {
			switch r {
			case 'a', 'e', 'i', 'o', 'u':
				vowels++
			}
		}
		if vowels >= 2 {
			count++
		}
	}
	return count
}

// recommend classifies the profile into a path and builds the ordered
// module recommendation list.
func recommend(r Result, industryKey string) (Path, []string) {
	var weaknesses []Skill
	for _, s := range skillPriority {
		if r.Score(s) < weaknessBelow {
			weaknesses = append(weaknesses, s)
		}
	}

	var path Path
	var pathModules []string
	switch {
	case len(weaknesses) >= 3:
		path = PathIntensive
		pathModules = intensiveModules
	case len(weaknesses) >= 1:
		path = PathFocused
		pathModules = focusedModules[mostProminent(r, weaknesses)]
	default:
		path = PathBalanced
		pathModules = balancedModules
	}

	modules := append(industryModules(industryKey), pathModules...)
	return path, dedupe(modules)
}

// mostProminent picks the weakness with the lowest score. Ties go to
// the earlier skill in the fixed priority order, which is also the
// order weaknesses were collected in.
func mostProminent(r Result, weaknesses []Skill) Skill {
	best := weaknesses[0]
	for _, s := range weaknesses[1:] {
		if r.Score(s) < r.Score(best) {
			best = s
		}
	}
	return best
}

// Strengths returns the skills at or above the strength cutoff, in
// priority order.
func Strengths(r Result) []Skill {
	var out []Skill
	for _, s := range skillPriority {
		if r.Score(s) >= strengthFrom {
			out = append(out, s)
		}
	}
	return out
}

// Weaknesses returns the skills below the weakness cutoff, in
// priority order.
func Weaknesses(r Result) []Skill {
	var out []Skill
	for _, s := range skillPriority {
		if r.Score(s) < weaknessBelow {
			out = append(out, s)
		}
	}
	return out
}
