package catalog

import (
	"fmt"
	"slices"
)

// index holds the industry catalog with precomputed lookups.
type index struct {
	industries []Industry
	byKey      map[string]*Industry
	lessonByID map[string]*Lesson
	moduleOf   map[string]string // lesson ID -> module ID
	moduleByID map[string]*Module
}

// idx is the package-level catalog singleton, set by init() in seed.go.
var idx *index

// buildIndex constructs the catalog index from a slice of industries.
// It panics on duplicate lesson or module IDs since the seed data is
// compiled in and a collision is a programming error, not runtime input.
func buildIndex(industries []Industry) *index {
	ix := &index{
		industries: industries,
		byKey:      make(map[string]*Industry, len(industries)),
		lessonByID: make(map[string]*Lesson),
		moduleOf:   make(map[string]string),
		moduleByID: make(map[string]*Module),
	}

	for i := range ix.industries {
		ind := &ix.industries[i]
		ix.byKey[ind.Key] = ind
		for j := range ind.Modules {
			m := &ind.Modules[j]
			if _, dup := ix.moduleByID[m.ID]; dup {
				panic(fmt.Sprintf("catalog: duplicate module ID %q", m.ID))
			}
			ix.moduleByID[m.ID] = m
			for k := range m.Lessons {
				l := &m.Lessons[k]
				if _, dup := ix.lessonByID[l.ID]; dup {
					panic(fmt.Sprintf("catalog: duplicate lesson ID %q", l.ID))
				}
				ix.lessonByID[l.ID] = l
				ix.moduleOf[l.ID] = m.ID
			}
		}
	}

	return ix
}

// Load returns the immutable curriculum for an industry key.
func Load(key string) (Industry, error) {
	ind, ok := idx.byKey[key]
	if !ok {
		return Industry{}, fmt.Errorf("industry not found: %q", key)
	}
	return *ind, nil
}

// Industries returns all industries in display order.
func Industries() []Industry {
	return slices.Clone(idx.industries)
}

// IndustryKeys returns the keys of all industries in display order.
func IndustryKeys() []string {
	keys := make([]string, len(idx.industries))
	for i, ind := range idx.industries {
		keys[i] = ind.Key
	}
	return keys
}

// GetLesson returns a lesson by ID, or an error if not found.
func GetLesson(id string) (Lesson, error) {
	l, ok := idx.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson not found: %q", id)
	}
	return *l, nil
}

// GetModule returns a module by ID, or an error if not found.
func GetModule(id string) (Module, error) {
	m, ok := idx.moduleByID[id]
	if !ok {
		return Module{}, fmt.Errorf("module not found: %q", id)
	}
	return *m, nil
}

// ModuleOfLesson returns the ID of the module containing the lesson,
// or the empty string if the lesson is unknown.
func ModuleOfLesson(lessonID string) string {
	return idx.moduleOf[lessonID]
}
