package catalog

import "testing"

func TestLoad_KnownIndustries(t *testing.T) {
	for _, key := range []string{"healthcare", "technology", "hospitality"} {
		ind, err := Load(key)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", key, err)
		}
		if ind.Key != key {
			t.Errorf("Load(%q).Key = %q", key, ind.Key)
		}
		if len(ind.Modules) == 0 {
			t.Errorf("Load(%q) has no modules", key)
		}
	}
}

func TestLoad_UnknownIndustry(t *testing.T) {
	_, err := Load("aerospace")
	if err == nil {
		t.Fatal("expected error for unknown industry")
	}
}

func TestIDsUniqueAcrossCatalog(t *testing.T) {
	lessonIDs := make(map[string]bool)
	moduleIDs := make(map[string]bool)
	for _, ind := range Industries() {
		for _, m := range ind.Modules {
			if moduleIDs[m.ID] {
				t.Errorf("duplicate module ID %q", m.ID)
			}
			moduleIDs[m.ID] = true
			for _, l := range m.Lessons {
				if lessonIDs[l.ID] {
					t.Errorf("duplicate lesson ID %q", l.ID)
				}
				lessonIDs[l.ID] = true
			}
		}
	}
}

func TestModuleOfLesson(t *testing.T) {
	tests := []struct {
		lessonID string
		want     string
	}{
		{"health-foundations-02", "health-foundations"},
		{"tech-stakeholders-01", "tech-stakeholders"},
		{"hosp-service-03", "hosp-service"},
		{"no-such-lesson", ""},
	}

	for _, tt := range tests {
		if got := ModuleOfLesson(tt.lessonID); got != tt.want {
			t.Errorf("ModuleOfLesson(%q) = %q, want %q", tt.lessonID, got, tt.want)
		}
	}
}

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("tech-foundations-01")
	if err != nil {
		t.Fatalf("GetLesson error: %v", err)
	}
	if l.Type != TypeDialogue {
		t.Errorf("Type = %q, want %q", l.Type, TypeDialogue)
	}

	if _, err := GetLesson("missing"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestLessonCount(t *testing.T) {
	ind, err := Load("healthcare")
	if err != nil {
		t.Fatal(err)
	}
	if got := ind.LessonCount(); got != 9 {
		t.Errorf("LessonCount() = %d, want 9", got)
	}
}

func TestEmptyIndustryLessonCount(t *testing.T) {
	var empty Industry
	if got := empty.LessonCount(); got != 0 {
		t.Errorf("LessonCount() = %d, want 0", got)
	}
}
