package roadmap

import (
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	rm := Generate("Computer Science", "Data Scientist", "2 years")

	if rm.Degree != "Computer Science" || rm.TargetJob != "Data Scientist" || rm.Timeline != "2 years" {
		t.Errorf("inputs not echoed back: %+v", rm)
	}

	for name, list := range map[string][]string{
		"SkillRoadmap":       rm.SkillRoadmap,
		"RecommendedTools":   rm.RecommendedTools,
		"ProjectSuggestions": rm.ProjectSuggestions,
		"InternshipPath":     rm.InternshipPath,
	} {
		if len(list) != 5 {
			t.Errorf("%s has %d items, want 5", name, len(list))
		}
	}

	if rm.SkillRoadmap[0] != "Master Computer Science fundamentals" {
		t.Errorf("SkillRoadmap[0] = %q", rm.SkillRoadmap[0])
	}
	if !strings.Contains(rm.SkillRoadmap[1], "Data Scientist") {
		t.Errorf("SkillRoadmap[1] = %q, want it to mention the target job", rm.SkillRoadmap[1])
	}
	if rm.ProjectSuggestions[0] != "Build a data scientist-related project" {
		t.Errorf("ProjectSuggestions[0] = %q", rm.ProjectSuggestions[0])
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate("Physics", "Research Engineer", "18 months")
	b := Generate("Physics", "Research Engineer", "18 months")

	for i := range a.SkillRoadmap {
		if a.SkillRoadmap[i] != b.SkillRoadmap[i] {
			t.Fatalf("SkillRoadmap[%d] differs between runs", i)
		}
	}
}
