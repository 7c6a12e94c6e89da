package llmextract

import (
	"strings"
	"testing"
)

func TestBuildPrompt_AppendsRawText(t *testing.T) {
	prompt := buildPrompt("Staff Nurse\nSt. Luke's Medical Center")
	if !strings.HasPrefix(prompt, promptInstructions) {
		t.Error("expected prompt to start with the stable instruction block")
	}
	if !strings.HasSuffix(prompt, "Staff Nurse\nSt. Luke's Medical Center") {
		t.Error("expected prompt to end with the raw résumé text")
	}
}

func TestPromptInstructions_NamesStableRecordKeys(t *testing.T) {
	for _, key := range []string{"summary", "address", "graduation_year", "years_of_experience", "salary", "hospitals", "skills", "certifications", "experience", "education"} {
		if !strings.Contains(promptInstructions, key) {
			t.Errorf("expected prompt instructions to mention key %q", key)
		}
	}
}
