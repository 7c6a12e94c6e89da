package section

import "testing"

func TestNew_DetectsHeaderKinds(t *testing.T) {
	text := `Jane Cruz, RN
PROFESSIONAL EXPERIENCE
Staff Nurse
St. Luke's Medical Center
EDUCATIONAL ATTAINMENT
Bachelor of Science in Nursing
SKILLS
IV Therapy, Wound Care`

	idx := New(text)
	kinds := idx.FoundKinds()
	want := map[string]bool{"experience": true, "education": true, "skills": true}
	for _, k := range kinds {
		if !want[k] {
			t.Errorf("unexpected kind %q", k)
		}
		delete(want, k)
	}
	if len(want) != 0 {
		t.Errorf("missing expected kinds: %v", want)
	}
}

func TestExclusionMask_CoversEducationAndExcludeOnlyHeaders(t *testing.T) {
	text := `PROFESSIONAL EXPERIENCE
Staff Nurse, 2020 - 2022
EDUCATIONAL ATTAINMENT
Bachelor of Science in Nursing
2016 - 2020
PERSONAL INFORMATION
Date of Birth: January 1, 1995
Civil Status: Single
ADDITIONAL INFORMATION
References available upon request`

	idx := New(text)
	mask := idx.ExclusionMask()
	if len(mask) == 0 {
		t.Fatal("expected at least one exclusion span")
	}

	lines := idx.Lines
	eduHeaderLine := -1
	personalHeaderLine := -1
	for i, l := range lines {
		switch l {
		case "EDUCATIONAL ATTAINMENT":
			eduHeaderLine = i
		case "PERSONAL INFORMATION":
			personalHeaderLine = i
		}
	}
	if eduHeaderLine == -1 || personalHeaderLine == -1 {
		t.Fatal("test fixture lines not found")
	}

	if !IsMasked(mask, eduHeaderLine+1) {
		t.Error("expected line inside EDUCATIONAL ATTAINMENT region to be masked")
	}
	if !IsMasked(mask, personalHeaderLine+1) {
		t.Error("expected line inside PERSONAL INFORMATION region to be masked")
	}

	expHeaderLine := -1
	for i, l := range lines {
		if l == "Staff Nurse, 2020 - 2022" {
			expHeaderLine = i
		}
	}
	if expHeaderLine == -1 {
		t.Fatal("experience fixture line not found")
	}
	if IsMasked(mask, expHeaderLine) {
		t.Error("expected experience line to remain unmasked")
	}
}

func TestEducationWindow_BoundedByNextAllCapsHeader(t *testing.T) {
	text := `EDUCATION
Bachelor of Science in Nursing
Saint Louis University
2016 - 2020
WORK EXPERIENCE SUMMARY
Staff Nurse at City Hospital`

	idx := New(text)
	start, end, ok := idx.EducationWindow()
	if !ok {
		t.Fatal("expected an education window to be found")
	}
	if idx.Lines[start] != "EDUCATION" {
		t.Errorf("expected window to start at EDUCATION header, got line %q", idx.Lines[start])
	}
	if end > len(idx.Lines) || idx.Lines[end-1] == "WORK EXPERIENCE SUMMARY" {
		t.Errorf("expected window to end before next all-caps header, end=%d", end)
	}
}

func TestEducationWindow_NoHeaderReturnsNotOK(t *testing.T) {
	idx := New("Staff Nurse\nSt. Luke's Medical Center")
	if _, _, ok := idx.EducationWindow(); ok {
		t.Error("expected no education window when no header is present")
	}
}

func TestIsGenericHeader_RequiresUppercaseRatio(t *testing.T) {
	if !isGenericHeader("HONORS & AWARDS", 8) {
		t.Error("expected all-caps line to qualify as a generic header")
	}
	if isGenericHeader("Staff Nurse", 8) {
		t.Error("expected mixed-case line to not qualify")
	}
	if isGenericHeader("RN", 8) {
		t.Error("expected a short all-caps line below minLen to not qualify")
	}
}

func TestSkillsSections_BoundedSpan(t *testing.T) {
	text := `SKILLS
IV Therapy
Wound Care
PROFESSIONAL EXPERIENCE
Staff Nurse`

	idx := New(text)
	spans := idx.SkillsSections()
	if len(spans) != 1 {
		t.Fatalf("expected exactly one skills span, got %d", len(spans))
	}
	body := idx.Text(spans[0].Start, spans[0].End)
	if body == "" {
		t.Error("expected non-empty skills section body")
	}
}
