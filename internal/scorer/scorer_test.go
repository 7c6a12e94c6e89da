package scorer

import (
	"testing"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

func TestScore_NilRecordReturnsZero(t *testing.T) {
	if got := Score(nil, "anything"); got != 0 {
		t.Errorf("expected 0 for nil record, got %d", got)
	}
}

func TestScore_EmptyRecordIsZero(t *testing.T) {
	got := Score(&schema.ParsedRecord{}, "")
	if got != 0 {
		t.Errorf("expected 0 for an empty record, got %d", got)
	}
}

func TestScore_SaneExperienceAndEducationContributeBaseline(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Staff Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020"},
		},
		Education: []schema.Education{
			{Degree: "BSN", Institution: "Saint Louis University"},
		},
	}
	got := Score(record, "")
	// +30 sane experience, +25 degree+institution = 55
	if got != 55 {
		t.Errorf("expected 55, got %d", got)
	}
}

func TestScore_UnshapedExperienceGetsPartialCredit(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "", Employer: "", StartDate: ""},
		},
	}
	got := Score(record, "")
	// +5 for non-empty but not sane, then -15 since all entries are missing
	// position/employer (1*2 > 1).
	if got != 0 {
		t.Errorf("expected 0 after the missing-fields penalty, got %d", got)
	}
}

func TestScore_MostlyMissingFieldsPenalised(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Staff Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020"},
			{Position: "", Employer: "", StartDate: "Jan 2021"},
			{Position: "", Employer: "Some Clinic", StartDate: "Jan 2022"},
		},
	}
	got := Score(record, "")
	// +30 (one sane entry), missingPosOrEmployer=2, 2*2=4 > 3 -> -15 => 15
	if got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestScore_EducationWithoutInstitutionGetsPartialCredit(t *testing.T) {
	record := &schema.ParsedRecord{
		Education: []schema.Education{{Degree: "BSN"}},
	}
	got := Score(record, "")
	if got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}

func TestScore_SummaryCertificationsSkillsAddressAllContribute(t *testing.T) {
	longSummary := "Experienced staff nurse with a decade of clinical and administrative background."
	record := &schema.ParsedRecord{
		Summary:        longSummary,
		Certifications: []schema.Certification{{Type: "NCLEX-RN"}},
		Skills:         []string{"IV Therapy", "Wound Care", "Triage"},
		Address:        "Quezon City, Philippines",
	}
	got := Score(record, "")
	// +10 summary, +10 certifications, +10 skills, +5 address = 35
	if got != 35 {
		t.Errorf("expected 35, got %d", got)
	}
}

func TestScore_DescriptionPresentAddsTen(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Staff Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020", Description: "• Administered medications"},
		},
	}
	got := Score(record, "")
	// +30 sane, +10 description = 40
	if got != 40 {
		t.Errorf("expected 40, got %d", got)
	}
}

func TestScore_WorkKeywordsWithoutExperiencePenalised(t *testing.T) {
	record := &schema.ParsedRecord{}
	text := "I have worked as a staff nurse for several years."
	got := Score(record, text)
	if got != 0 {
		t.Errorf("expected 0 after clamping, got %d", got)
	}
}

func TestScore_ClinicalSectionWithoutClinicalPlacementPenalised(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Staff Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020", Type: schema.ExperienceEmployment},
		},
	}
	text := "Completed clinical rotation hours at a tertiary hospital."
	got := Score(record, text)
	// +30 sane experience, -15 clinical section with no clinical_placement entry = 15
	if got != 15 {
		t.Errorf("expected 15, got %d", got)
	}
}

func TestScore_ClinicalPlacementEntrySatisfiesClinicalSection(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Student Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020", Type: schema.ExperienceClinicalPlacement},
		},
	}
	text := "Completed clinical rotation hours at a tertiary hospital."
	got := Score(record, text)
	if got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
}

func TestScore_ClampsToHundred(t *testing.T) {
	record := &schema.ParsedRecord{
		Experience: []schema.Experience{
			{Position: "Staff Nurse", Employer: "St. Luke's Medical Center", StartDate: "Jan 2020", Description: "• Administered medications"},
		},
		Education: []schema.Education{
			{Degree: "BSN", Institution: "Saint Louis University"},
		},
		Summary:        "Experienced staff nurse with a decade of clinical and administrative background.",
		Certifications: []schema.Certification{{Type: "NCLEX-RN"}},
		Skills:         []string{"IV Therapy", "Wound Care", "Triage"},
		Address:        "Quezon City, Philippines",
	}
	got := Score(record, "")
	// 30+25+10+10+10+5+10 = 100, already at the ceiling.
	if got != 100 {
		t.Errorf("expected 100, got %d", got)
	}
}
