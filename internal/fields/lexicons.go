// Package fields implements the stateless, rule-based field extractors that
// run over raw résumé text and the section index: summary, address,
// graduation year, certifications, hospitals, skills, and salary.
package fields

import "strings"

// KnownFacilities is the curated set of Philippine and major US health
// systems used to canonicalise hospital mentions by set membership. This
// list is part of the extraction contract, not an implementation detail:
// regressions in it are regressions in behaviour.
var KnownFacilities = []string{
	// Metro Manila
	"St. Luke's Medical Center",
	"Makati Medical Center",
	"The Medical City",
	"Asian Hospital and Medical Center",
	"Philippine General Hospital",
	"Manila Doctors Hospital",
	"Cardinal Santos Medical Center",
	"Capitol Medical Center",
	"Chinese General Hospital",
	"Jose Reyes Memorial Medical Center",
	"National Kidney and Transplant Institute",
	"Philippine Heart Center",
	"Philippine Children's Medical Center",
	"East Avenue Medical Center",
	"Quezon City General Hospital",
	"Veterans Memorial Medical Center",
	"Rizal Medical Center",
	"Pasig City General Hospital",
	"Ospital ng Maynila Medical Center",
	"San Juan de Dios Hospital",
	"Medical Center Manila",
	"Manila Central University Hospital",
	"Our Lady of Lourdes Hospital",
	"Amang Rodriguez Memorial Medical Center",
	// Visayas
	"Chong Hua Hospital",
	"Cebu Doctors' University Hospital",
	"Perpetual Succour Hospital",
	"Vicente Sotto Memorial Medical Center",
	"Cebu Velez General Hospital",
	"Metro Cebu Hospital",
	"Iloilo Mission Hospital",
	"Western Visayas Medical Center",
	// Mindanao
	"Davao Doctors Hospital",
	"Southern Philippines Medical Center",
	"Davao Medical School Foundation Hospital",
	"Brokenshire Memorial Hospital",
	"Zamboanga City Medical Center",
	// Major US health systems
	"Mayo Clinic",
	"Cleveland Clinic",
	"Johns Hopkins Hospital",
	"Massachusetts General Hospital",
	"Cedars-Sinai Medical Center",
	"NewYork-Presbyterian Hospital",
	"Mount Sinai Hospital",
	"Kaiser Permanente",
	"HCA Healthcare",
	"Providence Health",
	"Ascension Health",
	"Banner Health",
	"NYU Langone Health",
	"UCLA Medical Center",
	"UCSF Medical Center",
}

// knownFacilitiesLower mirrors KnownFacilities for case-insensitive lookup.
var knownFacilitiesLower = buildLowerSet(KnownFacilities)

func buildLowerSet(entries []string) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[strings.ToLower(e)] = e
	}
	return m
}

// MatchKnownFacility returns the canonical name and true when line contains
// (case-insensitively) one of KnownFacilities.
func MatchKnownFacility(line string) (string, bool) {
	lower := strings.ToLower(line)
	for lowerName, canonical := range knownFacilitiesLower {
		if strings.Contains(lower, lowerName) {
			return canonical, true
		}
	}
	return "", false
}

// NursingSkills is the curated set of nursing/clinical skill terms used as
// the first-pass membership test. Part of the extraction contract.
var NursingSkills = []string{
	"IV Therapy", "Wound Care", "Medication Administration", "Patient Assessment",
	"Vital Signs Monitoring", "Triage", "Phlebotomy", "Catheterization",
	"Wound Dressing", "Infection Control", "CPR", "Basic Life Support",
	"Advanced Cardiac Life Support", "Pediatric Advanced Life Support",
	"Case Management", "Discharge Planning", "Patient Education",
	"Electronic Health Records", "EHR Documentation", "Charting",
	"Ventilator Management", "Tracheostomy Care", "NG Tube Insertion",
	"Foley Catheter Insertion", "Blood Transfusion", "Chemotherapy Administration",
	"Pain Management", "Post-Operative Care", "Pre-Operative Care",
	"Critical Care Nursing", "Emergency Nursing", "Telemetry Monitoring",
	"Cardiac Monitoring", "Dialysis", "Hemodialysis", "Peritoneal Dialysis",
	"Ostomy Care", "Diabetic Management", "Insulin Administration",
	"Neonatal Care", "Labor and Delivery", "Postpartum Care",
	"Geriatric Care", "Palliative Care", "Hospice Care",
	"Wound Vac Therapy", "Splinting", "Suturing", "First Aid",
	"Patient Advocacy", "Health Assessment", "Physical Assessment",
	"Care Planning", "Nursing Diagnosis", "Medication Reconciliation",
	"Blood Glucose Monitoring", "Arterial Blood Gas", "EKG Interpretation",
	"Intubation Assistance", "Restraint Application", "Isolation Precautions",
	"Sterile Technique", "Aseptic Technique", "Patient Transfer",
	"Lifting and Mobility Assistance", "Fall Prevention", "Bedside Manner",
	"Family Education", "Clinical Documentation", "Home Health Nursing",
	"School Nursing", "Occupational Health Nursing", "Mental Health Nursing",
	"Psychiatric Nursing", "Rehabilitation Nursing", "Operating Room Nursing",
	"Scrub Nursing",
}

var nursingSkillsLower = buildLowerSet(NursingSkills)

// MatchNursingSkill returns the canonical skill name and true when line
// contains (case-insensitively) one of NursingSkills.
func MatchNursingSkill(line string) (string, bool) {
	lower := strings.ToLower(line)
	for lowerName, canonical := range nursingSkillsLower {
		if strings.Contains(lower, lowerName) {
			return canonical, true
		}
	}
	return "", false
}

// technicalSkillTerms is the small global-regex technical skill vocabulary
// (programming languages, common clinical software) used as the third-pass
// skill match. These are matched without an anchoring section.
var technicalSkillTerms = []string{
	"Microsoft Office", "Excel", "PowerPoint", "Word",
	"Epic", "Cerner", "Meditech", "Allscripts", "EPIC Systems",
	"SAP", "SQL", "Python", "R programming",
}

var technicalSkillTermsLower = buildLowerSet(technicalSkillTerms)

// MatchTechnicalSkillTerm returns the canonical form of every term that
// appears (case-insensitively, as a substring) anywhere in text. The order
// of the returned terms is not defined.
func MatchTechnicalSkillTerm(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for lowerName, canonical := range technicalSkillTermsLower {
		if strings.Contains(lower, lowerName) {
			found = append(found, canonical)
		}
	}
	return found
}

// PositionKeywords are occupational nouns that mark a line as a plausible
// job title during experience-candidate scoring. Part of the extraction
// contract.
var PositionKeywords = []string{
	"Manager", "Director", "Engineer", "Nurse", "RN", "LPN", "CNA",
	"Staff", "Clerk", "Supervisor", "Lead", "Coordinator", "Administrator",
	"Specialist", "Technician", "Technologist", "Assistant", "Associate",
	"Officer", "Analyst", "Consultant", "Practitioner", "Therapist",
	"Educator", "Instructor", "Charge Nurse", "Head Nurse", "Midwife",
	"Caregiver", "Attendant", "Aide", "Representative",
}

// companyShapeKeywords mark a candidate line as an employer/company rather
// than a position, for the negative scoring terms in position ranking and
// the positive terms in employer ranking.
var companyShapeKeywords = []string{
	"Inc", "Inc.", "LLC", "LLP", "Corp", "Corp.", "Corporation",
	"Hospital", "Medical Center", "Health Center", "Clinic", "Healthcare",
	"Health System", "Foundation", "Institute", "Company", "Co.",
	"Ltd", "Ltd.", "Group", "Enterprises",
}

// IsPositionKeyword reports whether line contains one of PositionKeywords
// (case-insensitive, whole-word-ish: substring is sufficient per the
// source's own matching granularity).
func IsPositionKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range PositionKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// IsCompanyShape reports whether line carries a company/facility suffix or
// keyword, used as a negative signal during position-candidate scoring and
// a positive signal during employer-candidate scoring.
func IsCompanyShape(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range companyShapeKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// regionalKeywords mark a candidate address line as plausible without
// strictly matching the "City, Region, Country" shape.
var regionalKeywords = []string{
	"Manila", "Quezon City", "Makati", "Cebu", "Davao", "Pasig", "Taguig",
	"Caloocan", "Baguio", "Iloilo", "Bacolod", "Cagayan de Oro", "Zamboanga",
	"Philippines", "Metro Manila", "NCR",
	"USA", "United States", "California", "Texas", "New York", "Florida",
	"Illinois", "Georgia", "Nevada", "Arizona", "Washington",
}

// HasRegionalKeyword reports whether line mentions a known PH/US region.
func HasRegionalKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range regionalKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// educationKeywordTerms back the graduation-year scan's anchor detection.
var educationKeywordTerms = []string{
	"graduat", "bachelor", "master", "doctorate", "ph.d", "phd", "degree",
	"diploma", "university", "college", "b.s", "m.s", "mba", "b.a", "m.a",
}

// HasEducationKeyword reports whether line mentions an education-related
// term, case-insensitively.
func HasEducationKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range educationKeywordTerms {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
