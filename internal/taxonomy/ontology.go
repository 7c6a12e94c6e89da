// Package taxonomy – ontology.go defines the built-in skill taxonomy database.
package taxonomy

// builtinSkills is the canonical skill ontology for nurse résumés.
// Each entry defines a skill node with its domain, category, aliases,
// prerequisites, and related skills.
//
// Aliases are stored in lowercase for case-insensitive matching.
var builtinSkills = []SkillNode{
	// ─────────────────────────────────────────────────────────────────────────
	// Life support certifications
	// ─────────────────────────────────────────────────────────────────────────
	{
		ID: "basic-life-support", CanonicalName: "Basic Life Support",
		Domain: DomainClinical, Category: CategoryLifeSupport,
		Aliases:     []string{"bls", "basic life support cert"},
		Description: "Core CPR and airway management certification.",
	},
	{
		ID: "advanced-cardiac-life-support", CanonicalName: "Advanced Cardiac Life Support",
		Domain: DomainClinical, Category: CategoryLifeSupport,
		Aliases:       []string{"acls"},
		Prerequisites: []string{"basic-life-support"},
		Description:   "Algorithm-driven management of cardiac arrest and peri-arrest emergencies.",
	},
	{
		ID: "pediatric-advanced-life-support", CanonicalName: "Pediatric Advanced Life Support",
		Domain: DomainClinical, Category: CategoryLifeSupport,
		Aliases:       []string{"pals"},
		Prerequisites: []string{"basic-life-support"},
		Description:   "Resuscitation and stabilization of critically ill infants and children.",
	},
	{
		ID: "cpr", CanonicalName: "CPR",
		Domain: DomainClinical, Category: CategoryLifeSupport,
		Aliases:     []string{"cardiopulmonary resuscitation"},
		Description: "Chest compressions and rescue breathing for cardiac or respiratory arrest.",
	},
	{
		ID: "first-aid", CanonicalName: "First Aid",
		Domain: DomainClinical, Category: CategoryLifeSupport,
	},

	// ─────────────────────────────────────────────────────────────────────────
	// Core clinical skills
	// ─────────────────────────────────────────────────────────────────────────
	{
		ID: "iv-therapy", CanonicalName: "IV Therapy",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases:       []string{"iv", "intravenous therapy"},
		RelatedSkills: []string{"phlebotomy"},
	},
	{
		ID: "wound-care", CanonicalName: "Wound Care",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"wound dressing"},
	},
	{
		ID: "wound-vac-therapy", CanonicalName: "Wound Vac Therapy",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases:       []string{"wound vac", "negative pressure wound therapy"},
		Prerequisites: []string{"wound-care"},
	},
	{
		ID: "medication-administration", CanonicalName: "Medication Administration",
		Domain: DomainClinical, Category: CategoryMedicationMgmt,
		Aliases: []string{"med administration", "meds admin"},
	},
	{
		ID: "medication-reconciliation", CanonicalName: "Medication Reconciliation",
		Domain: DomainClinical, Category: CategoryMedicationMgmt,
		Prerequisites: []string{"medication-administration"},
	},
	{
		ID: "insulin-administration", CanonicalName: "Insulin Administration",
		Domain: DomainClinical, Category: CategoryMedicationMgmt,
		Prerequisites: []string{"medication-administration"},
	},
	{
		ID: "chemotherapy-administration", CanonicalName: "Chemotherapy Administration",
		Domain: DomainClinical, Category: CategoryMedicationMgmt,
		Prerequisites: []string{"medication-administration"},
	},
	{
		ID: "patient-assessment", CanonicalName: "Patient Assessment",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"health assessment", "physical assessment"},
	},
	{
		ID: "vital-signs-monitoring", CanonicalName: "Vital Signs Monitoring",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"vitals monitoring"},
	},
	{
		ID: "triage", CanonicalName: "Triage",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
	},
	{
		ID: "phlebotomy", CanonicalName: "Phlebotomy",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
	},
	{
		ID: "catheterization", CanonicalName: "Catheterization",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"foley catheter insertion"},
	},
	{
		ID: "infection-control", CanonicalName: "Infection Control",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"isolation precautions"},
	},
	{
		ID: "aseptic-technique", CanonicalName: "Aseptic Technique",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"sterile technique"},
	},
	{
		ID: "ventilator-management", CanonicalName: "Ventilator Management",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
	},
	{
		ID: "tracheostomy-care", CanonicalName: "Tracheostomy Care",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
	},
	{
		ID: "ng-tube-insertion", CanonicalName: "NG Tube Insertion",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"ng tube", "nasogastric tube insertion"},
	},
	{
		ID: "blood-transfusion", CanonicalName: "Blood Transfusion",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
	},
	{
		ID: "pain-management", CanonicalName: "Pain Management",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
	},
	{
		ID: "post-operative-care", CanonicalName: "Post-Operative Care",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
		Aliases: []string{"post-op care", "post operative care", "postoperative care"},
	},
	{
		ID: "pre-operative-care", CanonicalName: "Pre-Operative Care",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
		Aliases: []string{"pre-op care", "preoperative care"},
	},
	{
		ID: "critical-care-nursing", CanonicalName: "Critical Care Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Aliases: []string{"icu nursing", "icu"},
	},
	{
		ID: "emergency-nursing", CanonicalName: "Emergency Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Aliases: []string{"er nursing", "ed nursing"},
	},
	{
		ID: "telemetry-monitoring", CanonicalName: "Telemetry Monitoring",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"cardiac monitoring"},
	},
	{
		ID: "dialysis", CanonicalName: "Dialysis",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
		Aliases: []string{"hemodialysis", "peritoneal dialysis"},
	},
	{
		ID: "ostomy-care", CanonicalName: "Ostomy Care",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
	},
	{
		ID: "diabetic-management", CanonicalName: "Diabetic Management",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
		Aliases: []string{"blood glucose monitoring"},
	},
	{
		ID: "neonatal-care", CanonicalName: "Neonatal Care",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},
	{
		ID: "labor-and-delivery", CanonicalName: "Labor and Delivery",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Aliases: []string{"l&d nursing"},
	},
	{
		ID: "postpartum-care", CanonicalName: "Postpartum Care",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Prerequisites: []string{"labor-and-delivery"},
	},
	{
		ID: "geriatric-care", CanonicalName: "Geriatric Care",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},
	{
		ID: "palliative-care", CanonicalName: "Palliative Care",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
		Aliases: []string{"hospice care"},
	},
	{
		ID: "splinting-and-suturing", CanonicalName: "Splinting and Suturing",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"splinting", "suturing"},
	},
	{
		ID: "arterial-blood-gas", CanonicalName: "Arterial Blood Gas",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"abg"},
	},
	{
		ID: "ekg-interpretation", CanonicalName: "EKG Interpretation",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
		Aliases: []string{"ekg", "ecg interpretation"},
	},
	{
		ID: "intubation-assistance", CanonicalName: "Intubation Assistance",
		Domain: DomainClinical, Category: CategorySpecialtyCare,
	},
	{
		ID: "restraint-application", CanonicalName: "Restraint Application",
		Domain: DomainClinical, Category: CategoryClinicalSkill,
	},
	{
		ID: "patient-transfer", CanonicalName: "Patient Transfer",
		Domain: DomainClinical, Category: CategoryPatientCare,
		Aliases: []string{"lifting and mobility assistance"},
	},
	{
		ID: "fall-prevention", CanonicalName: "Fall Prevention",
		Domain: DomainClinical, Category: CategoryPatientCare,
	},
	{
		ID: "operating-room-nursing", CanonicalName: "Operating Room Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Aliases: []string{"or nursing", "scrub nursing"},
	},
	{
		ID: "home-health-nursing", CanonicalName: "Home Health Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},
	{
		ID: "school-nursing", CanonicalName: "School Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},
	{
		ID: "occupational-health-nursing", CanonicalName: "Occupational Health Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},
	{
		ID: "mental-health-nursing", CanonicalName: "Mental Health Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
		Aliases: []string{"psychiatric nursing"},
	},
	{
		ID: "rehabilitation-nursing", CanonicalName: "Rehabilitation Nursing",
		Domain: DomainClinical, Category: CategoryWorkSetting,
	},

	// ─────────────────────────────────────────────────────────────────────────
	// Documentation and case management
	// ─────────────────────────────────────────────────────────────────────────
	{
		ID: "electronic-health-records", CanonicalName: "Electronic Health Records",
		Domain: DomainSpecialtyKnowledge, Category: CategoryDocumentation,
		Aliases: []string{"ehr", "ehr documentation", "emr"},
	},
	{
		ID: "clinical-documentation", CanonicalName: "Clinical Documentation",
		Domain: DomainSpecialtyKnowledge, Category: CategoryDocumentation,
		Aliases: []string{"charting"},
	},
	{
		ID: "care-planning", CanonicalName: "Care Planning",
		Domain: DomainSpecialtyKnowledge, Category: CategoryDocumentation,
		Aliases: []string{"nursing diagnosis"},
	},
	{
		ID: "discharge-planning", CanonicalName: "Discharge Planning",
		Domain: DomainSpecialtyKnowledge, Category: CategoryDocumentation,
	},
	{
		ID: "case-management", CanonicalName: "Case Management",
		Domain: DomainSpecialtyKnowledge, Category: CategoryDocumentation,
	},

	// ─────────────────────────────────────────────────────────────────────────
	// Soft / interpersonal skills
	// ─────────────────────────────────────────────────────────────────────────
	{
		ID: "leadership", CanonicalName: "Leadership",
		Domain: DomainLeadership, Category: CategoryLeadership,
	},
	{
		ID: "collaboration", CanonicalName: "Collaboration",
		Domain: DomainLeadership, Category: CategoryCollaboration,
		Aliases: []string{"teamwork", "team player"},
	},
	{
		ID: "communication", CanonicalName: "Communication",
		Domain: DomainCommunication, Category: CategoryCommunicationSkill,
		Aliases: []string{"communication skills"},
	},
	{
		ID: "problem-solving", CanonicalName: "Problem Solving",
		Domain: DomainCommunication, Category: CategoryProblemSolving,
	},
	{
		ID: "patient-advocacy", CanonicalName: "Patient Advocacy",
		Domain: DomainCommunication, Category: CategoryCommunicationSkill,
	},
	{
		ID: "patient-education", CanonicalName: "Patient Education",
		Domain: DomainCommunication, Category: CategoryCommunicationSkill,
		Aliases: []string{"family education"},
	},
	{
		ID: "bedside-manner", CanonicalName: "Bedside Manner",
		Domain: DomainCommunication, Category: CategoryCommunicationSkill,
	},
}
