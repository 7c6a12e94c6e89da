// Package taxonomy provides a standardized skill taxonomy for nurse résumés.
// It supports:
//
//   - A hierarchical skill ontology (domain → category → skill)
//   - Synonym/alias grouping (e.g. "BLS", "Basic Life Support")
//   - Skill prerequisite relationships
//   - NLP-based extraction from free-form résumé text
//   - Fuzzy matching for skill normalization
//   - Mapping of raw extracted skill strings to canonical taxonomy entries
package taxonomy

// ─────────────────────────────────────────────────────────────────────────────
// Taxonomy node types
// ─────────────────────────────────────────────────────────────────────────────

// Domain is the top-level grouping (e.g. "Clinical", "Leadership").
type Domain string

const (
	DomainClinical          Domain = "clinical"
	DomainSpecialtyKnowledge Domain = "specialty_knowledge"
	DomainLeadership        Domain = "leadership"
	DomainCommunication     Domain = "communication"
)

// Category is the second-level grouping within a domain
// (e.g. "Life Support", "Medication Management").
type Category string

const (
	// Clinical categories
	CategoryLifeSupport     Category = "life_support"
	CategoryClinicalSkill   Category = "clinical_skill"
	CategoryMedicationMgmt  Category = "medication_management"
	CategorySpecialtyCare   Category = "specialty_care"
	CategoryWorkSetting     Category = "work_setting"
	CategoryPatientCare     Category = "patient_care"

	// Specialty knowledge categories
	CategoryDocumentation Category = "documentation"

	// Soft skill categories
	CategoryLeadership         Category = "leadership"
	CategoryCollaboration      Category = "collaboration"
	CategoryCommunicationSkill Category = "communication_skill"
	CategoryProblemSolving     Category = "problem_solving"
)

// SkillNode represents a single skill entry in the taxonomy.
type SkillNode struct {
	// ID is the canonical identifier (lowercase, hyphenated).
	ID string `json:"id"`

	// CanonicalName is the preferred display name.
	CanonicalName string `json:"canonical_name"`

	// Domain is the top-level grouping.
	Domain Domain `json:"domain"`

	// Category is the second-level grouping.
	Category Category `json:"category"`

	// Aliases lists all known synonyms and alternate spellings.
	Aliases []string `json:"aliases,omitempty"`

	// Prerequisites lists IDs of skills that are typically learned before this one.
	Prerequisites []string `json:"prerequisites,omitempty"`

	// RelatedSkills lists IDs of skills that are commonly used alongside this one.
	RelatedSkills []string `json:"related_skills,omitempty"`

	// Description is a short human-readable description.
	Description string `json:"description,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction types
// ─────────────────────────────────────────────────────────────────────────────

// ExtractedSkill is a skill found in a piece of text, with its taxonomy mapping.
type ExtractedSkill struct {
	// RawText is the exact text span that was matched.
	RawText string `json:"raw_text"`

	// CanonicalID is the taxonomy node ID this skill maps to (empty if unknown).
	CanonicalID string `json:"canonical_id,omitempty"`

	// CanonicalName is the preferred display name from the taxonomy.
	CanonicalName string `json:"canonical_name,omitempty"`

	// Domain is the top-level grouping.
	Domain Domain `json:"domain,omitempty"`

	// Category is the second-level grouping.
	Category Category `json:"category,omitempty"`

	// Confidence is the extraction confidence [0.0, 1.0].
	Confidence float64 `json:"confidence"`

	// MatchType describes how the skill was matched:
	// "exact", "alias", "fuzzy", "unknown".
	MatchType string `json:"match_type"`
}

// ExtractionResult holds all skills extracted from a piece of text.
type ExtractionResult struct {
	// Skills is the deduplicated list of extracted skills.
	Skills []ExtractedSkill `json:"skills"`

	// TechnicalSkills is the subset of technical skills.
	TechnicalSkills []ExtractedSkill `json:"technical_skills"`

	// SoftSkills is the subset of soft skills.
	SoftSkills []ExtractedSkill `json:"soft_skills"`

	// DomainSkills is the subset of domain knowledge skills.
	DomainSkills []ExtractedSkill `json:"domain_skills"`

	// UnknownSkills is the subset of skills not found in the taxonomy.
	UnknownSkills []ExtractedSkill `json:"unknown_skills,omitempty"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Normalization types
// ─────────────────────────────────────────────────────────────────────────────

// NormalizeResult is the output of normalizing a raw skill string.
type NormalizeResult struct {
	// Input is the original raw skill string.
	Input string `json:"input"`

	// CanonicalID is the matched taxonomy node ID (empty if no match).
	CanonicalID string `json:"canonical_id,omitempty"`

	// CanonicalName is the preferred display name.
	CanonicalName string `json:"canonical_name,omitempty"`

	// Domain is the top-level grouping.
	Domain Domain `json:"domain,omitempty"`

	// Category is the second-level grouping.
	Category Category `json:"category,omitempty"`

	// MatchType is how the match was found: "exact", "alias", "fuzzy", "none".
	MatchType string `json:"match_type"`

	// FuzzyScore is the similarity score [0.0, 1.0] for fuzzy matches.
	FuzzyScore float64 `json:"fuzzy_score,omitempty"`
}

