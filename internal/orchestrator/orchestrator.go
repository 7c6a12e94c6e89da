// Package orchestrator runs the rule-based extractors, scores the result,
// falls back to the LLM adapter when confidence is low, and applies the
// post-processors that repair the chosen record before it reaches the
// persistence layer.
package orchestrator

import (
	"context"

	"github.com/learnbot/resume-pipeline/internal/education"
	"github.com/learnbot/resume-pipeline/internal/experience"
	"github.com/learnbot/resume-pipeline/internal/fields"
	"github.com/learnbot/resume-pipeline/internal/llmextract"
	"github.com/learnbot/resume-pipeline/internal/schema"
	"github.com/learnbot/resume-pipeline/internal/scorer"
	"github.com/learnbot/resume-pipeline/internal/section"
	"github.com/learnbot/resume-pipeline/internal/tenure"
)

// fallbackThreshold is the rule-based confidence score below which the
// orchestrator consults the LLM adapter.
const fallbackThreshold = 55

// Orchestrator wires the rule-based extractors to the optional LLM fallback.
type Orchestrator struct {
	llm *llmextract.Adapter
}

// New builds an Orchestrator. A nil llm disables the fallback path — the
// rule-based record is always used.
func New(llm *llmextract.Adapter) *Orchestrator {
	return &Orchestrator{llm: llm}
}

// RuleBasedExtract runs every field/experience/education/tenure extractor
// over already-decoded text and assembles a ParsedRecord.
func RuleBasedExtract(text string) *schema.ParsedRecord {
	idx := section.New(text)

	record := &schema.ParsedRecord{
		Summary:        fields.Summary(text),
		Address:        fields.Address(text),
		GraduationYear: fields.GraduationYear(text),
		Salary:         fields.Salary(text),
		Hospitals:      fields.Hospitals(text),
		Skills:         fields.Skills(text, idx),
		Certifications: fields.Certifications(text),
		Experience:     experience.Extract(text, idx),
		Education:      education.Extract(text, idx),
	}
	record.YearsOfExperience = tenure.YearsOfExperience(record.Experience)
	return record
}

// Run executes the full hybrid algorithm: rule-based extraction, scoring,
// an optional LLM fallback when the rule-based score is low, and the
// post-processing passes on whichever record wins.
func (o *Orchestrator) Run(ctx context.Context, text string) *schema.ParsedRecord {
	ruleBased := RuleBasedExtract(text)
	ruleScore := scorer.Score(ruleBased, text)

	if ruleScore >= fallbackThreshold || o == nil || o.llm == nil {
		return postProcess(ruleBased, text)
	}

	llmRecord := o.llm.Extract(ctx, text)
	llmScore := scorer.Score(llmRecord, "")
	if llmScore > ruleScore {
		return postProcess(llmRecord, text)
	}
	return postProcess(ruleBased, text)
}
