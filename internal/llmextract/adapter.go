package llmextract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/learnbot/resume-pipeline/internal/schema"
)

// Adapter is the pipeline's LlmExtractor: a best-effort fallback that never
// itself returns an error to the orchestrator — a network or parse fault
// degrades to an empty record, since the orchestrator always has the
// rule-based record to fall back on.
type Adapter struct {
	client *Client
}

// NewAdapter wraps a Client as an Adapter.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

// wireRecord mirrors the stable LLM record JSON shape. The year fields are
// pointers so a JSON null decodes as absent; a value of the wrong JSON type
// fails json.Unmarshal, and Extract then returns an empty record.
type wireRecord struct {
	Summary           string              `json:"summary"`
	Address           string              `json:"address"`
	GraduationYear    *int                `json:"graduation_year"`
	YearsOfExperience int                 `json:"years_of_experience"`
	Salary            string              `json:"salary"`
	Hospitals         []string            `json:"hospitals"`
	Skills            []string            `json:"skills"`
	Certifications    []wireCertification `json:"certifications"`
	Experience        []wireExperience    `json:"experience"`
	Education         []wireEducation     `json:"education"`
}

type wireCertification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Score  string `json:"score"`
}

type wireExperience struct {
	Employer    string `json:"employer"`
	Position    string `json:"position"`
	Type        string `json:"type"`
	Department  string `json:"department"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type wireEducation struct {
	Institution         string `json:"institution"`
	Degree              string `json:"degree"`
	FieldOfStudy        string `json:"field_of_study"`
	Year                *int   `json:"year"`
	InstitutionLocation string `json:"institution_location"`
	StartDate           string `json:"start_date"`
	EndDate             string `json:"end_date"`
	Status              string `json:"status"`
}

// Extract calls the model with the stable prompt and translates its JSON
// reply into a schema.ParsedRecord. Any fault — timeout, transport error,
// non-200 status, or invalid JSON — yields an empty record rather than an
// error, per the LlmExtractor contract.
func (a *Adapter) Extract(ctx context.Context, text string) *schema.ParsedRecord {
	if a == nil || a.client == nil || strings.TrimSpace(text) == "" {
		return &schema.ParsedRecord{}
	}

	raw, err := a.client.complete(ctx, buildPrompt(text))
	if err != nil {
		return &schema.ParsedRecord{}
	}

	cleaned := stripMarkdownFences(raw)
	var wire wireRecord
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return &schema.ParsedRecord{}
	}

	return translate(wire)
}

// translate normalises the wire shape into schema.ParsedRecord: empty
// optional strings stay empty, skills/hospitals are filtered to non-empty
// entries, and experience.type defaults to employment when absent or
// unrecognised.
func translate(wire wireRecord) *schema.ParsedRecord {
	record := &schema.ParsedRecord{
		Summary:           strings.TrimSpace(wire.Summary),
		Address:           strings.TrimSpace(wire.Address),
		GraduationYear:    wire.GraduationYear,
		YearsOfExperience: wire.YearsOfExperience,
		Salary:            strings.TrimSpace(wire.Salary),
	}

	for _, h := range wire.Hospitals {
		if h = strings.TrimSpace(h); h != "" {
			record.Hospitals = append(record.Hospitals, h)
		}
	}
	for _, s := range wire.Skills {
		if s = strings.TrimSpace(s); s != "" {
			record.Skills = append(record.Skills, s)
		}
	}

	for _, c := range wire.Certifications {
		if strings.TrimSpace(c.Type) == "" {
			continue
		}
		record.Certifications = append(record.Certifications, schema.Certification{
			Type:   strings.TrimSpace(c.Type),
			Number: strings.TrimSpace(c.Number),
			Score:  strings.TrimSpace(c.Score),
		})
	}

	for _, e := range wire.Experience {
		expType := schema.ExperienceType(strings.TrimSpace(e.Type))
		if !schema.ValidExperienceTypes[expType] {
			expType = schema.ExperienceEmployment
		}
		record.Experience = append(record.Experience, schema.Experience{
			Employer:    strings.TrimSpace(e.Employer),
			Position:    strings.TrimSpace(e.Position),
			Type:        expType,
			Department:  strings.TrimSpace(e.Department),
			StartDate:   strings.TrimSpace(e.StartDate),
			EndDate:     strings.TrimSpace(e.EndDate),
			Description: strings.TrimSpace(e.Description),
			Location:    strings.TrimSpace(e.Location),
		})
	}

	for _, e := range wire.Education {
		record.Education = append(record.Education, schema.Education{
			Institution:         strings.TrimSpace(e.Institution),
			Degree:              strings.TrimSpace(e.Degree),
			FieldOfStudy:        strings.TrimSpace(e.FieldOfStudy),
			Year:                e.Year,
			InstitutionLocation: strings.TrimSpace(e.InstitutionLocation),
			StartDate:           strings.TrimSpace(e.StartDate),
			EndDate:             strings.TrimSpace(e.EndDate),
			Status:              strings.TrimSpace(e.Status),
		})
	}

	return record
}
