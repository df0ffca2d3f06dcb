// Package model defines the core domain models used throughout the application.
package model

// Provider is a single entry in the provider directory.
type Provider struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Specialty string       `json:"specialty"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	PCS       PCSSummary   `json:"pcs"`
	Drift     DriftSummary `json:"drift"`
}

// PCSSummary is the aggregate Provider Confidence Score for a provider.
// The band is computed by the backend and treated as opaque text.
type PCSSummary struct {
	Score float64 `json:"score"`
	Band  string  `json:"band"`
}

// PCSBreakdown maps a PCS component code (SRM, FR, ST, MB, DQ, RP, LH, HA)
// to its 0-100 sub-score.
type PCSBreakdown map[string]float64

// DriftSummary describes how far a provider's data has drifted from
// validated truth.
type DriftSummary struct {
	Bucket      string `json:"bucket"`
	Explanation string `json:"explanation"`
}

// Drift buckets as reported by the backend.
const (
	DriftHigh   = "High"
	DriftMedium = "Medium"
	DriftLow    = "Low"
)

// CandidateSource is one source/value pair considered for a field.
type CandidateSource struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// FieldValidation holds per-field validation output for a provider.
type FieldValidation struct {
	Confidence  float64           `json:"confidence"`
	Candidates  []CandidateSource `json:"candidates"`
	ChosenValue string            `json:"chosen_value"`
}

// ProviderDetail is the full detail record for a single provider.
type ProviderDetail struct {
	Provider   Provider                   `json:"provider"`
	Validation map[string]FieldValidation `json:"validation"`
	PCS        PCSBreakdown               `json:"pcs"`
	Drift      DriftSummary               `json:"drift"`
	Enrichment map[string]string          `json:"enrichment"`
}

// OCRRecord is the extracted text from a provider's scanned document.
type OCRRecord struct {
	Exists       bool    `json:"exists"`
	DocumentType string  `json:"document_type"`
	Confidence   float64 `json:"confidence"`
	Text         string  `json:"text"`
}

// QAEntry is one field-level decision in a provider's QA history.
type QAEntry struct {
	Field      string   `json:"field"`
	Confidence float64  `json:"confidence"`
	Sources    []string `json:"sources"`
	Timestamp  string   `json:"timestamp"`
}
