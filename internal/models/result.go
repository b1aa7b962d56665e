package models

type AnalyzeResponse struct {
	ID                  string           `json:"id"`
	CompatibilityScore  int              `json:"compatibility_score"`
	Strengths           []string         `json:"strengths,omitempty"`
	AreasForImprovement []string         `json:"areas_for_improvement,omitempty"`
	ExtractionMethod    ExtractionMethod `json:"extraction_method"`
}

type JobListResponse struct {
	Roles      []string `json:"roles"`
	CustomRole string   `json:"custom_role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
