package models

// SourceKind says where the resume bytes came from.
type SourceKind string

const (
	SourceUpload    SourceKind = "upload"
	SourceDriveLink SourceKind = "drive-link"
)

// ExtractionMethod records how text was pulled out of the document.
type ExtractionMethod string

const (
	MethodDirect ExtractionMethod = "direct"
	MethodOCR    ExtractionMethod = "ocr"
)

// ExtractedText is the plain text derived from a resume document. Text is
// never empty; an empty extraction is reported as a Failure instead.
type ExtractedText struct {
	Text   string
	Method ExtractionMethod
}

// AnalysisResult is the structured outcome of a compatibility analysis.
// CompatibilityScore is always present on success; the feedback lists may be
// empty when the model omitted them (a degraded but valid result).
type AnalysisResult struct {
	CompatibilityScore  int      `json:"compatibilityScore"`
	Strengths           []string `json:"strengths,omitempty"`
	AreasForImprovement []string `json:"areasForImprovement,omitempty"`
}
