package handlers

import (
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrtek/ats-checker/internal/jobs"
	"hrtek/ats-checker/internal/models"
	"hrtek/ats-checker/internal/services"
)

type AnalyzeHandler struct {
	drive     services.DriveService
	extractor services.ExtractorService
	analyzer  services.AnalyzerService
}

func NewAnalyzeHandler(
	drive services.DriveService,
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		drive:     drive,
		extractor: extractor,
		analyzer:  analyzer,
	}
}

// HandleAnalyze handles POST /analyze. The request carries a resume (multipart
// "resume" file or a "drive_link" form value) and a job description ("job"
// catalog name, or "job_description" free text for the custom role). The whole
// pipeline runs synchronously within this request.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	jobDescription, err := resolveJobDescription(c.FormValue("job"), c.FormValue("job_description"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}

	document, source, err := h.resolveDocument(c)
	if err != nil {
		return failureResponse(c, err)
	}

	analysisID := uuid.New()
	log.Printf("🔎 Analysis %s: %d bytes from %s\n", analysisID, len(document), source)

	extracted, err := h.extractor.ExtractText(document)
	if err != nil {
		return failureResponse(c, err)
	}

	result, err := h.analyzer.Analyze(c.Context(), extracted.Text, jobDescription)
	if err != nil {
		return failureResponse(c, err)
	}

	log.Printf("✅ Analysis %s completed: score %d\n", analysisID, result.CompatibilityScore)

	return c.JSON(models.AnalyzeResponse{
		ID:                  analysisID.String(),
		CompatibilityScore:  result.CompatibilityScore,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		ExtractionMethod:    extracted.Method,
	})
}

func resolveJobDescription(roleName, customText string) (string, error) {
	if roleName == "" || jobs.IsCustom(roleName) {
		if customText == "" {
			return "", fmt.Errorf("job_description is required for the custom role")
		}
		return customText, nil
	}

	description, ok := jobs.Description(roleName)
	if !ok {
		return "", fmt.Errorf("unknown job role: %s", roleName)
	}
	return description, nil
}

func (h *AnalyzeHandler) resolveDocument(c *fiber.Ctx) ([]byte, models.SourceKind, error) {
	if file, err := c.FormFile("resume"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
		}

		return data, models.SourceUpload, nil
	}

	driveLink := c.FormValue("drive_link")
	if driveLink == "" {
		return nil, "", models.NewFailure(
			models.FailNotAValidPDF,
			"provide a resume file or a drive_link",
		)
	}

	fileID, err := h.drive.ExtractFileID(driveLink)
	if err != nil {
		return nil, "", err
	}

	content, err := h.drive.DownloadPDF(c.Context(), fileID)
	if err != nil {
		return nil, "", err
	}

	return content, models.SourceDriveLink, nil
}

// failureResponse maps the failure taxonomy to HTTP statuses. Input problems
// surface their own message; provider-side detail stays out of policy errors.
func failureResponse(c *fiber.Ctx, err error) error {
	failure, ok := models.AsFailure(err)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: "analysis failed unexpectedly",
		})
	}

	status := fiber.StatusInternalServerError
	message := failure.Message

	switch failure.Kind {
	case models.FailInvalidLinkFormat, models.FailLinkNotPublic,
		models.FailNotAValidPDF, models.FailCorruptPDF:
		status = fiber.StatusBadRequest
	case models.FailEmptyDocument:
		status = fiber.StatusUnprocessableEntity
		message = "could not extract any text from the resume; it may be a scanned image with OCR unavailable"
	case models.FailDownloadFailed:
		status = fiber.StatusBadGateway
	case models.FailMissingCredential:
		status = fiber.StatusInternalServerError
	case models.FailRateLimited:
		status = fiber.StatusServiceUnavailable
		message = "high traffic right now; please wait a minute or two and try again"
	case models.FailUnparseableResponse:
		status = fiber.StatusBadGateway
		message = "the analysis response was malformed; please retry"
	case models.FailConnectionError:
		status = fiber.StatusGatewayTimeout
		message = "could not reach the analysis service; please retry"
	case models.FailBadRequest, models.FailAuthenticationFailed,
		models.FailModelNotFound, models.FailNoUsableContent:
		status = fiber.StatusBadGateway
		message = "the resume could not be analyzed"
	}

	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Kind:  string(failure.Kind),
	})
}
