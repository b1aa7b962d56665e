package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"

	"hrtek/ats-checker/internal/config"
	"hrtek/ats-checker/internal/models"
)

// GeminiService is the transport to the generation endpoint. Errors it
// returns are always *models.Failure so the analyzer can decide between
// retrying, advancing to the next model, and giving up.
type GeminiService interface {
	GenerateJSON(ctx context.Context, model string, prompt string) (string, error)
}

type geminiService struct {
	client           *genai.Client
	temperature      float32
	maxOutputTokens  int32
	permissiveSafety bool
}

func NewGeminiService(apiKey string, cfg config.AnalyzerConfig) (GeminiService, error) {
	if apiKey == "" {
		return nil, models.NewFailure(
			models.FailMissingCredential,
			"GEMINI_API_KEY not set; configure it in the environment or a .env file",
		)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:           client,
		temperature:      cfg.Temperature,
		maxOutputTokens:  cfg.MaxOutputTokens,
		permissiveSafety: cfg.PermissiveSafety,
	}, nil
}

// GenerateJSON implements GeminiService.
func (g *geminiService) GenerateJSON(ctx context.Context, model string, prompt string) (string, error) {
	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  g.maxOutputTokens,
		ResponseMIMEType: "application/json",
	}

	if g.permissiveSafety {
		genConfig.SafetySettings = permissiveSafetySettings()
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", classifyGenerateError(err)
	}

	if resp == nil {
		return "", models.NewFailure(models.FailNoUsableContent, "no response generated")
	}

	text := resp.Text()
	if text == "" {
		// Content-safety blocks and empty candidate lists land here.
		return "", models.NewFailure(models.FailNoUsableContent, "response carried no usable candidate content")
	}

	return text, nil
}

func classifyGenerateError(err error) *models.Failure {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		kind := models.FailConnectionError
		message := "generation request failed"

		switch apiErr.Code {
		case http.StatusTooManyRequests:
			kind = models.FailRateLimited
			message = "rate limited by the generation endpoint"
		case http.StatusBadRequest:
			kind = models.FailBadRequest
			message = "generation endpoint rejected the request"
		case http.StatusUnauthorized:
			kind = models.FailAuthenticationFailed
			message = "generation endpoint rejected the credential"
		case http.StatusNotFound:
			kind = models.FailModelNotFound
			message = "model identifier not found"
		}

		f := models.WrapFailure(kind, message, err)
		f.StatusCode = apiErr.Code
		return f
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return models.WrapFailure(models.FailConnectionError, "generation request timed out", err)
	}

	return models.WrapFailure(models.FailConnectionError, "could not reach the generation endpoint", err)
}

func permissiveSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHarassment,
		genai.HarmCategoryHateSpeech,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryDangerousContent,
	}

	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, category := range categories {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: genai.HarmBlockThresholdBlockNone,
		})
	}
	return settings
}
