package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"hrtek/ats-checker/internal/config"
	"hrtek/ats-checker/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error)
}

type analyzerService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	opts          config.AnalyzerConfig
	sleep         func(time.Duration)
}

func NewAnalyzerService(gemini GeminiService, opts config.AnalyzerConfig) AnalyzerService {
	return &analyzerService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		opts:          opts,
		sleep:         time.Sleep,
	}
}

// Analyze implements AnalyzerService. Candidate models are tried in priority
// order; rate limiting retries the same model with backoff, while unknown
// models and connection faults fall through to the next candidate. Terminal
// failures (bad request, bad credential, policy block) stop immediately.
func (a *analyzerService) Analyze(ctx context.Context, resumeText, jobDescription string) (*models.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("job description is required")
	}

	prompt := a.promptBuilder.BuildCompatibilityPrompt(resumeText, jobDescription)

	var lastErr error
	for i, model := range a.opts.Models {
		raw, err := a.generateWithRetry(ctx, model, prompt)
		if err == nil {
			return normalizeResponse(raw)
		}

		lastErr = err

		failure, ok := models.AsFailure(err)
		if !ok || !failure.Retryable() {
			return nil, err
		}

		if i < len(a.opts.Models)-1 {
			log.Printf("⚠️ Model %s failed (%s), trying next candidate\n", model, failure.Kind)
		}
	}

	return nil, lastErr
}

// generateWithRetry runs one model with rate-limit backoff: maxRetries extra
// attempts, delay doubling each time. Any non-429 failure is returned to the
// caller untouched.
func (a *analyzerService) generateWithRetry(ctx context.Context, model, prompt string) (string, error) {
	delay := a.opts.RetryInitialDelay
	var lastErr error

	for attempt := 0; attempt <= a.opts.RetryMaxAttempts; attempt++ {
		reqCtx, cancel := context.WithTimeout(ctx, a.opts.RequestTimeout)
		raw, err := a.gemini.GenerateJSON(reqCtx, model, prompt)
		cancel()

		if err == nil {
			return raw, nil
		}

		lastErr = err

		failure, ok := models.AsFailure(err)
		if !ok || failure.Kind != models.FailRateLimited {
			return "", err
		}

		select {
		case <-ctx.Done():
			return "", models.WrapFailure(models.FailConnectionError, "request cancelled", ctx.Err())
		default:
		}

		if attempt < a.opts.RetryMaxAttempts {
			log.Printf("⚠️ Rate limited on %s, retrying in %s\n", model, delay)
			a.sleep(delay)
			delay *= 2
		}
	}

	return "", lastErr
}

// normalizeResponse turns the raw model output into an AnalysisResult via an
// ordered chain of strategies: fence-strip, brace-scan, JSON parse, then a
// narrow score-only regex fallback. Each strategy either produces a result or
// hands over to the next.
func normalizeResponse(raw string) (*models.AnalysisResult, error) {
	cleaned := stripCodeFence(raw)

	if !strings.HasPrefix(cleaned, "{") {
		if span := scanJSONObject(cleaned); span != "" {
			cleaned = span
		}
	}

	var payload struct {
		CompatibilityScore  *int     `json:"compatibilityScore"`
		Strengths           []string `json:"strengths"`
		AreasForImprovement []string `json:"areasForImprovement"`
	}

	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil && payload.CompatibilityScore != nil {
		score := *payload.CompatibilityScore
		if score >= 0 && score <= 100 {
			return &models.AnalysisResult{
				CompatibilityScore:  score,
				Strengths:           payload.Strengths,
				AreasForImprovement: payload.AreasForImprovement,
			}, nil
		}
	}

	if score, ok := scoreFallback(raw); ok {
		return &models.AnalysisResult{CompatibilityScore: score}, nil
	}

	return nil, models.NewFailure(
		models.FailUnparseableResponse,
		"model response was malformed; please retry",
	)
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a json language marker.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	} else {
		return text
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

// scanJSONObject returns the first balanced top-level JSON object embedded in
// text, tracking string literals so braces inside values do not break the
// depth count.
func scanJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return ""
}

var scorePattern = regexp.MustCompile(`"compatibilityScore"\s*:\s*(\d{1,3})`)

func scoreFallback(text string) (int, bool) {
	match := scorePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	score, err := strconv.Atoi(match[1])
	if err != nil || score < 0 || score > 100 {
		return 0, false
	}

	return score, true
}
