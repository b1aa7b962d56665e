package models

import (
	"errors"
	"fmt"
)

// FailureKind classifies everything that can go wrong between receiving a
// resume and returning a compatibility score.
type FailureKind string

const (
	// Input failures. Surfaced directly to the user, never retried.
	FailInvalidLinkFormat FailureKind = "invalid_link_format"
	FailLinkNotPublic     FailureKind = "link_not_public"
	FailNotAValidPDF      FailureKind = "not_a_valid_pdf"
	FailDownloadFailed    FailureKind = "download_failed"
	FailCorruptPDF        FailureKind = "corrupt_or_encrypted_pdf"
	FailEmptyDocument     FailureKind = "empty_document"

	// Configuration failure. Terminal, surfaced once.
	FailMissingCredential FailureKind = "missing_credential"

	// Transport failures from the generation endpoint.
	FailRateLimited          FailureKind = "rate_limited"
	FailBadRequest           FailureKind = "bad_request"
	FailAuthenticationFailed FailureKind = "authentication_failed"
	FailModelNotFound        FailureKind = "model_not_found"
	FailConnectionError      FailureKind = "connection_error"

	// Protocol and policy failures.
	FailNoUsableContent     FailureKind = "no_usable_content"
	FailUnparseableResponse FailureKind = "unparseable_response"
)

// Failure is the single error type the pipeline returns. Kind drives the
// caller-facing message and HTTP status; StatusCode carries the remote
// status when the failure came off the wire.
type Failure struct {
	Kind       FailureKind
	Message    string
	StatusCode int
	Err        error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func NewFailure(kind FailureKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

func WrapFailure(kind FailureKind, message string, err error) *Failure {
	return &Failure{Kind: kind, Message: message, Err: err}
}

// Retryable reports whether the failure is transient: the analyzer may retry
// the same model (rate limit) or move on to the next candidate (connection,
// unknown model) before giving up.
func (f *Failure) Retryable() bool {
	switch f.Kind {
	case FailRateLimited, FailConnectionError, FailModelNotFound:
		return true
	}
	return false
}

// AsFailure unwraps err into a *Failure when the pipeline produced it.
func AsFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}
