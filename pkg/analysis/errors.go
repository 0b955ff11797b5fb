package analysis

import "errors"

// Failure modes surfaced by the orchestrator.
var (
	// ErrMissingInput — required upload or job description absent.
	ErrMissingInput = errors.New("resume file and job description are required")
	// ErrUnauthorized — no authenticated user attached to the request.
	ErrUnauthorized = errors.New("user id missing")
	// ErrAnalysisFailed — catch-all for extraction, transport and persistence
	// faults. Wrapped around the underlying cause with %w.
	ErrAnalysisFailed = errors.New("failed to process resume")
)
