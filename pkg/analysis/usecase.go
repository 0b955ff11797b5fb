package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumerank/backend/pkg/llm"
	"github.com/resumerank/backend/pkg/logger"
	"github.com/resumerank/backend/pkg/resume"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	ExtractText(data []byte, mediaType string) (string, error)
}

// Upload points at the temp-stored uploaded file together with the media type
// declared by the client. The orchestrator owns the file from here on and
// removes it once analysis finishes, whatever the outcome.
type Upload struct {
	Path      string
	MediaType string
}

// UseCase — resume analysis scenarios.
type UseCase interface {
	Analyze(ctx context.Context, ownerID uuid.UUID, up Upload, jobDescription string) (Analysis, error)
}

type service struct {
	repo      Repository
	extractor TextExtractor
	model     llm.TextModel
	log       *zap.Logger
	timeout   time.Duration
	maxLogLen int
}

// NewService wires the analysis orchestrator. A nil logger is replaced with a
// no-op one; a nil model is tolerated and treated as a transport failure.
func NewService(repo Repository, extractor TextExtractor, model llm.TextModel, log *zap.Logger, timeout time.Duration) UseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &service{
		repo:      repo,
		extractor: extractor,
		model:     model,
		log:       log,
		timeout:   timeout,
		maxLogLen: 2000,
	}
}

// Analyze runs the full pipeline: extract text, build the prompt, call the
// model, coerce its reply and persist the record under the owner.
//
// A failing model call does not fail the request: the same default record used
// for malformed replies is persisted and returned, so the caller always gets a
// structurally complete result.
func (s *service) Analyze(ctx context.Context, ownerID uuid.UUID, up Upload, jobDescription string) (Analysis, error) {
	if up.Path != "" {
		defer os.Remove(up.Path)
	}
	if ownerID == uuid.Nil {
		return Analysis{}, ErrUnauthorized
	}
	if up.Path == "" || strings.TrimSpace(jobDescription) == "" {
		return Analysis{}, ErrMissingInput
	}

	data, err := os.ReadFile(up.Path)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: read upload: %v", ErrAnalysisFailed, err)
	}

	text, err := s.extractor.ExtractText(data, up.MediaType)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return Analysis{}, err
		}
		return Analysis{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	res := s.askModel(ctx, BuildPrompt(text, jobDescription))

	rec := Analysis{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		MatchPercent:    res.MatchPercent,
		MissingKeywords: res.MissingKeywords,
		Suggestions:     res.Suggestions,
		Summary:         res.Summary,
		CreatedAt:       time.Now().UTC(),
	}
	if rec.MissingKeywords == nil {
		rec.MissingKeywords = []string{}
	}

	saved, err := s.repo.Create(ctx, rec)
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}
	return saved, nil
}

func (s *service) askModel(ctx context.Context, prompt string) Result {
	if s.model == nil {
		s.log.Warn("model not configured, using fallback result")
		return FallbackResult()
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.model.Complete(callCtx, prompt)
	if err != nil {
		s.log.Warn("model call failed", zap.Error(err))
		return FallbackResult()
	}

	s.log.Debug("raw model reply", zap.String("reply", logger.TruncateForLog(raw, s.maxLogLen)))
	res := ParseModelReply(raw)
	s.log.Debug("parsed model reply",
		zap.Int("matchPercent", res.MatchPercent),
		zap.Int("missingKeywords", len(res.MissingKeywords)),
	)
	return res
}
