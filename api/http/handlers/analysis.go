package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/resumerank/backend/api/http/presenter"
	"github.com/resumerank/backend/pkg/analysis"
	"github.com/resumerank/backend/pkg/resume"
)

type AnalysisHandler struct {
	uc         analysis.UseCase
	uploadDir  string
	maxBytes   int64
	production bool
}

func NewAnalysisHandler(uc analysis.UseCase, uploadDir string, production bool) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, uploadDir: uploadDir, maxBytes: 15 << 20, production: production} // 15MB
}

type analyzeResponse struct {
	MatchPercent    int      `json:"matchPercent"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     string   `json:"suggestions"`
	Summary         string   `json:"summary"`
}

// Analyze accepts a resume file plus a job description, runs the analysis
// pipeline and returns the scored record.
// @Summary Analyze resume against a job description
// @Tags    analysis
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "resume file (PDF, DOC or DOCX)"
// @Param   jobDescription formData string true "job description text"
// @Security BearerAuth
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file and job description are required")
	}
	jobDescription := c.FormValue("jobDescription")
	if strings.TrimSpace(jobDescription) == "" {
		return presenter.Error(c, http.StatusBadRequest, "resume file and job description are required")
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusBadRequest, "file too large")
	}

	userIDStr, _ := c.Locals("userId").(string)
	ownerID, err := uuid.Parse(userIDStr)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "user id missing")
	}

	// Stage the upload on disk; the orchestrator removes it when done.
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return presenter.ServerError(c, h.production, err, "failed to prepare storage")
	}
	dst := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err := c.SaveFile(fh, dst); err != nil {
		return presenter.ServerError(c, h.production, err, "failed to store upload")
	}

	up := analysis.Upload{Path: dst, MediaType: fh.Header.Get("Content-Type")}
	out, err := h.uc.Analyze(c.Context(), ownerID, up, jobDescription)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrMissingInput):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, resume.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, analysis.ErrUnauthorized):
			return presenter.Error(c, http.StatusUnauthorized, err.Error())
		default:
			return presenter.ServerError(c, h.production, err, "failed to process resume")
		}
	}

	return presenter.JSON(c, http.StatusOK, analyzeResponse{
		MatchPercent:    out.MatchPercent,
		MissingKeywords: out.MissingKeywords,
		Suggestions:     out.Suggestions,
		Summary:         out.Summary,
	})
}
