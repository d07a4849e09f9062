package parsing

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/util"
)

const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the parsing service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches parsing routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.parseText)
	rg.POST("/parse/upload", h.parseUpload)
}

type parseRequest struct {
	Text       string `json:"text"`
	EntityType string `json:"entity_type"`
	Mode       string `json:"mode"`
}

func (h *Handler) parseText(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.parse(c, req.Text, req.EntityType, req.Mode)
}

func (h *Handler) parseUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file is too large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload", nil)
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	text, err := extract.Text(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileName)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusUnsupportedMediaType, ErrorCodeUnsupportedFile, "unsupported file type", nil)
		case errors.Is(err, extract.ErrEmptyDocument):
			respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeTextEmpty, "could not extract text from document", nil)
		default:
			respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeTextEmpty, "could not extract text from document", nil)
		}
		return
	}

	h.parse(c, text, c.PostForm("entity_type"), c.PostForm("mode"))
}

// parse runs the selected strategy. The heuristic and model paths are
// alternatives; a model failure is surfaced, never silently downgraded.
func (h *Handler) parse(c *gin.Context, text, entityType, mode string) {
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeTextEmpty, "resume text is empty", nil)
		return
	}

	metrics.IncParseStarted()
	started := metrics.NowMillis()

	if strings.EqualFold(strings.TrimSpace(mode), "heuristic") {
		result := ParseHeuristic(text)
		metrics.IncParseCompleted()
		metrics.ObserveParseDurationMs(metrics.NowMillis() - started)
		respond.OK(c, result)
		return
	}

	result, err := h.Svc.ParseWithModel(c.Request.Context(), text, entityType)
	if err != nil {
		metrics.IncParseFailed()
		switch {
		case errors.Is(err, ErrEmptyText):
			respond.Error(c, http.StatusUnprocessableEntity, ErrorCodeTextEmpty, "resume text is empty", nil)
		case errors.Is(err, ErrInvalidModelOutput):
			respond.Error(c, http.StatusBadGateway, ErrorCodeInvalidModelOutput, "The model returned unusable output. Please enter the candidate details manually.", nil)
		default:
			respond.Error(c, http.StatusBadGateway, ErrorCodeModelUnavailable, "The extraction service is unavailable. Please try again or enter details manually.", nil)
		}
		return
	}
	metrics.IncParseCompleted()
	metrics.ObserveParseDurationMs(metrics.NowMillis() - started)
	respond.OK(c, result)
}
