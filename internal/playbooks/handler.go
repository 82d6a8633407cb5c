package playbooks

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"playbook-backend/internal/extract"
	"playbook-backend/internal/render"
	"playbook-backend/internal/reports"
	"playbook-backend/internal/services/health"
	"playbook-backend/internal/shared/server/middleware"
	"playbook-backend/internal/shared/server/respond"
	"playbook-backend/internal/shared/util"
)

const (
	serviceName    = "MESH AI Playbook Generator"
	serviceVersion = "2.0-branded"

	defaultMaxUploadBytes = 10 << 20
	playbookIDHeader      = "X-Playbook-Id"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	Health         *health.Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive maxUploadBytes falls back
// to 10 MiB.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{
		Svc:            svc,
		Health:         health.NewService(serviceName, serviceVersion, nil),
		MaxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes attaches playbook routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.status)
	rg.POST("/playbooks", h.generate)
	rg.GET("/playbooks/:id", h.download)
	rg.POST("/reports/parse", h.parse)
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.Health.Status())
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	readiness, ok := h.formUpload(c, "readiness_file")
	if !ok {
		return
	}
	toolbox, ok := h.formUpload(c, "toolbox_file")
	if !ok {
		return
	}

	req := Request{
		CompanyName: c.PostForm("companyName"),
		Profile: render.Profile{
			PrimaryDriver: c.PostForm("primaryDriver"),
			RiskTolerance: c.PostForm("riskTolerance"),
			Timeline:      c.PostForm("timeline"),
			Leadership:    c.PostForm("leadership"),
		},
		Readiness: readiness,
		Toolbox:   toolbox,
	}

	pb, err := h.Svc.Generate(c.Request.Context(), req)
	if err != nil {
		writeError(c, err, "failed to generate playbook")
		return
	}

	c.Set(middleware.PlaybookIDKey, pb.ID)
	c.Header(playbookIDHeader, pb.ID)
	respond.Attachment(c, docxContentType, pb.FileName, pb.Document)
}

func (h *Handler) download(c *gin.Context) {
	id := c.Param("id")
	c.Set(middleware.PlaybookIDKey, id)

	data, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to fetch playbook")
		return
	}

	c.Header(playbookIDHeader, id)
	respond.Attachment(c, docxContentType, id+".docx", data)
}

type parseResponse struct {
	Kind   reports.Kind   `json:"kind"`
	Record reports.Record `json:"record"`
}

func (h *Handler) parse(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	upload, ok := h.formUpload(c, "file")
	if !ok {
		return
	}
	kind, err := reports.ParseKind(c.PostForm("kind"))
	if err != nil {
		writeError(c, err, "failed to parse report")
		return
	}

	record, err := h.Svc.ParseReport(c.Request.Context(), upload, kind)
	if err != nil {
		writeError(c, err, "failed to parse report")
		return
	}

	c.Set(middleware.ReportKindKey, string(record.Kind()))
	respond.OK(c, parseResponse{Kind: record.Kind(), Record: record})
}

// formUpload reads a multipart file field fully. On failure it writes the
// error response and returns false.
func (h *Handler) formUpload(c *gin.Context, field string) (Upload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if isTooLarge(err) {
			writeError(c, err, "")
			return Upload{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", field+" is required", gin.H{"field": field})
		return Upload{}, false
	}

	data, err := readFormFile(fileHeader)
	if err != nil {
		if isTooLarge(err) {
			writeError(c, err, "")
			return Upload{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read "+field, gin.H{"field": field})
		return Upload{}, false
	}

	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		name = field
	}
	return Upload{
		FileName:    name,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, true
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// writeError maps service errors to the standard error body. Unknown errors
// become a 500 with fallback as the message.
func writeError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	switch {
	case isTooLarge(err):
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "upload exceeds the size limit", nil)
	case errors.Is(err, reports.ErrUnsupportedKind):
		respond.Error(c, http.StatusBadRequest, "unsupported_kind", "kind must be auto, readiness or toolbox", nil)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, extract.ErrEmpty):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_media_type", "upload a .txt, .pdf or .docx report", nil)
	case errors.Is(err, extract.ErrUnreadable):
		respond.Error(c, http.StatusUnprocessableEntity, "unreadable_file", err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "playbook not found", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
