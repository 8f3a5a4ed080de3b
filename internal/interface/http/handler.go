package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/campushelp/helpdesk/internal/domain/helpdesk"
	apperrors "github.com/campushelp/helpdesk/pkg/errors"
)

const (
	emptyQuestionPrompt = "Please type a question."
	defaultCollegeName  = "Our College"
	qrImageSize         = 256
)

// BaseURLResolver yields the URL the helpdesk advertises to visitors.
type BaseURLResolver interface {
	BaseURL(ctx context.Context) string
}

// Handler wires the HTTP transport to the helpdesk domain.
type Handler struct {
	svc      helpdesk.Service
	kb       *helpdesk.KnowledgeBase
	resolver BaseURLResolver
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc helpdesk.Service, kb *helpdesk.KnowledgeBase, resolver BaseURLResolver, logger *slog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		kb:       kb,
		resolver: resolver,
		logger:   logger.With("component", "http.handler"),
	}
}

// Home renders the chat page.
func (h *Handler) Home(c *gin.Context) {
	collegeName := h.kb.College.Name
	if strings.TrimSpace(collegeName) == "" {
		collegeName = defaultCollegeName
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"CollegeName": collegeName,
		"BaseURL":     h.resolver.BaseURL(c.Request.Context()),
	})
}

// Ask answers a helpdesk question. Empty questions are rejected here with a
// fixed prompt; the domain service is never invoked for them.
func (h *Handler) Ask(c *gin.Context) {
	var req helpdesk.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusOK, helpdesk.Response{Answer: emptyQuestionPrompt})
		return
	}

	resp, err := h.svc.Answer(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "helpdesk_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Trending returns the most frequently asked questions.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.svc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "helpdesk_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// QR serves a PNG QR code pointing at the advertised base URL.
func (h *Handler) QR(c *gin.Context) {
	url := h.resolver.BaseURL(c.Request.Context())
	png, err := qrcode.Encode(url, qrcode.Medium, qrImageSize)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "qr_failed", errMessage(err), err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
