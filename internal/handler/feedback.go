package handler

import (
	"context"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Marcob7/uitjes-backend/internal/metrics"
	"github.com/Marcob7/uitjes-backend/internal/model"
	"github.com/Marcob7/uitjes-backend/internal/queue"
	"github.com/Marcob7/uitjes-backend/internal/repository"
	queue_publisher "github.com/Marcob7/uitjes-backend/internal/service"
)

// maxUserAgentLen bounds the stored user agent (VARCHAR(300)).
const maxUserAgentLen = 300

// FeedbackHandler accepts and stores end-user feedback.
type FeedbackHandler struct {
	Feedback *repository.FeedbackRepo
}

func NewFeedbackHandler(feedback *repository.FeedbackRepo) *FeedbackHandler {
	return &FeedbackHandler{Feedback: feedback}
}

type feedbackReq struct {
	Message string `json:"message"`
	Email   string `json:"email"`
	PageURL string `json:"page_url"`
}

type feedbackResp struct {
	ID        uint64    `json:"id"`
	Message   string    `json:"message"`
	Email     string    `json:"email"`
	PageURL   string    `json:"page_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Create handles POST /v1/feedback.  Invalid submissions get a 400 with
// field-level errors; valid ones are stored immutably and echoed back
// with the generated id and timestamp.  The user agent comes from the
// request itself, never from the body.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	req.Email = strings.TrimSpace(req.Email)
	req.PageURL = strings.TrimSpace(req.PageURL)

	if fieldErrs := validateFeedback(req); len(fieldErrs) > 0 {
		return c.JSON(http.StatusBadRequest, fieldErrs)
	}

	fb := model.Feedback{
		Message:   req.Message,
		Email:     req.Email,
		PageURL:   req.PageURL,
		UserAgent: clampUserAgent(c.Request().UserAgent()),
	}
	if err := h.Feedback.Create(c.Request().Context(), &fb); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	metrics.FeedbackReceived.Inc()

	// Best effort: a broker outage must not fail the submission.
	go func(fb model.Feedback) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = queue_publisher.PublishFeedbackReceived(ctx, queue.FeedbackReceivedEvent{
			FeedbackID: fb.ID,
			Message:    fb.Message,
			Email:      fb.Email,
			PageURL:    fb.PageURL,
			ReceivedAt: fb.CreatedAt.UTC().Format(time.RFC3339),
		})
	}(fb)

	return c.JSON(http.StatusCreated, feedbackResp{
		ID:        fb.ID,
		Message:   fb.Message,
		Email:     fb.Email,
		PageURL:   fb.PageURL,
		CreatedAt: fb.CreatedAt,
	})
}

// clampUserAgent bounds the stored user agent to the column width.
// The column counts characters, so the cut happens on rune boundaries
// and never splits a multibyte sequence.
func clampUserAgent(ua string) string {
	r := []rune(ua)
	if len(r) <= maxUserAgentLen {
		return ua
	}
	return string(r[:maxUserAgentLen])
}

// validateFeedback returns a map of field name to error messages, empty
// when the submission is acceptable.  Message must be at least 10
// characters after trimming; email and page URL are optional but must
// be well-formed when present.
func validateFeedback(req feedbackReq) map[string][]string {
	errs := map[string][]string{}
	if req.Message == "" {
		errs["message"] = append(errs["message"], "This field is required.")
	} else if len([]rune(req.Message)) < 10 {
		errs["message"] = append(errs["message"], "Ensure this field has at least 10 characters.")
	}
	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			errs["email"] = append(errs["email"], "Enter a valid email address.")
		}
	}
	if req.PageURL != "" {
		u, err := url.Parse(req.PageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs["page_url"] = append(errs["page_url"], "Enter a valid URL.")
		}
	}
	return errs
}
