// internal/app/features/email/handler.go

// Package email serves the transactional send endpoint used by the admin
// dashboard for job and contract lifecycle notices.
package email

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/cochranfilms/crewops/internal/app/features/shared"
	"github.com/cochranfilms/crewops/internal/app/system/mailer"
	"github.com/cochranfilms/crewops/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies for the send endpoint. Sender is nil when
// SMTP is not configured; requests then fail in the response body rather
// than at startup, matching how the dashboard expects to probe for it.
type Handler struct {
	Sender    mailer.Sender
	Templates mailer.Templates
	Log       *zap.Logger
}

// NewHandler constructs an email Handler.
func NewHandler(sender mailer.Sender, templates mailer.Templates, logger *zap.Logger) *Handler {
	return &Handler{Sender: sender, Templates: templates, Log: logger}
}

type sendRequest struct {
	To          string            `json:"to"`
	Subject     string            `json:"subject"`
	Template    string            `json:"template"`
	Variables   map[string]string `json:"variables"`
	Attachments []struct {
		Filename      string `json:"filename"`
		ContentBase64 string `json:"contentBase64"`
		ContentType   string `json:"contentType"`
	} `json:"attachments"`
}

// Send handles POST /api/email/send.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.Error(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.To == "" || req.Template == "" {
		shared.Error(w, http.StatusBadRequest, "Missing to or template")
		return
	}
	if !h.Templates.Known(req.Template) {
		shared.Error(w, http.StatusBadRequest, "Unknown template")
		return
	}

	if h.Sender == nil {
		shared.Failure(w, http.StatusOK, "SMTP is not configured")
		return
	}

	msg, err := h.Templates.Build(req.Template, req.To, req.Subject, req.Variables)
	if err != nil {
		shared.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, a := range req.Attachments {
		content, err := base64.StdEncoding.DecodeString(a.ContentBase64)
		if err != nil {
			shared.Failure(w, http.StatusOK, "invalid attachment encoding: "+a.Filename)
			return
		}
		msg.Attachments = append(msg.Attachments, mailer.Attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     content,
		})
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "email send")
	defer cancel()

	if err := h.Sender.Send(ctx, msg); err != nil {
		h.Log.Error("email delivery failed",
			zap.String("to", req.To),
			zap.String("template", req.Template),
			zap.Error(err))
		shared.Failure(w, http.StatusOK, err.Error())
		return
	}

	h.Log.Info("email delivered",
		zap.String("to", req.To),
		zap.String("template", req.Template))
	shared.JSON(w, http.StatusOK, map[string]any{"success": true})
}
