package email

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cochranfilms/crewops/internal/app/system/mailer"
	"github.com/cochranfilms/crewops/internal/testutil"
	"go.uber.org/zap"
)

type captureSender struct {
	sent []mailer.Email
	err  error
}

func (c *captureSender) Send(_ context.Context, email mailer.Email) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, email)
	return nil
}

func newHandler(sender mailer.Sender) http.Handler {
	return Routes(NewHandler(sender, mailer.Templates{}, zap.NewNop()))
}

func TestSend_Success(t *testing.T) {
	sender := &captureSender{}
	handler := newHandler(sender)

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{
		"to":       "jane@x.com",
		"template": "job_acceptance",
		"variables": map[string]string{
			"freelancer_name": "Jane",
		},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	if len(sender.sent) != 1 {
		t.Fatalf("sent: %d messages", len(sender.sent))
	}
	if sender.sent[0].Subject != "Cochran Films – Welcome to the Team" {
		t.Errorf("subject: %q", sender.sent[0].Subject)
	}
}

func TestSend_MissingToOrTemplate(t *testing.T) {
	handler := newHandler(&captureSender{})

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{"to": "jane@x.com"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
}

func TestSend_UnknownTemplate(t *testing.T) {
	handler := newHandler(&captureSender{})

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{
		"to":       "jane@x.com",
		"template": "marketing_blast",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusBadRequest)
	body := testutil.DecodeJSON(t, rec)
	if body["error"] != "Unknown template" {
		t.Errorf("error: %v", body["error"])
	}
}

func TestSend_DeliveryFailureStays200(t *testing.T) {
	handler := newHandler(&captureSender{err: errors.New("smtp auth: 535")})

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{
		"to":       "jane@x.com",
		"template": "user_confirm",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	if body["success"] != false {
		t.Errorf("success: %v", body["success"])
	}
}

func TestSend_NoSenderConfigured(t *testing.T) {
	handler := newHandler(nil)

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{
		"to":       "jane@x.com",
		"template": "job_closed",
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	body := testutil.DecodeJSON(t, rec)
	if body["success"] != false {
		t.Errorf("success: %v", body["success"])
	}
}

func TestSend_AttachmentsDecoded(t *testing.T) {
	sender := &captureSender{}
	handler := newHandler(sender)

	req := testutil.JSONRequest(t, http.MethodPost, "/send", map[string]any{
		"to":       "jane@x.com",
		"template": "user_confirm",
		"attachments": []map[string]string{
			{"filename": "contract.pdf", "contentBase64": "JVBERi0xLjQ=", "contentType": "application/pdf"},
		},
	})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	if len(sender.sent) != 1 || len(sender.sent[0].Attachments) != 1 {
		t.Fatalf("attachments not carried through: %+v", sender.sent)
	}
	if string(sender.sent[0].Attachments[0].Content) != "%PDF-1.4" {
		t.Errorf("attachment content: %q", sender.sent[0].Attachments[0].Content)
	}
}
