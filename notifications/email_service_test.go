package notifications

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	config "github.com/anjiri1684/pesuconnect/configs"
)

func TestNewEmailServiceDisabled(t *testing.T) {
	if svc := NewEmailService(config.EmailConfig{}); svc != nil {
		t.Fatalf("expected nil service without credentials, got %+v", svc)
	}
}

func newTestMailer(t *testing.T, handler http.HandlerFunc) *BrevoService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewEmailService(config.EmailConfig{
		APIKey:     "key-123",
		BaseURL:    srv.URL + "/",
		Sender:     "noreply@pesuconnect.dev",
		SenderName: "PESUConnect",
	})
	if svc == nil {
		t.Fatal("expected configured service")
	}
	return svc
}

func TestSendEmail(t *testing.T) {
	var got brevoPayload
	svc := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/smtp/email" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("api-key") != "key-123" {
			t.Errorf("api-key header = %q", r.Header.Get("api-key"))
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@smtp>"}`))
	})

	if err := svc.SendEmail(context.Background(), "", "kiran@pesu.edu", "Hello", "<p>hi</p>"); err != nil {
		t.Fatalf("SendEmail: %v", err)
	}
	if got.Subject != "Hello" || got.HTMLContent != "<p>hi</p>" {
		t.Fatalf("payload = %+v", got)
	}
	if len(got.To) != 1 || got.To[0]["name"] != "kiran" || got.To[0]["email"] != "kiran@pesu.edu" {
		t.Fatalf("recipient = %+v", got.To)
	}
	if got.Sender["email"] != "noreply@pesuconnect.dev" {
		t.Fatalf("sender = %+v", got.Sender)
	}
}

func TestSendEmailAPIError(t *testing.T) {
	svc := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_parameter","message":"sender not verified"}`))
	})

	err := svc.SendEmail(context.Background(), "Kiran", "kiran@pesu.edu", "Hello", "<p>hi</p>")
	if err == nil || !strings.Contains(err.Error(), "sender not verified") {
		t.Fatalf("err = %v", err)
	}
}

func TestSendEmailRejectsBadRecipient(t *testing.T) {
	svc := newTestMailer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	if err := svc.SendEmail(context.Background(), "x", "not-an-email", "s", "b"); err == nil {
		t.Fatal("expected error")
	}
}
