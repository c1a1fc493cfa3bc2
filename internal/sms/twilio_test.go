package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(serverURL string) *TwilioClient {
	c := NewTwilioClient("AC123", "secret-token", "+15550000000")
	c.baseURL = serverURL
	return c
}

func TestTwilioSendSMS(t *testing.T) {
	var gotPath, gotTo, gotFrom, gotBody string
	var gotUser, gotPass string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	if err := client.SendSMS(context.Background(), "+15551230001", "Your ChatApp OTP is: 123456"); err != nil {
		t.Fatalf("SendSMS: %v", err)
	}

	if gotPath != "/Accounts/AC123/Messages.json" {
		t.Errorf("path = %q", gotPath)
	}
	if gotUser != "AC123" || gotPass != "secret-token" {
		t.Errorf("basic auth = %q/%q", gotUser, gotPass)
	}
	if gotTo != "+15551230001" || gotFrom != "+15550000000" {
		t.Errorf("To/From = %q/%q", gotTo, gotFrom)
	}
	if gotBody != "Your ChatApp OTP is: 123456" {
		t.Errorf("Body = %q", gotBody)
	}
}

func TestTwilioSendSMSErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 21211, "message": "Invalid 'To' Phone Number"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.SendSMS(context.Background(), "bad-number", "hello")
	if err == nil {
		t.Fatal("expected error on 400 response")
	}
	if !strings.Contains(err.Error(), "21211") {
		t.Errorf("error should carry the response body, got %q", err)
	}
}
