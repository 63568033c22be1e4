package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"missed-call-recovery/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newFakeClient(t *testing.T, srv *httptest.Server) *gcalendar.Client {
	t.Helper()
	httpClient := srv.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(srv.URL, "http://"),
	}
	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
	if err == nil {
		t.Errorf("expected error for non service-account JSON")
	}

	tmpFile, _ := os.CreateTemp("", "creds.json")
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString(`{"broken":true}`)
	tmpFile.Close()

	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
		t.Errorf("expected failure loading broken file")
	}
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-12345.json"); err == nil {
		t.Errorf("expected reading file error")
	}
}

func TestBookAppointment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": "event-123",
				"htmlLink": "https://calendar.google.com/event-uri",
				"status": "confirmed"
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newFakeClient(t, srv)

	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	booking, err := client.BookAppointment(context.Background(), gcalendar.BookingRequest{
		CustomerName: "John Smith",
		Phone:        "+15550002222",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Timezone:     "UTC",
	})
	if err != nil {
		t.Fatalf("failed to book appointment: %v", err)
	}
	if booking.EventID != "event-123" {
		t.Errorf("unexpected event ID: %s", booking.EventID)
	}
	if booking.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected link: %s", booking.HtmlLink)
	}
}

func TestBookAppointmentError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newFakeClient(t, srv)
	_, err := client.BookAppointment(context.Background(), gcalendar.BookingRequest{CustomerName: "X"})
	if err == nil {
		t.Fatalf("expected booking error")
	}
}

func TestCancelBooking(t *testing.T) {
	var deleted string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := newFakeClient(t, srv)
	if err := client.CancelBooking(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("failed to cancel booking: %v", err)
	}
	if !strings.Contains(deleted, "/calendars/primary/events/event-123") {
		t.Errorf("unexpected delete path: %s", deleted)
	}
}
