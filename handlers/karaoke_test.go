package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/mexemexe02/joia-karaoke/karaoke"
	"github.com/mexemexe02/joia-karaoke/models"
)

type stubJobs struct {
	created   []models.CreateKaraokeRequest
	createErr error
	snapshot  models.JobSnapshot
	known     map[string]models.JobSnapshot
}

func (s *stubJobs) Create(ctx context.Context, request models.CreateKaraokeRequest) (*models.JobSnapshot, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, request)
	snapshot := s.snapshot
	return &snapshot, nil
}

func (s *stubJobs) Get(jobID string) (models.JobSnapshot, bool) {
	snapshot, ok := s.known[jobID]
	return snapshot, ok
}

func (s *stubJobs) Dismiss(jobID string) bool {
	_, ok := s.known[jobID]
	delete(s.known, jobID)
	return ok
}

func karaokeApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/karaoke", CreateKaraoke)
	app.Get("/api/karaoke/:jobID", GetKaraokeJob)
	app.Delete("/api/karaoke/:jobID", DismissKaraokeJob)
	return app
}

func TestCreateKaraoke(t *testing.T) {
	stub := &stubJobs{snapshot: models.JobSnapshot{JobID: "job-1", Status: models.JobStatusPending, Message: "Job created"}}
	Jobs = stub
	app := karaokeApp()

	payload := `{"youtube_url":"https://youtu.be/dQw4w9WgXcQ","title":"Never Gonna Give You Up"}`
	req := httptest.NewRequest(http.MethodPost, "/api/karaoke", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, expected 202", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["job_id"] != "job-1" || body["status"] != "pending" {
		t.Errorf("body = %v, expected the pending snapshot", body)
	}
	if len(stub.created) != 1 || stub.created[0].Title != "Never Gonna Give You Up" {
		t.Errorf("created = %+v, expected the posted request", stub.created)
	}
}

func TestCreateKaraoke_RejectsBadURLBeforeSubmit(t *testing.T) {
	stub := &stubJobs{}
	Jobs = stub
	app := karaokeApp()

	payload := `{"youtube_url":"https://example.com/not-a-video"}`
	req := httptest.NewRequest(http.MethodPost, "/api/karaoke", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", resp.StatusCode)
	}
	if len(stub.created) != 0 {
		t.Errorf("submit happened for an invalid URL: %+v", stub.created)
	}
}

func TestCreateKaraoke_ServiceRejection(t *testing.T) {
	Jobs = &stubJobs{createErr: &karaoke.RejectionError{StatusCode: 422, Body: "unsupported video"}}
	app := karaokeApp()

	payload := `{"youtube_url":"https://youtu.be/dQw4w9WgXcQ"}`
	req := httptest.NewRequest(http.MethodPost, "/api/karaoke", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, expected 502", resp.StatusCode)
	}
}

func TestGetKaraokeJob(t *testing.T) {
	Jobs = &stubJobs{known: map[string]models.JobSnapshot{
		"job-1": {JobID: "job-1", Status: models.JobStatusProcessing, Progress: 70},
	}}
	app := karaokeApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/karaoke/job-1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, expected 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["status"] != "processing" || body["progress"].(float64) != 70 {
		t.Errorf("body = %v, expected the processing snapshot", body)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/karaoke/missing", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d for an unknown job, expected 404", resp.StatusCode)
	}
}

func TestDismissKaraokeJob(t *testing.T) {
	Jobs = &stubJobs{known: map[string]models.JobSnapshot{
		"job-1": {JobID: "job-1", Status: models.JobStatusProcessing},
	}}
	app := karaokeApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/karaoke/job-1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/karaoke/job-1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d for a second dismiss, expected 404", resp.StatusCode)
	}
}
