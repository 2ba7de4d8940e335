package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}

func TestScanEndpoint(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodPost, "/scan",
		`{"code": "programme a1; debut fin."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Tokens []struct {
			Type   string `json:"type"`
			Lexeme string `json:"lexeme"`
		} `json:"tokens"`
		Errors  []any `json:"errors"`
		Success bool  `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Errorf("success = false, errors: %v", body.Errors)
	}
	if len(body.Tokens) == 0 || body.Tokens[0].Type != "PROGRAMME" {
		t.Errorf("tokens = %v, want PROGRAMME first", body.Tokens)
	}
}

func TestScanEndpointReportsErrors(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodPost, "/scan",
		`{"code": "programme a1 debut fin"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Errors  []struct{ Message string } `json:"errors"`
		Success bool                       `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Success {
		t.Error("success = true for malformed program")
	}
	if len(body.Errors) == 0 {
		t.Error("no errors reported for malformed program")
	}
}

func TestScanEndpointRejectsBadJSON(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodPost, "/scan", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodPost, "/analyze",
		`{"code": "programme a1; debut a1 := 1 fin."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Rules   []string `json:"rules"`
		Success bool     `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.Success {
		t.Error("success = false for valid program")
	}
	if len(body.Rules) == 0 {
		t.Error("empty rule trace")
	}
}

func TestBatchLifecycle(t *testing.T) {
	srv := NewServer()

	rec := doJSON(t, srv, http.MethodPost, "/batch", `{"files": ["/nonexistent/x.mp"]}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("submit status = %d, want 202", rec.Code)
	}
	var submitted map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &submitted); err != nil {
		t.Fatal(err)
	}
	id := submitted["id"]
	if id == "" {
		t.Fatal("empty job id")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		rec = doJSON(t, srv, http.MethodGet, "/batch/"+id, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("get status = %d, want 200", rec.Code)
		}
		var job struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &job); err != nil {
			t.Fatal(err)
		}
		if job.Status == "failed" || job.Status == "completed" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("job stuck in status %q", job.Status)
		}
		time.Sleep(5 * time.Millisecond)
	}

	rec = doJSON(t, srv, http.MethodGet, "/batch", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var jobs []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &jobs); err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Errorf("list returned %d jobs, want 1", len(jobs))
	}
}

func TestBatchRequiresInput(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodPost, "/batch", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestBatchNotFound(t *testing.T) {
	rec := doJSON(t, NewServer(), http.MethodGet, "/batch/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
