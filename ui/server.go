// Package ui serves the analyzer over HTTP as a JSON API.
package ui

import (
	"encoding/json"
	"net/http"

	"github.com/djasserdz/mini-pascal-scanner/pascal"
	"github.com/djasserdz/mini-pascal-scanner/pascal/batch"
	"github.com/djasserdz/mini-pascal-scanner/pascal/scanner"
)

// AnalyzeRequest carries raw source text to analyze.
type AnalyzeRequest struct {
	Code string `json:"code"`
}

// BatchRequest submits a batch job over HTTP.
type BatchRequest struct {
	Path  string   `json:"path,omitempty"`
	Files []string `json:"files,omitempty"`
}

type Server struct {
	batch *batch.Service
	mux   *http.ServeMux
}

func NewServer() *Server {
	s := &Server{
		batch: batch.New(),
		mux:   http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /scan", s.handleScan)
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("POST /batch", s.handleSubmitBatch)
	s.mux.HandleFunc("GET /batch", s.handleListBatch)
	s.mux.HandleFunc("GET /batch/{id}", s.handleGetBatch)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// SubmitBatch queues a batch analysis of every source file under root and
// returns the job id. Used to pre-queue configured source roots at startup.
func (s *Server) SubmitBatch(root string) string {
	return s.batch.Submit(batch.Request{Path: root})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScan runs lexical analysis plus structural validation on the posted
// source. A fresh scanner is constructed per request.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, scanner.Scan(req.Code))
}

// handleAnalyze runs the full pipeline, scanner then parser, each instance
// fresh for this request.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, http.StatusOK, pascal.Analyze(req.Code))
}

func (s *Server) handleSubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Path == "" && len(req.Files) == 0 {
		http.Error(w, "must provide path or files", http.StatusBadRequest)
		return
	}

	id := s.batch.Submit(batch.Request{Path: req.Path, Files: req.Files})
	s.writeJSON(w, http.StatusAccepted, map[string]string{"id": id})
}

func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	result, ok := s.batch.Get(id)
	if !ok {
		http.Error(w, "batch job not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListBatch(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.batch.List())
}
