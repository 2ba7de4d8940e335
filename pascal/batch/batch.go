// Package batch runs MiniPascal-Fr analyses over many files in the
// background, tracking per-job status and progress.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/djasserdz/mini-pascal-scanner/pascal"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request describes one batch job: either a directory to walk for source
// files or an explicit file list.
type Request struct {
	ID        string    `json:"id"`
	Path      string    `json:"path,omitempty"`
	Files     []string  `json:"files,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FileReport is the analysis outcome for one file in a job.
type FileReport struct {
	File     string                 `json:"file"`
	Analysis *pascal.AnalysisResult `json:"analysis"`
}

// Result tracks one job from submission to completion.
type Result struct {
	ID        string        `json:"id"`
	Status    Status        `json:"status"`
	Request   Request       `json:"request"`
	Reports   []*FileReport `json:"reports,omitempty"`
	Error     string        `json:"error,omitempty"`
	Errors    []string      `json:"errors,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Progress  int           `json:"progress"`
	Total     int           `json:"total"`
}

func (r *Result) ProgressPercent() int {
	if r.Total == 0 {
		return 0
	}
	return (r.Progress * 100) / r.Total
}

// Service accepts analysis jobs and processes them on a single worker
// goroutine. Each file gets its own scanner/parser pair.
type Service struct {
	mu       sync.RWMutex
	jobs     map[string]*Result
	requests chan Request
}

func New() *Service {
	s := &Service{
		jobs:     make(map[string]*Result),
		requests: make(chan Request, 100),
	}
	go s.run()
	return s
}

func (s *Service) run() {
	for req := range s.requests {
		s.process(req)
	}
}

// Submit queues a job and returns its identifier.
func (s *Service) Submit(req Request) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = uuid.NewString()
	req.CreatedAt = time.Now()

	s.jobs[req.ID] = &Result{
		ID:      req.ID,
		Status:  StatusPending,
		Request: req,
	}

	s.requests <- req
	return req.ID
}

// Get returns a snapshot of the job; the worker keeps mutating the
// live record, so callers never see it directly.
func (s *Service) Get(id string) (*Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.jobs[id]
	if !ok {
		return nil, false
	}
	snapshot := *result
	return &snapshot, true
}

func (s *Service) List() []*Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	results := make([]*Result, 0, len(s.jobs))
	for _, r := range s.jobs {
		snapshot := *r
		results = append(results, &snapshot)
	}
	return results
}

func (s *Service) process(req Request) {
	s.mu.Lock()
	result := s.jobs[req.ID]
	result.Status = StatusInProgress
	result.StartedAt = time.Now()
	s.mu.Unlock()

	files := req.Files
	var errs []string
	if req.Path != "" {
		walked, walkErrs := collectSourceFiles(req.Path)
		files = append(files, walked...)
		errs = append(errs, walkErrs...)
	}

	s.mu.Lock()
	result.Total = len(files)
	s.mu.Unlock()

	var reports []*FileReport
	for i, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Sprintf("read %s: %v", file, err))
		} else {
			reports = append(reports, &FileReport{
				File:     file,
				Analysis: pascal.Analyze(string(data)),
			})
		}

		s.mu.Lock()
		result.Progress = i + 1
		s.mu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	result.EndedAt = time.Now()
	result.Reports = reports
	result.Errors = errs
	if len(errs) > 0 && len(reports) == 0 {
		result.Status = StatusFailed
		result.Error = errs[0]
	} else {
		result.Status = StatusCompleted
	}
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".mp" || ext == ".pas"
}

func collectSourceFiles(root string) ([]string, []string) {
	var files []string
	var errs []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			errs = append(errs, fmt.Sprintf("walk %s: %v", p, err))
			return nil
		}
		if !info.IsDir() && isSourceFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		errs = append(errs, fmt.Sprintf("walk %s: %v", root, err))
	}
	return files, errs
}
