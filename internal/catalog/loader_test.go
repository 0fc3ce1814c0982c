package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeSeed(t, `
jobs:
  - title: Backend Engineer
    department: Engineering
    location: Kochi
    type: Full-time
    level: Mid-Level
    short_description: Build APIs
    responsibilities:
      - Design services
      - Review code
    requirements:
      - 3+ years of Go or Node.js
    hiring_steps:
      - MCQ Assessment
      - Coding Assessment
      - Virtual Interview
  - title: Marketing Intern
    type: Internship
    is_unpaid: true
`)

	jobs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	first := jobs[0]
	if first.Title != "Backend Engineer" || first.Department != "Engineering" {
		t.Errorf("unexpected first job: %+v", first)
	}
	if len(first.Responsibilities) != 2 || len(first.HiringSteps) != 3 {
		t.Errorf("list fields not loaded: %+v", first)
	}
	if !first.IsActive {
		t.Error("seeded jobs should be active")
	}

	second := jobs[1]
	if second.Type != "Internship" || !second.IsUnpaid {
		t.Errorf("unexpected second job: %+v", second)
	}
}

func TestLoadFileSkipsMalformedEntries(t *testing.T) {
	path := writeSeed(t, `
jobs:
  - title: ""
    type: Full-time
  - title: Valid Job
    type: Contract
`)

	jobs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job after skipping, got %d", len(jobs))
	}
	if jobs[0].Title != "Valid Job" {
		t.Errorf("wrong job kept: %+v", jobs[0])
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	bad := writeSeed(t, "jobs: [title: {")
	if _, err := LoadFile(bad); err == nil {
		t.Error("unparseable YAML should error")
	}
}
