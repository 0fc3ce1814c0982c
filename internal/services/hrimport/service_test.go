package hrimport

import (
	"encoding/json"
	"testing"
)

func TestMany2OneDecode(t *testing.T) {
	var rec hrJob
	payload := `{"id": 7, "name": "Backend Engineer", "state": "recruit", "department_id": [3, "Engineering"]}`
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec.Department.ID != 3 || rec.Department.Name != "Engineering" {
		t.Errorf("unexpected department: %+v", rec.Department)
	}

	// unset relation arrives as false
	var rec2 hrJob
	payload2 := `{"id": 8, "name": "Intern", "state": "open", "department_id": false}`
	if err := json.Unmarshal([]byte(payload2), &rec2); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rec2.Department.ID != 0 || rec2.Department.Name != "" {
		t.Errorf("unset department should be zero: %+v", rec2.Department)
	}
}
