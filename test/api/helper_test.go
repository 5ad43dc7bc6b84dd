package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Helper function to generate unique names
func uniqueName(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano())
}

// Helper to create a test employee, deleted again when the test ends
func createTestEmployee(t *testing.T, first string) employee {
	t.Helper()

	resp := makeRequest(t, http.MethodPost, "/employee/add", map[string]string{
		"first_name": first,
		"last_name":  uniqueName("Test"),
	}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("failed to create employee: HTTP %d %s", resp.Code, resp.Message)
	}

	var e employee
	resp.decode(t, &e)
	t.Cleanup(func() {
		makeRequest(t, http.MethodDelete, fmt.Sprintf("/employee/%d", e.ID), nil, "")
	})
	return e
}
