package snapshotrpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestComputeMonthlySnapshot(t *testing.T) {
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/snapshots/monthly/compute" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req computeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.SchoolID != "school-1" || req.MonthStart != "2025-03-01" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(computeResponse{
			Success:            true,
			CollectedThisMonth: 4000,
			StillOutstanding:   1500,
			DueThisMonth:       5500,
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "token-1")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	snap, err := client.ComputeMonthlySnapshot(context.Background(), "school-1", monthStart)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if snap.CollectedThisMonth != 4000 || snap.StillOutstanding != 1500 || snap.DueThisMonth != 5500 {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestComputeMonthlySnapshotRemoteFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(computeResponse{Success: false, Error: "aggregation timed out"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if _, err := client.ComputeMonthlySnapshot(context.Background(), "school-1", time.Now()); err == nil {
		t.Fatal("remote failure must surface as an error")
	}
}

func TestComputeMonthlySnapshotBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL, "")
	if _, err := client.ComputeMonthlySnapshot(context.Background(), "school-1", time.Now()); err == nil {
		t.Fatal("bad status must surface as an error")
	}
}
