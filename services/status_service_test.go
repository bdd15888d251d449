package services

import (
	"testing"
	"time"

	"permit-service-api/models"
)

func newRequest(status models.RequestStatus) *models.PermitRequest {
	return &models.PermitRequest{
		Status:       status,
		TanggalMasuk: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestTransitionFollowsLifecycleOrder(t *testing.T) {
	now := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)

	req := newRequest(models.StatusBaru)
	if err := Transition(req, models.StatusDiproses, now); err != nil {
		t.Fatalf("baru -> diproses should be allowed: %v", err)
	}
	if req.Status != models.StatusDiproses {
		t.Fatalf("expected status diproses, got %s", req.Status)
	}
	if req.TanggalDiproses == nil || !req.TanggalDiproses.Equal(now) {
		t.Fatalf("tanggal_diproses not stamped on advance: %v", req.TanggalDiproses)
	}
	if req.TanggalSelesai != nil {
		t.Fatalf("tanggal_selesai must stay empty while in review")
	}

	later := now.Add(time.Hour)
	if err := Transition(req, models.StatusDisetujui, later); err != nil {
		t.Fatalf("diproses -> disetujui should be allowed: %v", err)
	}
	if req.TanggalSelesai == nil || !req.TanggalSelesai.Equal(later) {
		t.Fatalf("tanggal_selesai not stamped on completion: %v", req.TanggalSelesai)
	}
	if !req.TanggalDiproses.Equal(now) {
		t.Fatalf("tanggal_diproses must not change on completion")
	}
}

func TestTransitionRejectsInvalidMoves(t *testing.T) {
	cases := []struct {
		name string
		from models.RequestStatus
		to   models.RequestStatus
	}{
		{"skip review", models.StatusBaru, models.StatusDisetujui},
		{"skip review reject", models.StatusBaru, models.StatusDitolak},
		{"repeat advance", models.StatusDiproses, models.StatusDiproses},
		{"revert to baru", models.StatusDiproses, models.StatusBaru},
		{"exit approved", models.StatusDisetujui, models.StatusDiproses},
		{"exit rejected", models.StatusDitolak, models.StatusBaru},
		{"approved to rejected", models.StatusDisetujui, models.StatusDitolak},
		{"unknown target", models.StatusBaru, models.RequestStatus("hilang")},
	}

	for _, tc := range cases {
		req := newRequest(tc.from)
		before := *req
		if err := Transition(req, tc.to, time.Now()); err == nil {
			t.Fatalf("%s: transition %s -> %s must be rejected", tc.name, tc.from, tc.to)
		}
		if req.Status != before.Status {
			t.Fatalf("%s: rejected transition must not mutate status", tc.name)
		}
		if req.TanggalDiproses != before.TanggalDiproses || req.TanggalSelesai != before.TanggalSelesai {
			t.Fatalf("%s: rejected transition must not stamp dates", tc.name)
		}
	}
}

func TestObservedStatusSequenceIsMonotonic(t *testing.T) {
	// Walk every reachable path and check the iff-invariants at each step.
	now := time.Now()

	for _, terminal := range []models.RequestStatus{models.StatusDisetujui, models.StatusDitolak} {
		req := newRequest(models.StatusBaru)

		if req.TanggalDiproses != nil || req.TanggalSelesai != nil {
			t.Fatalf("fresh request must have no review dates")
		}

		if err := Transition(req, models.StatusDiproses, now); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if req.TanggalDiproses == nil {
			t.Fatalf("tanggal_diproses must be set once status reached diproses")
		}
		if req.TanggalSelesai != nil {
			t.Fatalf("tanggal_selesai must be unset before a terminal status")
		}

		if err := Transition(req, terminal, now); err != nil {
			t.Fatalf("completion failed: %v", err)
		}
		if req.TanggalSelesai == nil {
			t.Fatalf("tanggal_selesai must be set in terminal status %s", terminal)
		}
		if !req.Status.Terminal() {
			t.Fatalf("%s must be terminal", terminal)
		}

		// No exit from a terminal status, towards anything.
		for _, target := range []models.RequestStatus{models.StatusBaru, models.StatusDiproses, models.StatusDisetujui, models.StatusDitolak} {
			if err := Transition(req, target, now); err == nil {
				t.Fatalf("terminal status %s must not transition to %s", terminal, target)
			}
		}
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(models.StatusBaru, models.StatusDiproses) {
		t.Fatalf("baru -> diproses must be allowed")
	}
	if CanTransition(models.StatusDisetujui, models.StatusDiproses) {
		t.Fatalf("approved requests must not re-enter review")
	}
}
