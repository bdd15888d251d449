package services

import (
	"fmt"
	"time"

	"permit-service-api/models"
)

// allowedTransitions is the one-directional lifecycle graph. Terminal states
// have no outgoing edges.
var allowedTransitions = map[models.RequestStatus][]models.RequestStatus{
	models.StatusBaru:     {models.StatusDiproses},
	models.StatusDiproses: {models.StatusDisetujui, models.StatusDitolak},
}

// CanTransition reports whether a request may move from one status to
// another.
func CanTransition(from, to models.RequestStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves a request to the target status, stamping
// tanggal_diproses when review starts and tanggal_selesai on a terminal
// outcome. Any move outside the allowed graph is rejected without touching
// the request.
func Transition(req *models.PermitRequest, target models.RequestStatus, now time.Time) error {
	if !target.Valid() {
		return fmt.Errorf("status '%s' tidak dikenal", target)
	}
	if !CanTransition(req.Status, target) {
		return fmt.Errorf("perubahan status dari '%s' ke '%s' tidak diizinkan", req.Status, target)
	}

	req.Status = target
	switch {
	case target == models.StatusDiproses:
		req.TanggalDiproses = &now
	case target.Terminal():
		if req.TanggalDiproses == nil {
			req.TanggalDiproses = &now
		}
		req.TanggalSelesai = &now
	}
	return nil
}
