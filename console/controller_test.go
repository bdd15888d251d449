package console

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"permit-service-api/client"
)

// fakeBackend is an in-memory permit service speaking the real envelope.
type fakeBackend struct {
	mu            sync.Mutex
	requests      map[string]*client.PermohonanData
	notifications map[string]*client.NotifikasiData
	advanceCalls  int
	decisionCalls int

	// rejectAdvance simulates the authoritative backend refusing a
	// transition the client thought was fine.
	rejectAdvance bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		requests:      make(map[string]*client.PermohonanData),
		notifications: make(map[string]*client.NotifikasiData),
	}
}

func (f *fakeBackend) addRequest(id, status string) {
	f.requests[id] = &client.PermohonanData{
		ID:           id,
		Status:       status,
		TanggalMasuk: "2026-08-15T09:30:00Z",
		Pemohon:      client.PemohonData{NamaLengkap: "Ahmad Rizki", Email: "ahmad@email.com"},
		JenisPerizinan: client.JenisPerizinanData{
			ID: "1", Nama: "Izin Penelitian",
		},
	}
	if status != "baru" {
		f.requests[id].TanggalDiproses = "2026-08-16T10:00:00Z"
	}
}

func (f *fakeBackend) addNotification(id, requestID string) {
	f.notifications[id] = &client.NotifikasiData{
		ID:           id,
		PermohonanID: requestID,
		Pesan:        "Permohonan baru",
		Dibaca:       false,
		Tanggal:      "2026-08-15T09:31:00Z",
	}
}

func (f *fakeBackend) envelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func (f *fakeBackend) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/admin/permohonan/status/{status}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		status := r.PathValue("status")
		out := []client.PermohonanData{}
		for _, req := range f.requests {
			if req.Status == status {
				out = append(out, *req)
			}
		}
		f.envelope(w, http.StatusOK, true, "", out)
	})

	mux.HandleFunc("PATCH /api/v1/admin/permohonan/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.advanceCalls++
		if f.rejectAdvance {
			f.envelope(w, http.StatusConflict, false, "perubahan status tidak diizinkan", nil)
			return
		}
		req, ok := f.requests[r.PathValue("id")]
		if !ok {
			f.envelope(w, http.StatusNotFound, false, "Permohonan tidak ditemukan", nil)
			return
		}
		if req.Status != "baru" {
			f.envelope(w, http.StatusConflict, false, "perubahan status tidak diizinkan", nil)
			return
		}
		req.Status = "diproses"
		req.TanggalDiproses = "2026-08-16T10:00:00Z"
		f.envelope(w, http.StatusOK, true, "Status berhasil diupdate", nil)
	})

	mux.HandleFunc("POST /api/v1/admin/permohonan/{id}/balasan", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.decisionCalls++
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("decision must be multipart: %v", err)
		}
		req, ok := f.requests[r.PathValue("id")]
		if !ok {
			f.envelope(w, http.StatusNotFound, false, "Permohonan tidak ditemukan", nil)
			return
		}
		if req.Status != "diproses" {
			f.envelope(w, http.StatusConflict, false, "perubahan status tidak diizinkan", nil)
			return
		}
		req.Status = r.FormValue("status")
		req.BalasanEmail = r.FormValue("balasan_email")
		req.TanggalSelesai = "2026-08-17T11:00:00Z"
		f.envelope(w, http.StatusOK, true, "Balasan berhasil dikirim ke email pemohon", nil)
	})

	mux.HandleFunc("GET /api/v1/admin/dashboard/statistik", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		stats := client.StatistikData{}
		for _, req := range f.requests {
			stats.TotalPermohonan++
			switch req.Status {
			case "baru":
				stats.PermohonanBaru++
			case "diproses":
				stats.PermohonanDiproses++
			case "disetujui":
				stats.PermohonanDisetujui++
				stats.PermohonanSelesai++
			case "ditolak":
				stats.PermohonanDitolak++
				stats.PermohonanSelesai++
			}
		}
		f.envelope(w, http.StatusOK, true, "", stats)
	})

	mux.HandleFunc("GET /api/v1/admin/notifikasi", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []client.NotifikasiData{}
		for _, n := range f.notifications {
			out = append(out, *n)
		}
		f.envelope(w, http.StatusOK, true, "", out)
	})

	mux.HandleFunc("GET /api/v1/admin/notifikasi/count", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var count int64
		for _, n := range f.notifications {
			if !n.Dibaca {
				count++
			}
		}
		f.envelope(w, http.StatusOK, true, "", map[string]int64{"count": count})
	})

	mux.HandleFunc("PATCH /api/v1/admin/notifikasi/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if n, ok := f.notifications[r.PathValue("id")]; ok {
			n.Dibaca = true
		}
		f.envelope(w, http.StatusOK, true, "Notifikasi ditandai sudah dibaca", nil)
	})

	return mux
}

func newTestController(t *testing.T, backend *fakeBackend) (*Controller, *httptest.Server) {
	server := httptest.NewServer(backend.handler(t))
	t.Cleanup(server.Close)

	session := client.NewSession()
	session.Begin("token-abc", client.Identity{ID: "a-1", Username: "petugas", Role: "admin"})
	api := client.New(server.URL+"/api/v1", session)
	return NewController(api), server
}

func TestAdvanceMovesRequestIntoReview(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "baru")
	backend.addNotification("n-1", "req-1")

	controller, _ := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if err := controller.Advance(ctx, "req-1"); err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if backend.requests["req-1"].Status != "diproses" {
		t.Fatalf("backend status not advanced: %s", backend.requests["req-1"].Status)
	}
	if backend.requests["req-1"].TanggalDiproses == "" {
		t.Fatalf("tanggal_diproses must be set after advance")
	}
	if !backend.notifications["n-1"].Dibaca {
		t.Fatalf("related notification must be marked read")
	}
	if controller.ActiveView() != ViewProcessing {
		t.Fatalf("advance must navigate to the processing list, got %s", controller.ActiveView())
	}
	if len(controller.State().Processing) != 1 || len(controller.State().Incoming) != 0 {
		t.Fatalf("state not refreshed after advance: %+v", controller.State())
	}
	if controller.LastMessage() == "" {
		t.Fatalf("success feedback missing")
	}
}

func TestAdvanceBlockedLocallyWhenAlreadyProcessing(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "diproses")

	controller, _ := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	err := controller.Advance(ctx, "req-1")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if backend.advanceCalls != 0 {
		t.Fatalf("precondition failure must not reach the network, got %d calls", backend.advanceCalls)
	}
	if backend.requests["req-1"].Status != "diproses" {
		t.Fatalf("status must stay unchanged")
	}
}

func TestAdvanceHandlesServerSideRejection(t *testing.T) {
	// The local state is stale: the controller believes req-1 is baru while
	// the backend already moved on. The server's rejection must be
	// surfaced gracefully.
	backend := newFakeBackend()
	backend.addRequest("req-1", "baru")
	backend.rejectAdvance = true

	controller, _ := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	err := controller.Advance(ctx, "req-1")
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if UserMessage(err) != "perubahan status tidak diizinkan" {
		t.Fatalf("server message must surface verbatim, got %q", UserMessage(err))
	}
	if controller.ActiveView() != ViewDashboard {
		t.Fatalf("failed advance must not navigate")
	}
}

func TestDecideApprovesWithReplyBody(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "diproses")
	backend.addNotification("n-1", "req-1")

	controller, _ := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	err := controller.Decide(ctx, "req-1", client.DecisionInput{
		Status:       "disetujui",
		BalasanEmail: "Permohonan Anda disetujui.",
	})
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	record := backend.requests["req-1"]
	if record.Status != "disetujui" {
		t.Fatalf("backend status not updated: %s", record.Status)
	}
	if record.TanggalSelesai == "" {
		t.Fatalf("tanggal_selesai must be set on a decision")
	}
	if record.BalasanEmail != "Permohonan Anda disetujui." {
		t.Fatalf("reply body lost: %q", record.BalasanEmail)
	}
	if !backend.notifications["n-1"].Dibaca {
		t.Fatalf("related notification must be marked read")
	}
	if controller.ActiveView() != ViewHistory {
		t.Fatalf("decide must navigate to history, got %s", controller.ActiveView())
	}
}

func TestDecideBlockedOnEmptyReplyBody(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "diproses")

	controller, _ := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	err := controller.Decide(ctx, "req-1", client.DecisionInput{Status: "ditolak"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if backend.decisionCalls != 0 {
		t.Fatalf("empty reply body must not reach the network")
	}
	if backend.requests["req-1"].Status != "diproses" {
		t.Fatalf("status must stay unchanged")
	}
}

func TestAdvanceConnectivityFailureLeavesEverythingUntouched(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "baru")
	backend.addNotification("n-1", "req-1")

	controller, server := newTestController(t, backend)
	ctx := context.Background()
	if err := controller.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	server.Close() // everything after this fails on transport

	err := controller.Advance(ctx, "req-1")
	if !errors.Is(err, client.ErrConnectivity) {
		t.Fatalf("expected a connectivity error, got %v", err)
	}
	if UserMessage(err) != ConnectivityMessage {
		t.Fatalf("connectivity failures must show the generic message, got %q", UserMessage(err))
	}
	if backend.requests["req-1"].Status != "baru" {
		t.Fatalf("status must stay unchanged on connectivity failure")
	}
	if backend.notifications["n-1"].Dibaca {
		t.Fatalf("notification must stay unread when the advance never happened")
	}
	if len(controller.State().Incoming) != 1 {
		t.Fatalf("local state must stay untouched")
	}
	if controller.ActiveView() != ViewDashboard {
		t.Fatalf("failed advance must not navigate")
	}
}

func TestRefreshPopulatesDisjointState(t *testing.T) {
	backend := newFakeBackend()
	backend.addRequest("req-1", "baru")
	backend.addRequest("req-2", "diproses")
	backend.addRequest("req-3", "disetujui")
	backend.addRequest("req-4", "ditolak")
	backend.addNotification("n-1", "req-1")

	controller, _ := newTestController(t, backend)
	if err := controller.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	state := controller.State()
	if len(state.Incoming) != 1 || len(state.Processing) != 1 || len(state.History) != 2 {
		t.Fatalf("lists not partitioned by status: %d/%d/%d",
			len(state.Incoming), len(state.Processing), len(state.History))
	}
	if state.Statistics == nil || state.Statistics.TotalPermohonan != 4 {
		t.Fatalf("statistics missing: %+v", state.Statistics)
	}
	if state.UnreadCount != 1 {
		t.Fatalf("unread count wrong: %d", state.UnreadCount)
	}
	for _, view := range state.History {
		if !strings.Contains("disetujui ditolak", view.Status) {
			t.Fatalf("history must only hold terminal requests, got %s", view.Status)
		}
	}
}
