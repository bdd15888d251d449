package client

import (
	"testing"
	"time"
)

func sampleWireRequest() PermohonanData {
	return PermohonanData{
		ID:              "req-1",
		NomorPermohonan: "REQ-20260815-0001",
		Pemohon: PemohonData{
			ID:           "app-1",
			NamaLengkap:  "Ahmad Rizki",
			NomorTelepon: "081234567890",
			Email:        "ahmad@email.com",
			Alamat:       "Jl. Sudirman 123",
		},
		JenisPerizinan: JenisPerizinanData{
			ID:          "1",
			Nama:        "Izin Penelitian",
			Deskripsi:   "Permohonan izin untuk melakukan penelitian",
			Persyaratan: []string{"Surat pengantar", "Proposal"},
			Aktif:       true,
			CreatedAt:   "2026-01-10T08:00:00Z",
		},
		Berkas: []BerkasData{
			{
				ID:        "file-1",
				NamaFile:  "abc_123.pdf",
				NamaAsli:  "proposal.pdf",
				Path:      "uploads/abc_123.pdf",
				Ukuran:    2048,
				MimeType:  "application/pdf",
				CreatedAt: "2026-08-15T09:30:00Z",
			},
		},
		Catatan:         "Mohon diproses segera",
		Status:          "diproses",
		TanggalMasuk:    "2026-08-15T09:30:00Z",
		TanggalDiproses: "2026-08-16T10:00:00Z",
		CreatedAt:       "2026-08-15T09:30:00Z",
	}
}

func TestMapPermohonanRoundTrip(t *testing.T) {
	wire := sampleWireRequest()
	view := MapPermohonan(wire)

	if view.ID != wire.ID || view.NomorPermohonan != wire.NomorPermohonan {
		t.Fatalf("identity fields lost in mapping")
	}
	if view.Pemohon.NamaLengkap != "Ahmad Rizki" ||
		view.Pemohon.NomorTelepon != "081234567890" ||
		view.Pemohon.Email != "ahmad@email.com" ||
		view.Pemohon.Alamat != "Jl. Sudirman 123" {
		t.Fatalf("applicant fields lost in mapping: %+v", view.Pemohon)
	}
	if view.JenisPerizinan != "Izin Penelitian" || view.JenisPerizinanID != "1" {
		t.Fatalf("permit type fields lost in mapping")
	}
	if len(view.Berkas) != 1 || view.Berkas[0].NamaAsli != "proposal.pdf" || view.Berkas[0].Ukuran != 2048 {
		t.Fatalf("attachment fields lost in mapping: %+v", view.Berkas)
	}
	if view.Catatan != wire.Catatan || view.Status != wire.Status {
		t.Fatalf("note/status lost in mapping")
	}

	wantMasuk := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	if !view.TanggalMasuk.Equal(wantMasuk) {
		t.Fatalf("tanggalMasuk parsed wrong: %v", view.TanggalMasuk)
	}
	if view.TanggalDiproses == nil || !view.TanggalDiproses.Equal(time.Date(2026, 8, 16, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("tanggalDiproses parsed wrong: %v", view.TanggalDiproses)
	}
	if view.TanggalSelesai != nil {
		t.Fatalf("absent tanggal_selesai must map to nil, got %v", view.TanggalSelesai)
	}
}

func TestMapPermohonanDoesNotMutateInput(t *testing.T) {
	wire := sampleWireRequest()
	original := wire
	originalBerkas := append([]BerkasData(nil), wire.Berkas...)

	_ = MapPermohonan(wire)

	if wire.ID != original.ID || wire.Status != original.Status || wire.TanggalMasuk != original.TanggalMasuk {
		t.Fatalf("mapper mutated its input record")
	}
	for i := range originalBerkas {
		if wire.Berkas[i] != originalBerkas[i] {
			t.Fatalf("mapper mutated input attachments")
		}
	}
}

func TestMapJenisPerizinanNilRequirements(t *testing.T) {
	view := MapJenisPerizinan(JenisPerizinanData{
		ID:        "2",
		Nama:      "Izin Magang",
		CreatedAt: "2026-02-01T00:00:00Z",
	})

	if view.Persyaratan == nil || len(view.Persyaratan) != 0 {
		t.Fatalf("nil persyaratan must map to an empty slice, got %#v", view.Persyaratan)
	}
	if view.CreatedAt.IsZero() {
		t.Fatalf("createdAt should be parsed")
	}
}

func TestMapNotifikasi(t *testing.T) {
	view := MapNotifikasi(NotifikasiData{
		ID:           "n-1",
		PermohonanID: "req-1",
		Pesan:        "Permohonan baru dari Ahmad Rizki - Izin Penelitian",
		Dibaca:       false,
		Tanggal:      "2026-08-15T09:31:00Z",
	})

	if view.PermohonanID != "req-1" || view.Dibaca {
		t.Fatalf("notification fields lost in mapping: %+v", view)
	}
	if view.Tanggal.IsZero() {
		t.Fatalf("tanggal should be parsed")
	}
}
