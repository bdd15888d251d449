package client

import "time"

// View records: camelCase, typed dates, ready for display. Mapping is pure
// and lossy only in naming convention — every wire field has a view
// counterpart.

type PemohonView struct {
	NamaLengkap  string `json:"namaLengkap"`
	NomorTelepon string `json:"nomorTelepon"`
	Email        string `json:"email"`
	Alamat       string `json:"alamat"`
}

type BerkasView struct {
	ID        string    `json:"id"`
	NamaFile  string    `json:"namaFile"`
	NamaAsli  string    `json:"namaAsli"`
	Path      string    `json:"path"`
	Ukuran    int64     `json:"ukuran"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

type PermohonanView struct {
	ID               string       `json:"id"`
	NomorPermohonan  string       `json:"nomorPermohonan"`
	Pemohon          PemohonView  `json:"pemohon"`
	JenisPerizinan   string       `json:"jenisPerizinan"`
	JenisPerizinanID string       `json:"jenisPerizinanId"`
	Berkas           []BerkasView `json:"berkas"`
	Catatan          string       `json:"catatan"`
	Status           string       `json:"status"`
	TanggalMasuk     time.Time    `json:"tanggalMasuk"`
	TanggalDiproses  *time.Time   `json:"tanggalDiproses,omitempty"`
	TanggalSelesai   *time.Time   `json:"tanggalSelesai,omitempty"`
	BalasanEmail     string       `json:"balasanEmail,omitempty"`
	CatatanAdmin     string       `json:"catatanAdmin,omitempty"`
	LampiranSurat    string       `json:"lampiranSurat,omitempty"`
}

type JenisPerizinanView struct {
	ID          string    `json:"id"`
	Nama        string    `json:"nama"`
	Deskripsi   string    `json:"deskripsi"`
	Persyaratan []string  `json:"persyaratan"`
	Aktif       bool      `json:"aktif"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NotifikasiView struct {
	ID           string    `json:"id"`
	PermohonanID string    `json:"permohonanId"`
	Pesan        string    `json:"pesan"`
	Dibaca       bool      `json:"dibaca"`
	Tanggal      time.Time `json:"tanggal"`
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func parseOptionalDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed := parseDate(value)
	return &parsed
}

// MapPermohonan translates a wire request record into its view form. The
// input is never mutated.
func MapPermohonan(data PermohonanData) PermohonanView {
	berkas := make([]BerkasView, 0, len(data.Berkas))
	for _, b := range data.Berkas {
		berkas = append(berkas, BerkasView{
			ID:        b.ID,
			NamaFile:  b.NamaFile,
			NamaAsli:  b.NamaAsli,
			Path:      b.Path,
			Ukuran:    b.Ukuran,
			MimeType:  b.MimeType,
			CreatedAt: parseDate(b.CreatedAt),
		})
	}

	return PermohonanView{
		ID:              data.ID,
		NomorPermohonan: data.NomorPermohonan,
		Pemohon: PemohonView{
			NamaLengkap:  data.Pemohon.NamaLengkap,
			NomorTelepon: data.Pemohon.NomorTelepon,
			Email:        data.Pemohon.Email,
			Alamat:       data.Pemohon.Alamat,
		},
		JenisPerizinan:   data.JenisPerizinan.Nama,
		JenisPerizinanID: data.JenisPerizinan.ID,
		Berkas:           berkas,
		Catatan:          data.Catatan,
		Status:           data.Status,
		TanggalMasuk:     parseDate(data.TanggalMasuk),
		TanggalDiproses:  parseOptionalDate(data.TanggalDiproses),
		TanggalSelesai:   parseOptionalDate(data.TanggalSelesai),
		BalasanEmail:     data.BalasanEmail,
		CatatanAdmin:     data.CatatanAdmin,
		LampiranSurat:    data.LampiranSurat,
	}
}

func MapPermohonanList(data []PermohonanData) []PermohonanView {
	views := make([]PermohonanView, 0, len(data))
	for _, item := range data {
		views = append(views, MapPermohonan(item))
	}
	return views
}

func MapJenisPerizinan(data JenisPerizinanData) JenisPerizinanView {
	persyaratan := data.Persyaratan
	if persyaratan == nil {
		persyaratan = []string{}
	}
	return JenisPerizinanView{
		ID:          data.ID,
		Nama:        data.Nama,
		Deskripsi:   data.Deskripsi,
		Persyaratan: persyaratan,
		Aktif:       data.Aktif,
		CreatedAt:   parseDate(data.CreatedAt),
	}
}

func MapNotifikasi(data NotifikasiData) NotifikasiView {
	return NotifikasiView{
		ID:           data.ID,
		PermohonanID: data.PermohonanID,
		Pesan:        data.Pesan,
		Dibaca:       data.Dibaca,
		Tanggal:      parseDate(data.Tanggal),
	}
}
