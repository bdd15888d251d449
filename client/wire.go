package client

// Wire records exactly as the backend serializes them: snake_case fields,
// RFC3339 date strings. The viewmodel mappers translate these into display
// form.

type JenisPerizinanData struct {
	ID          string   `json:"id"`
	Nama        string   `json:"nama"`
	Deskripsi   string   `json:"deskripsi"`
	Persyaratan []string `json:"persyaratan"`
	Aktif       bool     `json:"aktif"`
	CreatedAt   string   `json:"created_at"`
}

type PemohonData struct {
	ID           string `json:"id"`
	NamaLengkap  string `json:"nama_lengkap"`
	NomorTelepon string `json:"nomor_telepon"`
	Email        string `json:"email"`
	Alamat       string `json:"alamat"`
}

type BerkasData struct {
	ID        string `json:"id"`
	NamaFile  string `json:"nama_file"`
	NamaAsli  string `json:"nama_asli"`
	Path      string `json:"path"`
	Ukuran    int64  `json:"ukuran"`
	MimeType  string `json:"mime_type"`
	CreatedAt string `json:"created_at"`
}

type PermohonanData struct {
	ID              string             `json:"id"`
	NomorPermohonan string             `json:"nomor_permohonan"`
	Pemohon         PemohonData        `json:"pemohon"`
	JenisPerizinan  JenisPerizinanData `json:"jenis_perizinan"`
	Berkas          []BerkasData       `json:"berkas"`
	Catatan         string             `json:"catatan"`
	Status          string             `json:"status"`
	TanggalMasuk    string             `json:"tanggal_masuk"`
	TanggalDiproses string             `json:"tanggal_diproses,omitempty"`
	TanggalSelesai  string             `json:"tanggal_selesai,omitempty"`
	BalasanEmail    string             `json:"balasan_email,omitempty"`
	CatatanAdmin    string             `json:"catatan_admin,omitempty"`
	LampiranSurat   string             `json:"lampiran_surat,omitempty"`
	CreatedAt       string             `json:"created_at"`
}

type PermohonanListData struct {
	Data       []PermohonanData `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

type NotifikasiData struct {
	ID           string `json:"id"`
	PermohonanID string `json:"permohonan_id"`
	Pesan        string `json:"pesan"`
	Dibaca       bool   `json:"dibaca"`
	Tanggal      string `json:"tanggal"`
}

type StatistikData struct {
	TotalPermohonan     int64 `json:"total_permohonan"`
	PermohonanBaru      int64 `json:"permohonan_baru"`
	PermohonanDiproses  int64 `json:"permohonan_diproses"`
	PermohonanSelesai   int64 `json:"permohonan_selesai"`
	PermohonanDisetujui int64 `json:"permohonan_disetujui"`
	PermohonanDitolak   int64 `json:"permohonan_ditolak"`
}

type AdminData struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	NamaLengkap string `json:"nama_lengkap"`
	Role        string `json:"role"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

type LoginData struct {
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
	Admin     AdminData `json:"admin"`
}
