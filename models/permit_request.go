package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a permit request. Transitions are
// one-directional: baru -> diproses -> disetujui|ditolak. The allowed graph
// is enforced by services.Transition, not by callers.
type RequestStatus string

const (
	StatusBaru      RequestStatus = "baru"
	StatusDiproses  RequestStatus = "diproses"
	StatusDisetujui RequestStatus = "disetujui"
	StatusDitolak   RequestStatus = "ditolak"
)

// Terminal reports whether no further transition is allowed out of s.
func (s RequestStatus) Terminal() bool {
	return s == StatusDisetujui || s == StatusDitolak
}

// Valid reports whether s is one of the four known states.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusBaru, StatusDiproses, StatusDisetujui, StatusDitolak:
		return true
	}
	return false
}

// Applicant holds the submitter's contact data. Written once at submission,
// never edited afterwards.
type Applicant struct {
	BaseModel
	NamaLengkap  string `gorm:"not null;size:100;column:nama_lengkap" json:"nama_lengkap"`
	NomorTelepon string `gorm:"size:20;column:nomor_telepon" json:"nomor_telepon"`
	Email        string `gorm:"not null;size:100;column:email" json:"email"`
	Alamat       string `gorm:"type:text;column:alamat" json:"alamat"`
}

func (Applicant) TableName() string {
	return "pemohon"
}

// PermitRequest is the central entity: one citizen application for one
// permit type, moving through the review lifecycle.
type PermitRequest struct {
	BaseModel
	NomorPermohonan string        `gorm:"uniqueIndex;size:30;column:nomor_permohonan" json:"nomor_permohonan"`
	PemohonID       uuid.UUID     `gorm:"type:char(36);not null;column:pemohon_id" json:"pemohon_id"`
	Pemohon         Applicant     `gorm:"foreignKey:PemohonID" json:"pemohon"`
	PermitTypeID    uuid.UUID     `gorm:"type:char(36);not null;column:jenis_perizinan_id" json:"jenis_perizinan_id"`
	PermitType      PermitType    `gorm:"foreignKey:PermitTypeID" json:"jenis_perizinan"`
	Berkas          []Attachment  `gorm:"foreignKey:PermitRequestID" json:"berkas"`
	Catatan         string        `gorm:"type:text;column:catatan" json:"catatan"`
	Status          RequestStatus `gorm:"type:varchar(20);default:'baru';column:status" json:"status"`
	TanggalMasuk    time.Time     `gorm:"not null;column:tanggal_masuk" json:"tanggal_masuk"`
	TanggalDiproses *time.Time    `gorm:"column:tanggal_diproses" json:"tanggal_diproses,omitempty"`
	TanggalSelesai  *time.Time    `gorm:"column:tanggal_selesai" json:"tanggal_selesai,omitempty"`
	BalasanEmail    string        `gorm:"type:text;column:balasan_email" json:"balasan_email,omitempty"`
	CatatanAdmin    string        `gorm:"type:text;column:catatan_admin" json:"catatan_admin,omitempty"`
	LampiranSurat   string        `gorm:"size:255;column:lampiran_surat" json:"lampiran_surat,omitempty"`
	DikelolaOleh    *uuid.UUID    `gorm:"type:char(36);column:dikelola_oleh" json:"dikelola_oleh,omitempty"`
	Admin           *Admin        `gorm:"foreignKey:DikelolaOleh" json:"admin,omitempty"`
}

func (PermitRequest) TableName() string {
	return "permohonan"
}
