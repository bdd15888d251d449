package models

import "github.com/google/uuid"

// Attachment is a stored file reference: the original filename from the
// submitter plus the opaque stored name on disk. Rows are never mutated,
// only referenced for download.
type Attachment struct {
	BaseModel
	PermitRequestID uuid.UUID `gorm:"type:char(36);not null;column:permohonan_id" json:"permohonan_id"`
	NamaFile        string    `gorm:"not null;size:255;column:nama_file" json:"nama_file"`
	NamaAsli        string    `gorm:"not null;size:255;column:nama_asli" json:"nama_asli"`
	Path            string    `gorm:"not null;size:500;column:path" json:"path"`
	Ukuran          int64     `gorm:"column:ukuran" json:"ukuran"`
	MimeType        string    `gorm:"size:100;column:mime_type" json:"mime_type"`
}

func (Attachment) TableName() string {
	return "berkas"
}

// IsValidDocumentType reports whether the attachment is one of the accepted
// upload formats for a submission.
func (a *Attachment) IsValidDocumentType() bool {
	validTypes := []string{
		"application/pdf",
		"image/jpeg",
		"image/jpg",
		"image/png",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	for _, validType := range validTypes {
		if a.MimeType == validType {
			return true
		}
	}
	return false
}

func (a *Attachment) GetFileSizeInMB() float64 {
	return float64(a.Ukuran) / (1024 * 1024)
}
