package models

// PermitType is a catalog entry describing a kind of permit citizens can
// apply for. Deactivating one hides it from the public form without losing
// the history of requests that referenced it.
type PermitType struct {
	BaseModel
	Nama        string      `gorm:"not null;size:100;column:nama" json:"nama"`
	Deskripsi   string      `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Persyaratan StringArray `gorm:"type:json;column:persyaratan" json:"persyaratan"`
	Aktif       bool        `gorm:"default:true;column:aktif" json:"aktif"`
}

func (PermitType) TableName() string {
	return "jenis_perizinan"
}
