package models

// AdminRole is the access level of an admin account.
type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// Admin is an internal operator account. Only super_admin may manage other
// accounts.
type Admin struct {
	BaseModel
	Username    string    `gorm:"uniqueIndex;not null;size:50;column:username" json:"username"`
	Password    string    `gorm:"not null;column:password" json:"-"`
	Email       string    `gorm:"uniqueIndex;not null;size:100;column:email" json:"email"`
	NamaLengkap string    `gorm:"size:100;column:nama_lengkap" json:"nama_lengkap"`
	Role        AdminRole `gorm:"type:varchar(20);default:'admin';column:role" json:"role"`
	IsActive    bool      `gorm:"default:true;column:is_active" json:"is_active"`
}

func (Admin) TableName() string {
	return "admins"
}
