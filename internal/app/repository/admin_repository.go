package repository

import (
	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// AdminRepository reads administrator accounts
type AdminRepository interface {
	GetByEmail(email string) (*model.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates an admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}
