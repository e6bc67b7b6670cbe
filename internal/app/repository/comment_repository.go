package repository

import (
	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// CommentRepository persists comment records. The table is append-only:
// there are no update or delete operations.
type CommentRepository interface {
	Create(record *model.CommentRecord) error
	GetByID(id string) (*model.CommentRecord, error)

	// List returns every comment record, newest first. The snapshot
	// order feeds the tree rebuild directly.
	List() ([]model.CommentRecord, error)
	ListByReview(reviewID string) ([]model.CommentRecord, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a comment repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(record *model.CommentRecord) error {
	return r.db.Create(record).Error
}

func (r *commentRepository) GetByID(id string) (*model.CommentRecord, error) {
	var record model.CommentRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *commentRepository) List() ([]model.CommentRecord, error) {
	var records []model.CommentRecord
	if err := r.db.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *commentRepository) ListByReview(reviewID string) ([]model.CommentRecord, error) {
	var records []model.CommentRecord
	if err := r.db.Where("review_id = ?", reviewID).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
