package repository

import (
	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// ReviewRepository persists review documents
type ReviewRepository interface {
	Create(review *model.Review) error
	GetByID(id string) (*model.Review, error)
	List() ([]model.Review, error)
	ListAdminAuthored() ([]model.Review, error)
	Update(review *model.Review) error
	Delete(id string) error
	BulkCreate(reviews []model.Review, batchSize int) error

	// IncrementViewCount bumps the per-review view counter inside a
	// transaction and returns the new value.
	IncrementViewCount(id string) (int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) BulkCreate(reviews []model.Review, batchSize int) error {
	return r.db.CreateInBatches(reviews, batchSize).Error
}

func (r *reviewRepository) GetByID(id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List() ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListAdminAuthored returns non-catalog reviews, newest first
func (r *reviewRepository) ListAdminAuthored() ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.Where("static = ?", false).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Review{}).Error
}

// IncrementViewCount increments reviews.view_count atomically and reads
// the result back within the same transaction. The column expression
// keeps concurrent increments from losing updates.
func (r *reviewRepository) IncrementViewCount(id string) (int, error) {
	var count int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Review{}).
			Where("id = ?", id).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var review model.Review
		if err := tx.Select("view_count").Where("id = ?", id).First(&review).Error; err != nil {
			return err
		}
		count = review.ViewCount
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
