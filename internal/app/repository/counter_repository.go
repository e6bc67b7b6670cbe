package repository

import (
	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// CounterRepository persists shared like and daily view counters
type CounterRepository interface {
	// LikeDelta adjusts a review's like counter by delta, clamped at
	// zero. A missing counter row is created on the fly so catalog
	// reviews can be liked before they ever received a counter.
	LikeDelta(reviewID string, delta int) error

	FetchLikeCounts() (map[string]int, error)

	// TrackDailyView bumps the counter for the given UTC date inside a
	// transaction and returns the new value.
	TrackDailyView(date string) (int, error)
	FetchDailyViewCount(date string) (int, error)
}

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a counter repository
func NewCounterRepository(db *gorm.DB) CounterRepository {
	return &counterRepository{db: db}
}

// clampedDelta keeps counters from going below zero on decrement.
// Plain SQL so it runs on both postgres and sqlite.
func clampedDelta(column string, delta int) interface{} {
	return gorm.Expr("CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta)
}

func (r *counterRepository) LikeDelta(reviewID string, delta int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LikeCounter{}).
			Where("review_id = ?", reviewID).
			UpdateColumn("count", clampedDelta("count", delta))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			initial := delta
			if initial < 0 {
				initial = 0
			}
			counter := model.LikeCounter{ReviewID: reviewID, Count: initial}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
		}

		// Mirror onto the review row so feed reads stay cheap. The
		// review may not exist for counters created ahead of the row.
		return tx.Model(&model.Review{}).
			Where("id = ?", reviewID).
			UpdateColumn("like_count", clampedDelta("like_count", delta)).Error
	})
}

func (r *counterRepository) FetchLikeCounts() (map[string]int, error) {
	var counters []model.LikeCounter
	if err := r.db.Find(&counters).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(counters))
	for _, counter := range counters {
		counts[counter.ReviewID] = counter.Count
	}
	return counts, nil
}

func (r *counterRepository) TrackDailyView(date string) (int, error) {
	var count int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.DailyViewCounter{}).
			Where("date = ?", date).
			UpdateColumn("count", gorm.Expr("count + ?", 1))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			counter := model.DailyViewCounter{Date: date, Count: 1}
			if err := tx.Create(&counter).Error; err != nil {
				return err
			}
			count = 1
			return nil
		}

		var counter model.DailyViewCounter
		if err := tx.Where("date = ?", date).First(&counter).Error; err != nil {
			return err
		}
		count = counter.Count
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *counterRepository) FetchDailyViewCount(date string) (int, error) {
	var counter model.DailyViewCounter
	err := r.db.Where("date = ?", date).First(&counter).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return counter.Count, nil
}
