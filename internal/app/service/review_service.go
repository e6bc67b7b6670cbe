package service

import (
	"context"
	"errors"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
	"github.com/smreview/smreview-backend/internal/data"
	"github.com/smreview/smreview-backend/internal/sync"
	"github.com/smreview/smreview-backend/pkg/logger"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrStaticReview   = errors.New("catalog reviews cannot be modified")
)

// ReviewService owns the review lifecycle: the admin CRUD surface and
// the composition of the sync client's feed from catalog and
// admin-authored reviews.
type ReviewService interface {
	Create(req *model.CreateReviewRequest) (*model.Review, error)
	Update(id string, req *model.UpdateReviewRequest) (*model.Review, error)
	Delete(id string) error

	// ReseedFeed rebuilds the sync client feed: admin reviews newest
	// first, then the static catalog, with counters and comment trees
	// merged back in.
	ReseedFeed(ctx context.Context) error

	// DemoMode reports whether changes persist beyond this process
	DemoMode() bool
}

type reviewService struct {
	repo       repository.ReviewRepository // nil in demo mode
	syncClient *sync.Client

	// demo-mode admin reviews, newest first
	mu     stdsync.Mutex
	memory []model.Review
}

// NewReviewService creates the review service. repo is nil in demo
// mode; admin-authored reviews then live in memory only.
func NewReviewService(repo repository.ReviewRepository, syncClient *sync.Client) ReviewService {
	return &reviewService{
		repo:       repo,
		syncClient: syncClient,
	}
}

func (s *reviewService) DemoMode() bool {
	return s.repo == nil
}

func (s *reviewService) Create(req *model.CreateReviewRequest) (*model.Review, error) {
	review := model.Review{
		ID:         uuid.NewString(),
		Title:      req.Title,
		ImageURL:   req.ImageURL,
		ImageURLs:  pq.StringArray(req.ImageURLs),
		Review:     req.Review,
		FirstHalf:  req.FirstHalf,
		SecondHalf: req.SecondHalf,
		Positives:  req.Positives,
		Negatives:  req.Negatives,
		Overall:    req.Overall,
		Rating:     req.Rating,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Comments:   []model.Comment{},
	}

	if s.repo != nil {
		if err := s.repo.Create(&review); err != nil {
			logger.Error("Failed to create review", err, map[string]interface{}{
				"title": req.Title,
			})
			return nil, err
		}
	} else {
		s.mu.Lock()
		s.memory = append([]model.Review{review}, s.memory...)
		s.mu.Unlock()
	}

	logger.Info("Review created", map[string]interface{}{
		"review_id": review.ID,
		"title":     review.Title,
		"demo_mode": s.DemoMode(),
	})

	if err := s.ReseedFeed(context.Background()); err != nil {
		logger.Warn("Feed reseed after create failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return &review, nil
}

func (s *reviewService) Update(id string, req *model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.getEditable(id)
	if err != nil {
		return nil, err
	}

	applyUpdate(review, req)
	review.UpdatedAt = time.Now()

	if s.repo != nil {
		if err := s.repo.Update(review); err != nil {
			logger.Error("Failed to update review", err, map[string]interface{}{
				"review_id": id,
			})
			return nil, err
		}
	} else {
		s.replaceInMemory(*review)
	}

	logger.Info("Review updated", map[string]interface{}{
		"review_id": id,
	})

	if err := s.ReseedFeed(context.Background()); err != nil {
		logger.Warn("Feed reseed after update failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return review, nil
}

func (s *reviewService) Delete(id string) error {
	review, err := s.getEditable(id)
	if err != nil {
		return err
	}

	if s.repo != nil {
		if err := s.repo.Delete(review.ID); err != nil {
			logger.Error("Failed to delete review", err, map[string]interface{}{
				"review_id": id,
			})
			return err
		}
	} else {
		s.mu.Lock()
		kept := make([]model.Review, 0, len(s.memory))
		for _, r := range s.memory {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		s.memory = kept
		s.mu.Unlock()
	}

	logger.Info("Review deleted", map[string]interface{}{
		"review_id": id,
	})

	if err := s.ReseedFeed(context.Background()); err != nil {
		logger.Warn("Feed reseed after delete failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

func (s *reviewService) ReseedFeed(ctx context.Context) error {
	var feed []model.Review

	if s.repo != nil {
		adminReviews, err := s.repo.ListAdminAuthored()
		if err != nil {
			return err
		}
		stored, err := s.repo.List()
		if err != nil {
			return err
		}
		byID := make(map[string]model.Review, len(stored))
		for _, row := range stored {
			byID[row.ID] = row
		}

		feed = adminReviews
		for _, static := range data.StaticReviews() {
			// Catalog rows carry persisted counters once seeded
			if row, ok := byID[static.ID]; ok {
				static.LikeCount = row.LikeCount
				static.ViewCount = row.ViewCount
			}
			feed = append(feed, static)
		}
	} else {
		s.mu.Lock()
		feed = append(feed, s.memory...)
		s.mu.Unlock()
		feed = append(feed, data.StaticReviews()...)
	}

	s.syncClient.Seed(feed)

	if err := s.syncClient.RefreshLikeCounts(ctx); err != nil {
		logger.Warn("Like count refresh failed during reseed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := s.syncClient.ReloadComments(ctx); err != nil {
		logger.Warn("Comment reload failed during reseed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

// getEditable fetches a review that the admin may modify
func (s *reviewService) getEditable(id string) (*model.Review, error) {
	if s.repo != nil {
		review, err := s.repo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrReviewNotFound
			}
			return nil, err
		}
		if review.Static {
			return nil, ErrStaticReview
		}
		return review, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memory {
		if s.memory[i].ID == id {
			review := s.memory[i]
			return &review, nil
		}
	}
	for _, static := range data.StaticReviews() {
		if static.ID == id {
			return nil, ErrStaticReview
		}
	}
	return nil, ErrReviewNotFound
}

func (s *reviewService) replaceInMemory(review model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memory {
		if s.memory[i].ID == review.ID {
			s.memory[i] = review
			return
		}
	}
}

func applyUpdate(review *model.Review, req *model.UpdateReviewRequest) {
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.ImageURL != nil {
		review.ImageURL = *req.ImageURL
	}
	if req.ImageURLs != nil {
		review.ImageURLs = pq.StringArray(req.ImageURLs)
	}
	if req.Review != nil {
		review.Review = *req.Review
	}
	if req.FirstHalf != nil {
		review.FirstHalf = *req.FirstHalf
	}
	if req.SecondHalf != nil {
		review.SecondHalf = *req.SecondHalf
	}
	if req.Positives != nil {
		review.Positives = *req.Positives
	}
	if req.Negatives != nil {
		review.Negatives = *req.Negatives
	}
	if req.Overall != nil {
		review.Overall = *req.Overall
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
}
