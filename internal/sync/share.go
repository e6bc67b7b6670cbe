package sync

import (
	"fmt"
	"net/url"

	"github.com/smreview/smreview-backend/internal/app/model"
)

// Share methods in degrade order. The browser tries each in turn:
// native share sheet, then clipboard copy, then showing the plain
// text for manual copying. The server supplies the payload and the
// ordered method hints since the actual capabilities live client-side.
const (
	ShareMethodNative    = "native"
	ShareMethodClipboard = "clipboard"
	ShareMethodText      = "text"
)

// SharePlan is the response of the share endpoint
type SharePlan struct {
	Payload model.SharePayload `json:"payload"`
	Methods []string           `json:"methods"`
}

// BuildSharePlan assembles the share content for a review
func BuildSharePlan(review *model.Review, baseURL string) SharePlan {
	shareURL := ""
	if baseURL != "" {
		shareURL = fmt.Sprintf("%s/review/%s", baseURL, url.PathEscape(review.ID))
	}
	return SharePlan{
		Payload: model.SharePayload{
			Title: review.Title,
			Text:  fmt.Sprintf("%s - %s", review.Title, review.Rating),
			URL:   shareURL,
		},
		Methods: []string{ShareMethodNative, ShareMethodClipboard, ShareMethodText},
	}
}
