package util

import (
	"github.com/google/uuid"
)

// NewViewerID mints an opaque per-browser viewer token.
// It identifies a browser for idempotency bookkeeping only
// and is not an authentication credential.
func NewViewerID() string {
	return uuid.NewString()
}

// NewUploadKey builds an object key for an uploaded file under the given folder
func NewUploadKey(folder, filename string) string {
	return folder + "/" + uuid.NewString() + "-" + filename
}
