// Package entity contains the core business objects of the project.
package entity

import "time"

// PhotoAsset describes a stored, optimized place photo. Uploads are
// re-encoded to JPEG before storage, so ContentType is always image/jpeg.
type PhotoAsset struct {
	Key         string    // Storage key of the asset, e.g. "places/photos/<uuid>.jpg".
	ContentType string    // MIME type of the stored bytes.
	Size        int64     // Size of the stored bytes.
	Width       int       // Pixel width after optimization.
	Height      int       // Pixel height after optimization.
	UploadedAt  time.Time // Timestamp of when the asset was stored.
}
