// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PhotoUpload carries the raw bytes of an uploaded photo before validation.
type PhotoUpload struct {
	Filename string
	Data     []byte
}

// OptimizedPhoto is the result of re-encoding an accepted upload. The output
// encoding is always JPEG.
type OptimizedPhoto struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

// ImageProcessor validates and optimizes uploaded place photos. It abstracts
// the decoding/encoding machinery away from the use cases.
type ImageProcessor interface {
	// Validate rejects uploads that exceed the size limit, are not
	// JPEG/PNG/WEBP, or exceed the maximum dimensions. The error message
	// names the violated rule.
	Validate(photo *PhotoUpload) error

	// Optimize re-encodes an accepted upload to JPEG. Validate must have
	// passed first; Optimize may still fail on undecodable input.
	Optimize(photo *PhotoUpload) (*OptimizedPhoto, error)
}
