package exif

import (
	"bytes"

	"github.com/rwcarlsen/goexif/exif"

	"geoshare/domain/services"
)

// Extractor reads GPS coordinates and the capture timestamp out of JPEG
// EXIF data. Extraction never fails: images without EXIF, non-JPEG files
// and corrupt segments all yield empty metadata.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Extract(data []byte) services.PhotoMetadata {
	var meta services.PhotoMetadata

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return meta
	}

	if lat, lon, err := x.LatLong(); err == nil {
		meta.Latitude = &lat
		meta.Longitude = &lon
	}

	if taken, err := x.DateTime(); err == nil {
		meta.TakenAt = &taken
	}

	return meta
}
