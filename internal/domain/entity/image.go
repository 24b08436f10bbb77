package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// BBoxPadding is the fixed padding in degrees applied on each side of a
// coordinate to derive the imagery region of interest.
const BBoxPadding = 0.1

// BoundingBox is the rectangular region of interest for an imagery request.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// BoundingBoxAround derives the region of interest for a coordinate by
// applying the fixed padding on each side.
func BoundingBoxAround(lat, lng float64) BoundingBox {
	return BoundingBox{
		MinLat: lat - BBoxPadding,
		MaxLat: lat + BBoxPadding,
		MinLng: lng - BBoxPadding,
		MaxLng: lng + BBoxPadding,
	}
}

// Bound converts the box to an orb.Bound (lng/lat order) for geometry
// interop and provider wire formats.
func (b BoundingBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLng, b.MinLat},
		Max: orb.Point{b.MaxLng, b.MaxLat},
	}
}

// ImageMeta carries upload metadata for a fetched image.
type ImageMeta struct {
	UploadedAt time.Time `json:"uploadedAt"`
	Size       int64     `json:"size"`
	Location   string    `json:"location"`
}

// Image is the record of a fetched satellite image. It is created
// exclusively by the acquisition worker on a successful fetch and upload,
// and is immutable afterwards.
type Image struct {
	ID        uuid.UUID   `json:"id"`
	Key       string      `json:"key"`
	BBox      BoundingBox `json:"bbox"`
	Meta      ImageMeta   `json:"meta"`
	CreatedAt time.Time   `json:"created_at"`
}
