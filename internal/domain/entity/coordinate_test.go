package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxAround(t *testing.T) {
	bbox := BoundingBoxAround(23.0, 87.0)

	assert.InDelta(t, 22.9, bbox.MinLat, 1e-9)
	assert.InDelta(t, 23.1, bbox.MaxLat, 1e-9)
	assert.InDelta(t, 86.9, bbox.MinLng, 1e-9)
	assert.InDelta(t, 87.1, bbox.MaxLng, 1e-9)
}

func TestBoundingBox_Bound_LngLatOrder(t *testing.T) {
	bbox := BoundingBoxAround(12.97, 77.59)
	bound := bbox.Bound()

	assert.InDelta(t, 77.49, bound.Left(), 1e-9)
	assert.InDelta(t, 12.87, bound.Bottom(), 1e-9)
	assert.InDelta(t, 77.69, bound.Right(), 1e-9)
	assert.InDelta(t, 13.07, bound.Top(), 1e-9)
}

func TestCoordinateStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from CoordinateStatus
		to   CoordinateStatus
		want bool
	}{
		{name: "queued to fetching", from: StatusQueued, to: StatusFetching, want: true},
		{name: "queued skips to fetched", from: StatusQueued, to: StatusFetched, want: false},
		{name: "fetching to fetched", from: StatusFetching, to: StatusFetched, want: true},
		{name: "fetching to failed", from: StatusFetching, to: StatusFailed, want: true},
		{name: "fetched to processed", from: StatusFetched, to: StatusProcessed, want: true},
		{name: "fetched back to queued", from: StatusFetched, to: StatusQueued, want: false},
		{name: "processed is terminal", from: StatusProcessed, to: StatusFetching, want: false},
		{name: "failed re-entered by redelivery", from: StatusFailed, to: StatusFetching, want: true},
		{name: "failed to processed", from: StatusFailed, to: StatusProcessed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCoordinateStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusQueued.IsTerminal())
	assert.False(t, StatusFetching.IsTerminal())
	assert.False(t, StatusFetched.IsTerminal())
	assert.True(t, StatusProcessed.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
