package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, HazardTypeTsunami.IsValid())
	assert.False(t, HazardType("Meteor").IsValid())

	assert.True(t, SeverityModerate.IsValid())
	assert.False(t, Severity("catastrophic").IsValid())

	assert.True(t, TagFun.IsValid())
	assert.False(t, Tag("panic").IsValid())

	assert.True(t, SourceOceanBuoy.IsValid())
	assert.False(t, Source("Carrier Pigeon").IsValid())
}

func TestGeoPointAccessors(t *testing.T) {
	p := NewGeoPoint(-118.25, 34.05)

	assert.Equal(t, "Point", p.Type)
	assert.Equal(t, -118.25, p.Longitude())
	assert.Equal(t, 34.05, p.Latitude())

	var empty GeoPoint
	assert.Zero(t, empty.Longitude())
	assert.Zero(t, empty.Latitude())
}

func TestMediaFiles(t *testing.T) {
	h := &Hazard{
		Images: []string{"/uploads/a.jpg"},
		Videos: []string{"/uploads/b.mp4", "/uploads/c.mp4"},
	}

	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/b.mp4", "/uploads/c.mp4"}, h.MediaFiles())
	assert.Empty(t, (&Hazard{}).MediaFiles())
}
