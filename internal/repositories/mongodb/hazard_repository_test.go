package mongodb

import (
	"testing"

	"hazardwatch/internal/models"
	"hazardwatch/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildUpdateDocument_SetFields(t *testing.T) {
	severity := models.SeverityHigh
	description := "updated description"
	verified := true

	doc := buildUpdateDocument(&validators.HazardUpdate{
		Severity:    &severity,
		Description: &description,
		Verified:    &verified,
	})

	set, ok := doc["$set"].(bson.M)
	require.True(t, ok)

	assert.Equal(t, models.SeverityHigh, set["severity"])
	assert.Equal(t, "updated description", set["description"])
	assert.Equal(t, true, set["verified"])
	assert.Contains(t, set, "updated_at")
	assert.NotContains(t, set, "hazard_type")
	assert.NotContains(t, doc, "$push")
}

func TestBuildUpdateDocument_MediaAppendsNeverReplace(t *testing.T) {
	doc := buildUpdateDocument(&validators.HazardUpdate{
		AppendImage: "/uploads/x.jpg",
	})

	push, ok := doc["$push"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "/uploads/x.jpg", push["images"])
	assert.NotContains(t, push, "videos")

	set := doc["$set"].(bson.M)
	assert.NotContains(t, set, "images")
}

func TestBuildUpdateDocument_TagsReplacedWhenSupplied(t *testing.T) {
	doc := buildUpdateDocument(&validators.HazardUpdate{
		Tags: []models.Tag{models.TagInfo},
	})

	set := doc["$set"].(bson.M)
	assert.Equal(t, []models.Tag{models.TagInfo}, set["tags"])
}
