package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type HazardType string

const (
	HazardTypeEarthquake HazardType = "Earthquake"
	HazardTypeFlood      HazardType = "Flood"
	HazardTypeWildfire   HazardType = "Wildfire"
	HazardTypeTornado    HazardType = "Tornado"
	HazardTypeLandslide  HazardType = "Landslide"
	HazardTypeTsunami    HazardType = "Tsunami"
)

func (t HazardType) IsValid() bool {
	switch t {
	case HazardTypeEarthquake, HazardTypeFlood, HazardTypeWildfire,
		HazardTypeTornado, HazardTypeLandslide, HazardTypeTsunami:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeveritySevere   Severity = "severe"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityModerate, SeverityHigh, SeveritySevere:
		return true
	}
	return false
}

type Tag string

const (
	TagHelp    Tag = "help"
	TagWarning Tag = "warning"
	TagInfo    Tag = "info"
	TagFun     Tag = "fun"
)

func (t Tag) IsValid() bool {
	switch t {
	case TagHelp, TagWarning, TagInfo, TagFun:
		return true
	}
	return false
}

type Source string

const (
	SourceCitizenReport Source = "Citizen Report"
	SourceNewsAgency    Source = "News Agency"
	SourceSensorData    Source = "Sensor Data"
	SourceDroneFootage  Source = "Drone Footage"
	SourceOceanBuoy     Source = "Ocean Buoy"
)

func (s Source) IsValid() bool {
	switch s {
	case SourceCitizenReport, SourceNewsAgency, SourceSensorData,
		SourceDroneFootage, SourceOceanBuoy:
		return true
	}
	return false
}

const MaxDescriptionLength = 1000

// GeoPoint is a GeoJSON point. Coordinates are stored [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (p GeoPoint) Longitude() float64 {
	if len(p.Coordinates) >= 1 {
		return p.Coordinates[0]
	}
	return 0
}

func (p GeoPoint) Latitude() float64 {
	if len(p.Coordinates) >= 2 {
		return p.Coordinates[1]
	}
	return 0
}

type Hazard struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	HazardType       HazardType         `json:"hazardType" bson:"hazard_type"`
	Severity         Severity           `json:"severity" bson:"severity"`
	Description      string             `json:"description" bson:"description"`
	Location         GeoPoint           `json:"location" bson:"location"`
	Tags             []Tag              `json:"tags" bson:"tags"`
	Images           []string           `json:"images" bson:"images"`
	Videos           []string           `json:"videos" bson:"videos"`
	CredibilityScore int                `json:"credibilityScore" bson:"credibility_score"`
	Source           Source             `json:"source" bson:"source"`
	Verified         bool               `json:"verified" bson:"verified"`
	ReportedBy       string             `json:"reportedBy" bson:"reported_by"`
	CreatedAt        time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updated_at"`
}

// MediaFiles returns every stored media URL referenced by the hazard.
func (h *Hazard) MediaFiles() []string {
	files := make([]string, 0, len(h.Images)+len(h.Videos))
	files = append(files, h.Images...)
	files = append(files, h.Videos...)
	return files
}

// HazardFilter narrows list queries. Zero values mean unconstrained.
type HazardFilter struct {
	Severity   Severity
	HazardType HazardType
}
