package validators

import (
	"encoding/json"
	"fmt"
	"strconv"

	"hazardwatch/internal/models"
	"hazardwatch/internal/utils"
)

// CredibilityEstimator scores a hazard from its severity.
type CredibilityEstimator interface {
	Estimate(severity models.Severity) int
}

// MediaAttachment describes a file already accepted by the upload
// collaborator, to be classified into images or videos. Anything that is
// not an image is filed as a video, so every stored upload ends up
// referenced by the record.
type MediaAttachment struct {
	URL         string
	ContentType string
}

// HazardInput carries raw request fields. Empty strings mean the field was
// not supplied; Verified needs an explicit presence flag since "false" and
// absent must be told apart on update.
type HazardInput struct {
	HazardType  string
	Severity    string
	Description string
	Location    string
	Tags        string
	Source      string
	ReportedBy  string
	Verified    string
	HasVerified bool
	Credibility string
	Media       *MediaAttachment
}

// HazardUpdate is a validated partial update. Nil pointers leave the field
// untouched. AppendImage/AppendVideo hold a single media URL to append.
type HazardUpdate struct {
	HazardType  *models.HazardType
	Severity    *models.Severity
	Description *string
	Location    *models.GeoPoint
	Tags        []models.Tag
	Source      *models.Source
	ReportedBy  *string
	Verified    *bool
	AppendImage string
	AppendVideo string
}

// ValidateCreate checks all required fields, normalizes the location, parses
// tags and derives the credibility score. It returns a hazard ready for
// insertion; CreatedAt/UpdatedAt and the ID are left to the repository.
func ValidateCreate(input *HazardInput, estimator CredibilityEstimator) (*models.Hazard, error) {
	var errs ValidationErrors

	hazardType := models.HazardType(input.HazardType)
	switch {
	case input.HazardType == "":
		errs = append(errs, fieldError("hazardType", "", "hazardType is required"))
	case !hazardType.IsValid():
		errs = append(errs, fieldError("hazardType", input.HazardType, "invalid hazard type"))
	}

	severity := models.Severity(input.Severity)
	switch {
	case input.Severity == "":
		errs = append(errs, fieldError("severity", "", "severity is required"))
	case !severity.IsValid():
		errs = append(errs, fieldError("severity", input.Severity, "invalid severity"))
	}

	if input.Description == "" {
		errs = append(errs, fieldError("description", "", "description is required"))
	} else if len(input.Description) > models.MaxDescriptionLength {
		errs = append(errs, fieldError("description", "", fmt.Sprintf("description must be at most %d characters", models.MaxDescriptionLength)))
	}

	var location models.GeoPoint
	if input.Location == "" {
		errs = append(errs, fieldError("location", "", "location is required"))
	} else {
		point, err := NormalizeLocation(input.Location)
		if err != nil {
			errs = append(errs, fieldError("location", input.Location, err.Error()))
		} else {
			location = point
		}
	}

	tags, tagErrs := validateTags(input.Tags)
	errs = append(errs, tagErrs...)

	source := models.SourceCitizenReport
	if input.Source != "" {
		source = models.Source(input.Source)
		if !source.IsValid() {
			errs = append(errs, fieldError("source", input.Source, "invalid source"))
		}
	}

	reportedBy := "Anonymous"
	if input.ReportedBy != "" {
		reportedBy = input.ReportedBy
	}

	score := 0
	if input.Credibility != "" {
		parsed, err := strconv.Atoi(input.Credibility)
		if err != nil || parsed < 0 || parsed > 100 {
			errs = append(errs, fieldError("credibilityScore", input.Credibility, "credibilityScore must be an integer between 0 and 100"))
		} else {
			score = parsed
		}
	} else if estimator != nil {
		score = estimator.Estimate(severity)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	hazard := &models.Hazard{
		HazardType:       hazardType,
		Severity:         severity,
		Description:      input.Description,
		Location:         location,
		Tags:             tags,
		Images:           []string{},
		Videos:           []string{},
		CredibilityScore: score,
		Source:           source,
		Verified:         input.HasVerified && input.Verified == "true",
		ReportedBy:       reportedBy,
	}

	if input.Media != nil {
		if utils.IsImageContentType(input.Media.ContentType) {
			hazard.Images = []string{input.Media.URL}
		} else {
			hazard.Videos = []string{input.Media.URL}
		}
	}

	return hazard, nil
}

// ValidateUpdate checks only the supplied fields and builds a partial update.
func ValidateUpdate(input *HazardInput) (*HazardUpdate, error) {
	var errs ValidationErrors
	update := &HazardUpdate{}

	if input.HazardType != "" {
		hazardType := models.HazardType(input.HazardType)
		if !hazardType.IsValid() {
			errs = append(errs, fieldError("hazardType", input.HazardType, "invalid hazard type"))
		} else {
			update.HazardType = &hazardType
		}
	}

	if input.Severity != "" {
		severity := models.Severity(input.Severity)
		if !severity.IsValid() {
			errs = append(errs, fieldError("severity", input.Severity, "invalid severity"))
		} else {
			update.Severity = &severity
		}
	}

	if input.Description != "" {
		if len(input.Description) > models.MaxDescriptionLength {
			errs = append(errs, fieldError("description", "", fmt.Sprintf("description must be at most %d characters", models.MaxDescriptionLength)))
		} else {
			update.Description = &input.Description
		}
	}

	if input.Location != "" {
		point, err := NormalizeLocation(input.Location)
		if err != nil {
			errs = append(errs, fieldError("location", input.Location, err.Error()))
		} else {
			update.Location = &point
		}
	}

	if input.Tags != "" {
		tags, tagErrs := validateTags(input.Tags)
		if len(tagErrs) > 0 {
			errs = append(errs, tagErrs...)
		} else {
			update.Tags = tags
		}
	}

	if input.Source != "" {
		source := models.Source(input.Source)
		if !source.IsValid() {
			errs = append(errs, fieldError("source", input.Source, "invalid source"))
		} else {
			update.Source = &source
		}
	}

	if input.ReportedBy != "" {
		update.ReportedBy = &input.ReportedBy
	}

	if input.HasVerified {
		verified := input.Verified == "true"
		update.Verified = &verified
	}

	if input.Media != nil {
		if utils.IsImageContentType(input.Media.ContentType) {
			update.AppendImage = input.Media.URL
		} else {
			update.AppendVideo = input.Media.URL
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return update, nil
}

// validateTags parses the raw tag input. A JSON array is enum-checked
// element by element, duplicates and order preserved. Anything that fails to
// parse as one degrades to a single-element list stored as given, never an
// error.
func validateTags(raw string) ([]models.Tag, ValidationErrors) {
	if raw == "" {
		return nil, nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []models.Tag{models.Tag(raw)}, nil
	}

	var errs ValidationErrors
	tags := make([]models.Tag, 0, len(parsed))
	for _, t := range parsed {
		tag := models.Tag(t)
		if !tag.IsValid() {
			errs = append(errs, fieldError("tags", t, "invalid tag"))
			continue
		}
		tags = append(tags, tag)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tags, nil
}
