package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"time"

	"hazardwatch/internal/models"
	"hazardwatch/internal/repositories/interfaces"
	"hazardwatch/internal/utils"
	"hazardwatch/internal/validators"
	"hazardwatch/pkg/logger"
	"hazardwatch/pkg/storage"

	"github.com/gin-gonic/gin"
)

type HazardHandler struct {
	repo      interfaces.HazardRepository
	storage   storage.Provider
	estimator validators.CredibilityEstimator
	logger    *logger.Logger
	verbose   bool
}

// NewHazardHandler wires the hazard endpoints. verbose controls whether
// internal error detail is echoed to clients; it is always logged.
func NewHazardHandler(repo interfaces.HazardRepository, store storage.Provider, estimator validators.CredibilityEstimator, log *logger.Logger, verbose bool) *HazardHandler {
	return &HazardHandler{
		repo:      repo,
		storage:   store,
		estimator: estimator,
		logger:    log,
		verbose:   verbose,
	}
}

// ListHazards returns a filtered, sorted, paginated hazard listing.
func (h *HazardHandler) ListHazards(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := &models.HazardFilter{
		Severity:   models.Severity(c.Query("severity")),
		HazardType: models.HazardType(c.Query("hazardType")),
	}

	hazards, total, err := h.repo.List(c.Request.Context(), filter, params)
	if err != nil {
		h.internalError(c, "Failed to fetch hazards", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hazards":    hazards,
		"pagination": utils.CreatePaginationMeta(params, total),
	})
}

// GetHazard returns a single hazard by id.
func (h *HazardHandler) GetHazard(c *gin.Context) {
	hazard, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, hazard)
}

// CreateHazard validates and persists a new hazard report, with an optional
// single attached media file.
func (h *HazardHandler) CreateHazard(c *gin.Context) {
	input := h.bindInput(c)

	stored, ok := h.saveUpload(c)
	if !ok {
		return
	}
	if stored != nil {
		input.Media = &validators.MediaAttachment{
			URL:         stored.URL,
			ContentType: stored.ContentType,
		}
	}

	hazard, err := validators.ValidateCreate(input, h.estimator)
	if err != nil {
		h.discardUpload(c, stored)
		utils.ErrorResponseWithDetails(c, http.StatusBadRequest, "Failed to create hazard", errorDetails(err))
		return
	}

	created, err := h.repo.Create(c.Request.Context(), hazard)
	if err != nil {
		h.discardUpload(c, stored)
		h.internalError(c, "Failed to create hazard", err)
		return
	}

	h.logger.WithHazardID(created.ID.Hex()).Infof("hazard created: %s/%s", created.HazardType, created.Severity)
	c.JSON(http.StatusCreated, gin.H{"message": "Hazard created", "hazard": created})
}

// UpdateHazard applies a partial update, optionally appending one media file.
func (h *HazardHandler) UpdateHazard(c *gin.Context) {
	input := h.bindInput(c)

	stored, ok := h.saveUpload(c)
	if !ok {
		return
	}
	if stored != nil {
		input.Media = &validators.MediaAttachment{
			URL:         stored.URL,
			ContentType: stored.ContentType,
		}
	}

	update, err := validators.ValidateUpdate(input)
	if err != nil {
		h.discardUpload(c, stored)
		utils.ErrorResponseWithDetails(c, http.StatusBadRequest, "Failed to update hazard", errorDetails(err))
		return
	}

	hazard, err := h.repo.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.discardUpload(c, stored)
		h.lookupError(c, err)
		return
	}

	h.logger.WithHazardID(hazard.ID.Hex()).Info("hazard updated")
	c.JSON(http.StatusOK, gin.H{"message": "Hazard updated", "hazard": hazard})
}

// DeleteHazard removes the record and its stored media files.
func (h *HazardHandler) DeleteHazard(c *gin.Context) {
	hazard, err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.lookupError(c, err)
		return
	}

	// Media cleanup is best-effort; a missing file is not the caller's
	// problem.
	for _, file := range hazard.MediaFiles() {
		if err := h.storage.Delete(c.Request.Context(), file); err != nil {
			h.logger.WithError(err).Warnf("failed to delete media file %s", file)
		}
	}

	h.logger.WithHazardID(hazard.ID.Hex()).Info("hazard deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Hazard deleted"})
}

// HealthCheck reports service liveness.
func (h *HazardHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// bindInput pulls hazard fields out of the form body.
func (h *HazardHandler) bindInput(c *gin.Context) *validators.HazardInput {
	verified, hasVerified := c.GetPostForm("verified")

	return &validators.HazardInput{
		HazardType:  c.PostForm("hazardType"),
		Severity:    c.PostForm("severity"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Tags:        c.PostForm("tags"),
		Source:      c.PostForm("source"),
		ReportedBy:  c.PostForm("reportedBy"),
		Verified:    verified,
		HasVerified: hasVerified,
		Credibility: c.PostForm("credibilityScore"),
	}
}

// saveUpload stores the optional "file" form field. It returns ok=false when
// a response has already been written.
func (h *HazardHandler) saveUpload(c *gin.Context) (*storage.StoredFile, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, true
		}
		if errors.Is(err, multipart.ErrMessageTooLarge) {
			utils.BadRequestResponse(c, utils.ErrFileTooLargeMsg)
			return nil, false
		}
		utils.BadRequestResponse(c, "Invalid file upload")
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.internalError(c, "Failed to read upload", err)
		return nil, false
	}
	defer file.Close()

	stored, err := h.storage.Save(c.Request.Context(), &storage.SaveRequest{
		Key:         utils.GenerateUniqueFilename(header.Filename),
		Reader:      file,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			utils.BadRequestResponse(c, utils.ErrFileTooLargeMsg)
			return nil, false
		}
		h.internalError(c, "Failed to store upload", err)
		return nil, false
	}

	return stored, true
}

// discardUpload removes an orphaned stored file after a failed write.
func (h *HazardHandler) discardUpload(c *gin.Context, stored *storage.StoredFile) {
	if stored == nil {
		return
	}
	if err := h.storage.Delete(c.Request.Context(), stored.Key); err != nil {
		h.logger.WithError(err).Warnf("failed to delete orphaned upload %s", stored.Key)
	}
}

// lookupError maps identifier failures onto their status codes.
func (h *HazardHandler) lookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, interfaces.ErrInvalidHazardID):
		utils.BadRequestResponse(c, utils.ErrInvalidHazardIDMsg)
	case errors.Is(err, interfaces.ErrHazardNotFound):
		utils.NotFoundResponse(c)
	default:
		h.internalError(c, utils.ErrInternalServerMsg, err)
	}
}

func (h *HazardHandler) internalError(c *gin.Context, message string, err error) {
	h.logger.WithError(err).Error(message)

	details := "Something went wrong"
	if h.verbose {
		details = err.Error()
	}
	utils.ErrorResponseWithDetails(c, http.StatusInternalServerError, message, details)
}

// errorDetails shapes a validation failure for the response payload.
func errorDetails(err error) interface{} {
	var errs validators.ValidationErrors
	if errors.As(err, &errs) {
		return errs.Details()
	}
	return err.Error()
}
