package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hazardwatch/internal/models"
	"hazardwatch/internal/repositories/interfaces"
	"hazardwatch/internal/utils"
	"hazardwatch/internal/validators"
	"hazardwatch/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type hazardRepository struct {
	collection *mongo.Collection
}

func NewHazardRepository(db *database.MongoDB) interfaces.HazardRepository {
	return &hazardRepository{
		collection: db.Collection("hazards"),
	}
}

func (r *hazardRepository) List(ctx context.Context, filter *models.HazardFilter, params *utils.PaginationParams) ([]*models.Hazard, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Severity != "" {
			query["severity"] = filter.Severity
		}
		if filter.HazardType != "" {
			query["hazard_type"] = filter.HazardType
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count hazards: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: utils.DefaultSortField, Value: -1}})
	if params != nil {
		opts = params.GetFindOptions()
	}

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find hazards: %w", err)
	}
	defer cursor.Close(ctx)

	hazards := []*models.Hazard{}
	if err := cursor.All(ctx, &hazards); err != nil {
		return nil, 0, fmt.Errorf("failed to decode hazards: %w", err)
	}

	return hazards, total, nil
}

func (r *hazardRepository) GetByID(ctx context.Context, id string) (*models.Hazard, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, interfaces.ErrInvalidHazardID
	}

	var hazard models.Hazard
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hazard)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to get hazard: %w", err)
	}

	return &hazard, nil
}

func (r *hazardRepository) Create(ctx context.Context, hazard *models.Hazard) (*models.Hazard, error) {
	hazard.ID = primitive.NewObjectID()
	now := time.Now()
	hazard.CreatedAt = now
	hazard.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, hazard)
	if err != nil {
		return nil, fmt.Errorf("failed to create hazard: %w", err)
	}

	return hazard, nil
}

func (r *hazardRepository) Update(ctx context.Context, id string, update *validators.HazardUpdate) (*models.Hazard, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, interfaces.ErrInvalidHazardID
	}

	doc := buildUpdateDocument(update)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var hazard models.Hazard
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, doc, opts).Decode(&hazard)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to update hazard: %w", err)
	}

	return &hazard, nil
}

func (r *hazardRepository) Delete(ctx context.Context, id string) (*models.Hazard, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, interfaces.ErrInvalidHazardID
	}

	var hazard models.Hazard
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&hazard)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrHazardNotFound
		}
		return nil, fmt.Errorf("failed to delete hazard: %w", err)
	}

	return &hazard, nil
}

// buildUpdateDocument translates a validated partial update into a Mongo
// update document. Media URLs are appended with $push, never overwritten.
func buildUpdateDocument(update *validators.HazardUpdate) bson.M {
	set := bson.M{"updated_at": time.Now()}

	if update.HazardType != nil {
		set["hazard_type"] = *update.HazardType
	}
	if update.Severity != nil {
		set["severity"] = *update.Severity
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Tags != nil {
		set["tags"] = update.Tags
	}
	if update.Source != nil {
		set["source"] = *update.Source
	}
	if update.ReportedBy != nil {
		set["reported_by"] = *update.ReportedBy
	}
	if update.Verified != nil {
		set["verified"] = *update.Verified
	}

	doc := bson.M{"$set": set}

	push := bson.M{}
	if update.AppendImage != "" {
		push["images"] = update.AppendImage
	}
	if update.AppendVideo != "" {
		push["videos"] = update.AppendVideo
	}
	if len(push) > 0 {
		doc["$push"] = push
	}

	return doc
}
