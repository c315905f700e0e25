// Package reportstore persists emergency incident reports.
//
// All mutations of an existing report go through UpdateStatus, which is a
// single atomic document update so concurrent staff actions against the
// same report serialize at the storage layer (last write wins) instead of
// racing a read-modify-write cycle in the handler.
package reportstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/status"
	"github.com/thanachok11/CIS-Help-Me/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned when the referenced report does not exist.
	ErrNotFound = errors.New("report not found")
	// ErrBadStatus is returned for status values outside the accepted set.
	ErrBadStatus = errors.New(`status must be "under_review"|"in_progress"|"resolved"`)
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reports")}
}

// NewReport carries the caller-supplied fields for report creation. The
// owner comes from the authenticated principal, never from request input.
type NewReport struct {
	UserID       primitive.ObjectID
	Type         string
	Description  string
	LocationText string
	Latitude     float64
	Longitude    float64
	ImageURL     string
}

// Create inserts a new report. Every report starts under review with empty
// action notes and identical created/updated timestamps.
func (s *Store) Create(ctx context.Context, n NewReport) (models.Report, error) {
	now := time.Now().UTC()
	r := models.Report{
		ID:           primitive.NewObjectID(),
		UserID:       n.UserID,
		Type:         n.Type,
		Description:  n.Description,
		LocationText: n.LocationText,
		Latitude:     n.Latitude,
		Longitude:    n.Longitude,
		ImageURL:     n.ImageURL,
		Status:       status.UnderReview,
		ActionNotes:  "",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Report{}, fmt.Errorf("insert report: %w", err)
	}
	return r, nil
}

// GetByID loads one report. Returns ErrNotFound if it does not exist.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var r models.Report
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&r); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListByOwner returns the reports submitted by one user, newest first.
// Owner filtering happens in the query so other users' records never leave
// the database.
func (s *Store) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Report, error) {
	return s.list(ctx, bson.M{"user_id": owner})
}

// ListAll returns every report, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Report, error) {
	return s.list(ctx, bson.M{})
}

// ListCreatedAfter returns reports created strictly after t, newest first.
// Callers poll with their last-seen timestamp.
func (s *Store) ListCreatedAfter(ctx context.Context, t time.Time) ([]models.Report, error) {
	return s.list(ctx, bson.M{"created_at": bson.M{"$gt": t}})
}

// ListResolved returns the resolved reports, newest first.
func (s *Store) ListResolved(ctx context.Context) ([]models.Report, error) {
	return s.list(ctx, bson.M{"status": status.Resolved})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Report, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	reports := []models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus sets a report's status and refreshes updated_at in one
// atomic update, overwriting action notes only when notes is non-empty.
// The returned report reflects the applied update. Invalid status values
// are rejected before any lookup.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus, notes string) (*models.Report, error) {
	if !status.IsValid(newStatus) {
		return nil, ErrBadStatus
	}

	set := bson.M{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	}
	if notes != "" {
		set["action_notes"] = notes
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var r models.Report
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&r)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

// TypeCount is one row of the count-by-type aggregation.
type TypeCount struct {
	Type  string `bson:"_id"`
	Count int64  `bson:"count"`
}

// CountByType groups all reports by their type code. Rows come back with
// the largest groups first, ties broken by type code, so listings are
// stable across calls.
func (s *Store) CountByType(ctx context.Context) ([]TypeCount, error) {
	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rows := []TypeCount{}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
