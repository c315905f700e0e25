package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thanachok11/CIS-Help-Me/internal/app/system/authz"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/status"
	"github.com/thanachok11/CIS-Help-Me/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, studentID, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         name,
		Phone:        "0812345678",
		StudentID:    studentID,
		Residence:    "Dorm 4",
		PasswordHash: "$2a$10$fixturehashfixturehashfixturehashfixtu",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateMember creates a test member user.
func (f *Fixtures) CreateMember(ctx context.Context, name, studentID string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, studentID, authz.RoleMember)
}

// CreateStaff creates a test staff user.
func (f *Fixtures) CreateStaff(ctx context.Context, name, studentID string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, name, studentID, authz.RoleStaff)
}

// CreateReport inserts a report owned by ownerID with the given type and
// creation time, still under review.
func (f *Fixtures) CreateReport(ctx context.Context, ownerID primitive.ObjectID, reportType string, createdAt time.Time) models.Report {
	f.t.Helper()

	report := models.Report{
		ID:           primitive.NewObjectID(),
		UserID:       ownerID,
		Type:         reportType,
		Description:  "Test incident description",
		LocationText: "Building A, floor 2",
		Latitude:     13.7563,
		Longitude:    100.5018,
		Status:       status.UnderReview,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}

	if _, err := f.db.Collection("reports").InsertOne(ctx, report); err != nil {
		f.t.Fatalf("failed to create test report: %v", err)
	}
	return report
}

// CreateResolvedReport inserts a resolved report whose updated_at is
// createdAt plus responseTime, mimicking a report resolved after that long.
func (f *Fixtures) CreateResolvedReport(ctx context.Context, ownerID primitive.ObjectID, reportType string, createdAt time.Time, responseTime time.Duration) models.Report {
	f.t.Helper()

	report := models.Report{
		ID:           primitive.NewObjectID(),
		UserID:       ownerID,
		Type:         reportType,
		Description:  "Resolved incident",
		LocationText: "Building B",
		Latitude:     13.7563,
		Longitude:    100.5018,
		Status:       status.Resolved,
		ActionNotes:  "Handled by on-duty staff",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt.Add(responseTime),
	}

	if _, err := f.db.Collection("reports").InsertOne(ctx, report); err != nil {
		f.t.Fatalf("failed to create resolved test report: %v", err)
	}
	return report
}
