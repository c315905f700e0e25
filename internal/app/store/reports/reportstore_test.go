package reportstore_test

import (
	"errors"
	"testing"
	"time"

	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/status"
	"github.com/thanachok11/CIS-Help-Me/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, reportstore.NewReport{
		UserID:       owner,
		Type:         "fire",
		Description:  "smoke on the third floor",
		LocationText: "Building A",
		Latitude:     13.7563,
		Longitude:    100.5018,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.UserID != owner {
		t.Errorf("UserID: got %v, want %v", created.UserID, owner)
	}
	if created.Status != status.UnderReview {
		t.Errorf("expected status %q, got %q", status.UnderReview, created.Status)
	}
	if created.ActionNotes != "" {
		t.Errorf("expected empty action notes, got %q", created.ActionNotes)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected UpdatedAt == CreatedAt, got %v and %v", created.UpdatedAt, created.CreatedAt)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !errors.Is(err, reportstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListByOwner_FiltersAndSorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()
	base := time.Now().UTC().Add(-time.Hour)

	older := fixtures.CreateReport(ctx, owner, "fire", base)
	newer := fixtures.CreateReport(ctx, owner, "accident", base.Add(10*time.Minute))
	fixtures.CreateReport(ctx, other, "medical", base.Add(20*time.Minute))

	got, err := store.ListByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Errorf("expected newest-first order [%v %v], got [%v %v]",
			newer.ID.Hex(), older.ID.Hex(), got[0].ID.Hex(), got[1].ID.Hex())
	}
}

func TestStore_ListByOwner_EmptyIsNotNil(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.ListByOwner(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no reports, got %d", len(got))
	}
}

func TestStore_ListCreatedAfter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	base := time.Now().UTC().Add(-time.Hour)

	fixtures.CreateReport(ctx, owner, "fire", base)
	boundary := fixtures.CreateReport(ctx, owner, "accident", base.Add(10*time.Minute))
	after := fixtures.CreateReport(ctx, owner, "medical", base.Add(20*time.Minute))

	// Strictly-after: the boundary report itself is excluded.
	got, err := store.ListCreatedAfter(ctx, boundary.CreatedAt)
	if err != nil {
		t.Fatalf("ListCreatedAfter failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 report, got %d", len(got))
	}
	if got[0].ID != after.ID {
		t.Errorf("expected report %v, got %v", after.ID.Hex(), got[0].ID.Hex())
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "fire", time.Now().UTC().Add(-time.Hour))

	updated, err := store.UpdateStatus(ctx, report.ID, status.InProgress, "crew dispatched")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	if updated.Status != status.InProgress {
		t.Errorf("expected status %q, got %q", status.InProgress, updated.Status)
	}
	if updated.ActionNotes != "crew dispatched" {
		t.Errorf("expected action notes to be set, got %q", updated.ActionNotes)
	}
	if !updated.UpdatedAt.After(report.UpdatedAt) {
		t.Errorf("expected UpdatedAt to advance past %v, got %v", report.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(report.CreatedAt.Truncate(time.Millisecond)) {
		t.Errorf("expected CreatedAt unchanged, got %v", updated.CreatedAt)
	}
}

func TestStore_UpdateStatus_EmptyNotesPreserved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "fire", time.Now().UTC().Add(-time.Hour))

	if _, err := store.UpdateStatus(ctx, report.ID, status.InProgress, "initial notes"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	// A later update with no notes must keep the earlier notes intact.
	updated, err := store.UpdateStatus(ctx, report.ID, status.Resolved, "")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.ActionNotes != "initial notes" {
		t.Errorf("expected notes preserved, got %q", updated.ActionNotes)
	}
	if updated.Status != status.Resolved {
		t.Errorf("expected status %q, got %q", status.Resolved, updated.Status)
	}
}

func TestStore_UpdateStatus_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "fire", time.Now().UTC().Add(-time.Hour))

	first, err := store.UpdateStatus(ctx, report.ID, status.Resolved, "")
	if err != nil {
		t.Fatalf("first UpdateStatus failed: %v", err)
	}

	// Re-resolving succeeds and refreshes updated_at again.
	second, err := store.UpdateStatus(ctx, report.ID, status.Resolved, "")
	if err != nil {
		t.Fatalf("second UpdateStatus failed: %v", err)
	}
	if second.Status != status.Resolved {
		t.Errorf("expected status %q, got %q", status.Resolved, second.Status)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("expected UpdatedAt to not go backwards: %v then %v", first.UpdatedAt, second.UpdatedAt)
	}
}

func TestStore_UpdateStatus_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "fire", time.Now().UTC().Add(-time.Hour))

	_, err := store.UpdateStatus(ctx, report.ID, "escalated", "")
	if !errors.Is(err, reportstore.ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}

	// Report must be untouched after the rejected update.
	got, err := store.GetByID(ctx, report.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != status.UnderReview {
		t.Errorf("expected status unchanged, got %q", got.Status)
	}
}

func TestStore_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.UpdateStatus(ctx, primitive.NewObjectID(), status.Resolved, "")
	if !errors.Is(err, reportstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListResolved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	base := time.Now().UTC().Add(-time.Hour)

	fixtures.CreateReport(ctx, owner, "fire", base)
	resolved := fixtures.CreateResolvedReport(ctx, owner, "accident", base, 15*time.Minute)

	got, err := store.ListResolved(ctx)
	if err != nil {
		t.Fatalf("ListResolved failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 resolved report, got %d", len(got))
	}
	if got[0].ID != resolved.ID {
		t.Errorf("expected report %v, got %v", resolved.ID.Hex(), got[0].ID.Hex())
	}
}

func TestStore_CountByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	base := time.Now().UTC().Add(-time.Hour)

	fixtures.CreateReport(ctx, owner, "fire", base)
	fixtures.CreateReport(ctx, owner, "fire", base.Add(time.Minute))
	fixtures.CreateReport(ctx, owner, "accident", base.Add(2*time.Minute))

	rows, err := store.CountByType(ctx)
	if err != nil {
		t.Fatalf("CountByType failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Type != "fire" || rows[0].Count != 2 {
		t.Errorf("expected fire=2 first, got %s=%d", rows[0].Type, rows[0].Count)
	}
	if rows[1].Type != "accident" || rows[1].Count != 1 {
		t.Errorf("expected accident=1 second, got %s=%d", rows[1].Type, rows[1].Count)
	}
}
