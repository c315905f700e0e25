// internal/domain/models/report.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is one submitted emergency incident.
//
// NOTE:
//   - UserID is the reporting member and is fixed at creation; it is never
//     taken from request input.
//   - UpdatedAt doubles as the resolution time once Status becomes
//     "resolved". There is no separate resolved_at field, so editing a
//     resolved report shifts its apparent resolution time. Staff are
//     expected to leave resolved reports alone.
type Report struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"userId"`
	Type         string             `bson:"type" json:"type"`
	Description  string             `bson:"description" json:"description"`
	LocationText string             `bson:"location_text" json:"locationText"`
	Latitude     float64            `bson:"latitude" json:"latitude"`
	Longitude    float64            `bson:"longitude" json:"longitude"`
	ImageURL     string             `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Status       string             `bson:"status" json:"status"` // under_review | in_progress | resolved
	ActionNotes  string             `bson:"action_notes" json:"actionNotes"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
