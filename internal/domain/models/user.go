// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents members and staff.
//
// PasswordHash never appears in JSON; listing endpoints additionally strip
// the hash at the store layer.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	Residence    string             `bson:"residence" json:"residence"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"` // member | staff
	ProfileImg   string             `bson:"profile_img,omitempty" json:"profileImg,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
