package user

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. Created once, after OTP verification.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Mobile    string             `bson:"mobile" json:"mobile"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the minimal view of a user embedded in chat responses.
type Profile struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	FullName string             `bson:"fullName" json:"fullName"`
}

// ToProfile reduces a user to the fields other users may see.
func (u User) ToProfile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
	}
}
