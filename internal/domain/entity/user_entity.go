package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the aggregate root for the credential domain.
// Password holds the bcrypt hash, never the plain text; it is excluded from
// JSON so a stored record can be echoed back safely.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
}
