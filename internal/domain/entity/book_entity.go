package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book is a catalog record. Title is the unique lookup key for every
// operation; author is the only other required field.
type Book struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Author string             `bson:"author" json:"author"`
	Year   int                `bson:"year,omitempty" json:"year,omitempty"`
	Cover  string             `bson:"cover,omitempty" json:"cover,omitempty"`
	URL    string             `bson:"url,omitempty" json:"url,omitempty"`
}

// BookPatch carries a partial update. Nil fields are left untouched by the
// store; no further validation is applied to provided values.
type BookPatch struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Year   *int    `json:"year"`
	Cover  *string `json:"cover"`
	URL    *string `json:"url"`
}

// IsZero reports whether the patch carries no fields at all.
func (p BookPatch) IsZero() bool {
	return p.Title == nil && p.Author == nil && p.Year == nil && p.Cover == nil && p.URL == nil
}
