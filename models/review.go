package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review holds the structure for the review collection in mongo. A user can
// review a bootcamp once.
type Review struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Text      string             `json:"text" bson:"text"`
	Rating    int                `json:"rating" bson:"rating"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	Bootcamp  primitive.ObjectID `json:"bootcamp" bson:"bootcamp"`
	User      primitive.ObjectID `json:"user" bson:"user"`
}

// ReviewRequest is the body accepted when reviewing a bootcamp
type ReviewRequest struct {
	Title  string `json:"title" validate:"required,max=100"`
	Text   string `json:"text" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=10"`
}

// Review converts the request into a review of bootcampID written by userID
func (r ReviewRequest) Review(bootcampID, userID primitive.ObjectID, now time.Time) Review {
	return Review{
		Title:     r.Title,
		Text:      r.Text,
		Rating:    r.Rating,
		CreatedAt: now,
		Bootcamp:  bootcampID,
		User:      userID,
	}
}

// ReviewUpdate is the body accepted when updating a review
type ReviewUpdate struct {
	Title  *string `json:"title" validate:"omitempty,min=1,max=100"`
	Text   *string `json:"text" validate:"omitempty,min=1"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=10"`
}

// Set returns the $set document for the fields present in the update
func (u ReviewUpdate) Set() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Text != nil {
		set["text"] = *u.Text
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	return set
}
