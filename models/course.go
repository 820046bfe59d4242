package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill levels a course can require
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// Course holds the structure for the course collection in mongo
type Course struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title                string             `json:"title" bson:"title"`
	Description          string             `json:"description" bson:"description"`
	Weeks                string             `json:"weeks" bson:"weeks"`
	Tuition              float64            `json:"tuition" bson:"tuition"`
	MinimumSkill         string             `json:"minimumSkill" bson:"minimumSkill"`
	ScholarshipAvailable bool               `json:"scholarshipAvailable" bson:"scholarshipAvailable"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	Bootcamp             primitive.ObjectID `json:"bootcamp" bson:"bootcamp"`
	User                 primitive.ObjectID `json:"user" bson:"user"`
}

// CourseRequest is the body accepted when adding a course to a bootcamp
type CourseRequest struct {
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description" validate:"required"`
	Weeks                string   `json:"weeks" validate:"required"`
	Tuition              *float64 `json:"tuition" validate:"required,gte=0"`
	MinimumSkill         string   `json:"minimumSkill" validate:"required,oneof=beginner intermediate advanced"`
	ScholarshipAvailable bool     `json:"scholarshipAvailable"`
}

// Trim strips surrounding whitespace from the title
func (c *CourseRequest) Trim() {
	c.Title = strings.TrimSpace(c.Title)
}

// Course converts the request into a course of bootcampID owned by userID
func (c CourseRequest) Course(bootcampID, userID primitive.ObjectID, now time.Time) Course {
	var tuition float64
	if c.Tuition != nil {
		tuition = *c.Tuition
	}
	return Course{
		Title:                strings.TrimSpace(c.Title),
		Description:          c.Description,
		Weeks:                c.Weeks,
		Tuition:              tuition,
		MinimumSkill:         c.MinimumSkill,
		ScholarshipAvailable: c.ScholarshipAvailable,
		CreatedAt:            now,
		Bootcamp:             bootcampID,
		User:                 userID,
	}
}

// CourseUpdate is the body accepted when updating a course
type CourseUpdate struct {
	Title                *string  `json:"title" validate:"omitempty,min=1"`
	Description          *string  `json:"description" validate:"omitempty,min=1"`
	Weeks                *string  `json:"weeks" validate:"omitempty,min=1"`
	Tuition              *float64 `json:"tuition" validate:"omitempty,gte=0"`
	MinimumSkill         *string  `json:"minimumSkill" validate:"omitempty,oneof=beginner intermediate advanced"`
	ScholarshipAvailable *bool    `json:"scholarshipAvailable"`
}

// Trim strips surrounding whitespace from the title
func (u *CourseUpdate) Trim() {
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		u.Title = &title
	}
}

// Set returns the $set document for the fields present in the update
func (u CourseUpdate) Set() bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = strings.TrimSpace(*u.Title)
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Weeks != nil {
		set["weeks"] = *u.Weeks
	}
	if u.Tuition != nil {
		set["tuition"] = *u.Tuition
	}
	if u.MinimumSkill != nil {
		set["minimumSkill"] = *u.MinimumSkill
	}
	if u.ScholarshipAvailable != nil {
		set["scholarshipAvailable"] = *u.ScholarshipAvailable
	}
	return set
}
