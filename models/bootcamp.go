package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPhoto is stored on a bootcamp until a photo is uploaded
const DefaultPhoto = "no-photo.jpg"

// Career is one of the closed set of careers a bootcamp can train for
type Career string

// Predefined Career values
const (
	CareerWebDevelopment    Career = "Web Development"
	CareerMobileDevelopment Career = "Mobile Development"
	CareerUIUX              Career = "UI/UX"
	CareerDataScience       Career = "Data Science"
	CareerMachineLearning   Career = "Machine Learning Engineer"
	CareerSoftwareDeveloper Career = "Software Developer"
	CareerBusiness          Career = "Business"
	CareerOthers            Career = "Others"
)

// ValidCareers returns all valid Career values
func ValidCareers() []Career {
	return []Career{
		CareerWebDevelopment,
		CareerMobileDevelopment,
		CareerUIUX,
		CareerDataScience,
		CareerMachineLearning,
		CareerSoftwareDeveloper,
		CareerBusiness,
		CareerOthers,
	}
}

// IsCareer reports whether s names one of the valid careers
func IsCareer(s string) bool {
	for _, c := range ValidCareers() {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Bootcamp holds the structure for the bootcamp collection in mongo
type Bootcamp struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Slug          string             `json:"slug" bson:"slug"`
	Description   string             `json:"description" bson:"description"`
	Website       string             `json:"website,omitempty" bson:"website,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Location      *Location          `json:"location,omitempty" bson:"location,omitempty"`
	Careers       []string           `json:"careers" bson:"careers"`
	AverageRating *float64           `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	AverageCost   *float64           `json:"averageCost,omitempty" bson:"averageCost,omitempty"`
	Photo         string             `json:"photo" bson:"photo"`
	Housing       bool               `json:"housing" bson:"housing"`
	JobAssistance bool               `json:"jobAssistance" bson:"jobAssistance"`
	JobGuarantee  bool               `json:"jobGuarantee" bson:"jobGuarantee"`
	AcceptGi      bool               `json:"acceptGi" bson:"acceptGi"`
	User          primitive.ObjectID `json:"user" bson:"user"`
	// OwnerExclusive marks bootcamps created by non-admins; a partial unique
	// index on user keeps it to one per owner.
	OwnerExclusive bool      `json:"-" bson:"ownerExclusive"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// Location is a GeoJSON point plus the address parts returned by the geocoder.
// Coordinates are stored [longitude, latitude].
type Location struct {
	Type             string    `json:"type" bson:"type"`
	Coordinates      []float64 `json:"coordinates" bson:"coordinates"`
	FormattedAddress string    `json:"formattedAddress,omitempty" bson:"formattedAddress,omitempty"`
	Street           string    `json:"street,omitempty" bson:"street,omitempty"`
	City             string    `json:"city,omitempty" bson:"city,omitempty"`
	State            string    `json:"state,omitempty" bson:"state,omitempty"`
	Zipcode          string    `json:"zipcode,omitempty" bson:"zipcode,omitempty"`
	Country          string    `json:"country,omitempty" bson:"country,omitempty"`
}

// NewPoint builds a GeoJSON point location for the given latitude and longitude
func NewPoint(lat, lng float64) *Location {
	return &Location{Type: "Point", Coordinates: []float64{lng, lat}}
}

// BootcampRequest is the body accepted when creating a bootcamp
type BootcampRequest struct {
	Name          string   `json:"name" validate:"required,max=50"`
	Description   string   `json:"description" validate:"required,max=500"`
	Website       string   `json:"website" validate:"omitempty,http_url"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Address       string   `json:"address" validate:"required"`
	Careers       []string `json:"careers" validate:"required,min=1,dive,career"`
	Housing       bool     `json:"housing"`
	JobAssistance bool     `json:"jobAssistance"`
	JobGuarantee  bool     `json:"jobGuarantee"`
	AcceptGi      bool     `json:"acceptGi"`
}

// Trim strips surrounding whitespace from the name
func (b *BootcampRequest) Trim() {
	b.Name = strings.TrimSpace(b.Name)
}

// Bootcamp converts the request into a new bootcamp document owned by userID.
// The address is not kept, the caller geocodes it into Location.
func (b BootcampRequest) Bootcamp(userID primitive.ObjectID, now time.Time) Bootcamp {
	name := strings.TrimSpace(b.Name)
	return Bootcamp{
		Name:          name,
		Slug:          Slugify(name),
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Careers:       b.Careers,
		Photo:         DefaultPhoto,
		Housing:       b.Housing,
		JobAssistance: b.JobAssistance,
		JobGuarantee:  b.JobGuarantee,
		AcceptGi:      b.AcceptGi,
		User:          userID,
		CreatedAt:     now,
	}
}

// BootcampUpdate is the body accepted when updating a bootcamp, only the
// fields present are changed.
type BootcampUpdate struct {
	Name          *string   `json:"name" validate:"omitempty,min=1,max=50"`
	Description   *string   `json:"description" validate:"omitempty,min=1,max=500"`
	Website       *string   `json:"website" validate:"omitempty,http_url"`
	Phone         *string   `json:"phone" validate:"omitempty,max=20"`
	Email         *string   `json:"email" validate:"omitempty,email"`
	Address       *string   `json:"address" validate:"omitempty,min=1"`
	Careers       *[]string `json:"careers" validate:"omitempty,min=1,dive,career"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"jobAssistance"`
	JobGuarantee  *bool     `json:"jobGuarantee"`
	AcceptGi      *bool     `json:"acceptGi"`
}

// Trim strips surrounding whitespace from the name
func (u *BootcampUpdate) Trim() {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		u.Name = &name
	}
}

// Set returns the $set document for the fields present in the update. The
// address is handled by the caller since it must be geocoded.
func (u BootcampUpdate) Set() bson.M {
	set := bson.M{}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		set["name"] = name
		set["slug"] = Slugify(name)
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Website != nil {
		set["website"] = *u.Website
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Careers != nil {
		set["careers"] = *u.Careers
	}
	if u.Housing != nil {
		set["housing"] = *u.Housing
	}
	if u.JobAssistance != nil {
		set["jobAssistance"] = *u.JobAssistance
	}
	if u.JobGuarantee != nil {
		set["jobGuarantee"] = *u.JobGuarantee
	}
	if u.AcceptGi != nil {
		set["acceptGi"] = *u.AcceptGi
	}
	return set
}
