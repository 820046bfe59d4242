package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/models"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Devworks Bootcamp":           "devworks-bootcamp",
		"  ModernTech  Bootcamp!! ":   "moderntech-bootcamp",
		"Codemasters (Web & Mobile)": "codemasters-web-mobile",
		"Café Académie":               "cafe-academie",
		"":                            "",
	}
	for in, want := range cases {
		assert.Equal(t, want, models.Slugify(in), in)
	}
}

func TestValidateBootcampRequestCollectsMessages(t *testing.T) {
	err := models.Validate(models.BootcampRequest{
		Website: "ftp://nope",
		Careers: []string{"Web Development", "Basket Weaving"},
	})
	require.Error(t, err)

	ve, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Messages, "Please add a name")
	assert.Contains(t, ve.Messages, "Please add a description")
	assert.Contains(t, ve.Messages, "Please add an address")
	assert.Contains(t, ve.Messages, "Please use a valid URL with HTTP or HTTPS")
	assert.Contains(t, ve.Messages, "Basket Weaving is not a supported career")
	assert.Contains(t, err.Error(), "Please add a name, ")
}

func TestValidateBootcampRequestOK(t *testing.T) {
	err := models.Validate(models.BootcampRequest{
		Name:        "Devworks Bootcamp",
		Description: "Full stack",
		Website:     "https://devworks.com",
		Email:       "enroll@devworks.com",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development", "UI/UX"},
	})
	assert.NoError(t, err)
}

func TestValidateNameTooLong(t *testing.T) {
	long := "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijX"
	err := models.Validate(models.BootcampUpdate{Name: &long})
	require.Error(t, err)
	assert.Equal(t, "Name cannot be more than 50 characters", err.Error())
}

func TestValidateCourseRequest(t *testing.T) {
	err := models.Validate(models.CourseRequest{Title: "Front End", Description: "d", Weeks: "8", MinimumSkill: "expert"})
	require.Error(t, err)
	ve := err.(*models.ValidationError)
	assert.Contains(t, ve.Messages, "Please add a tuition")
	assert.Contains(t, ve.Messages, "expert is not a valid minimum skill, expected one of: beginner intermediate advanced")

	zero := 0.0
	assert.NoError(t, models.Validate(models.CourseRequest{Title: "Front End", Description: "d", Weeks: "8", Tuition: &zero, MinimumSkill: "beginner"}))
}

func TestValidateReviewRating(t *testing.T) {
	err := models.Validate(models.ReviewRequest{Title: "Great", Text: "Learned a lot", Rating: 11})
	require.Error(t, err)
	assert.Equal(t, "Rating must be at most 10", err.Error())
}

func TestValidateRegisterRejectsAdminRole(t *testing.T) {
	err := models.Validate(models.RegisterRequest{Name: "John", Email: "john@gmail.com", Password: "123456", Role: "admin"})
	assert.Error(t, err)

	err = models.Validate(models.RegisterRequest{Name: "John", Email: "john@gmail.com", Password: "123456", Role: "publisher"})
	assert.NoError(t, err)
}

func TestUserPassword(t *testing.T) {
	u := &models.User{}
	require.NoError(t, u.SetPassword("123456"))

	assert.NotEqual(t, "123456", u.Password)
	assert.True(t, u.MatchPassword("123456"))
	assert.False(t, u.MatchPassword("654321"))
}

func TestUserNewResetToken(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &models.User{}
	plain, err := u.NewResetToken(now)
	require.NoError(t, err)

	assert.Len(t, plain, 40)
	assert.Equal(t, models.HashResetToken(plain), u.ResetPasswordToken)
	assert.NotEqual(t, plain, u.ResetPasswordToken)
	require.NotNil(t, u.ResetPasswordExpire)
	assert.Equal(t, now.Add(10*time.Minute), *u.ResetPasswordExpire)
}

func TestBootcampRequestBootcamp(t *testing.T) {
	owner := primitive.NewObjectID()
	now := time.Now()
	b := models.BootcampRequest{Name: "Devworks Bootcamp", Address: "Boston", Careers: []string{"Business"}}.Bootcamp(owner, now)

	assert.Equal(t, "devworks-bootcamp", b.Slug)
	assert.Equal(t, models.DefaultPhoto, b.Photo)
	assert.Equal(t, owner, b.User)
	assert.Nil(t, b.Location)
}

func TestBootcampUpdateSet(t *testing.T) {
	name := "New Name"
	housing := false
	set := models.BootcampUpdate{Name: &name, Housing: &housing}.Set()

	assert.Equal(t, bson.M{"name": "New Name", "slug": "new-name", "housing": false}, set)
}

func TestNewPointStoresLngLat(t *testing.T) {
	loc := models.NewPoint(42.35, -71.1)
	assert.Equal(t, "Point", loc.Type)
	assert.Equal(t, []float64{-71.1, 42.35}, loc.Coordinates)
}

func TestValidateTrimsNames(t *testing.T) {
	req := &models.BootcampRequest{
		Name:        "  Devworks Bootcamp  ",
		Description: "Full stack",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development"},
	}
	require.NoError(t, models.Validate(req))
	assert.Equal(t, "Devworks Bootcamp", req.Name)

	b := req.Bootcamp(primitive.NewObjectID(), time.Now())
	assert.Equal(t, "Devworks Bootcamp", b.Name)
	assert.Equal(t, "devworks-bootcamp", b.Slug)
}

func TestValidateBlankNameIsMissing(t *testing.T) {
	err := models.Validate(&models.BootcampRequest{
		Name:        "   ",
		Description: "Full stack",
		Address:     "233 Bay State Rd Boston MA 02215",
		Careers:     []string{"Web Development"},
	})
	require.Error(t, err)
	assert.Equal(t, "Please add a name", err.Error())

	blank := " "
	err = models.Validate(&models.CourseUpdate{Title: &blank})
	assert.Error(t, err)

	err = models.Validate(&models.CourseRequest{Title: "\t", Description: "d", Weeks: "8", Tuition: new(float64), MinimumSkill: models.SkillBeginner})
	require.Error(t, err)
	assert.Equal(t, "Please add a title", err.Error())
}

func TestUpdateSetTrims(t *testing.T) {
	name := " Codemasters "
	assert.Equal(t, "Codemasters", models.BootcampUpdate{Name: &name}.Set()["name"])

	title := " Front End Web Development "
	assert.Equal(t, "Front End Web Development", models.CourseUpdate{Title: &title}.Set()["title"])
}
