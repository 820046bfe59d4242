package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
	"github.com/linesmerrill/devcamper-api/models"
)

type fakeGeocoder struct {
	addresses []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*models.Location, error) {
	f.addresses = append(f.addresses, address)
	return models.NewPoint(41.483657, -71.525909), nil
}

func TestLoad(t *testing.T) {
	f, err := Load("testdata")

	require.NoError(t, err)
	assert.Len(t, f.Users, 3)
	assert.Len(t, f.Bootcamps, 2)
	assert.Len(t, f.Courses, 1)
	assert.Len(t, f.Reviews, 1)
	assert.Equal(t, "123456", f.Users[0].Password)
	assert.Equal(t, "45 Upper College Rd Kingston RI 02881", f.Bootcamps[1].Address)
	assert.Nil(t, f.Bootcamps[1].Location)
	assert.Equal(t, 8000.0, f.Courses[0].Tuition)
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load("does-not-exist")

	assert.Error(t, err)
}

func TestImport(t *testing.T) {
	f, err := Load("testdata")
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var users, bootcamps []interface{}

	colls := map[string]*mocks.CollectionHelper{}
	db := &mocks.DatabaseHelper{}
	for _, name := range databases.Collections() {
		c := &mocks.CollectionHelper{}
		colls[name] = c
		db.On("Collection", name).Return(c)
	}

	colls[databases.UserCollection].On("InsertMany", context.Background(), mock.Anything).
		Run(func(args mock.Arguments) { users = args.Get(1).([]interface{}) }).Return(nil)
	colls[databases.BootcampCollection].On("InsertMany", context.Background(), mock.Anything).
		Run(func(args mock.Arguments) { bootcamps = args.Get(1).([]interface{}) }).Return(nil)
	colls[databases.CourseCollection].On("InsertMany", context.Background(), mock.Anything).Return(nil)
	colls[databases.ReviewCollection].On("InsertMany", context.Background(), mock.Anything).Return(nil)

	cursor := &mocks.CursorHelper{}
	cursor.On("Decode", mock.Anything).Return(nil)
	colls[databases.CourseCollection].On("Aggregate", context.Background(), mock.Anything).Return(cursor, nil)
	colls[databases.ReviewCollection].On("Aggregate", context.Background(), mock.Anything).Return(cursor, nil)
	colls[databases.BootcampCollection].On("UpdateOne", context.Background(), mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	geo := &fakeGeocoder{}
	s := New(db, geo)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Import(context.Background(), f))

	require.Len(t, users, 3)
	admin := users[0].(models.User)
	assert.True(t, admin.MatchPassword("123456"))
	assert.NotEqual(t, "123456", admin.Password)
	assert.Equal(t, models.RoleUser, users[2].(models.User).Role)
	assert.Equal(t, now, admin.CreatedAt)

	require.Len(t, bootcamps, 2)
	devworks := bootcamps[0].(models.Bootcamp)
	assert.Equal(t, "devworks-bootcamp", devworks.Slug)
	assert.Equal(t, models.DefaultPhoto, devworks.Photo)
	assert.True(t, devworks.OwnerExclusive)

	devcentral := bootcamps[1].(models.Bootcamp)
	assert.False(t, devcentral.OwnerExclusive)
	require.NotNil(t, devcentral.Location)
	assert.Equal(t, []float64{-71.525909, 41.483657}, devcentral.Location.Coordinates)
	assert.Equal(t, []string{"45 Upper College Rd Kingston RI 02881"}, geo.addresses)

	// both averages of both bootcamps are refreshed
	colls[databases.BootcampCollection].AssertNumberOfCalls(t, "UpdateOne", 4)
}

func TestImport_NoGeocoder(t *testing.T) {
	f, err := Load("testdata")
	require.NoError(t, err)

	s := New(&mocks.DatabaseHelper{}, nil)

	err = s.Import(context.Background(), f)

	assert.EqualError(t, err, `bootcamp "Devcentral Bootcamp": no geocoder configured for "45 Upper College Rd Kingston RI 02881"`)
}

func TestDestroy(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	for _, name := range databases.Collections() {
		c := &mocks.CollectionHelper{}
		c.On("DeleteMany", context.Background(), bson.M{}).Return(int64(2), nil)
		db.On("Collection", name).Return(c)
	}

	s := New(db, nil)

	assert.NoError(t, s.Destroy(context.Background()))
	db.AssertNumberOfCalls(t, "Collection", 4)
}

func TestDestroy_Error(t *testing.T) {
	c := &mocks.CollectionHelper{}
	c.On("DeleteMany", context.Background(), bson.M{}).Return(int64(0), errors.New("mocked-error"))
	db := &mocks.DatabaseHelper{}
	db.On("Collection", databases.UserCollection).Return(c)

	s := New(db, nil)

	assert.EqualError(t, s.Destroy(context.Background()), "failed to clear users: mocked-error")
}
