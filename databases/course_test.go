package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
	"github.com/linesmerrill/devcamper-api/models"
)

func TestCourseDatabase_Find(t *testing.T) {
	bootcampID := primitive.NewObjectID()

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Course)
		*arg = []models.Course{{Title: "Front End Web Development", Bootcamp: bootcampID}}
	})
	collectionHelper.On("Find", context.Background(), bson.M{"bootcamp": bootcampID}).Return(cursorHelper, nil)
	collectionHelper.On("Find", context.Background(), bson.M{"error": true}).Return(nil, errors.New("mocked-error"))
	dbHelper.On("Collection", "courses").Return(collectionHelper)

	courseDba := databases.NewCourseDatabase(dbHelper)

	courses, err := courseDba.Find(context.Background(), bson.M{"bootcamp": bootcampID})
	assert.NoError(t, err)
	assert.Len(t, courses, 1)
	assert.Equal(t, "Front End Web Development", courses[0].Title)

	courses, err = courseDba.Find(context.Background(), bson.M{"error": true})
	assert.Nil(t, courses)
	assert.EqualError(t, err, "mocked-error")
}

func TestCourseDatabase_DeleteMany(t *testing.T) {
	bootcampID := primitive.NewObjectID()

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteMany", context.Background(), bson.M{"bootcamp": bootcampID}).Return(int64(4), nil)
	dbHelper.On("Collection", "courses").Return(collectionHelper)

	n, err := databases.NewCourseDatabase(dbHelper).DeleteMany(context.Background(), bson.M{"bootcamp": bootcampID})

	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
