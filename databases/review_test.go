package databases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
	"github.com/linesmerrill/devcamper-api/models"
)

func TestReviewDatabase_FindOneNotFound(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(databases.ErrNotFound)
	collectionHelper.On("FindOne", context.Background(), mock.Anything).Return(srHelper)
	dbHelper.On("Collection", "reviews").Return(collectionHelper)

	review, err := databases.NewReviewDatabase(dbHelper).FindOne(context.Background(), bson.M{"_id": primitive.NewObjectID()})

	assert.Nil(t, review)
	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestReviewDatabase_CountDocuments(t *testing.T) {
	filter := bson.M{"bootcamp": primitive.NewObjectID(), "user": primitive.NewObjectID()}

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("CountDocuments", context.Background(), filter).Return(int64(1), nil)
	dbHelper.On("Collection", "reviews").Return(collectionHelper)

	n, err := databases.NewReviewDatabase(dbHelper).CountDocuments(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestReviewDatabase_InsertOne(t *testing.T) {
	id := primitive.NewObjectID()

	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	result := &mocks.InsertOneResultHelper{}

	result.On("Decode").Return(id)
	collectionHelper.On("InsertOne", context.Background(), mock.AnythingOfType("models.Review")).Return(result, nil)
	dbHelper.On("Collection", "reviews").Return(collectionHelper)

	got, err := databases.NewReviewDatabase(dbHelper).InsertOne(context.Background(), models.Review{Title: "Learned a ton!", Rating: 8})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
}
