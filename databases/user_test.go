package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linesmerrill/devcamper-api/config"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
	"github.com/linesmerrill/devcamper-api/models"
)

func TestNewUserDatabase(t *testing.T) {
	_ = os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	_ = os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	userDB := databases.NewUserDatabase(db)

	assert.NotEmpty(t, userDB)
}

func TestUserDatabase_FindOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelperErr := &mocks.SingleResultHelper{}
	srHelperCorrect := &mocks.SingleResultHelper{}

	srHelperErr.On("Decode", mock.Anything).Return(databases.ErrNotFound)
	srHelperCorrect.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.User)
		(*arg).Email = "john@gmail.com"
	})

	collectionHelper.On("FindOne", context.Background(), bson.M{"error": true}).Return(srHelperErr)
	collectionHelper.On("FindOne", context.Background(), bson.M{"error": false}).Return(srHelperCorrect)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	user, err := userDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, databases.ErrNotFound)

	user, err = userDba.FindOne(context.Background(), bson.M{"error": false})

	assert.NoError(t, err)
	assert.Equal(t, "john@gmail.com", user.Email)
}

func TestUserDatabase_InsertOne(t *testing.T) {
	id := primitive.NewObjectID()
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	result := &mocks.InsertOneResultHelper{}

	result.On("Decode").Return(id)
	collectionHelper.On("InsertOne", context.Background(), mock.AnythingOfType("models.User")).Return(result, nil)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	got, err := databases.NewUserDatabase(dbHelper).InsertOne(context.Background(), models.User{Name: "John Doe"})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestUserDatabase_UpdateOneNoMatch(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateOne", context.Background(), bson.M{"_id": "missing"}, bson.M{"$set": bson.M{"name": "x"}}).
		Return(&mongo.UpdateResult{MatchedCount: 0}, nil)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	err := databases.NewUserDatabase(dbHelper).UpdateOne(context.Background(), bson.M{"_id": "missing"}, bson.M{"$set": bson.M{"name": "x"}})

	assert.ErrorIs(t, err, databases.ErrNotFound)
}

func TestUserDatabase_UpdateMany(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("UpdateMany", context.Background(), mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 3, ModifiedCount: 3}, nil)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	n, err := databases.NewUserDatabase(dbHelper).UpdateMany(context.Background(), bson.M{}, bson.M{"$unset": bson.M{"resetPasswordToken": ""}})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestUserDatabase_FindOneAndUpdate(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}
	srHelper := &mocks.SingleResultHelper{}

	srHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.User)
		(*arg).Role = models.RolePublisher
	})
	collectionHelper.On("FindOneAndUpdate", context.Background(), bson.M{"_id": 1}, bson.M{"$set": bson.M{"role": "publisher"}}, mock.Anything).
		Return(srHelper)
	dbHelper.On("Collection", "users").Return(collectionHelper)

	user, err := databases.NewUserDatabase(dbHelper).FindOneAndUpdate(context.Background(), bson.M{"_id": 1}, bson.M{"$set": bson.M{"role": "publisher"}})

	assert.NoError(t, err)
	assert.Equal(t, models.RolePublisher, user.Role)
}

func TestUserDatabase_DeleteOne(t *testing.T) {
	dbHelper := &mocks.DatabaseHelper{}
	collectionHelper := &mocks.CollectionHelper{}

	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": 1}).Return(int64(0), nil)
	collectionHelper.On("DeleteOne", context.Background(), bson.M{"_id": 2}).Return(int64(0), errors.New("mocked-error"))
	dbHelper.On("Collection", "users").Return(collectionHelper)

	userDba := databases.NewUserDatabase(dbHelper)

	assert.ErrorIs(t, userDba.DeleteOne(context.Background(), bson.M{"_id": 1}), databases.ErrNotFound)
	assert.EqualError(t, userDba.DeleteOne(context.Background(), bson.M{"_id": 2}), "mocked-error")
}
