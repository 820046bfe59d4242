package databases

// go generate: mockery --name UserDatabase

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/devcamper-api/models"
)

// UserCollection is the name of the mongo collection
const UserCollection = "users"

// UserSchema lists the filterable user fields
var UserSchema = Schema{
	"_id":       KindObjectID,
	"createdAt": KindDate,
}

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.User, error)
	InsertOne(context.Context, models.User) (primitive.ObjectID, error)
	UpdateOne(context.Context, interface{}, interface{}) error
	UpdateMany(context.Context, interface{}, interface{}) (int64, error)
	FindOneAndUpdate(context.Context, interface{}, interface{}) (*models.User, error)
	DeleteOne(context.Context, interface{}) error
	List(context.Context, url.Values) (*models.ListResponse, error)
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(UserCollection).FindOne(ctx, filter, opts...).Decode(&user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	res, err := u.db.Collection(UserCollection).InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.Decode().(primitive.ObjectID)
	return id, nil
}

func (u *userDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	res, err := u.db.Collection(UserCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res != nil && res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (u *userDatabase) UpdateMany(ctx context.Context, filter interface{}, update interface{}) (int64, error) {
	res, err := u.db.Collection(UserCollection).UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (u *userDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (*models.User, error) {
	user := &models.User{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := u.db.Collection(UserCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	n, err := u.db.Collection(UserCollection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns a page of users without their credentials
func (u *userDatabase) List(ctx context.Context, values url.Values) (*models.ListResponse, error) {
	return AdvancedResults(ctx, u.db.Collection(UserCollection), values, ResultOptions{
		Schema: UserSchema,
		Hidden: models.PrivateUserFields,
	})
}
