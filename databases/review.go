package databases

// go generate: mockery --name ReviewDatabase

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/devcamper-api/models"
)

// ReviewCollection is the name of the mongo collection
const ReviewCollection = "reviews"

// ReviewSchema lists the filterable review fields
var ReviewSchema = Schema{
	"_id":       KindObjectID,
	"rating":    KindNumber,
	"bootcamp":  KindObjectID,
	"user":      KindObjectID,
	"createdAt": KindDate,
}

// ReviewDatabase contains the methods to use with the review database
type ReviewDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Review, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Review, error)
	InsertOne(context.Context, models.Review) (primitive.ObjectID, error)
	FindOneAndUpdate(context.Context, interface{}, interface{}) (*models.Review, error)
	DeleteOne(context.Context, interface{}) error
	DeleteMany(context.Context, interface{}) (int64, error)
	CountDocuments(context.Context, interface{}) (int64, error)
	AverageRating(context.Context, primitive.ObjectID) (*float64, error)
	List(context.Context, url.Values) (*models.ListResponse, error)
}

type reviewDatabase struct {
	db DatabaseHelper
}

// NewReviewDatabase initializes a new instance of review database with the provided db connection
func NewReviewDatabase(db DatabaseHelper) ReviewDatabase {
	return &reviewDatabase{
		db: db,
	}
}

func (r *reviewDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Review, error) {
	review := &models.Review{}
	err := r.db.Collection(ReviewCollection).FindOne(ctx, filter, opts...).Decode(&review)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Review, error) {
	var reviews []models.Review
	cur, err := r.db.Collection(ReviewCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&reviews)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewDatabase) InsertOne(ctx context.Context, review models.Review) (primitive.ObjectID, error) {
	res, err := r.db.Collection(ReviewCollection).InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.Decode().(primitive.ObjectID)
	return id, nil
}

func (r *reviewDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (*models.Review, error) {
	review := &models.Review{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.db.Collection(ReviewCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&review)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *reviewDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	n, err := r.db.Collection(ReviewCollection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reviewDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return r.db.Collection(ReviewCollection).DeleteMany(ctx, filter)
}

func (r *reviewDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return r.db.Collection(ReviewCollection).CountDocuments(ctx, filter)
}

// AverageRating returns the mean rating of a bootcamp's reviews, or nil when
// it has none.
func (r *reviewDatabase) AverageRating(ctx context.Context, bootcampID primitive.ObjectID) (*float64, error) {
	return average(ctx, r.db.Collection(ReviewCollection), bootcampID, "$rating")
}

// List returns a page of reviews with the name and description of their bootcamp
func (r *reviewDatabase) List(ctx context.Context, values url.Values) (*models.ListResponse, error) {
	return AdvancedResults(ctx, r.db.Collection(ReviewCollection), values, ResultOptions{
		Schema: ReviewSchema,
		Populate: &Relation{
			From:         BootcampCollection,
			LocalField:   "bootcamp",
			ForeignField: "_id",
			As:           "bootcamp",
			Fields:       []string{"name", "description"},
			Single:       true,
		},
	})
}
