package databases

// go generate: mockery --name BootcampDatabase

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/devcamper-api/models"
)

// BootcampCollection is the name of the mongo collection
const BootcampCollection = "bootcamps"

// BootcampSchema lists the filterable bootcamp fields
var BootcampSchema = Schema{
	"_id":              KindObjectID,
	"averageRating":    KindNumber,
	"averageCost":      KindNumber,
	"housing":          KindBool,
	"jobAssistance":    KindBool,
	"jobGuarantee":     KindBool,
	"acceptGi":         KindBool,
	"user":             KindObjectID,
	"createdAt":        KindDate,
	"location.zipcode": KindString,
}

// BootcampDatabase contains the methods to use with the bootcamp database
type BootcampDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Bootcamp, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Bootcamp, error)
	InsertOne(context.Context, models.Bootcamp) (primitive.ObjectID, error)
	UpdateOne(context.Context, interface{}, interface{}) error
	FindOneAndUpdate(context.Context, interface{}, interface{}) (*models.Bootcamp, error)
	DeleteOne(context.Context, interface{}) error
	CountDocuments(context.Context, interface{}) (int64, error)
	List(context.Context, url.Values) (*models.ListResponse, error)
}

type bootcampDatabase struct {
	db DatabaseHelper
}

// NewBootcampDatabase initializes a new instance of bootcamp database with the provided db connection
func NewBootcampDatabase(db DatabaseHelper) BootcampDatabase {
	return &bootcampDatabase{
		db: db,
	}
}

func (b *bootcampDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Bootcamp, error) {
	bootcamp := &models.Bootcamp{}
	err := b.db.Collection(BootcampCollection).FindOne(ctx, filter, opts...).Decode(&bootcamp)
	if err != nil {
		return nil, err
	}
	return bootcamp, nil
}

func (b *bootcampDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Bootcamp, error) {
	var bootcamps []models.Bootcamp
	cur, err := b.db.Collection(BootcampCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&bootcamps)
	if err != nil {
		return nil, err
	}
	return bootcamps, nil
}

func (b *bootcampDatabase) InsertOne(ctx context.Context, bootcamp models.Bootcamp) (primitive.ObjectID, error) {
	res, err := b.db.Collection(BootcampCollection).InsertOne(ctx, bootcamp)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.Decode().(primitive.ObjectID)
	return id, nil
}

func (b *bootcampDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}) error {
	_, err := b.db.Collection(BootcampCollection).UpdateOne(ctx, filter, update)
	return err
}

func (b *bootcampDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (*models.Bootcamp, error) {
	bootcamp := &models.Bootcamp{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := b.db.Collection(BootcampCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&bootcamp)
	if err != nil {
		return nil, err
	}
	return bootcamp, nil
}

func (b *bootcampDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	n, err := b.db.Collection(BootcampCollection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (b *bootcampDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return b.db.Collection(BootcampCollection).CountDocuments(ctx, filter)
}

// List returns a page of bootcamps, each with its courses attached
func (b *bootcampDatabase) List(ctx context.Context, values url.Values) (*models.ListResponse, error) {
	return AdvancedResults(ctx, b.db.Collection(BootcampCollection), values, ResultOptions{
		Schema: BootcampSchema,
		Populate: &Relation{
			From:         CourseCollection,
			LocalField:   "_id",
			ForeignField: "bootcamp",
			As:           "courses",
		},
		Hidden: []string{"ownerExclusive"},
	})
}
