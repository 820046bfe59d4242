package databases

// go generate: mockery --name CourseDatabase

import (
	"context"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/devcamper-api/models"
)

// CourseCollection is the name of the mongo collection
const CourseCollection = "courses"

// CourseSchema lists the filterable course fields
var CourseSchema = Schema{
	"_id":                  KindObjectID,
	"tuition":              KindNumber,
	"scholarshipAvailable": KindBool,
	"bootcamp":             KindObjectID,
	"user":                 KindObjectID,
	"createdAt":            KindDate,
}

// CourseDatabase contains the methods to use with the course database
type CourseDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Course, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Course, error)
	InsertOne(context.Context, models.Course) (primitive.ObjectID, error)
	FindOneAndUpdate(context.Context, interface{}, interface{}) (*models.Course, error)
	DeleteOne(context.Context, interface{}) error
	DeleteMany(context.Context, interface{}) (int64, error)
	AverageCost(context.Context, primitive.ObjectID) (*float64, error)
	List(context.Context, url.Values) (*models.ListResponse, error)
}

type courseDatabase struct {
	db DatabaseHelper
}

// NewCourseDatabase initializes a new instance of course database with the provided db connection
func NewCourseDatabase(db DatabaseHelper) CourseDatabase {
	return &courseDatabase{
		db: db,
	}
}

func (c *courseDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Course, error) {
	course := &models.Course{}
	err := c.db.Collection(CourseCollection).FindOne(ctx, filter, opts...).Decode(&course)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (c *courseDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Course, error) {
	var courses []models.Course
	cur, err := c.db.Collection(CourseCollection).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&courses)
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *courseDatabase) InsertOne(ctx context.Context, course models.Course) (primitive.ObjectID, error) {
	res, err := c.db.Collection(CourseCollection).InsertOne(ctx, course)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.Decode().(primitive.ObjectID)
	return id, nil
}

func (c *courseDatabase) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}) (*models.Course, error) {
	course := &models.Course{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := c.db.Collection(CourseCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&course)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (c *courseDatabase) DeleteOne(ctx context.Context, filter interface{}) error {
	n, err := c.db.Collection(CourseCollection).DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *courseDatabase) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(CourseCollection).DeleteMany(ctx, filter)
}

// AverageCost returns the mean tuition of a bootcamp's courses rounded up to
// the next ten, or nil when it has no courses.
func (c *courseDatabase) AverageCost(ctx context.Context, bootcampID primitive.ObjectID) (*float64, error) {
	avg, err := average(ctx, c.db.Collection(CourseCollection), bootcampID, "$tuition")
	if err != nil || avg == nil {
		return nil, err
	}
	rounded := roundUpToTen(*avg)
	return &rounded, nil
}

// List returns a page of courses with the name and description of their bootcamp
func (c *courseDatabase) List(ctx context.Context, values url.Values) (*models.ListResponse, error) {
	return AdvancedResults(ctx, c.db.Collection(CourseCollection), values, ResultOptions{
		Schema: CourseSchema,
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

// average computes the mean of field over the documents of coll that belong
// to bootcampID
func average(ctx context.Context, coll CollectionHelper, bootcampID primitive.ObjectID, field string) (*float64, error) {
	pipeline := bson.A{
		bson.M{"$match": bson.M{"bootcamp": bootcampID}},
		bson.M{"$group": bson.M{"_id": "$bootcamp", "average": bson.M{"$avg": field}}},
	}
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var res []bson.M
	if err = cur.Decode(&res); err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, nil
	}
	avg, ok := res[0]["average"].(float64)
	if !ok {
		return nil, nil
	}
	return &avg, nil
}
