package databases

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RefreshAverageCost recomputes the average tuition stored on a bootcamp.
// The field is removed once the bootcamp has no courses left.
func RefreshAverageCost(ctx context.Context, courses CourseDatabase, bootcamps BootcampDatabase, bootcampID primitive.ObjectID) error {
	avg, err := courses.AverageCost(ctx, bootcampID)
	if err != nil {
		return err
	}
	return bootcamps.UpdateOne(ctx, bson.M{"_id": bootcampID}, averageUpdate("averageCost", avg))
}

// RefreshAverageRating recomputes the average review rating stored on a bootcamp
func RefreshAverageRating(ctx context.Context, reviews ReviewDatabase, bootcamps BootcampDatabase, bootcampID primitive.ObjectID) error {
	avg, err := reviews.AverageRating(ctx, bootcampID)
	if err != nil {
		return err
	}
	return bootcamps.UpdateOne(ctx, bson.M{"_id": bootcampID}, averageUpdate("averageRating", avg))
}

func averageUpdate(field string, avg *float64) bson.M {
	if avg == nil {
		return bson.M{"$unset": bson.M{field: ""}}
	}
	return bson.M{"$set": bson.M{field: *avg}}
}

func roundUpToTen(v float64) float64 {
	return math.Ceil(v/10) * 10
}
