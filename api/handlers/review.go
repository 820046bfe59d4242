package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/models"
)

// Review exported for testing purposes
type Review struct {
	DB  databases.ReviewDatabase
	BDB databases.BootcampDatabase
}

// ReviewsHandler returns the reviews of a bootcamp when the route names one,
// otherwise a filtered page of all reviews
func (rv Review) ReviewsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, ok := mux.Vars(r)["bootcampId"]; ok {
		bootcampID, err := objectIDVar(r, "bootcampId")
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		reviews, err := rv.DB.Find(ctx, bson.M{"bootcamp": bootcampID})
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		if reviews == nil {
			reviews = []models.Review{}
		}
		writeList(w, reviews, len(reviews))
		return
	}

	res, err := rv.DB.List(ctx, r.URL.Query())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

// ReviewByIDHandler returns a single review
func (rv Review) ReviewByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	review, err := rv.findReview(r, id)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, review)
}

// AddReviewHandler reviews a bootcamp. A user reviews a bootcamp once.
func (rv Review) AddReviewHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	bootcampID, err := objectIDVar(r, "bootcampId")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err = rv.BDB.FindOne(ctx, bson.M{"_id": bootcampID}); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			err = api.NewErrorResponse(fmt.Sprintf("No bootcamp with the id of %s", bootcampID.Hex()), http.StatusNotFound)
		}
		api.ErrorStatus(w, err)
		return
	}

	var req models.ReviewRequest
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	review := req.Review(bootcampID, user.ID, time.Now())
	review.ID, err = rv.DB.InsertOne(ctx, review)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	rv.refreshAverageRating(r, bootcampID)

	writeData(w, http.StatusCreated, review)
}

// UpdateReviewHandler updates the fields present in the body
func (rv Review) UpdateReviewHandler(w http.ResponseWriter, r *http.Request) {
	review, err := rv.ownedReview(r, "update")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	var req models.ReviewUpdate
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	set := req.Set()
	if len(set) == 0 {
		writeData(w, http.StatusOK, review)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := rv.DB.FindOneAndUpdate(ctx, bson.M{"_id": review.ID}, bson.M{"$set": set})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if req.Rating != nil {
		rv.refreshAverageRating(r, review.Bootcamp)
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteReviewHandler deletes a review
func (rv Review) DeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	review, err := rv.ownedReview(r, "delete")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err = rv.DB.DeleteOne(ctx, bson.M{"_id": review.ID}); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	rv.refreshAverageRating(r, review.Bootcamp)

	writeData(w, http.StatusOK, emptyData)
}

func (rv Review) findReview(r *http.Request, id primitive.ObjectID) (*models.Review, error) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	review, err := rv.DB.FindOne(ctx, bson.M{"_id": id})
	if errors.Is(err, databases.ErrNotFound) {
		return nil, api.NewErrorResponse(fmt.Sprintf("No review found with the id of %s", id.Hex()), http.StatusNotFound)
	}
	return review, err
}

func (rv Review) ownedReview(r *http.Request, action string) (*models.Review, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, err
	}
	id, err := objectIDVar(r, "id")
	if err != nil {
		return nil, err
	}
	review, err := rv.findReview(r, id)
	if err != nil {
		return nil, err
	}
	if !api.CanModify(review.User, user.ID, user.Role) {
		return nil, api.NewErrorResponse(fmt.Sprintf("Not authorized to %s review", action), http.StatusUnauthorized)
	}
	return review, nil
}

func (rv Review) refreshAverageRating(r *http.Request, bootcampID primitive.ObjectID) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := databases.RefreshAverageRating(ctx, rv.DB, rv.BDB, bootcampID); err != nil {
		zap.S().Errorw("failed to refresh average rating", "bootcamp", bootcampID.Hex(), "error", err)
	}
}
