package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UsersHandler returns a filtered page of users
func (u User) UsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := u.DB.List(ctx, r.URL.Query())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

// UserByIDHandler returns a single user
func (u User) UserByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := u.DB.FindOne(ctx, bson.M{"_id": id})
	if err != nil {
		api.ErrorStatus(w, userNotFound(err, id.Hex()))
		return
	}
	writeData(w, http.StatusOK, user)
}

// CreateUserHandler creates a user with any role
func (u User) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	user, err := req.User(time.Now())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user.ID, err = u.DB.InsertOne(ctx, user)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusCreated, user)
}

// UpdateUserHandler updates the fields present in the body
func (u User) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	var req models.UserUpdate
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	set, err := req.Set()
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	var user *models.User
	if len(set) == 0 {
		user, err = u.DB.FindOne(ctx, bson.M{"_id": id})
	} else {
		user, err = u.DB.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	}
	if err != nil {
		api.ErrorStatus(w, userNotFound(err, id.Hex()))
		return
	}
	writeData(w, http.StatusOK, user)
}

// DeleteUserHandler deletes a user
func (u User) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err = u.DB.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		api.ErrorStatus(w, userNotFound(err, id.Hex()))
		return
	}
	writeData(w, http.StatusOK, emptyData)
}

func userNotFound(err error, id string) error {
	if errors.Is(err, databases.ErrNotFound) {
		return api.NewErrorResponse(fmt.Sprintf("No user with the id of %s", id), http.StatusNotFound)
	}
	return err
}
