package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/models"
)

// decodeBody reads the json body of r into v and validates it
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return models.Validate(v)
}

// objectIDVar parses the route variable name as an ObjectID
func objectIDVar(r *http.Request, name string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(mux.Vars(r)[name])
}

// currentUser returns the caller set by the protect middleware
func currentUser(r *http.Request) (*models.User, error) {
	user, ok := api.UserFromContext(r.Context())
	if !ok {
		return nil, api.NewErrorResponse("Not authorized to access this route", http.StatusUnauthorized)
	}
	return user, nil
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	api.WriteJSON(w, status, models.DataResponse{Success: true, Data: data})
}

func writeList(w http.ResponseWriter, data interface{}, count int) {
	api.WriteJSON(w, http.StatusOK, models.ListResponse{Success: true, Count: count, Data: data})
}

// emptyData is the data of responses to deletes
var emptyData = struct{}{}
