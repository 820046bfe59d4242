package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/api/handlers"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/databases/mocks"
	"github.com/linesmerrill/devcamper-api/models"
)

func TestUser_UsersHandler(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/users?role=publisher", nil)

	udb := &mocks.UserDatabase{}
	udb.On("List", mock.Anything, req.URL.Query()).Return(&models.ListResponse{
		Success: true,
		Count:   1,
		Data:    []models.User{{Name: "Publisher Account", Role: models.RolePublisher}},
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.UsersHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Publisher Account")
}

func TestUser_UserByIDHandlerNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/api/v1/users/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	udb := &mocks.UserDatabase{}
	udb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(nil, databases.ErrNotFound)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.UserByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No user with the id of "+id.Hex(), errorBody(t, rr))
}

func TestUser_CreateUserHandlerAdminRole(t *testing.T) {
	body := `{"name":"Second Admin","email":"admin2@gmail.com","password":"123456","role":"admin"}`
	req := httptest.NewRequest("POST", "/api/v1/users", strings.NewReader(body))

	udb := &mocks.UserDatabase{}
	udb.On("InsertOne", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleAdmin && u.MatchPassword("123456")
	})).Return(primitive.NewObjectID(), nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.CreateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestUser_CreateUserHandlerInvalidEmail(t *testing.T) {
	body := `{"name":"Someone","email":"not-an-email","password":"123456"}`
	req := httptest.NewRequest("POST", "/api/v1/users", strings.NewReader(body))

	udb := &mocks.UserDatabase{}
	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.CreateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Please add a valid email", errorBody(t, rr))
	udb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestUser_UpdateUserHandler(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("PUT", "/api/v1/users/"+id.Hex(), strings.NewReader(`{"role":"publisher"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	udb := &mocks.UserDatabase{}
	udb.On("FindOneAndUpdate", mock.Anything, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "publisher"}}).
		Return(&models.User{ID: id, Role: models.RolePublisher}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.UpdateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"role":"publisher"`)
}

func TestUser_UpdateUserHandlerEmptyBody(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("PUT", "/api/v1/users/"+id.Hex(), strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	udb := &mocks.UserDatabase{}
	udb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(&models.User{ID: id}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.UpdateUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	udb.AssertNotCalled(t, "FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_DeleteUserHandler(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("DELETE", "/api/v1/users/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	udb := &mocks.UserDatabase{}
	udb.On("DeleteOne", mock.Anything, bson.M{"_id": id}).Return(databases.ErrNotFound)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.User{DB: udb}.DeleteUserHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No user with the id of "+id.Hex(), errorBody(t, rr))
}
