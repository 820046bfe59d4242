package handlers_test

import (
	"errors"
	"fmt"
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

const addCourseBody = `{
	"title": "Front End Web Development",
	"description": "HTML, CSS and JavaScript",
	"weeks": "8",
	"tuition": 8000,
	"minimumSkill": "beginner",
	"scholarshipAvailable": true
}`

func TestCourse_CoursesHandlerForBootcamp(t *testing.T) {
	bootcampID := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", nil)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	cdb := &mocks.CourseDatabase{}
	cdb.On("Find", mock.Anything, bson.M{"bootcamp": bootcampID}).
		Return([]models.Course{{Title: "Front End"}, {Title: "Full Stack"}}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb}.CoursesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":2`)
	assert.NotContains(t, rr.Body.String(), "pagination")
	cdb.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCourse_CoursesHandlerAll(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/courses?page=2&limit=1", nil)

	cdb := &mocks.CourseDatabase{}
	cdb.On("List", mock.Anything, req.URL.Query()).Return(&models.ListResponse{
		Success:    true,
		Count:      1,
		Pagination: &models.Pagination{Prev: &models.PageRef{Page: 1, Limit: 1}},
		Data:       []models.Course{{Title: "Front End"}},
	}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb}.CoursesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"prev":{"page":1,"limit":1}`)
}

func TestCourse_CourseByIDHandlerNotFound(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/api/v1/courses/"+id.Hex(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	cdb := &mocks.CourseDatabase{}
	cdb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(nil, databases.ErrNotFound)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb}.CourseByIDHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No course with the id of "+id.Hex(), errorBody(t, rr))
}

func TestCourse_AddCourseHandler(t *testing.T) {
	caller := newUser(models.RolePublisher)
	bootcampID := primitive.NewObjectID()
	courseID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("POST", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", strings.NewReader(addCourseBody)), caller)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	avg := 8000.0
	bdb := &mocks.BootcampDatabase{}
	cdb := &mocks.CourseDatabase{}
	bdb.On("FindOne", mock.Anything, bson.M{"_id": bootcampID}).Return(&models.Bootcamp{ID: bootcampID, User: caller.ID}, nil)
	cdb.On("InsertOne", mock.Anything, mock.MatchedBy(func(c models.Course) bool {
		return c.Bootcamp == bootcampID && c.User == caller.ID && c.Tuition == 8000
	})).Return(courseID, nil)
	cdb.On("AverageCost", mock.Anything, bootcampID).Return(&avg, nil)
	bdb.On("UpdateOne", mock.Anything, bson.M{"_id": bootcampID}, bson.M{"$set": bson.M{"averageCost": avg}}).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb, BDB: bdb}.AddCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), courseID.Hex())
	bdb.AssertExpectations(t)
}

func TestCourse_AddCourseHandlerAverageFailureStillCreates(t *testing.T) {
	caller := newUser(models.RolePublisher)
	bootcampID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("POST", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", strings.NewReader(addCourseBody)), caller)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	bdb := &mocks.BootcampDatabase{}
	cdb := &mocks.CourseDatabase{}
	bdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Bootcamp{ID: bootcampID, User: caller.ID}, nil)
	cdb.On("InsertOne", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	cdb.On("AverageCost", mock.Anything, bootcampID).Return(nil, errors.New("mocked-error"))

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb, BDB: bdb}.AddCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	bdb.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestCourse_AddCourseHandlerNoBootcamp(t *testing.T) {
	caller := newUser(models.RolePublisher)
	bootcampID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("POST", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", strings.NewReader(addCourseBody)), caller)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	bdb := &mocks.BootcampDatabase{}
	bdb.On("FindOne", mock.Anything, bson.M{"_id": bootcampID}).Return(nil, databases.ErrNotFound)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: &mocks.CourseDatabase{}, BDB: bdb}.AddCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "No bootcamp with the id of "+bootcampID.Hex(), errorBody(t, rr))
}

func TestCourse_AddCourseHandlerNotBootcampOwner(t *testing.T) {
	caller := newUser(models.RolePublisher)
	bootcampID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("POST", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", strings.NewReader(addCourseBody)), caller)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	bdb := &mocks.BootcampDatabase{}
	cdb := &mocks.CourseDatabase{}
	bdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Bootcamp{ID: bootcampID, User: primitive.NewObjectID()}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb, BDB: bdb}.AddCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, fmt.Sprintf("User %s is not authorized to add a course to bootcamp %s", caller.ID.Hex(), bootcampID.Hex()), errorBody(t, rr))
	cdb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestCourse_AddCourseHandlerInvalidSkill(t *testing.T) {
	caller := newUser(models.RolePublisher)
	bootcampID := primitive.NewObjectID()
	body := strings.Replace(addCourseBody, `"beginner"`, `"expert"`, 1)
	req := withUser(httptest.NewRequest("POST", "/api/v1/bootcamps/"+bootcampID.Hex()+"/courses", strings.NewReader(body)), caller)
	req = mux.SetURLVars(req, map[string]string{"bootcampId": bootcampID.Hex()})

	bdb := &mocks.BootcampDatabase{}
	bdb.On("FindOne", mock.Anything, mock.Anything).Return(&models.Bootcamp{ID: bootcampID, User: caller.ID}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: &mocks.CourseDatabase{}, BDB: bdb}.AddCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, errorBody(t, rr), "expert is not a valid minimum skill")
}

func TestCourse_UpdateCourseHandlerNotOwner(t *testing.T) {
	caller := newUser(models.RolePublisher)
	id := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("PUT", "/api/v1/courses/"+id.Hex(), strings.NewReader(`{"tuition":1}`)), caller)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	cdb := &mocks.CourseDatabase{}
	cdb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(&models.Course{ID: id, User: primitive.NewObjectID()}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb}.UpdateCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, fmt.Sprintf("User %s is not authorized to update course %s", caller.ID.Hex(), id.Hex()), errorBody(t, rr))
	cdb.AssertNotCalled(t, "FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCourse_UpdateCourseHandlerTuitionRefreshesAverage(t *testing.T) {
	caller := newUser(models.RolePublisher)
	id := primitive.NewObjectID()
	bootcampID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("PUT", "/api/v1/courses/"+id.Hex(), strings.NewReader(`{"tuition":12001}`)), caller)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	avg := 12010.0
	cdb := &mocks.CourseDatabase{}
	bdb := &mocks.BootcampDatabase{}
	cdb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(&models.Course{ID: id, User: caller.ID, Bootcamp: bootcampID}, nil)
	cdb.On("FindOneAndUpdate", mock.Anything, bson.M{"_id": id}, bson.M{"$set": bson.M{"tuition": 12001.0}}).
		Return(&models.Course{ID: id, Tuition: 12001}, nil)
	cdb.On("AverageCost", mock.Anything, bootcampID).Return(&avg, nil)
	bdb.On("UpdateOne", mock.Anything, bson.M{"_id": bootcampID}, bson.M{"$set": bson.M{"averageCost": avg}}).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb, BDB: bdb}.UpdateCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	bdb.AssertExpectations(t)
}

func TestCourse_DeleteCourseHandlerLastCourseClearsAverage(t *testing.T) {
	caller := newUser(models.RoleAdmin)
	id := primitive.NewObjectID()
	bootcampID := primitive.NewObjectID()
	req := withUser(httptest.NewRequest("DELETE", "/api/v1/courses/"+id.Hex(), nil), caller)
	req = mux.SetURLVars(req, map[string]string{"id": id.Hex()})

	cdb := &mocks.CourseDatabase{}
	bdb := &mocks.BootcampDatabase{}
	cdb.On("FindOne", mock.Anything, bson.M{"_id": id}).Return(&models.Course{ID: id, User: primitive.NewObjectID(), Bootcamp: bootcampID}, nil)
	cdb.On("DeleteOne", mock.Anything, bson.M{"_id": id}).Return(nil)
	cdb.On("AverageCost", mock.Anything, bootcampID).Return(nil, nil)
	bdb.On("UpdateOne", mock.Anything, bson.M{"_id": bootcampID}, bson.M{"$unset": bson.M{"averageCost": ""}}).Return(nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(handlers.Course{DB: cdb, BDB: bdb}.DeleteCourseHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{}}`, rr.Body.String())
	bdb.AssertExpectations(t)
}
