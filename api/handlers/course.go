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

// Course exported for testing purposes
type Course struct {
	DB  databases.CourseDatabase
	BDB databases.BootcampDatabase
}

// CoursesHandler returns the courses of a bootcamp when the route names one,
// otherwise a filtered page of all courses
func (c Course) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, ok := mux.Vars(r)["bootcampId"]; ok {
		bootcampID, err := objectIDVar(r, "bootcampId")
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		courses, err := c.DB.Find(ctx, bson.M{"bootcamp": bootcampID})
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		if courses == nil {
			courses = []models.Course{}
		}
		writeList(w, courses, len(courses))
		return
	}

	res, err := c.DB.List(ctx, r.URL.Query())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

// CourseByIDHandler returns a single course
func (c Course) CourseByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	course, err := c.findCourse(r, id)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, course)
}

// AddCourseHandler adds a course to a bootcamp owned by the caller
func (c Course) AddCourseHandler(w http.ResponseWriter, r *http.Request) {
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

	bootcamp, err := c.BDB.FindOne(ctx, bson.M{"_id": bootcampID})
	if errors.Is(err, databases.ErrNotFound) {
		api.ErrorStatus(w, api.NewErrorResponse(fmt.Sprintf("No bootcamp with the id of %s", bootcampID.Hex()), http.StatusNotFound))
		return
	}
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if !api.CanModify(bootcamp.User, user.ID, user.Role) {
		api.ErrorStatus(w, api.NewErrorResponse(
			fmt.Sprintf("User %s is not authorized to add a course to bootcamp %s", user.ID.Hex(), bootcampID.Hex()),
			http.StatusUnauthorized,
		))
		return
	}

	var req models.CourseRequest
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	course := req.Course(bootcampID, user.ID, time.Now())
	course.ID, err = c.DB.InsertOne(ctx, course)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	c.refreshAverageCost(r, bootcampID)

	writeData(w, http.StatusCreated, course)
}

// UpdateCourseHandler updates the fields present in the body
func (c Course) UpdateCourseHandler(w http.ResponseWriter, r *http.Request) {
	course, err := c.ownedCourse(r, "update")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	var req models.CourseUpdate
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	set := req.Set()
	if len(set) == 0 {
		writeData(w, http.StatusOK, course)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := c.DB.FindOneAndUpdate(ctx, bson.M{"_id": course.ID}, bson.M{"$set": set})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if req.Tuition != nil {
		c.refreshAverageCost(r, course.Bootcamp)
	}
	writeData(w, http.StatusOK, updated)
}

// DeleteCourseHandler deletes a course
func (c Course) DeleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	course, err := c.ownedCourse(r, "delete")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err = c.DB.DeleteOne(ctx, bson.M{"_id": course.ID}); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	c.refreshAverageCost(r, course.Bootcamp)

	writeData(w, http.StatusOK, emptyData)
}

func (c Course) findCourse(r *http.Request, id primitive.ObjectID) (*models.Course, error) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	course, err := c.DB.FindOne(ctx, bson.M{"_id": id})
	if errors.Is(err, databases.ErrNotFound) {
		return nil, api.NewErrorResponse(fmt.Sprintf("No course with the id of %s", id.Hex()), http.StatusNotFound)
	}
	return course, err
}

func (c Course) ownedCourse(r *http.Request, action string) (*models.Course, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, err
	}
	id, err := objectIDVar(r, "id")
	if err != nil {
		return nil, err
	}
	course, err := c.findCourse(r, id)
	if err != nil {
		return nil, err
	}
	if !api.CanModify(course.User, user.ID, user.Role) {
		return nil, api.NewErrorResponse(
			fmt.Sprintf("User %s is not authorized to %s course %s", user.ID.Hex(), action, id.Hex()),
			http.StatusUnauthorized,
		)
	}
	return course, nil
}

// refreshAverageCost keeps the bootcamp average in step with its courses. The
// nightly reconcile job repairs it when this fails.
func (c Course) refreshAverageCost(r *http.Request, bootcampID primitive.ObjectID) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := databases.RefreshAverageCost(ctx, c.DB, c.BDB, bootcampID); err != nil {
		zap.S().Errorw("failed to refresh average cost", "bootcamp", bootcampID.Hex(), "error", err)
	}
}
