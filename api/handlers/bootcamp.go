package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/geocoder"
	"github.com/linesmerrill/devcamper-api/models"
	"github.com/linesmerrill/devcamper-api/storage"
)

// EarthRadiusMiles converts a distance in miles into radians
const EarthRadiusMiles = 3963

// Bootcamp exported for testing purposes
type Bootcamp struct {
	DB        databases.BootcampDatabase
	CDB       databases.CourseDatabase
	RDB       databases.ReviewDatabase
	Geocoder  geocoder.Geocoder
	Photos    storage.PhotoStore
	MaxUpload int64
}

// BootcampsHandler returns a filtered page of bootcamps
func (b Bootcamp) BootcampsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	res, err := b.DB.List(ctx, r.URL.Query())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, res)
}

// BootcampByIDHandler returns a single bootcamp
func (b Bootcamp) BootcampByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDVar(r, "id")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	bootcamp, err := b.findBootcamp(r, id)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, bootcamp)
}

// CreateBootcampHandler creates a bootcamp owned by the caller. Publishers own
// at most one bootcamp.
func (b Bootcamp) CreateBootcampHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	var req models.BootcampRequest
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	alreadyPublished := api.NewErrorResponse(
		fmt.Sprintf("The user with ID %s has already published a bootcamp", user.ID.Hex()),
		http.StatusBadRequest,
	)
	if !user.IsAdmin() {
		count, err := b.DB.CountDocuments(ctx, bson.M{"user": user.ID})
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		if count > 0 {
			api.ErrorStatus(w, alreadyPublished)
			return
		}
	}

	bootcamp := req.Bootcamp(user.ID, time.Now())
	bootcamp.OwnerExclusive = !user.IsAdmin()
	bootcamp.Location, err = b.geocode(r, req.Address)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	bootcamp.ID, err = b.DB.InsertOne(ctx, bootcamp)
	if err != nil {
		// a concurrent create by the same publisher trips the owner index
		if mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), "user_owner_exclusive") {
			api.ErrorStatus(w, alreadyPublished)
			return
		}
		api.ErrorStatus(w, err)
		return
	}

	zap.S().Debugw("bootcamp created", "bootcamp", bootcamp.ID.Hex(), "user", user.ID.Hex())
	writeData(w, http.StatusCreated, bootcamp)
}

// UpdateBootcampHandler updates the fields present in the body
func (b Bootcamp) UpdateBootcampHandler(w http.ResponseWriter, r *http.Request) {
	user, bootcamp, err := b.ownedBootcamp(r, "update")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	var req models.BootcampUpdate
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	set := req.Set()
	if req.Address != nil {
		loc, err := b.geocode(r, *req.Address)
		if err != nil {
			api.ErrorStatus(w, err)
			return
		}
		set["location"] = loc
	}
	if len(set) == 0 {
		writeData(w, http.StatusOK, bootcamp)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := b.DB.FindOneAndUpdate(ctx, bson.M{"_id": bootcamp.ID}, bson.M{"$set": set})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	zap.S().Debugw("bootcamp updated", "bootcamp", bootcamp.ID.Hex(), "user", user.ID.Hex())
	writeData(w, http.StatusOK, updated)
}

// DeleteBootcampHandler deletes a bootcamp along with its courses and reviews
func (b Bootcamp) DeleteBootcampHandler(w http.ResponseWriter, r *http.Request) {
	_, bootcamp, err := b.ownedBootcamp(r, "delete")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	courses, err := b.CDB.DeleteMany(ctx, bson.M{"bootcamp": bootcamp.ID})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	reviews, err := b.RDB.DeleteMany(ctx, bson.M{"bootcamp": bootcamp.ID})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if err = b.DB.DeleteOne(ctx, bson.M{"_id": bootcamp.ID}); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	zap.S().Debugw("bootcamp deleted",
		"bootcamp", bootcamp.ID.Hex(),
		"courses", courses,
		"reviews", reviews)
	writeData(w, http.StatusOK, emptyData)
}

// BootcampsInRadiusHandler returns the bootcamps within distance miles of a
// zipcode
func (b Bootcamp) BootcampsInRadiusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	distance, err := strconv.ParseFloat(vars["distance"], 64)
	if err != nil || distance < 0 {
		api.ErrorStatus(w, api.NewErrorResponse("Please provide a valid distance", http.StatusBadRequest))
		return
	}

	loc, err := b.geocode(r, vars["zipcode"])
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bootcamps, err := b.DB.Find(ctx, RadiusFilter(loc.Coordinates[0], loc.Coordinates[1], distance))
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if bootcamps == nil {
		bootcamps = []models.Bootcamp{}
	}
	writeList(w, bootcamps, len(bootcamps))
}

// RadiusFilter matches locations within distance miles of (lng, lat)
func RadiusFilter(lng, lat, distance float64) bson.M {
	radius := distance / EarthRadiusMiles
	return bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{bson.A{lng, lat}, radius},
			},
		},
	}
}

// MultipartOverhead is the room left above the upload limit for the multipart
// boundaries and part headers
const MultipartOverhead = 64 << 10

// BootcampPhotoUploadHandler stores the image in the file field of a multipart
// body as the bootcamp photo
func (b Bootcamp) BootcampPhotoUploadHandler(w http.ResponseWriter, r *http.Request) {
	_, bootcamp, err := b.ownedBootcamp(r, "update")
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	tooLarge := api.NewErrorResponse(
		fmt.Sprintf("Please upload an image less than %d bytes", b.MaxUpload),
		http.StatusBadRequest,
	)

	r.Body = http.MaxBytesReader(w, r.Body, b.MaxUpload+MultipartOverhead)
	file, header, err := r.FormFile("file")
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		api.ErrorStatus(w, tooLarge)
		return
	}
	if err != nil {
		api.ErrorStatus(w, api.NewErrorResponse("Please upload a file", http.StatusBadRequest))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image") {
		api.ErrorStatus(w, api.NewErrorResponse("Please upload an image file", http.StatusBadRequest))
		return
	}
	if header.Size > b.MaxUpload {
		api.ErrorStatus(w, tooLarge)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	name := fmt.Sprintf("photo_%s%s", bootcamp.ID.Hex(), filepath.Ext(header.Filename))
	ref, err := b.Photos.Save(ctx, name, contentType, file)
	if err != nil {
		zap.S().Errorw("failed to store photo", "bootcamp", bootcamp.ID.Hex(), "error", err)
		api.ErrorStatus(w, api.NewErrorResponse("Problem with file upload", http.StatusInternalServerError))
		return
	}

	if err = b.DB.UpdateOne(ctx, bson.M{"_id": bootcamp.ID}, bson.M{"$set": bson.M{"photo": ref}}); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, ref)
}

func (b Bootcamp) findBootcamp(r *http.Request, id primitive.ObjectID) (*models.Bootcamp, error) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	bootcamp, err := b.DB.FindOne(ctx, bson.M{"_id": id})
	if errors.Is(err, databases.ErrNotFound) {
		return nil, api.NewErrorResponse(fmt.Sprintf("Bootcamp not found with id of %s", id.Hex()), http.StatusNotFound)
	}
	return bootcamp, err
}

// ownedBootcamp loads the bootcamp of the id route variable and checks the
// caller may modify it
func (b Bootcamp) ownedBootcamp(r *http.Request, action string) (*models.User, *models.Bootcamp, error) {
	user, err := currentUser(r)
	if err != nil {
		return nil, nil, err
	}
	id, err := objectIDVar(r, "id")
	if err != nil {
		return nil, nil, err
	}
	bootcamp, err := b.findBootcamp(r, id)
	if err != nil {
		return nil, nil, err
	}
	if !api.CanModify(bootcamp.User, user.ID, user.Role) {
		return nil, nil, api.NewErrorResponse(
			fmt.Sprintf("User %s is not authorized to %s this bootcamp", user.ID.Hex(), action),
			http.StatusUnauthorized,
		)
	}
	return user, bootcamp, nil
}

func (b Bootcamp) geocode(r *http.Request, address string) (*models.Location, error) {
	loc, err := b.Geocoder.Geocode(r.Context(), address)
	if errors.Is(err, geocoder.ErrLocationNotFound) {
		return nil, api.NewErrorResponse(fmt.Sprintf("Could not find a location for %s", address), http.StatusBadRequest)
	}
	return loc, err
}
