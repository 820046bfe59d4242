package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/models"
)

// ErrorResponse is an error that already knows the status it should be
// answered with
type ErrorResponse struct {
	Message    string
	StatusCode int
}

// NewErrorResponse returns an ErrorResponse with the given message and status
func NewErrorResponse(message string, statusCode int) *ErrorResponse {
	return &ErrorResponse{Message: message, StatusCode: statusCode}
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// Translate maps err onto the status code and message returned to the client
func Translate(err error) (int, string) {
	var errResp *ErrorResponse
	var validationErr *models.ValidationError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &errResp):
		return errResp.StatusCode, errResp.Message
	case errors.Is(err, databases.ErrNotFound),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, primitive.ErrInvalidHex):
		return http.StatusNotFound, "Resource not found"
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case mongo.IsDuplicateKeyError(err):
		return http.StatusBadRequest, "Duplicate field value entered"
	case errors.As(err, &syntaxErr),
		errors.As(err, &typeErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return http.StatusBadRequest, "Invalid request body"
	default:
		return http.StatusInternalServerError, "Server Error"
	}
}

// ErrorStatus logs err and writes it to the client as an error body
func ErrorStatus(w http.ResponseWriter, err error) {
	status, message := Translate(err)
	if status >= http.StatusInternalServerError {
		zap.S().Errorw("request failed", "status", status, "error", err)
	} else {
		zap.S().Debugw("request rejected", "status", status, "error", err)
	}
	WriteJSON(w, status, models.ErrorMessageResponse{Success: false, Error: message})
}

// WriteJSON writes v as the json body of the response
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		zap.S().Errorw("failed to marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
