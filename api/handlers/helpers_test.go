package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/mailer"
	"github.com/linesmerrill/devcamper-api/models"
)

func newUser(role string) *models.User {
	return &models.User{ID: primitive.NewObjectID(), Name: "John Doe", Email: "john@gmail.com", Role: role}
}

func withUser(req *http.Request, u *models.User) *http.Request {
	return req.WithContext(api.WithUser(req.Context(), u))
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorMessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rr.Body.String(), err)
	}
	if body.Success {
		t.Errorf("expected success false in %s", rr.Body.String())
	}
	return body.Error
}

type fakeGeocoder struct {
	loc       *models.Location
	err       error
	addresses []string
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (*models.Location, error) {
	f.addresses = append(f.addresses, address)
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}

type fakePhotos struct {
	name        string
	contentType string
	data        []byte
	ref         string
	err         error
}

func (f *fakePhotos) Save(_ context.Context, name, contentType string, r io.Reader) (string, error) {
	f.name, f.contentType = name, contentType
	f.data, _ = io.ReadAll(r)
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
	// honorCtx fails the send with the context error once ctx is done
	honorCtx bool
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if f.honorCtx && ctx.Err() != nil {
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}
