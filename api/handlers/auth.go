package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/config"
	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/mailer"
	"github.com/linesmerrill/devcamper-api/models"
	templates "github.com/linesmerrill/devcamper-api/templates/html"
)

// LogoutCookieTTL is how long the cleared token cookie lives
const LogoutCookieTTL = 10 * time.Second

var errInvalidCredentials = api.NewErrorResponse("Invalid credentials", http.StatusUnauthorized)

// Auth exported for testing purposes
type Auth struct {
	DB         databases.UserDatabase
	Middleware api.MiddlewareDB
	Mailer     mailer.Mailer
	Config     *config.Config
}

// RegisterHandler creates a user and signs them in
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	user, err := models.UserRequest(req).User(time.Now())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user.ID, err = a.DB.InsertOne(ctx, user)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	zap.S().Debugw("user registered", "user", user.ID.Hex(), "role", user.Role)
	a.sendTokenResponse(w, &user, http.StatusOK)
}

// LoginHandler signs a user in with email and password. Unknown emails and
// wrong passwords get the same answer.
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		api.ErrorStatus(w, api.NewErrorResponse("Please provide an email and password", http.StatusBadRequest))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindOne(ctx, bson.M{"email": req.Email})
	if errors.Is(err, databases.ErrNotFound) {
		api.ErrorStatus(w, errInvalidCredentials)
		return
	}
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if !user.MatchPassword(req.Password) {
		api.ErrorStatus(w, errInvalidCredentials)
		return
	}
	a.sendTokenResponse(w, user, http.StatusOK)
}

// LogoutHandler revokes the caller's token and clears the token cookie
func (a Auth) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	a.Middleware.Revoke(r)
	http.SetCookie(w, &http.Cookie{
		Name:     api.TokenCookie,
		Value:    "none",
		Path:     "/",
		Expires:  time.Now().Add(LogoutCookieTTL),
		HttpOnly: true,
	})
	writeData(w, http.StatusOK, emptyData)
}

// MeHandler returns the signed in user
func (a Auth) MeHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, user)
}

// UpdateDetailsHandler changes the name and email of the signed in user
func (a Auth) UpdateDetailsHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	var req models.UpdateDetailsRequest
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	set := req.Set()
	if len(set) == 0 {
		writeData(w, http.StatusOK, user)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	updated, err := a.DB.FindOneAndUpdate(ctx, bson.M{"_id": user.ID}, bson.M{"$set": set})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	writeData(w, http.StatusOK, updated)
}

// UpdatePasswordHandler changes the password of the signed in user and issues
// a new token
func (a Auth) UpdatePasswordHandler(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	var req models.UpdatePasswordRequest
	if err = decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	if !user.MatchPassword(req.CurrentPassword) {
		api.ErrorStatus(w, api.NewErrorResponse("Password is incorrect", http.StatusUnauthorized))
		return
	}
	if err = user.SetPassword(req.NewPassword); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err = a.DB.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"password": user.Password}}); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	a.sendTokenResponse(w, user, http.StatusOK)
}

// ForgotPasswordHandler emails a password reset link. The reset token is
// discarded again when the email cannot be sent.
func (a Auth) ForgotPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindOne(ctx, bson.M{"email": req.Email})
	if errors.Is(err, databases.ErrNotFound) {
		api.ErrorStatus(w, api.NewErrorResponse("There is no user with that email", http.StatusNotFound))
		return
	}
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	plain, err := user.NewResetToken(time.Now())
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	err = a.DB.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"resetPasswordToken":  user.ResetPasswordToken,
		"resetPasswordExpire": user.ResetPasswordExpire,
	}})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	resetURL := fmt.Sprintf("%s/api/v1/auth/resetpassword/%s", a.baseURL(r), plain)
	err = a.Mailer.Send(ctx, mailer.Message{
		ToEmail: user.Email,
		ToName:  user.Name,
		Subject: templates.PasswordResetSubject,
		Text:    templates.RenderPasswordResetText(resetURL),
		HTML:    templates.RenderPasswordResetEmail(user.Name, resetURL),
	})
	if err != nil {
		zap.S().Errorw("failed to send reset email", "user", user.ID.Hex(), "error", err)
		// the send may have used up ctx, the token must still be cleared
		rollbackCtx, rollbackCancel := api.WithQueryTimeout(context.WithoutCancel(r.Context()))
		defer rollbackCancel()
		unset := bson.M{"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpire": ""}}
		if err = a.DB.UpdateOne(rollbackCtx, bson.M{"_id": user.ID}, unset); err != nil {
			zap.S().Errorw("failed to clear reset token", "user", user.ID.Hex(), "error", err)
		}
		api.ErrorStatus(w, api.NewErrorResponse("Email could not be sent", http.StatusInternalServerError))
		return
	}
	writeData(w, http.StatusOK, "Email sent")
}

// ResetPasswordHandler sets a new password for the holder of an unexpired
// reset token
func (a Auth) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		api.ErrorStatus(w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	hashed := models.HashResetToken(mux.Vars(r)["resettoken"])
	user, err := a.DB.FindOne(ctx, bson.M{
		"resetPasswordToken":  hashed,
		"resetPasswordExpire": bson.M{"$gt": time.Now()},
	})
	if errors.Is(err, databases.ErrNotFound) {
		api.ErrorStatus(w, api.NewErrorResponse("Invalid token", http.StatusBadRequest))
		return
	}
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}

	if err = user.SetPassword(req.Password); err != nil {
		api.ErrorStatus(w, err)
		return
	}
	err = a.DB.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set":   bson.M{"password": user.Password},
		"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpire": ""},
	})
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	user.ResetPasswordToken = ""
	user.ResetPasswordExpire = nil
	a.sendTokenResponse(w, user, http.StatusOK)
}

// sendTokenResponse signs a token for user and returns it in the body and the
// token cookie
func (a Auth) sendTokenResponse(w http.ResponseWriter, user *models.User, status int) {
	token, err := a.Middleware.Tokens.Sign(user.ID)
	if err != nil {
		api.ErrorStatus(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     api.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(a.Config.CookieExpiry()),
		HttpOnly: true,
		Secure:   a.Config.IsProduction(),
	})
	api.WriteJSON(w, status, models.TokenResponse{Success: true, Token: token})
}

func (a Auth) baseURL(r *http.Request) string {
	if a.Config.BaseURL != "" {
		return strings.TrimSuffix(a.Config.BaseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
