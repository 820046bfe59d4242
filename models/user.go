package models

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Roles a user can hold
const (
	RoleUser      = "user"
	RolePublisher = "publisher"
	RoleAdmin     = "admin"
)

// ResetTokenTTL is how long a password reset token stays valid
const ResetTokenTTL = 10 * time.Minute

// User holds the structure for the user collection in mongo
type User struct {
	ID                  primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name                string             `json:"name" bson:"name"`
	Email               string             `json:"email" bson:"email"`
	Role                string             `json:"role" bson:"role"`
	Password            string             `json:"-" bson:"password"`
	ResetPasswordToken  string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpire *time.Time         `json:"-" bson:"resetPasswordExpire,omitempty"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
}

// PrivateUserFields never leave the api
var PrivateUserFields = []string{"password", "resetPasswordToken", "resetPasswordExpire"}

// SetPassword hashes plain with bcrypt and stores the hash
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// MatchPassword reports whether plain matches the stored hash
func (u *User) MatchPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NewResetToken generates a reset token. The plain token goes to the user, the
// hash and the expiry are stored on the user.
func (u *User) NewResetToken(now time.Time) (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	plain := hex.EncodeToString(b)
	expire := now.Add(ResetTokenTTL)
	u.ResetPasswordToken = HashResetToken(plain)
	u.ResetPasswordExpire = &expire
	return plain, nil
}

// HashResetToken returns the stored form of a reset token
func HashResetToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// RegisterRequest is the body accepted by the register endpoint. Admins cannot
// be self-registered.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher"`
}

// UserRequest is the body accepted when an admin creates a user
type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user publisher admin"`
}

// User converts the request into a user with a hashed password
func (r UserRequest) User(now time.Time) (User, error) {
	role := r.Role
	if role == "" {
		role = RoleUser
	}
	u := User{
		Name:      r.Name,
		Email:     r.Email,
		Role:      role,
		CreatedAt: now,
	}
	err := u.SetPassword(r.Password)
	return u, err
}

// UserUpdate is the body accepted when an admin updates a user
type UserUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Role     *string `json:"role" validate:"omitempty,oneof=user publisher admin"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// Set returns the $set document for the fields present in the update
func (u UserUpdate) Set() (bson.M, error) {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Role != nil {
		set["role"] = *u.Role
	}
	if u.Password != nil {
		var tmp User
		if err := tmp.SetPassword(*u.Password); err != nil {
			return nil, err
		}
		set["password"] = tmp.Password
	}
	return set, nil
}

// LoginRequest is the body accepted by the login endpoint
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateDetailsRequest is the body accepted when a user edits their profile
type UpdateDetailsRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// Set returns the $set document for the fields present in the update
func (r UpdateDetailsRequest) Set() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = *r.Name
	}
	if r.Email != nil {
		set["email"] = *r.Email
	}
	return set
}

// UpdatePasswordRequest is the body accepted when a user changes password
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// ForgotPasswordRequest is the body accepted by the forgot password endpoint
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest is the body accepted by the reset password endpoint
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}
