package api

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/linesmerrill/devcamper-api/models"
)

// CanModify reports whether the caller may change a resource owned by ownerID.
// Admins may change anything.
func CanModify(ownerID, callerID primitive.ObjectID, role string) bool {
	return role == models.RoleAdmin || ownerID == callerID
}
