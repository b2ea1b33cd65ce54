package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the gin context key the auth middleware sets for the
// authenticated caller.
const UserIDKey = "user_id"

// CurrentUserID reads the authenticated user id from the gin context.
// uuid.Nil means the request is anonymous.
func CurrentUserID(c *gin.Context) uuid.UUID {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
