// Package access holds the pure allow/deny decisions. It keeps no state
// and is consulted by every mutating entry point.
package access

import (
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func CanManageCatalog(role model.Role) bool {
	return role == model.RoleAdmin
}

// CanDeleteReview allows only the owning user; admins get no override.
func CanDeleteReview(actingUserID, ownerID int) bool {
	return actingUserID == ownerID
}

func CanReturnRental(actingUserID, renterID int) bool {
	return actingUserID == renterID
}
