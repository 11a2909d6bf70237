package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookrental-service/internal/access"
	"github.com/Astemirdum/bookrental-service/internal/model"
)

func TestCanManageCatalog(t *testing.T) {
	t.Parallel()
	require.True(t, access.CanManageCatalog(model.RoleAdmin))
	require.False(t, access.CanManageCatalog(model.RoleUser))
	require.False(t, access.CanManageCatalog(model.Role("")))
	require.False(t, access.CanManageCatalog(model.Role("admin")))
}

func TestCanDeleteReview(t *testing.T) {
	t.Parallel()
	require.True(t, access.CanDeleteReview(7, 7))
	// no admin override: ownership is the only criterion
	require.False(t, access.CanDeleteReview(1, 7))
}

func TestCanReturnRental(t *testing.T) {
	t.Parallel()
	require.True(t, access.CanReturnRental(7, 7))
	require.False(t, access.CanReturnRental(9, 7))
}
