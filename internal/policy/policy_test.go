package policy

import (
	"testing"

	"github.com/joinboard/join-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCanModifyUser(t *testing.T) {
	target := &models.User{ID: 7}

	require.True(t, CanModifyUser(7, target))
	require.False(t, CanModifyUser(8, target))
}

func TestCanModifyContact(t *testing.T) {
	owner := uint64(7)

	unbound := &models.Contact{ID: 1}
	require.True(t, CanModifyContact(7, unbound))
	require.True(t, CanModifyContact(8, unbound))

	bound := &models.Contact{ID: 2, ActiveUserID: &owner}
	require.True(t, CanModifyContact(7, bound))
	require.False(t, CanModifyContact(8, bound))
}
