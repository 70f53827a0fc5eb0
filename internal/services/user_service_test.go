package services

import (
	"testing"

	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// racingUserRepo simulates a writer that commits a conflicting email between
// the service's uniqueness check and its update: the check never sees the
// conflict, so the unique index is the only thing left to catch it.
type racingUserRepo struct {
	repository.UserRepository
}

func (r racingUserRepo) FindByEmail(string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func TestUserService_UpdateEmailUniqueIndexRace(t *testing.T) {
	_, db := setupAuthService(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, db.Create(&models.User{
		Username:     "holder",
		Email:        "taken@example.com",
		PasswordHash: "x",
	}).Error)

	victim := models.User{
		Username:     "racer",
		Email:        "racer@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&victim).Error)

	svc := NewUserService(racingUserRepo{repo})

	email := "taken@example.com"
	_, err := svc.UpdateUser(victim.ID, UpdateUserInput{Email: &email})
	require.ErrorIs(t, err, ErrEmailTaken)

	var unchanged models.User
	require.NoError(t, db.First(&unchanged, victim.ID).Error)
	require.Equal(t, "racer@example.com", unchanged.Email)
}
