package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Gauravsharma19971029/FindDev/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB gives each test an isolated in-memory database with the full
// schema migrated, so association and ordering behaviour runs against real SQL.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Experience{},
		&models.Education{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestProfileRepository_CreateAndGet(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")

	profile := &models.Profile{
		UserID: user.ID,
		Handle: "johndoe",
		Status: "Developer",
		Skills: []string{"Go", "SQL"},
		Social: models.SocialLinks{Twitter: "https://twitter.com/johndoe"},
	}
	require.NoError(t, repo.Create(ctx, profile))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", got.Handle)
	assert.Equal(t, []string{"Go", "SQL"}, got.Skills)
	assert.Equal(t, "https://twitter.com/johndoe", got.Social.Twitter)

	// The user reference is expanded to its public fields only.
	assert.Equal(t, "John Doe", got.User.Name)
	assert.Empty(t, got.User.Email)

	byHandle, err := repo.GetByHandle(ctx, "johndoe")
	require.NoError(t, err)
	assert.Equal(t, got.ID, byHandle.ID)
}

func TestProfileRepository_HandleExists(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	require.NoError(t, repo.Create(ctx, &models.Profile{
		UserID: user.ID, Handle: "johndoe", Status: "Developer",
	}))

	exists, err := repo.HandleExists(ctx, "johndoe")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.HandleExists(ctx, "someoneelse")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProfileRepository_UpdateFields(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	require.NoError(t, repo.Create(ctx, &models.Profile{
		UserID:  user.ID,
		Handle:  "johndoe",
		Status:  "Developer",
		Company: "Initech",
		Bio:     "original bio",
	}))

	// Patch only the company; every other column must survive.
	require.NoError(t, repo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"company": "Globex",
	}))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", got.Company)
	assert.Equal(t, "original bio", got.Bio)
	assert.Equal(t, "johndoe", got.Handle)
}

func TestProfileRepository_ExperienceLifecycle(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	profile := &models.Profile{UserID: user.ID, Handle: "johndoe", Status: "Developer"}
	require.NoError(t, repo.Create(ctx, profile))

	first := &models.Experience{
		ProfileID: profile.ID,
		Title:     "Junior Engineer",
		Company:   "Initech",
		From:      time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AddExperience(ctx, first))

	second := &models.Experience{
		ProfileID: profile.ID,
		Title:     "Senior Engineer",
		Company:   "Globex",
		From:      time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		Current:   true,
	}
	require.NoError(t, repo.AddExperience(ctx, second))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 2)

	// Newest entries come first.
	assert.Equal(t, "Senior Engineer", got.Experience[0].Title)
	assert.Equal(t, "Junior Engineer", got.Experience[1].Title)

	removed, err := repo.RemoveExperience(ctx, profile.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// Removing an id that is not there is a safe no-op.
	removed, err = repo.RemoveExperience(ctx, profile.ID, 9999)
	require.NoError(t, err)
	assert.False(t, removed)

	got, err = repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Experience, 1)
	assert.Equal(t, "Senior Engineer", got.Experience[0].Title)
}

func TestProfileRepository_EducationLifecycle(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	profile := &models.Profile{UserID: user.ID, Handle: "johndoe", Status: "Developer"}
	require.NoError(t, repo.Create(ctx, profile))

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       "State University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         time.Date(2016, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.AddEducation(ctx, edu))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got.Education, 1)
	assert.Equal(t, "State University", got.Education[0].School)

	removed, err := repo.RemoveEducation(ctx, profile.ID, edu.ID)
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestProfileRepository_List(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	for i, handle := range []string{"firstdev", "seconddev"} {
		user := createTestUser(t, db, "User", handle+"@example.com")
		require.NoError(t, repo.Create(ctx, &models.Profile{
			UserID:    user.ID,
			Handle:    handle,
			Status:    "Developer",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	profiles, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "seconddev", profiles[0].Handle)
}

func TestProfileRepository_Delete(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "John Doe", "john@example.com")
	require.NoError(t, repo.Create(ctx, &models.Profile{
		UserID: user.ID, Handle: "johndoe", Status: "Developer",
	}))

	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
