package repository

import (
	"context"

	"github.com/Gauravsharma19971029/FindDev/internal/cache"
	"github.com/Gauravsharma19971029/FindDev/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// embedded experience and education lists.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	HandleExists(ctx context.Context, handle string) (bool, error)
	Create(ctx context.Context, profile *models.Profile) error
	UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, expID uint) (bool, error)
	AddEducation(ctx context.Context, edu *models.Education) error
	RemoveEducation(ctx context.Context, profileID, eduID uint) (bool, error)
	Delete(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// withAssociations expands the user reference to its public fields and loads
// the experience and education lists newest first.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select(models.PublicUserFields)
		}).
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("experiences.id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("educations.id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByHandle(ctx context.Context, handle string) (*models.Profile, error) {
	var profile models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Where("handle = ?", handle).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := withAssociations(r.db.WithContext(ctx)).
		Order("profiles.created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepository) HandleExists(ctx context.Context, handle string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("handle = ?", handle).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// UpdateFields applies a sparse patch to the profile owned by userID. Only
// the keys present in fields are touched.
func (r *profileRepository) UpdateFields(ctx context.Context, userID uint, fields map[string]interface{}) error {
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Updates(fields).Error
	if err == nil {
		cache.InvalidateProfile(ctx, userID)
	}
	return err
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	return r.db.WithContext(ctx).Create(exp).Error
}

// RemoveExperience deletes the experience entry with the given id from the
// profile. It reports whether an entry was removed; unknown ids are a no-op.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, expID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, expID).
		Delete(&models.Experience{})
	return res.RowsAffected > 0, res.Error
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	return r.db.WithContext(ctx).Create(edu).Error
}

// RemoveEducation deletes the education entry with the given id from the
// profile. It reports whether an entry was removed; unknown ids are a no-op.
func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, eduID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profileID, eduID).
		Delete(&models.Education{})
	return res.RowsAffected > 0, res.Error
}

func (r *profileRepository) Delete(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Profile{}).Error; err != nil {
		return err
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}
