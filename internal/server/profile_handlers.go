package server

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Gauravsharma19971029/FindDev/internal/models"
	"github.com/Gauravsharma19971029/FindDev/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// profileRequest is the raw field bag of a profile submission. Absent fields
// arrive as empty strings and are left untouched on update.
type profileRequest struct {
	Handle         string `json:"handle"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// GetCurrentProfile handles GET /api/profile
func (s *Server) GetCurrentProfile(c *fiber.Ctx) error {
	userID := authedUserID(c)

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"noprofile": "There is no profile for this user",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(profile)
}

// GetAllProfiles handles GET /api/profile/all
func (s *Server) GetAllProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"profile": "There is no profile present",
		})
	}
	return c.JSON(profiles)
}

// GetProfileByHandle handles GET /api/profile/handle/:handle
func (s *Server) GetProfileByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")

	profile, err := s.profileRepo.GetByHandle(c.Context(), handle)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noprofile": "There is no profile for this user",
		})
	}
	return c.JSON(profile)
}

// GetProfileByUserID handles GET /api/profile/users/:userId
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"noprofile": "There is no profile for this user",
		})
	}
	return c.JSON(profile)
}

// UpsertProfile handles POST /api/profile. An existing profile receives a
// sparse patch built from the non-empty body fields; otherwise a new profile
// is created after the handle uniqueness check.
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	userID := authedUserID(c)

	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result := validation.ValidateProfileInput(validation.ProfileInput{
		Handle:    req.Handle,
		Status:    req.Status,
		Skills:    req.Skills,
		Website:   req.Website,
		Youtube:   req.Youtube,
		Twitter:   req.Twitter,
		Facebook:  req.Facebook,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
	})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(result.Errors)
	}

	_, err := s.profileRepo.GetByUserID(c.Context(), userID)
	switch {
	case err == nil:
		if err := s.profileRepo.UpdateFields(c.Context(), userID, profilePatch(req)); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Pre-insert existence check; not transactional, a concurrent insert
		// with the same handle is caught by the unique index instead.
		taken, existsErr := s.profileRepo.HandleExists(c.Context(), req.Handle)
		if existsErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, existsErr)
		}
		if taken {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"handle": "That handle already exists",
			})
		}

		profile := &models.Profile{
			UserID:         userID,
			Handle:         req.Handle,
			Status:         req.Status,
			Company:        req.Company,
			Website:        req.Website,
			Location:       req.Location,
			Bio:            req.Bio,
			GithubUsername: req.GithubUsername,
			Skills:         splitSkills(req.Skills),
			Social: models.SocialLinks{
				Youtube:   req.Youtube,
				Twitter:   req.Twitter,
				Facebook:  req.Facebook,
				Linkedin:  req.Linkedin,
				Instagram: req.Instagram,
			},
		}
		if createErr := s.profileRepo.Create(c.Context(), profile); createErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
		}
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithProfile(c, userID)
}

// AddExperience handles POST /api/profile/experience.
// An entry with no end date is marked current.
func (s *Server) AddExperience(c *fiber.Ctx) error {
	userID := authedUserID(c)

	var req struct {
		Title       string `json:"title"`
		Company     string `json:"company"`
		Location    string `json:"location"`
		From        string `json:"from"`
		To          string `json:"to"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result := validation.ValidateExperienceInput(validation.ExperienceInput{
		Title:   req.Title,
		Company: req.Company,
		From:    req.From,
	})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(result.Errors)
	}

	profile, loadErr := s.loadProfile(c, userID)
	if loadErr != nil {
		return nil
	}

	from, err := parseDate(req.From)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"from": "From date is invalid",
		})
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		Current:     req.To == "",
		Description: req.Description,
	}
	if req.To != "" {
		to, toErr := parseDate(req.To)
		if toErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"to": "To date is invalid",
			})
		}
		exp.To = &to
	}

	if err := s.profileRepo.AddExperience(c.Context(), exp); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithProfile(c, userID)
}

// AddEducation handles POST /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	userID := authedUserID(c)

	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		From         string `json:"from"`
		To           string `json:"to"`
		Current      bool   `json:"current"`
		Description  string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result := validation.ValidateEducationInput(validation.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
	})
	if !result.IsValid {
		return c.Status(fiber.StatusBadRequest).JSON(result.Errors)
	}

	profile, loadErr := s.loadProfile(c, userID)
	if loadErr != nil {
		return nil
	}

	from, err := parseDate(req.From)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"from": "From date is invalid",
		})
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		Current:      req.Current,
		Description:  req.Description,
	}
	if req.To != "" {
		to, toErr := parseDate(req.To)
		if toErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"to": "To date is invalid",
			})
		}
		edu.To = &to
	}

	if err := s.profileRepo.AddEducation(c.Context(), edu); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithProfile(c, userID)
}

// DeleteExperience handles DELETE /api/profile/experience/:expId.
// Removing an unknown id is a safe no-op; the profile is returned either way.
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	userID := authedUserID(c)
	expID, err := s.parseID(c, "expId")
	if err != nil {
		return nil
	}

	profile, loadErr := s.loadProfile(c, userID)
	if loadErr != nil {
		return nil
	}

	if _, err := s.profileRepo.RemoveExperience(c.Context(), profile.ID, expID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithProfile(c, userID)
}

// DeleteEducation handles DELETE /api/profile/education/:eduId
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	userID := authedUserID(c)
	eduID, err := s.parseID(c, "eduId")
	if err != nil {
		return nil
	}

	profile, loadErr := s.loadProfile(c, userID)
	if loadErr != nil {
		return nil
	}

	if _, err := s.profileRepo.RemoveEducation(c.Context(), profile.ID, eduID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return s.respondWithProfile(c, userID)
}

// DeleteProfile handles DELETE /api/profile. The profile and the owning user
// are removed with two independent store calls; a failure between them leaves
// the user without a profile (best effort, no transaction).
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	userID := authedUserID(c)

	if err := s.profileRepo.Delete(c.Context(), userID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if err := s.userRepo.Delete(c.Context(), userID); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// loadProfile fetches the caller's profile or writes the 404/500 response
// itself. Callers must return nil when the error is non-nil.
func (s *Server) loadProfile(c *fiber.Ctx, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"noprofile": "There is no profile for this user",
			})
			return nil, errResponseWritten
		}
		_ = models.RespondWithError(c, fiber.StatusInternalServerError, err)
		return nil, errResponseWritten
	}
	return profile, nil
}

// respondWithProfile returns the profile with its lists reloaded.
func (s *Server) respondWithProfile(c *fiber.Ctx, userID uint) error {
	profile, err := s.profileRepo.GetByUserID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(profile)
}

// profilePatch builds the sparse column patch from the non-empty fields of a
// profile submission. Keys are DB column names.
func profilePatch(req profileRequest) map[string]interface{} {
	fields := map[string]interface{}{}

	if req.Handle != "" {
		fields["handle"] = req.Handle
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.Company != "" {
		fields["company"] = req.Company
	}
	if req.Website != "" {
		fields["website"] = req.Website
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}
	if req.GithubUsername != "" {
		fields["github_username"] = req.GithubUsername
	}
	if req.Skills != "" {
		// The skills column is JSON; encode the list explicitly since map
		// updates bypass the field serializer.
		if encoded, err := json.Marshal(splitSkills(req.Skills)); err == nil {
			fields["skills"] = string(encoded)
		}
	}
	if req.Youtube != "" {
		fields["social_youtube"] = req.Youtube
	}
	if req.Twitter != "" {
		fields["social_twitter"] = req.Twitter
	}
	if req.Facebook != "" {
		fields["social_facebook"] = req.Facebook
	}
	if req.Linkedin != "" {
		fields["social_linkedin"] = req.Linkedin
	}
	if req.Instagram != "" {
		fields["social_instagram"] = req.Instagram
	}

	return fields
}

// splitSkills turns the comma separated skills field into a list.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
