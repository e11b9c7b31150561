// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Gauravsharma19971029/FindDev/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer",
	"Manager", "Student or Learning", "Instructor or Teacher", "Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "HTML", "CSS",
	"React", "Vue", "Node.js", "PostgreSQL", "Redis", "Docker",
	"Kubernetes", "AWS", "GraphQL", "gRPC",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// #nosec G404: acceptable for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
// All generated users share the password "password123".
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashedPassword),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/200?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile constructs and persists a profile for the given user,
// including a couple of experience and education entries.
func (f *Factory) CreateProfile(user *models.User, overrides ...func(*models.Profile)) (*models.Profile, error) {
	handle := strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(10, 99))

	profile := &models.Profile{
		UserID:         user.ID,
		Handle:         handle,
		Status:         statuses[f.r.Intn(len(statuses))],
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Bio:            gofakeit.Sentence(12),
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         f.pickSkills(),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", handle),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", handle),
		},
	}

	for _, override := range overrides {
		override(profile)
	}

	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < 1+f.r.Intn(2); i++ {
		if _, err := f.CreateExperience(profile); err != nil {
			return nil, err
		}
	}
	if _, err := f.CreateEducation(profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// CreateExperience persists a work history entry on the given profile. Roughly
// a third of the generated entries are ongoing positions.
func (f *Factory) CreateExperience(profile *models.Profile, overrides ...func(*models.Experience)) (*models.Experience, error) {
	from := f.pastDate(8 * 365)

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Description: gofakeit.Sentence(15),
	}
	if f.r.Intn(3) == 0 {
		exp.Current = true
	} else {
		to := from.Add(time.Duration(30+f.r.Intn(900)) * 24 * time.Hour)
		exp.To = &to
	}

	for _, override := range overrides {
		override(exp)
	}

	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

// CreateEducation persists an education entry on the given profile.
func (f *Factory) CreateEducation(profile *models.Profile, overrides ...func(*models.Education)) (*models.Education, error) {
	from := f.pastDate(12 * 365)
	to := from.Add(4 * 365 * 24 * time.Hour)

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       fmt.Sprintf("%s University", gofakeit.City()),
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         from,
		To:           &to,
		Description:  gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(edu)
	}

	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return edu, nil
}

// CreatePost constructs and persists a sample `models.Post` for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text:   gofakeit.Paragraph(1, 2, 8, " "),
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}

	// realistic created_at spread over the last 90 days
	daysBack := f.r.Intn(90)
	hoursBack := f.r.Intn(24)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   gofakeit.Sentence(10),
		Name:   user.Name,
		Avatar: user.Avatar,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{
		UserID: user.ID,
		PostID: post.ID,
	}
	return f.db.Create(like).Error
}

func (f *Factory) pickSkills() []string {
	n := 3 + f.r.Intn(4)
	picked := make([]string, 0, n)
	seen := map[int]bool{}
	for len(picked) < n {
		i := f.r.Intn(len(skillPool))
		if !seen[i] {
			seen[i] = true
			picked = append(picked, skillPool[i])
		}
	}
	return picked
}

func (f *Factory) pastDate(maxDaysBack int) time.Time {
	return time.Now().AddDate(0, 0, -1-f.r.Intn(maxDaysBack)).Truncate(24 * time.Hour)
}
