package seed

import (
	"fmt"
	"log"

	"github.com/Gauravsharma19971029/FindDev/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates test data generation.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll deletes all seeded data. Tables are cleared child-first to respect
// foreign key constraints.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")

	tables := []string{"comments", "likes", "posts", "experiences", "educations", "profiles", "users"}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// Seed populates the database with the requested number of users and posts.
// Every user gets a developer profile; posts receive a random spread of likes
// and comments.
func (s *Seeder) Seed(numUsers, numPosts int) error {
	log.Println("🌱 Starting database seeding...")

	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("✓ Created %d users with profiles", len(users))

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("✓ Created %d posts", len(posts))

	likes, comments := 0, 0
	for _, post := range posts {
		// each post is liked by a distinct random subset of users
		for _, idx := range s.factory.r.Perm(len(users))[:s.factory.r.Intn(len(users)/2+1)] {
			if err := s.factory.CreateLike(users[idx], post); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
		for i := 0; i < s.factory.r.Intn(4); i++ {
			commenter := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}
	log.Printf("✓ Added %d likes and %d comments", likes, comments)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}
