// Package seeder loads the json fixtures of the _data directory into the
// database, or wipes every collection the api writes to.
package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/databases"
	"github.com/linesmerrill/devcamper-api/geocoder"
	"github.com/linesmerrill/devcamper-api/models"
)

// Fixture files read by Load
const (
	UsersFile     = "users.json"
	BootcampsFile = "bootcamps.json"
	CoursesFile   = "courses.json"
	ReviewsFile   = "reviews.json"
)

// UserFixture is a seeded user. The password is plain text and hashed on import.
type UserFixture struct {
	ID       primitive.ObjectID `json:"_id"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Role     string             `json:"role"`
	Password string             `json:"password"`
}

// BootcampFixture is a seeded bootcamp. When Location is missing the address
// is geocoded on import.
type BootcampFixture struct {
	models.Bootcamp
	Address string `json:"address"`
}

// Fixtures holds the documents of every fixture file
type Fixtures struct {
	Users     []UserFixture
	Bootcamps []BootcampFixture
	Courses   []models.Course
	Reviews   []models.Review
}

// Load reads the fixture files from dir
func Load(dir string) (*Fixtures, error) {
	f := &Fixtures{}
	files := map[string]interface{}{
		UsersFile:     &f.Users,
		BootcampsFile: &f.Bootcamps,
		CoursesFile:   &f.Courses,
		ReviewsFile:   &f.Reviews,
	}
	for name, v := range files {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if err = json.Unmarshal(b, v); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	}
	return f, nil
}

// Seeder writes fixtures to DB
type Seeder struct {
	DB       databases.DatabaseHelper
	Geocoder geocoder.Geocoder
	now      func() time.Time
}

// New returns a Seeder for db. geo may be nil when every bootcamp fixture
// carries its location.
func New(db databases.DatabaseHelper, geo geocoder.Geocoder) *Seeder {
	return &Seeder{DB: db, Geocoder: geo, now: time.Now}
}

// Import inserts the fixtures and computes the bootcamp averages
func (s *Seeder) Import(ctx context.Context, f *Fixtures) error {
	now := s.now()

	roles := make(map[primitive.ObjectID]string, len(f.Users))
	users := make([]interface{}, 0, len(f.Users))
	for _, uf := range f.Users {
		u := models.User{ID: uf.ID, Name: uf.Name, Email: uf.Email, Role: uf.Role, CreatedAt: now}
		if u.Role == "" {
			u.Role = models.RoleUser
		}
		if err := u.SetPassword(uf.Password); err != nil {
			return err
		}
		roles[u.ID] = u.Role
		users = append(users, u)
	}

	bootcamps := make([]interface{}, 0, len(f.Bootcamps))
	ids := make([]primitive.ObjectID, 0, len(f.Bootcamps))
	for _, bf := range f.Bootcamps {
		b := bf.Bootcamp
		if b.Slug == "" {
			b.Slug = models.Slugify(b.Name)
		}
		if b.Photo == "" {
			b.Photo = models.DefaultPhoto
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		b.OwnerExclusive = roles[b.User] != models.RoleAdmin
		b.AverageCost, b.AverageRating = nil, nil
		if b.Location == nil {
			loc, err := s.geocode(ctx, bf.Address)
			if err != nil {
				return fmt.Errorf("bootcamp %q: %w", b.Name, err)
			}
			b.Location = loc
		}
		ids = append(ids, b.ID)
		bootcamps = append(bootcamps, b)
	}

	courses := make([]interface{}, 0, len(f.Courses))
	for _, c := range f.Courses {
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		courses = append(courses, c)
	}

	reviews := make([]interface{}, 0, len(f.Reviews))
	for _, r := range f.Reviews {
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		reviews = append(reviews, r)
	}

	batches := []struct {
		name string
		docs []interface{}
	}{
		{databases.UserCollection, users},
		{databases.BootcampCollection, bootcamps},
		{databases.CourseCollection, courses},
		{databases.ReviewCollection, reviews},
	}
	for _, batch := range batches {
		if len(batch.docs) == 0 {
			continue
		}
		if err := s.DB.Collection(batch.name).InsertMany(ctx, batch.docs); err != nil {
			return fmt.Errorf("failed to insert %s: %w", batch.name, err)
		}
		zap.S().Infow("seeded collection", "collection", batch.name, "documents", len(batch.docs))
	}

	bDB := databases.NewBootcampDatabase(s.DB)
	cDB := databases.NewCourseDatabase(s.DB)
	rDB := databases.NewReviewDatabase(s.DB)
	for _, id := range ids {
		if err := databases.RefreshAverageCost(ctx, cDB, bDB, id); err != nil {
			return err
		}
		if err := databases.RefreshAverageRating(ctx, rDB, bDB, id); err != nil {
			return err
		}
	}
	return nil
}

// Destroy deletes every document the api stores
func (s *Seeder) Destroy(ctx context.Context) error {
	for _, name := range databases.Collections() {
		n, err := s.DB.Collection(name).DeleteMany(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to clear %s: %w", name, err)
		}
		zap.S().Infow("cleared collection", "collection", name, "documents", n)
	}
	return nil
}

func (s *Seeder) geocode(ctx context.Context, address string) (*models.Location, error) {
	if address == "" {
		return nil, fmt.Errorf("no location or address")
	}
	if s.Geocoder == nil {
		return nil, fmt.Errorf("no geocoder configured for %q", address)
	}
	return s.Geocoder.Geocode(ctx, address)
}
