package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

const (
	collectionCourses  = "courses"
	collectionCounters = "counters"
	courseCounterID    = "course_id"
)

// CourseRepository stores courses keyed by their numeric id. Ids come from a
// counter document so they stay monotonic across deletes and restarts.
type CourseRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{
		col:      db.Collection(collectionCourses),
		counters: db.Collection(collectionCounters),
	}
}

// Seed inserts the given courses when the collection is empty and moves the
// id counter to at least nextID-1.
func (r *CourseRepository) Seed(ctx context.Context, courses []domain.Course, nextID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if n == 0 && len(courses) > 0 {
		docs := make([]any, 0, len(courses))
		for _, c := range courses {
			docs = append(docs, c)
		}
		if _, err := r.col.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("seed courses: %w", err)
		}
	}

	_, err = r.counters.UpdateOne(ctx,
		bson.M{"_id": courseCounterID},
		bson.M{"$max": bson.M{"seq": nextID - 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("seed course counter: %w", err)
	}
	return nil
}

func (r *CourseRepository) List(ctx context.Context) ([]domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cur.Close(ctx)

	courses := make([]domain.Course, 0)
	if err := cur.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Course
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	c.ID = id

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (r *CourseRepository) Update(ctx context.Context, c *domain.Course) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"name":        c.Name,
		"description": c.Description,
		"subject":     c.Subject,
		"credits":     c.Credits,
	}})
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": courseCounterID},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next course id: %w", err)
	}
	return counter.Seq, nil
}
