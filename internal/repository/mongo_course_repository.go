package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// MongoCourseRepository implements CourseRepository using MongoDB.
type MongoCourseRepository struct {
	coll *mongo.Collection
}

// NewMongoCourseRepository creates a new MongoCourseRepository.
func NewMongoCourseRepository(db *mongo.Database) *MongoCourseRepository {
	return &MongoCourseRepository{coll: db.Collection(coursesCollection)}
}

// Create inserts a new course.
func (r *MongoCourseRepository) Create(ctx context.Context, c *domain.Course) error {
	if _, err := r.coll.InsertOne(ctx, newCourseDocument(c)); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID.
func (r *MongoCourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	var doc courseDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if isNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	return doc.toDomain(), nil
}

// List streams courses matching filter, oldest first.
func (r *MongoCourseRepository) List(ctx context.Context, filter domain.CourseFilter, page domain.Page, callback func(domain.Course) error) error {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.InstructorID != "" {
		query["instructor_id"] = filter.InstructorID
	}
	if filter.Search != "" {
		pattern := bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
		query["$or"] = bson.A{bson.M{"title": pattern}, bson.M{"description": pattern}}
	}

	sort := bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := r.coll.Find(ctx, query, findPage(sort, page.Skip, page.Limit))
	if err != nil {
		return fmt.Errorf("query courses: %w", err)
	}
	return streamCursor(ctx, cur, courseDocument.toDomain, callback)
}

// StreamAll streams every course.
func (r *MongoCourseRepository) StreamAll(ctx context.Context, callback func(domain.Course) error) error {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("query courses: %w", err)
	}
	return streamCursor(ctx, cur, courseDocument.toDomain, callback)
}

// Update applies patch to the course and returns the stored result.
func (r *MongoCourseRepository) Update(ctx context.Context, id string, patch domain.CoursePatch) (*domain.Course, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ShortDescription != nil {
		set["short_description"] = *patch.ShortDescription
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.DurationHours != nil {
		set["duration_hours"] = *patch.DurationHours
	}
	if patch.MaxStudents != nil {
		set["max_students"] = *patch.MaxStudents
	}
	if patch.Tags != nil {
		set["tags"] = nonNil(*patch.Tags)
	}
	if patch.ThumbnailURL != nil {
		set["thumbnail_url"] = *patch.ThumbnailURL
	}
	if patch.Prerequisites != nil {
		set["prerequisites"] = nonNil(*patch.Prerequisites)
	}
	if patch.UpdatedAt != nil {
		set["updated_at"] = *patch.UpdatedAt
	}

	var doc courseDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if isNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes a course.
func (r *MongoCourseRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete course: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// CountByInstructor counts the courses owned by an instructor.
func (r *MongoCourseRepository) CountByInstructor(ctx context.Context, instructorID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"instructor_id": instructorID})
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

// IncrementEnrollmentCount adds delta to enrollment_count with a pipeline update,
// so the floor at zero is applied by the server in the same write.
func (r *MongoCourseRepository) IncrementEnrollmentCount(ctx context.Context, id string, delta int) (bool, error) {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "enrollment_count", Value: bson.D{
				{Key: "$max", Value: bson.A{0, bson.D{{Key: "$add", Value: bson.A{"$enrollment_count", delta}}}}},
			}},
		}}},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return false, fmt.Errorf("increment enrollment count: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// SetEnrollmentCount overwrites enrollment_count.
func (r *MongoCourseRepository) SetEnrollmentCount(ctx context.Context, id string, count int) (bool, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"enrollment_count": count}})
	if err != nil {
		return false, fmt.Errorf("set enrollment count: %w", err)
	}
	return res.MatchedCount > 0, nil
}
