package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scottmc500/ScottLMS/internal/domain"
)

// MongoEnrollmentRepository implements EnrollmentRepository using MongoDB.
type MongoEnrollmentRepository struct {
	coll *mongo.Collection
}

// NewMongoEnrollmentRepository creates a new MongoEnrollmentRepository.
func NewMongoEnrollmentRepository(db *mongo.Database) *MongoEnrollmentRepository {
	return &MongoEnrollmentRepository{coll: db.Collection(enrollmentsCollection)}
}

// Create inserts a new enrollment. The unique (student_id, course_id) index
// turns a racing duplicate into ErrDuplicateEnrollment.
func (r *MongoEnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) error {
	if _, err := r.coll.InsertOne(ctx, newEnrollmentDocument(e)); err != nil {
		if dup := mongoUniqueViolation(err); dup != nil {
			return dup
		}
		return fmt.Errorf("insert enrollment: %w", err)
	}
	return nil
}

// GetByID retrieves an enrollment by ID.
func (r *MongoEnrollmentRepository) GetByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByPair retrieves the enrollment of a student in a course.
func (r *MongoEnrollmentRepository) GetByPair(ctx context.Context, studentID, courseID string) (*domain.Enrollment, error) {
	return r.findOne(ctx, bson.M{"student_id": studentID, "course_id": courseID})
}

func (r *MongoEnrollmentRepository) findOne(ctx context.Context, query bson.M) (*domain.Enrollment, error) {
	var doc enrollmentDocument
	err := r.coll.FindOne(ctx, query).Decode(&doc)
	if isNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return doc.toDomain(), nil
}

// List streams enrollments matching filter.
func (r *MongoEnrollmentRepository) List(ctx context.Context, filter domain.EnrollmentFilter, page domain.Page, callback func(domain.Enrollment) error) error {
	sort := bson.D{{Key: "enrolled_at", Value: 1}, {Key: "_id", Value: 1}}
	cur, err := r.coll.Find(ctx, enrollmentQuery(filter), findPage(sort, page.Skip, page.Limit))
	if err != nil {
		return fmt.Errorf("query enrollments: %w", err)
	}
	return streamCursor(ctx, cur, enrollmentDocument.toDomain, callback)
}

// Update applies patch to the enrollment and returns the stored result.
func (r *MongoEnrollmentRepository) Update(ctx context.Context, id string, patch domain.EnrollmentPatch) (*domain.Enrollment, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	set := bson.M{}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Progress != nil {
		set["progress"] = *patch.Progress
	}
	if patch.Grade != nil {
		set["grade"] = *patch.Grade
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.LastAccessed != nil {
		set["last_accessed"] = *patch.LastAccessed
	}
	if patch.CompletionDate != nil {
		set["completion_date"] = *patch.CompletionDate
	}

	var doc enrollmentDocument
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&doc)
	if isNoDocuments(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update enrollment: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes an enrollment.
func (r *MongoEnrollmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete enrollment: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// Count counts enrollments matching filter.
func (r *MongoEnrollmentRepository) Count(ctx context.Context, filter domain.EnrollmentFilter) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, enrollmentQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return n, nil
}

func enrollmentQuery(filter domain.EnrollmentFilter) bson.M {
	query := bson.M{}
	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	}
	if filter.StudentID != "" {
		query["student_id"] = filter.StudentID
	}
	if filter.CourseID != "" {
		query["course_id"] = filter.CourseID
	}
	return query
}
