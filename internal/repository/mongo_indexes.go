package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes the Mongo store relies on.
// Creating an index that already exists with the same definition is a no-op.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName(usersEmailIndex)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName(usersUsernameIndex)},
		},
		coursesCollection: {
			{Keys: bson.D{{Key: "instructor_id", Value: 1}}, Options: options.Index().SetName(coursesInstructorIndex)},
		},
		enrollmentsCollection: {
			{
				Keys:    bson.D{{Key: "student_id", Value: 1}, {Key: "course_id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName(enrollmentsPairIndex),
			},
			{Keys: bson.D{{Key: "course_id", Value: 1}}, Options: options.Index().SetName(enrollmentsCourseIndex)},
			{
				Keys:    bson.D{{Key: "enrolled_at", Value: 1}, {Key: "_id", Value: 1}},
				Options: options.Index().SetName(enrollmentsEnrolledIndex),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", collection, err)
		}
	}
	return nil
}

// mongoUniqueViolation returns the repository sentinel for a duplicate key error,
// or nil when err is something else.
func mongoUniqueViolation(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	msg := err.Error()
	for _, index := range []string{usersEmailIndex, usersUsernameIndex, enrollmentsPairIndex} {
		if strings.Contains(msg, index) {
			return duplicateFor(index)
		}
	}
	return nil
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// findPage returns Find options for a sorted skip/limit window.
func findPage(sort bson.D, skip, limit int) *options.FindOptions {
	return options.Find().SetSort(sort).SetSkip(int64(skip)).SetLimit(int64(limit))
}

// streamCursor decodes every document of cur into T and hands it to callback.
func streamCursor[D any, T any](ctx context.Context, cur *mongo.Cursor, convert func(D) *T, callback func(T) error) error {
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc D
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("decode document: %w", err)
		}
		if err := callback(*convert(doc)); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return cur.Err()
}
