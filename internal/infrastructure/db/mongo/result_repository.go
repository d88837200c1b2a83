package mongo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusboard/result-api/internal/core/domain"
)

const resultCollection = "results"

// ResultRepository persists published result sheets in MongoDB.
type ResultRepository struct {
	coll *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{coll: db.Collection(resultCollection)}
}

// EnsureIndexes creates the lookup indexes for class and per-student queries.
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "class_key", Value: 1}}},
		{Keys: bson.D{{Key: "class_key", Value: 1}, {Key: "student_name_lower", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create result indexes: %w", err)
	}
	return nil
}

type resultDoc struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	ClassKey         string             `bson:"class_key"`
	StudentName      string             `bson:"student_name"`
	StudentNameLower string             `bson:"student_name_lower"`
	Grade            float64            `bson:"grade"`
	Outcome          string             `bson:"outcome"`
	UploadedBy       string             `bson:"uploaded_by"`
	UploadedAt       int64              `bson:"uploaded_at"`
}

func (r *ResultRepository) InsertBatch(ctx context.Context, entries []domain.ResultEntry) error {
	docs := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, resultDoc{
			ClassKey:         e.ClassKey,
			StudentName:      e.StudentName,
			StudentNameLower: strings.ToLower(e.StudentName),
			Grade:            e.Grade,
			Outcome:          string(e.Outcome),
			UploadedBy:       e.UploadedBy,
			UploadedAt:       e.UploadedAt.Unix(),
		})
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert results: %w", err)
	}
	return nil
}

func (r *ResultRepository) FindByStudent(ctx context.Context, classKey, studentName string) ([]domain.ResultEntry, error) {
	filter := bson.M{
		"class_key":          classKey,
		"student_name_lower": strings.ToLower(studentName),
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find student results: %w", err)
	}
	return decodeEntries(ctx, cur)
}

// Summary aggregates the class sheet server-side: outcome counts plus the
// average grade over rows that have one (absent rows carry no grade).
func (r *ResultRepository) Summary(ctx context.Context, classKey string) (*domain.ResultSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"class_key": classKey}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"total":  bson.M{"$sum": 1},
			"passed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$outcome", string(domain.OutcomePass)}}, 1, 0}}},
			"failed": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$outcome", string(domain.OutcomeFail)}}, 1, 0}}},
			"absent": bson.M{"$sum": bson.M{"$cond": bson.A{bson.M{"$eq": bson.A{"$outcome", string(domain.OutcomeAbsent)}}, 1, 0}}},
			"avg_grade": bson.M{"$avg": bson.M{"$cond": bson.A{
				bson.M{"$ne": bson.A{"$outcome", string(domain.OutcomeAbsent)}}, "$grade", nil,
			}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate summary: %w", err)
	}
	defer cur.Close(ctx)

	var row struct {
		Total    int64    `bson:"total"`
		Passed   int64    `bson:"passed"`
		Failed   int64    `bson:"failed"`
		Absent   int64    `bson:"absent"`
		AvgGrade *float64 `bson:"avg_grade"`
	}
	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("aggregate summary: %w", err)
		}
		return nil, domain.ErrClassNotFound
	}
	if err := cur.Decode(&row); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}

	summary := &domain.ResultSummary{
		ClassKey: classKey,
		Total:    row.Total,
		Passed:   row.Passed,
		Failed:   row.Failed,
		Absent:   row.Absent,
	}
	if row.AvgGrade != nil {
		summary.AverageGrade = *row.AvgGrade
	}
	return summary, nil
}

func (r *ResultRepository) TopStudents(ctx context.Context, classKey string, limit int) ([]domain.ResultEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "grade", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{
		"class_key": classKey,
		"outcome":   bson.M{"$ne": string(domain.OutcomeAbsent)},
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("find top students: %w", err)
	}
	return decodeEntries(ctx, cur)
}

func decodeEntries(ctx context.Context, cur *mongo.Cursor) ([]domain.ResultEntry, error) {
	defer cur.Close(ctx)

	var entries []domain.ResultEntry
	for cur.Next(ctx) {
		var doc resultDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode result: %w", err)
		}
		entries = append(entries, domain.ResultEntry{
			ID:          doc.ID.Hex(),
			ClassKey:    doc.ClassKey,
			StudentName: doc.StudentName,
			Grade:       doc.Grade,
			Outcome:     domain.Outcome(doc.Outcome),
			UploadedBy:  doc.UploadedBy,
			UploadedAt:  unixToTime(doc.UploadedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return entries, nil
}
