package complaintRepo

import (
	"context"
	"fmt"
	"time"

	"playzone/database"
	"playzone/database/repository"
	"playzone/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ComplaintFilter narrows the complaint listing. Empty fields match all.
type ComplaintFilter struct {
	Status   models.ComplaintStatus
	Priority models.ComplaintPriority
	Search   string
}

// ComplaintUpdate is a partial update; nil fields are left untouched.
type ComplaintUpdate struct {
	Name     *string
	Email    *string
	Complain *string
	Feedback *string
	Ratings  *float64
	Status   *models.ComplaintStatus
	Priority *models.ComplaintPriority
}

// ComplaintRepository defines the interface for complaint/feedback access.
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	GetAll(filter ComplaintFilter) ([]models.Complaint, error)
	GetByID(id string) (*models.Complaint, error)
	GetTopFeedbacks(limit int64) ([]models.Complaint, error)
	Update(id string, upd ComplaintUpdate) (*models.Complaint, error)
	Delete(id string) error
}

// MongoComplaintRepo implements ComplaintRepository using MongoDB.
type MongoComplaintRepo struct {
	coll *mongo.Collection
}

// NewMongoComplaintRepo creates a new instance of ComplaintRepository using MongoDB.
func NewMongoComplaintRepo() ComplaintRepository {
	coll := database.Collection("complaints")
	repo := &MongoComplaintRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoComplaintRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new complaint document with default status/priority.
func (r *MongoComplaintRepo) Create(complaint *models.Complaint) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if complaint.ID == "" {
		complaint.ID = uuid.NewString()
	}
	if complaint.Status == "" {
		complaint.Status = models.ComplaintPending
	}
	if complaint.Priority == "" {
		complaint.Priority = models.PriorityMedium
	}
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, complaint); err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetAll retrieves complaints matching the filter, newest first. Search
// matches name, email or complain text case-insensitively.
func (r *MongoComplaintRepo) GetAll(filter ComplaintFilter) ([]models.Complaint, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.Search != "" {
		regex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"email": regex},
			bson.M{"complain": regex},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var complaints []models.Complaint
	for cursor.Next(ctx) {
		var c models.Complaint
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode complaint: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, nil
}

// GetByID retrieves a complaint by its unique ID.
func (r *MongoComplaintRepo) GetByID(id string) (*models.Complaint, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var complaint models.Complaint
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&complaint); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch complaint with id %s: %w", id, err)
	}
	return &complaint, nil
}

// GetTopFeedbacks returns rated feedback entries, highest rating first.
func (r *MongoComplaintRepo) GetTopFeedbacks(limit int64) ([]models.Complaint, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{
		"feedback": bson.M{"$exists": true, "$ne": ""},
		"ratings":  bson.M{"$gt": 0},
	}
	opts := options.Find().SetSort(bson.D{{Key: "ratings", Value: -1}}).SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedbacks: %w", err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Complaint
	for cursor.Next(ctx) {
		var c models.Complaint
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		feedbacks = append(feedbacks, c)
	}
	return feedbacks, nil
}

// Update applies a partial update and returns the updated document.
func (r *MongoComplaintRepo) Update(id string, upd ComplaintUpdate) (*models.Complaint, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Complain != nil {
		set["complain"] = *upd.Complain
	}
	if upd.Feedback != nil {
		set["feedback"] = *upd.Feedback
	}
	if upd.Ratings != nil {
		set["ratings"] = *upd.Ratings
	}
	if upd.Status != nil {
		if !models.ValidComplaintStatus(*upd.Status) {
			return nil, &repository.ValidationError{Fields: map[string]string{
				"status": fmt.Sprintf("`%s` is not a valid status value", *upd.Status),
			}}
		}
		set["status"] = *upd.Status
	}
	if upd.Priority != nil {
		if !models.ValidComplaintPriority(*upd.Priority) {
			return nil, &repository.ValidationError{Fields: map[string]string{
				"priority": fmt.Sprintf("`%s` is not a valid priority value", *upd.Priority),
			}}
		}
		set["priority"] = *upd.Priority
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Complaint
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint with id %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a complaint document by its ID.
func (r *MongoComplaintRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete complaint with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
