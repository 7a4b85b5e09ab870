package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"playzone/database"
	"playzone/database/repository"
	"playzone/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResourceRepository defines the interface for resource inventory access.
type ResourceRepository interface {
	Create(resource *models.Resource) error
	GetAll() ([]models.Resource, error)
	GetByID(id string) (*models.Resource, error)
	Update(resource *models.Resource) (*models.Resource, error)
	Delete(id string) (*models.Resource, error)
}

// MongoResourceRepo implements ResourceRepository using MongoDB.
type MongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo creates a new instance of ResourceRepository using MongoDB.
func NewMongoResourceRepo() ResourceRepository {
	coll := database.Collection("resources")
	repo := &MongoResourceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoResourceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new resource document.
func (r *MongoResourceRepo) Create(resource *models.Resource) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if resource.ID == "" {
		resource.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, resource); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// GetAll retrieves all resources.
func (r *MongoResourceRepo) GetAll() ([]models.Resource, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, nil
}

// GetByID retrieves a resource by its unique ID.
func (r *MongoResourceRepo) GetByID(id string) (*models.Resource, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var resource models.Resource
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&resource); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch resource with id %s: %w", id, err)
	}
	return &resource, nil
}

// Update replaces the mutable fields of a resource and returns the result.
func (r *MongoResourceRepo) Update(resource *models.Resource) (*models.Resource, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"resource":       resource.Resource,
		"resType":        resource.ResType,
		"purpose":        resource.Purpose,
		"purchaseDate":   resource.PurchaseDate,
		"distributeDate": resource.DistributeDate,
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Resource
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": resource.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update resource with id %s: %w", resource.ID, err)
	}
	return &updated, nil
}

// Delete removes a resource document by its ID and returns the removed record.
func (r *MongoResourceRepo) Delete(id string) (*models.Resource, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var deleted models.Resource
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete resource with id %s: %w", id, err)
	}
	return &deleted, nil
}
