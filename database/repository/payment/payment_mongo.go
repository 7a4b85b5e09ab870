package paymentRepo

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

// PaymentRepository defines the interface for payment record access.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetAll() ([]models.Payment, error)
	GetByID(id string) (*models.Payment, error)
	Update(payment *models.Payment) (*models.Payment, error)
	Delete(id string) (*models.Payment, error)
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new instance of PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPaymentRepo) ensureIndexes() error {
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

// Create inserts a new payment document.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetAll retrieves all payment records.
func (r *MongoPaymentRepo) GetAll() ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}

// GetByID retrieves a payment by its unique ID.
func (r *MongoPaymentRepo) GetByID(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var payment models.Payment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch payment with id %s: %w", id, err)
	}
	return &payment, nil
}

// Update replaces the mutable fields of a payment and returns the result.
func (r *MongoPaymentRepo) Update(payment *models.Payment) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{
		"userName":  payment.UserName,
		"accountNo": payment.AccountNo,
		"bank":      payment.Bank,
		"branch":    payment.Branch,
		"package":   payment.Package,
		"amount":    payment.Amount,
		"cnfStatus": payment.CnfStatus,
	}
	if len(payment.Slip.Data) > 0 {
		set["slip"] = payment.Slip
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Payment
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": payment.ID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment with id %s: %w", payment.ID, err)
	}
	return &updated, nil
}

// Delete removes a payment document by its ID and returns the removed record.
func (r *MongoPaymentRepo) Delete(id string) (*models.Payment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var deleted models.Payment
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete payment with id %s: %w", id, err)
	}
	return &deleted, nil
}
