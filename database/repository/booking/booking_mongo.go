package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
// Email is deliberately non-unique: a customer may hold several bookings.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// validateNew checks required fields and enum membership before insert.
func validateNew(b *models.Booking) error {
	fields := map[string]string{}
	if b.Username == "" {
		fields["username"] = "username is required"
	}
	if b.Email == "" {
		fields["email"] = "email is required"
	}
	if b.PackageType == "" {
		fields["packageType"] = "packageType is required"
	}
	if b.Date.IsZero() {
		fields["date"] = "date is required"
	}
	if b.TimeSlot == "" {
		fields["timeSlot"] = "timeSlot is required"
	}
	if !models.ValidStatus(b.Message) {
		fields["message"] = fmt.Sprintf("`%s` is not a valid status value", b.Message)
	}
	if len(fields) > 0 {
		return &repository.ValidationError{Fields: fields}
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	if booking.Message == "" {
		booking.Message = models.StatusPending
	}
	if err := validateNew(booking); err != nil {
		return err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}
	booking.Version = 1
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetAll retrieves all bookings sorted by date, newest first.
func (r *MongoBookingRepo) GetAll() ([]models.Booking, error) {
	return r.find(bson.M{})
}

// GetByEmail retrieves all bookings for an email, newest first.
func (r *MongoBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	return r.find(bson.M{"email": email})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// validateUpdate re-checks the fields an update would write.
func validateUpdate(upd BookingUpdate) error {
	fields := map[string]string{}
	if upd.PackageType != nil && *upd.PackageType == "" {
		fields["packageType"] = "packageType is required"
	}
	if upd.TimeSlot != nil && *upd.TimeSlot == "" {
		fields["timeSlot"] = "timeSlot is required"
	}
	if upd.Date != nil && upd.Date.IsZero() {
		fields["date"] = "date is required"
	}
	if upd.Message != nil && !models.ValidStatus(*upd.Message) {
		fields["message"] = fmt.Sprintf("`%s` is not a valid status value", *upd.Message)
	}
	if len(fields) > 0 {
		return &repository.ValidationError{Fields: fields}
	}
	return nil
}

// Update applies a partial update and returns the updated document.
// When ExpectedVersion is set the write is conditional; a mismatch is
// reported as ErrVersionConflict.
func (r *MongoBookingRepo) Update(id string, upd BookingUpdate) (*models.Booking, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now()}
	if upd.PackageType != nil {
		set["packageType"] = *upd.PackageType
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.TimeSlot != nil {
		set["timeSlot"] = *upd.TimeSlot
	}
	if upd.SpecialRequests != nil {
		set["specialRequests"] = *upd.SpecialRequests
	}
	if upd.Message != nil {
		set["message"] = *upd.Message
	}

	filter := bson.M{"id": id}
	if upd.ExpectedVersion != nil {
		filter["version"] = *upd.ExpectedVersion
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		if upd.ExpectedVersion != nil {
			// Distinguish a stale version from a missing record.
			if _, getErr := r.GetByID(id); getErr == nil {
				return nil, repository.ErrVersionConflict
			}
		}
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &updated, nil
}

// Delete removes a booking document by its ID and returns the removed record.
func (r *MongoBookingRepo) Delete(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var deleted models.Booking
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&deleted)
	if err == mongo.ErrNoDocuments {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return &deleted, nil
}
