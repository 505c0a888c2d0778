package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/HIBA-BEG/Warehouse-Management/internal/domain/models"
	"github.com/HIBA-BEG/Warehouse-Management/internal/session"
)

// Repository defines the interface for statistics snapshot storage.
type Repository interface {
	SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error
}

// MongoDBRepository implements snapshot storage and the persistent
// session store on a single MongoDB connection.
type MongoDBRepository struct {
	client        *mongo.Client
	dbName        string
	snapshotsColl string
	sessionColl   string
}

// The facade serves one operator at a time, so the session collection
// holds at most one document under a fixed key.
const sessionDocID = "logged_warehouseman"

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:        client,
		dbName:        dbName,
		snapshotsColl: "statistics_snapshots",
		sessionColl:   "sessions",
	}, nil
}

// SaveSnapshot appends a statistics snapshot document.
func (r *MongoDBRepository) SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error {
	collection := r.client.Database(r.dbName).Collection(r.snapshotsColl)
	if _, err := collection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert statistics snapshot: %w", err)
	}
	return nil
}

type sessionDoc struct {
	ID           string              `bson:"_id"`
	Warehouseman models.Warehouseman `bson:"warehouseman"`
}

// Save upserts the logged-in warehouseman.
func (r *MongoDBRepository) Save(ctx context.Context, w models.Warehouseman) error {
	collection := r.client.Database(r.dbName).Collection(r.sessionColl)
	doc := sessionDoc{ID: sessionDocID, Warehouseman: w}

	opts := options.Replace().SetUpsert(true)
	if _, err := collection.ReplaceOne(ctx, bson.M{"_id": sessionDocID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get returns the logged-in warehouseman, or session.ErrNoSession.
func (r *MongoDBRepository) Get(ctx context.Context) (*models.Warehouseman, error) {
	collection := r.client.Database(r.dbName).Collection(r.sessionColl)

	var doc sessionDoc
	err := collection.FindOne(ctx, bson.M{"_id": sessionDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, session.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &doc.Warehouseman, nil
}

// Clear removes the stored session, if any.
func (r *MongoDBRepository) Clear(ctx context.Context) error {
	collection := r.client.Database(r.dbName).Collection(r.sessionColl)
	if _, err := collection.DeleteOne(ctx, bson.M{"_id": sessionDocID}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
