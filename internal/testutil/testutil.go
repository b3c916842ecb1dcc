// Package testutil provides helpers for tests that talk to a real MongoDB.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testIDCounter is used to generate unique test IDs
var testIDCounter uint64

// TestConfig holds test configuration
type TestConfig struct {
	MongoURI string
	MongoDB  string
}

// DefaultTestConfig returns default test configuration
func DefaultTestConfig() TestConfig {
	mongoURI := os.Getenv("TEST_MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDB := os.Getenv("TEST_MONGO_DB")
	if mongoDB == "" {
		mongoDB = "blog_test"
	}

	return TestConfig{
		MongoURI: mongoURI,
		MongoDB:  mongoDB,
	}
}

// NewTestMongoDB connects to the test MongoDB instance. The test is
// skipped when no instance is reachable; the test database is dropped
// on cleanup.
func NewTestMongoDB(t *testing.T, config TestConfig) (*mongo.Client, *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		t.Skipf("MongoDB not available: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("MongoDB ping failed: %v", err)
	}

	db := client.Database(config.MongoDB)

	t.Cleanup(func() {
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})

	return client, db
}

// GenerateTestID generates a unique identifier for test data
func GenerateTestID() string {
	id := atomic.AddUint64(&testIDCounter, 1)
	return fmt.Sprintf("test-%d-%d", time.Now().UnixNano(), id)
}

// SkipIfShort skips the test if running in short mode
func SkipIfShort(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping in short mode")
	}
}

// SkipIfNoMongo skips the test if MongoDB is not available
func SkipIfNoMongo(t *testing.T) {
	config := DefaultTestConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.MongoURI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		t.Skip("MongoDB not available")
	}
	defer client.Disconnect(context.Background())

	if err := client.Ping(ctx, nil); err != nil {
		t.Skip("MongoDB not available")
	}
}
