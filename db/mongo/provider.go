package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/Eyal-donut/products-scanner-server/env"
)

const (
	duplicateError = 11000
)

// Provider wraps the MongoDB client and implements db.Provider
type Provider struct {
	connectionURI string
	databaseName  string
	client        *mongo.Client
}

// NewProvider creates a new provider and loads values in from the environment
func NewProvider() (*Provider, error) {
	connectionURI, err := env.GetEnv("database connection URI", "MONGO_DB_URI")
	if err != nil {
		return nil, err
	}

	dbName, err := env.GetEnv("database name", "MONGO_DB_NAME")
	if err != nil {
		return nil, err
	}

	return &Provider{
		connectionURI: connectionURI,
		databaseName:  dbName,
		client:        nil,
	}, nil
}

// Connect establishes the client connection, pings the primary,
// and ensures indexes exist
func (p *Provider) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(p.connectionURI))
	if err != nil {
		return errors.Wrap(err, "connecting to MongoDB")
	}

	// Ping the primary
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "pinging the MongoDB primary")
	}

	p.client = client

	// Initialize any collections/indices
	err = p.initialize(ctx)
	if err != nil {
		return err
	}

	return nil
}

// Disconnect tears down the client connection
func (p *Provider) Disconnect(ctx context.Context) error {
	err := p.client.Disconnect(ctx)
	if err != nil {
		return err
	}

	return nil
}

// Create anything needed for the database,
// like indices
func (p *Provider) initialize(ctx context.Context) error {
	// The barcode uniqueness invariant lives here: racing creates on the
	// same code rely on this index to reject the loser
	_, err := p.products().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"id": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.M{"code": 1},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating product indexes")
	}

	_, err = p.users().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"id": 1},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.M{"email": 1},
		},
	})
	if err != nil {
		return errors.Wrap(err, "creating user indexes")
	}

	return nil
}

func (p *Provider) products() *mongo.Collection {
	return p.client.Database(p.databaseName).Collection("products")
}

func (p *Provider) users() *mongo.Collection {
	return p.client.Database(p.databaseName).Collection("users")
}

// Detects if the given write exception is caused by (in part)
// by a duplicate key error
func isDuplicate(writeException mongo.WriteException) bool {
	for _, writeError := range writeException.WriteErrors {
		if writeError.Code == duplicateError {
			return true
		}
	}

	return false
}

// Detects the first duplicate-key failure in a bulk write and reports the
// index of the offending document
func bulkDuplicateIndex(bulkException mongo.BulkWriteException) (int, bool) {
	for _, writeError := range bulkException.WriteErrors {
		if writeError.Code == duplicateError {
			return writeError.Index, true
		}
	}

	return -1, false
}
