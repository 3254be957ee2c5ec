package mongo

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Eyal-donut/products-scanner-server/db"
	"github.com/Eyal-donut/products-scanner-server/types"
)

// GetProductByCode looks up a single product by its barcode
func (p *Provider) GetProductByCode(ctx context.Context, code int64) (*types.Product, error) {
	collection := p.products()
	result := collection.FindOne(ctx, bson.D{{Key: "code", Value: code}})
	if err := result.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, db.NewNotFoundError(strconv.FormatInt(code, 10))
		}

		return nil, db.NewUnavailableError(err)
	}

	var product types.Product
	err := result.Decode(&product)
	if err != nil {
		return nil, errors.Wrap(err, "decoding product document")
	}

	return &product, nil
}

// GetAllProducts returns the entire catalog
func (p *Provider) GetAllProducts(ctx context.Context) ([]types.Product, error) {
	collection := p.products()

	options := options.Find()
	options.SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := collection.Find(ctx, bson.D{}, options)
	if err != nil {
		return nil, db.NewUnavailableError(err)
	}

	var products []types.Product
	err = cursor.All(ctx, &products)
	if err != nil {
		return nil, errors.Wrap(err, "decoding product documents")
	}

	// Return non-nil slice so JSON serialization is nice
	if products == nil {
		return []types.Product{}, nil
	}

	return products, nil
}

// CreateProduct validates the input, fills in defaults, and inserts the
// resulting document, returning it with its generated identifier and
// timestamp
func (p *Provider) CreateProduct(ctx context.Context, input types.ProductInput) (*types.Product, error) {
	if err := input.Validate(); err != nil {
		return nil, db.NewValidationError(err.Error())
	}

	product := input.Product(ksuid.New().String(), time.Now().UTC())

	collection := p.products()
	_, err := collection.InsertOne(ctx, product)
	if err != nil {
		// Handle known cases (such as when the barcode was duplicate)
		if writeException, ok := err.(mongo.WriteException); ok && isDuplicate(writeException) {
			return nil, db.NewDuplicateCodeError(product.Code)
		}

		return nil, db.NewUnavailableError(err)
	}

	return &product, nil
}

// CreateProducts inserts a batch of products all-or-nothing: every candidate
// is validated before any write, and the batch insert runs inside a session
// transaction so a duplicate barcode anywhere leaves zero documents
// persisted
func (p *Provider) CreateProducts(ctx context.Context, inputs []types.ProductInput) ([]types.Product, error) {
	if len(inputs) == 0 {
		return []types.Product{}, nil
	}

	now := time.Now().UTC()
	seenCodes := make(map[int64]struct{}, len(inputs))
	products := make([]types.Product, 0, len(inputs))
	documents := make([]interface{}, 0, len(inputs))
	for _, input := range inputs {
		if err := input.Validate(); err != nil {
			return nil, db.NewValidationError(err.Error())
		}

		if _, ok := seenCodes[input.Code]; ok {
			return nil, db.NewDuplicateCodeError(input.Code)
		}
		seenCodes[input.Code] = struct{}{}

		product := input.Product(ksuid.New().String(), now)
		products = append(products, product)
		documents = append(documents, product)
	}

	session, err := p.client.StartSession()
	if err != nil {
		return nil, db.NewUnavailableError(err)
	}
	defer session.EndSession(ctx)

	collection := p.products()
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return collection.InsertMany(sessCtx, documents)
	})
	if err != nil {
		if bulkException, ok := err.(mongo.BulkWriteException); ok {
			if index, isDup := bulkDuplicateIndex(bulkException); isDup {
				return nil, db.NewDuplicateCodeError(products[index].Code)
			}
		}

		return nil, db.NewUnavailableError(err)
	}

	return products, nil
}

// DeleteProduct removes a single product by its internal identifier.
// The barcode is never accepted as a delete key, even though it is the
// public lookup key.
func (p *Provider) DeleteProduct(ctx context.Context, id string) error {
	collection := p.products()
	result, err := collection.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return db.NewUnavailableError(err)
	}

	if result.DeletedCount == 0 {
		return db.NewNotFoundError(id)
	}

	return nil
}

// DeleteAllProducts unconditionally empties the catalog.
// Destructive and irreversible.
func (p *Provider) DeleteAllProducts(ctx context.Context) error {
	collection := p.products()

	// Explicit match-all filter
	_, err := collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return db.NewUnavailableError(err)
	}

	return nil
}
