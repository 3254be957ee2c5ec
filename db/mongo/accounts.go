package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Eyal-donut/products-scanner-server/db"
	"github.com/Eyal-donut/products-scanner-server/types"
)

// GetUsersByEmail returns every user registered under the given email.
// Zero matches is a not-found error, not an empty success.
func (p *Provider) GetUsersByEmail(ctx context.Context, email string) ([]types.User, error) {
	collection := p.users()
	cursor, err := collection.Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		return nil, db.NewUnavailableError(err)
	}

	var users []types.User
	err = cursor.All(ctx, &users)
	if err != nil {
		return nil, errors.Wrap(err, "decoding user documents")
	}

	if len(users) == 0 {
		return nil, db.NewNotFoundError(email)
	}

	return users, nil
}

// GetUser looks up a single user by its identifier
func (p *Provider) GetUser(ctx context.Context, id string) (*types.User, error) {
	collection := p.users()
	result := collection.FindOne(ctx, bson.D{{Key: "id", Value: id}})
	if err := result.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, db.NewNotFoundError(id)
		}

		return nil, db.NewUnavailableError(err)
	}

	var user types.User
	err := result.Decode(&user)
	if err != nil {
		return nil, errors.Wrap(err, "decoding user document")
	}

	return &user, nil
}

// UpdateUserPreferences replaces the preference groups supplied in the patch
// and returns the post-update document. Groups absent from the patch are left
// untouched; no field outside the three groups is ever written.
func (p *Provider) UpdateUserPreferences(ctx context.Context, id string, patch types.PreferencePatch) (*types.User, error) {
	// An empty patch writes nothing and returns the current document
	if patch.IsEmpty() {
		return p.GetUser(ctx, id)
	}

	if err := patch.Validate(); err != nil {
		return nil, db.NewValidationError(err.Error())
	}

	// Construct the update document from the supplied groups only
	updateDocument := bson.D{}
	if patch.DietPreferences != nil {
		updateDocument = append(updateDocument, bson.E{Key: "diet_preferences", Value: *patch.DietPreferences})
	}
	if patch.EnvironmentPreferences != nil {
		updateDocument = append(updateDocument, bson.E{Key: "environment_preferences", Value: *patch.EnvironmentPreferences})
	}
	if patch.NutritionPreferences != nil {
		updateDocument = append(updateDocument, bson.E{Key: "nutrition_preferences", Value: *patch.NutritionPreferences})
	}

	collection := p.users()
	filter := bson.D{{Key: "id", Value: id}}
	updateQuery := bson.D{{Key: "$set", Value: updateDocument}}
	updateOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedUser types.User
	err := collection.FindOneAndUpdate(ctx, filter, updateQuery, updateOptions).Decode(&updatedUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, db.NewNotFoundError(id)
		}

		return nil, db.NewUnavailableError(err)
	}

	return &updatedUser, nil
}

// DeleteUser removes a single user by its identifier
func (p *Provider) DeleteUser(ctx context.Context, id string) error {
	collection := p.users()
	result, err := collection.DeleteOne(ctx, bson.D{{Key: "id", Value: id}})
	if err != nil {
		return db.NewUnavailableError(err)
	}

	if result.DeletedCount == 0 {
		return db.NewNotFoundError(id)
	}

	return nil
}

// DeleteAllUsers unconditionally empties the account store.
// Destructive and irreversible; development use only.
func (p *Provider) DeleteAllUsers(ctx context.Context) error {
	collection := p.users()

	// Explicit match-all filter
	_, err := collection.DeleteMany(ctx, bson.D{})
	if err != nil {
		return db.NewUnavailableError(err)
	}

	return nil
}
