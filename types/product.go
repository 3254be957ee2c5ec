package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MissingInformation is the sentinel stored for catalog fields the scanner
// client could not determine at creation time
const MissingInformation = "Missing information"

// MaxIngredientsLength bounds the free-text ingredients field
const MaxIngredientsLength = 1000

// ProductSettings groups the preference data attached to a product
type ProductSettings struct {
	DietPreferences        DietPreferences        `json:"dietPreferences" bson:"diet_preferences"`
	EnvironmentPreferences EnvironmentPreferences `json:"environmentPreferences" bson:"environment_preferences"`
	NutritionPreferences   NutritionPreferences   `json:"nutritionPreferences" bson:"nutrition_preferences"`
}

// DefaultProductSettings returns settings with every group at its defaults
func DefaultProductSettings() ProductSettings {
	return ProductSettings{
		DietPreferences:        DefaultDietPreferences(),
		EnvironmentPreferences: DefaultEnvironmentPreferences(),
		NutritionPreferences:   DefaultNutritionPreferences(),
	}
}

// Product is the document stored in MongoDB for a single catalog entry.
// The barcode (code) is the external lookup key; id is the internal
// identifier used for deletion. MongoDB's own _id/version bookkeeping is
// deliberately not mapped, so it can never appear in a serialized product.
type Product struct {
	ID          string          `json:"id" bson:"id"`
	Name        string          `json:"name" bson:"name"`
	IsFood      bool            `json:"isFood" bson:"is_food"`
	ImageURL    string          `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Ingredients string          `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	Code        int64           `json:"code" bson:"code"`
	Company     string          `json:"company" bson:"company"`
	Category    string          `json:"category" bson:"category"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`
	IsLiked     bool            `json:"isLiked" bson:"is_liked"`
	Settings    ProductSettings `json:"settings" bson:"settings"`
}

// ProductSettingsInput carries the optional preference groups of a create
// request; absent groups take their defaults
type ProductSettingsInput struct {
	DietPreferences        *DietPreferences        `json:"dietPreferences"`
	EnvironmentPreferences *EnvironmentPreferences `json:"environmentPreferences"`
	NutritionPreferences   *NutritionPreferences   `json:"nutritionPreferences"`
}

// ProductInput is supplied by the scanner client and converted into a
// Product. It carries no identifier or timestamp; those are generated at
// creation time.
type ProductInput struct {
	Name        string                `json:"name"`
	IsFood      *bool                 `json:"isFood"`
	ImageURL    string                `json:"imageUrl"`
	Ingredients string                `json:"ingredients"`
	Code        int64                 `json:"code"`
	Company     string                `json:"company"`
	Category    string                `json:"category"`
	IsLiked     *bool                 `json:"isLiked"`
	Settings    *ProductSettingsInput `json:"settings"`
}

// Validate checks the required fields and the supplied preference groups
func (in *ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("please add a name")
	}

	if in.IsFood == nil {
		return errors.New("please state if food")
	}

	if in.Code <= 0 {
		return errors.New("please add a barcode number")
	}

	if len(in.Ingredients) > MaxIngredientsLength {
		return fmt.Errorf("ingredients cannot exceed %d characters", MaxIngredientsLength)
	}

	if in.Settings != nil {
		if in.Settings.DietPreferences != nil {
			if err := in.Settings.DietPreferences.Validate(); err != nil {
				return err
			}
		}
		if in.Settings.EnvironmentPreferences != nil {
			if err := in.Settings.EnvironmentPreferences.Validate(); err != nil {
				return err
			}
		}
		if in.Settings.NutritionPreferences != nil {
			if err := in.Settings.NutritionPreferences.Validate(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Product converts a validated input into the document to store, applying
// the sentinel defaults for every omitted field
func (in *ProductInput) Product(id string, createdAt time.Time) Product {
	product := Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		ImageURL:    in.ImageURL,
		Ingredients: in.Ingredients,
		Code:        in.Code,
		Company:     in.Company,
		Category:    in.Category,
		CreatedAt:   createdAt,
		Settings:    DefaultProductSettings(),
	}

	if in.IsFood != nil {
		product.IsFood = *in.IsFood
	}
	if in.IsLiked != nil {
		product.IsLiked = *in.IsLiked
	}
	if product.Company == "" {
		product.Company = MissingInformation
	}
	if product.Category == "" {
		product.Category = MissingInformation
	}

	if in.Settings != nil {
		if in.Settings.DietPreferences != nil {
			product.Settings.DietPreferences = *in.Settings.DietPreferences
		}
		if in.Settings.EnvironmentPreferences != nil {
			product.Settings.EnvironmentPreferences = *in.Settings.EnvironmentPreferences
		}
		if in.Settings.NutritionPreferences != nil {
			product.Settings.NutritionPreferences = *in.Settings.NutritionPreferences
		}
	}

	return product
}
