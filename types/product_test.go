package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool {
	return &v
}

func TestProductInputValidate(t *testing.T) {
	valid := ProductInput{
		Name:   "Oat Milk",
		IsFood: boolPtr(true),
		Code:   1234567890123,
	}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = "  "
	err := missingName.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")

	missingIsFood := valid
	missingIsFood.IsFood = nil
	err = missingIsFood.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "if food")

	missingCode := valid
	missingCode.Code = 0
	err = missingCode.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "barcode")

	longIngredients := valid
	longIngredients.Ingredients = strings.Repeat("x", MaxIngredientsLength+1)
	err = longIngredients.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingredients")
}

func TestProductInputValidateSettings(t *testing.T) {
	badDiet := DefaultDietPreferences()
	badDiet.Vegan = TriState("kind of")

	input := ProductInput{
		Name:   "Oat Milk",
		IsFood: boolPtr(true),
		Code:   1234567890123,
		Settings: &ProductSettingsInput{
			DietPreferences: &badDiet,
		},
	}
	assert.Error(t, input.Validate())
}

func TestProductDefaults(t *testing.T) {
	input := ProductInput{
		Name:   "Oat Milk",
		IsFood: boolPtr(true),
		Code:   1234567890123,
	}
	require.NoError(t, input.Validate())

	now := time.Now().UTC()
	product := input.Product("prod-1", now)

	assert.Equal(t, "prod-1", product.ID)
	assert.Equal(t, "Oat Milk", product.Name)
	assert.True(t, product.IsFood)
	assert.Equal(t, int64(1234567890123), product.Code)
	assert.Equal(t, MissingInformation, product.Company)
	assert.Equal(t, MissingInformation, product.Category)
	assert.Equal(t, now, product.CreatedAt)
	assert.False(t, product.IsLiked)
	assert.Equal(t, DefaultProductSettings(), product.Settings)
}

func TestProductKeepsSuppliedValues(t *testing.T) {
	diet := DefaultDietPreferences()
	diet.Vegan = TriStateTrue

	input := ProductInput{
		Name:    "Oat Milk",
		IsFood:  boolPtr(true),
		Code:    1234567890123,
		Company: "Oatly",
		IsLiked: boolPtr(true),
		Settings: &ProductSettingsInput{
			DietPreferences: &diet,
		},
	}

	product := input.Product("prod-2", time.Now().UTC())
	assert.Equal(t, "Oatly", product.Company)
	assert.Equal(t, MissingInformation, product.Category)
	assert.True(t, product.IsLiked)
	assert.Equal(t, TriStateTrue, product.Settings.DietPreferences.Vegan)
	// Untouched groups still carry their defaults
	assert.Equal(t, DefaultEnvironmentPreferences(), product.Settings.EnvironmentPreferences)
	assert.Equal(t, DefaultNutritionPreferences(), product.Settings.NutritionPreferences)
}

func TestProductInputDecodeRejectsUnknownGroupKey(t *testing.T) {
	body := `{
		"name": "Oat Milk",
		"isFood": true,
		"code": 1234567890123,
		"settings": {"dietPreferences": {"Organic": true}}
	}`

	var input ProductInput
	err := json.Unmarshal([]byte(body), &input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a known diet preference")
}
