package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencePatchIsEmpty(t *testing.T) {
	var patch PreferencePatch
	assert.True(t, patch.IsEmpty())

	nutrition := DefaultNutritionPreferences()
	patch.NutritionPreferences = &nutrition
	assert.False(t, patch.IsEmpty())
}

func TestPreferencePatchValidate(t *testing.T) {
	diet := DefaultDietPreferences()
	patch := PreferencePatch{DietPreferences: &diet}
	assert.NoError(t, patch.Validate())

	diet.Vegetarian = TriState("on weekdays")
	assert.Error(t, patch.Validate())
}

func TestPreferencePatchDecodeIgnoresOtherFields(t *testing.T) {
	// Identity fields in the payload cannot reach the patch shape
	body := `{
		"email": "new@example.com",
		"password": "hunter2",
		"nutritionPreferences": {"Sugar": 4}
	}`

	var patch PreferencePatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	assert.Nil(t, patch.DietPreferences)
	assert.Nil(t, patch.EnvironmentPreferences)
	require.NotNil(t, patch.NutritionPreferences)
	assert.Equal(t, 4.0, patch.NutritionPreferences.Sugar)
	assert.Equal(t, UnknownNutritionAmount, patch.NutritionPreferences.Fat)
}

func TestPreferencePatchDecodeRejectsUnknownGroupKey(t *testing.T) {
	body := `{"dietPreferences": {"Pescatarian": true}}`

	var patch PreferencePatch
	err := json.Unmarshal([]byte(body), &patch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a known diet preference")
}
