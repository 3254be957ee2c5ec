package types

import "time"

// User is the document stored in MongoDB for a single account. Identity
// fields are owned by the account provisioning service; this API only ever
// writes the three preference groups.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`

	DietPreferences        DietPreferences        `json:"dietPreferences" bson:"diet_preferences"`
	EnvironmentPreferences EnvironmentPreferences `json:"environmentPreferences" bson:"environment_preferences"`
	NutritionPreferences   NutritionPreferences   `json:"nutritionPreferences" bson:"nutrition_preferences"`
}

// PreferencePatch selects which preference groups to replace on a user.
// A nil group is left untouched; a supplied group replaces the stored one
// wholesale. No other user field can be expressed through a patch, so no
// other field can ever be written by the update operation.
type PreferencePatch struct {
	DietPreferences        *DietPreferences        `json:"dietPreferences"`
	EnvironmentPreferences *EnvironmentPreferences `json:"environmentPreferences"`
	NutritionPreferences   *NutritionPreferences   `json:"nutritionPreferences"`
}

// IsEmpty reports whether the patch supplies no groups at all
func (p *PreferencePatch) IsEmpty() bool {
	return p.DietPreferences == nil &&
		p.EnvironmentPreferences == nil &&
		p.NutritionPreferences == nil
}

// Validate re-checks every supplied group before it is written
func (p *PreferencePatch) Validate() error {
	if p.DietPreferences != nil {
		if err := p.DietPreferences.Validate(); err != nil {
			return err
		}
	}
	if p.EnvironmentPreferences != nil {
		if err := p.EnvironmentPreferences.Validate(); err != nil {
			return err
		}
	}
	if p.NutritionPreferences != nil {
		if err := p.NutritionPreferences.Validate(); err != nil {
			return err
		}
	}

	return nil
}
