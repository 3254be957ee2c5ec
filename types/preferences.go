package types

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// TriState is a preference flag whose value is either known (true/false) or
// not yet determined. It serializes as a JSON/BSON boolean when known and as
// the string "Unknown" otherwise.
type TriState string

const (
	// TriStateTrue marks a flag that is known to apply
	TriStateTrue TriState = "true"
	// TriStateFalse marks a flag that is known not to apply
	TriStateFalse TriState = "false"
	// TriStateUnknown marks a flag that has not been determined yet
	TriStateUnknown TriState = "Unknown"
)

// Valid reports whether the flag holds one of the three allowed values
func (t TriState) Valid() bool {
	return t == TriStateTrue || t == TriStateFalse || t == TriStateUnknown
}

// MarshalJSON emits true/false for known flags and "Unknown" otherwise
func (t TriState) MarshalJSON() ([]byte, error) {
	switch t {
	case TriStateTrue:
		return []byte("true"), nil
	case TriStateFalse:
		return []byte("false"), nil
	default:
		return json.Marshal(string(TriStateUnknown))
	}
}

// UnmarshalJSON accepts a JSON boolean or the exact string "Unknown"
func (t *TriState) UnmarshalJSON(data []byte) error {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch v := value.(type) {
	case bool:
		if v {
			*t = TriStateTrue
		} else {
			*t = TriStateFalse
		}
		return nil
	case string:
		if v != string(TriStateUnknown) {
			return fmt.Errorf("value '%s' is not a valid preference flag (expected true, false, or %q)",
				v, TriStateUnknown)
		}
		*t = TriStateUnknown
		return nil
	default:
		return fmt.Errorf("value '%v' is not a valid preference flag (expected true, false, or %q)",
			value, TriStateUnknown)
	}
}

// MarshalBSONValue stores known flags as booleans,
// matching the document shape the scanner clients already rely on
func (t TriState) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch t {
	case TriStateTrue:
		return bson.MarshalValue(true)
	case TriStateFalse:
		return bson.MarshalValue(false)
	default:
		return bson.MarshalValue(string(TriStateUnknown))
	}
}

// UnmarshalBSONValue decodes a stored boolean or "Unknown" string
func (t *TriState) UnmarshalBSONValue(valueType bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: valueType, Value: data}
	switch valueType {
	case bsontype.Boolean:
		if raw.Boolean() {
			*t = TriStateTrue
		} else {
			*t = TriStateFalse
		}
		return nil
	case bsontype.String:
		*t = TriState(raw.StringValue())
		return nil
	default:
		return fmt.Errorf("cannot decode BSON type %v as a preference flag", valueType)
	}
}

// UnknownNutritionAmount is the sentinel for a nutrition value that has not
// been measured, distinct from a real amount of zero
const UnknownNutritionAmount float64 = -1

// DietPreferences is the closed set of dietary flags tracked for both
// products and users. The field set is fixed; callers cannot introduce
// new keys through it.
type DietPreferences struct {
	GlutenFree  TriState `json:"Gluten free" bson:"gluten_free"`
	LactoseFree TriState `json:"Lactose free" bson:"lactose_free"`
	Vegan       TriState `json:"Vegan" bson:"vegan"`
	Vegetarian  TriState `json:"Vegetarian" bson:"vegetarian"`
}

// EnvironmentPreferences is the closed set of environmental-impact flags
type EnvironmentPreferences struct {
	SiliconeSiloxane TriState `json:"Silicone & Siloxane" bson:"silicone_siloxane"`
	Microplastic     TriState `json:"Microplastic" bson:"microplastic"`
	PalmOil          TriState `json:"Palm oil" bson:"palm_oil"`
}

// NutritionPreferences is the closed set of nutrition amounts (per 100g).
// Amounts that have not been measured hold UnknownNutritionAmount.
type NutritionPreferences struct {
	Fat           float64 `json:"Fat" bson:"fat"`
	SaturatedFat  float64 `json:"Saturated fat" bson:"saturated_fat"`
	Cholesterol   float64 `json:"Cholesterol" bson:"cholesterol"`
	Carbohydrates float64 `json:"Carbohydrates" bson:"carbohydrates"`
	Sugar         float64 `json:"Sugar" bson:"sugar"`
	Salt          float64 `json:"Salt" bson:"salt"`
}

// DefaultDietPreferences returns a group with every flag undetermined
func DefaultDietPreferences() DietPreferences {
	return DietPreferences{
		GlutenFree:  TriStateUnknown,
		LactoseFree: TriStateUnknown,
		Vegan:       TriStateUnknown,
		Vegetarian:  TriStateUnknown,
	}
}

// DefaultEnvironmentPreferences returns a group with every flag undetermined
func DefaultEnvironmentPreferences() EnvironmentPreferences {
	return EnvironmentPreferences{
		SiliconeSiloxane: TriStateUnknown,
		Microplastic:     TriStateUnknown,
		PalmOil:          TriStateUnknown,
	}
}

// DefaultNutritionPreferences returns a group with every amount unmeasured
func DefaultNutritionPreferences() NutritionPreferences {
	return NutritionPreferences{
		Fat:           UnknownNutritionAmount,
		SaturatedFat:  UnknownNutritionAmount,
		Cholesterol:   UnknownNutritionAmount,
		Carbohydrates: UnknownNutritionAmount,
		Sugar:         UnknownNutritionAmount,
		Salt:          UnknownNutritionAmount,
	}
}

// UnmarshalJSON decodes a diet preference group, filling missing keys with
// their defaults and rejecting keys outside the fixed set
func (d *DietPreferences) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = DefaultDietPreferences()
	for key, value := range raw {
		var target *TriState
		switch key {
		case "Gluten free":
			target = &d.GlutenFree
		case "Lactose free":
			target = &d.LactoseFree
		case "Vegan":
			target = &d.Vegan
		case "Vegetarian":
			target = &d.Vegetarian
		default:
			return fmt.Errorf("'%s' is not a known diet preference", key)
		}

		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("diet preference '%s': %s", key, err)
		}
	}

	return nil
}

// Validate re-checks every flag value, used when a group arrives through a
// path that bypasses JSON decoding
func (d DietPreferences) Validate() error {
	for key, value := range map[string]TriState{
		"Gluten free":  d.GlutenFree,
		"Lactose free": d.LactoseFree,
		"Vegan":        d.Vegan,
		"Vegetarian":   d.Vegetarian,
	} {
		if !value.Valid() {
			return fmt.Errorf("diet preference '%s' holds invalid value '%s'", key, value)
		}
	}

	return nil
}

// UnmarshalJSON decodes an environment preference group, filling missing keys
// with their defaults and rejecting keys outside the fixed set
func (e *EnvironmentPreferences) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = DefaultEnvironmentPreferences()
	for key, value := range raw {
		var target *TriState
		switch key {
		case "Silicone & Siloxane":
			target = &e.SiliconeSiloxane
		case "Microplastic":
			target = &e.Microplastic
		case "Palm oil":
			target = &e.PalmOil
		default:
			return fmt.Errorf("'%s' is not a known environment preference", key)
		}

		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("environment preference '%s': %s", key, err)
		}
	}

	return nil
}

// Validate re-checks every flag value
func (e EnvironmentPreferences) Validate() error {
	for key, value := range map[string]TriState{
		"Silicone & Siloxane": e.SiliconeSiloxane,
		"Microplastic":        e.Microplastic,
		"Palm oil":            e.PalmOil,
	} {
		if !value.Valid() {
			return fmt.Errorf("environment preference '%s' holds invalid value '%s'", key, value)
		}
	}

	return nil
}

// UnmarshalJSON decodes a nutrition preference group, filling missing keys
// with the unmeasured sentinel and rejecting keys outside the fixed set
func (n *NutritionPreferences) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*n = DefaultNutritionPreferences()
	for key, value := range raw {
		var target *float64
		switch key {
		case "Fat":
			target = &n.Fat
		case "Saturated fat":
			target = &n.SaturatedFat
		case "Cholesterol":
			target = &n.Cholesterol
		case "Carbohydrates":
			target = &n.Carbohydrates
		case "Sugar":
			target = &n.Sugar
		case "Salt":
			target = &n.Salt
		default:
			return fmt.Errorf("'%s' is not a known nutrition preference", key)
		}

		if err := json.Unmarshal(value, target); err != nil {
			return fmt.Errorf("nutrition preference '%s' must be a number", key)
		}
	}

	return nil
}

// Validate checks that every amount is either the unmeasured sentinel or
// a non-negative measurement
func (n NutritionPreferences) Validate() error {
	for key, value := range map[string]float64{
		"Fat":           n.Fat,
		"Saturated fat": n.SaturatedFat,
		"Cholesterol":   n.Cholesterol,
		"Carbohydrates": n.Carbohydrates,
		"Sugar":         n.Sugar,
		"Salt":          n.Salt,
	} {
		if value < 0 && value != UnknownNutritionAmount {
			return fmt.Errorf("nutrition preference '%s' cannot be negative", key)
		}
	}

	return nil
}
