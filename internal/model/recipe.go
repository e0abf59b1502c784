package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray is a string slice stored as a JSON text column
type StringArray []string

// Value implements the driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringArray", value)
	}

	if err := json.Unmarshal(bytes, a); err != nil {
		return err
	}
	if *a == nil {
		*a = StringArray{}
	}
	return nil
}

// Recipe is a named list of ingredients with a server-assigned id.
// Seq only orders rows in the sqlite store and never leaves the server.
type Recipe struct {
	Seq         uint        `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          string      `gorm:"size:36;uniqueIndex;not null" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Ingredients StringArray `gorm:"type:text;not null" json:"ingredients"`
}

// Clone returns a deep copy so callers never share the ingredients backing array
func (r Recipe) Clone() Recipe {
	out := r
	out.Ingredients = append(StringArray{}, r.Ingredients...)
	return out
}
