package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// DTO is the flat, transport-shaped projection of an entity's scalar fields.
// Relationship fields are never part of a DTO.
type DTO map[string]any

// Transferable is implemented by every entity that can be converted to and
// from a DTO.
type Transferable interface {
	// ToDTO projects the scalar fields of the entity
	ToDTO() DTO
	// FromDTO fills the entity from a DTO, failing when a required key is missing
	FromDTO(dto DTO) error
	// ApplyDTO overwrites only the fields whose keys are present in the DTO
	ApplyDTO(dto DTO) error
}

// transferablePtr constrains PT to be a pointer to T implementing Transferable
type transferablePtr[T any] interface {
	*T
	Transferable
}

// FromDTO builds a new entity of type T from a DTO
func FromDTO[T any, PT transferablePtr[T]](dto DTO) (*T, error) {
	entity := new(T)
	if err := PT(entity).FromDTO(dto); err != nil {
		return nil, err
	}
	return entity, nil
}

// requireKeys returns a validation error naming the first missing key
func requireKeys(dto DTO, keys ...string) error {
	for _, key := range keys {
		if v, ok := dto[key]; !ok || v == nil {
			return NewValidationError(fmt.Sprintf("missing required field '%s'", key))
		}
	}
	return nil
}

func dtoString(dto DTO, key string) (string, bool, error) {
	raw, ok := dto[key]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", true, NewValidationError(fmt.Sprintf("field '%s' must be a string", key))
	}
	return s, true, nil
}

func dtoUint(dto DTO, key string) (uint, bool, error) {
	raw, ok := dto[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	invalid := NewValidationError(fmt.Sprintf("field '%s' must be a non-negative integer", key))
	switch v := raw.(type) {
	case uint:
		return v, true, nil
	case int:
		if v < 0 {
			return 0, true, invalid
		}
		return uint(v), true, nil
	case int64:
		if v < 0 {
			return 0, true, invalid
		}
		return uint(v), true, nil
	case float64:
		if v < 0 || v != float64(uint(v)) {
			return 0, true, invalid
		}
		return uint(v), true, nil
	case json.Number:
		n, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return 0, true, invalid
		}
		return uint(n), true, nil
	case string:
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, true, invalid
		}
		return uint(n), true, nil
	default:
		return 0, true, invalid
	}
}

// ParseID converts a decoded JSON value into an id
func ParseID(value any) (uint, error) {
	id, ok, err := dtoUint(DTO{"id": value}, "id")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, NewValidationError("id is required")
	}
	return id, nil
}

func dtoDecimal(dto DTO, key string) (decimal.Decimal, bool, error) {
	raw, ok := dto[key]
	if !ok || raw == nil {
		return decimal.Zero, false, nil
	}
	invalid := NewValidationError(fmt.Sprintf("field '%s' must be a decimal number", key))
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, true, invalid
		}
		return d, true, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, true, invalid
		}
		return d, true, nil
	case float64:
		return decimal.NewFromFloat(v), true, nil
	case int:
		return decimal.NewFromInt(int64(v)), true, nil
	case int64:
		return decimal.NewFromInt(v), true, nil
	default:
		return decimal.Zero, true, invalid
	}
}

func dtoTime(dto DTO, key string) (time.Time, bool, error) {
	raw, ok := dto[key]
	if !ok || raw == nil {
		return time.Time{}, false, nil
	}
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), true, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, true, NewValidationError(fmt.Sprintf("field '%s' must be an RFC 3339 timestamp", key))
		}
		return t.UTC(), true, nil
	default:
		return time.Time{}, true, NewValidationError(fmt.Sprintf("field '%s' must be an RFC 3339 timestamp", key))
	}
}

// TimestampLayout is a fixed-width RFC 3339 layout. Rendered in UTC, string
// ordering of two timestamps matches their chronological ordering.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func applyTimestamps(dto DTO, createdAt, updatedAt *time.Time) error {
	if t, ok, err := dtoTime(dto, "created_at"); err != nil {
		return err
	} else if ok {
		*createdAt = t
	}
	if t, ok, err := dtoTime(dto, "updated_at"); err != nil {
		return err
	} else if ok {
		*updatedAt = t
	}
	return nil
}
