package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PizzaSize is the size label of a catalog pizza
type PizzaSize string

const (
	SizeSmall  PizzaSize = "Small"
	SizeMedium PizzaSize = "Medium"
	SizeLarge  PizzaSize = "Large"
)

// Valid reports whether s is one of the known sizes
func (s PizzaSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Pizza represents a catalog pizza with its properties
type Pizza struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Size        PizzaSize       `json:"size" gorm:"not null;default:'Medium'"`
	Ingredients []Ingredient    `json:"ingredients,omitempty" gorm:"many2many:pizza_ingredients;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (p Pizza) ToDTO() DTO {
	return DTO{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"size":        string(p.Size),
		"created_at":  formatTime(p.CreatedAt),
		"updated_at":  formatTime(p.UpdatedAt),
	}
}

func (p *Pizza) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "name", "price"); err != nil {
		return err
	}
	*p = Pizza{Size: SizeMedium}
	return p.ApplyDTO(dto)
}

func (p *Pizza) ApplyDTO(dto DTO) error {
	if id, ok, err := dtoUint(dto, "id"); err != nil {
		return err
	} else if ok {
		p.ID = id
	}
	if name, ok, err := dtoString(dto, "name"); err != nil {
		return err
	} else if ok {
		if name == "" {
			return NewValidationError("pizza name cannot be empty")
		}
		p.Name = name
	}
	if description, ok, err := dtoString(dto, "description"); err != nil {
		return err
	} else if ok {
		p.Description = description
	}
	if price, ok, err := dtoDecimal(dto, "price"); err != nil {
		return err
	} else if ok {
		if price.IsNegative() {
			return NewValidationError("pizza price cannot be negative")
		}
		p.Price = price
	}
	if size, ok, err := dtoString(dto, "size"); err != nil {
		return err
	} else if ok {
		if !PizzaSize(size).Valid() {
			return NewValidationError(fmt.Sprintf("invalid pizza size '%s' (allowed: Small, Medium, Large)", size))
		}
		p.Size = PizzaSize(size)
	}
	return applyTimestamps(dto, &p.CreatedAt, &p.UpdatedAt)
}
