package models

// Ingredient is a standalone reference entity linked to pizzas through PizzaIngredient
type Ingredient struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (i Ingredient) ToDTO() DTO {
	return DTO{"id": i.ID, "name": i.Name}
}

func (i *Ingredient) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "name"); err != nil {
		return err
	}
	*i = Ingredient{}
	return i.ApplyDTO(dto)
}

func (i *Ingredient) ApplyDTO(dto DTO) error {
	if id, ok, err := dtoUint(dto, "id"); err != nil {
		return err
	} else if ok {
		i.ID = id
	}
	if name, ok, err := dtoString(dto, "name"); err != nil {
		return err
	} else if ok {
		if name == "" {
			return NewValidationError("ingredient name cannot be empty")
		}
		i.Name = name
	}
	return nil
}

// PizzaIngredient is the association row between a pizza and one of its ingredients
type PizzaIngredient struct {
	PizzaID      uint `json:"pizza_id" gorm:"primaryKey"`
	IngredientID uint `json:"ingredient_id" gorm:"primaryKey"`
}

func (PizzaIngredient) TableName() string {
	return "pizza_ingredients"
}

func (pi PizzaIngredient) ToDTO() DTO {
	return DTO{"pizza_id": pi.PizzaID, "ingredient_id": pi.IngredientID}
}

func (pi *PizzaIngredient) FromDTO(dto DTO) error {
	if err := requireKeys(dto, "pizza_id", "ingredient_id"); err != nil {
		return err
	}
	*pi = PizzaIngredient{}
	return pi.ApplyDTO(dto)
}

func (pi *PizzaIngredient) ApplyDTO(dto DTO) error {
	if id, ok, err := dtoUint(dto, "pizza_id"); err != nil {
		return err
	} else if ok {
		pi.PizzaID = id
	}
	if id, ok, err := dtoUint(dto, "ingredient_id"); err != nil {
		return err
	} else if ok {
		pi.IngredientID = id
	}
	return nil
}
