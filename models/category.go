package models

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Description string `json:"description"`

	Games []Game `gorm:"many2many:game_categories" json:"games,omitempty"`
}

// CategoryAdditionInput - for category creation
type CategoryAdditionInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// CategoryUpdateInput - for category updates; empty fields stay untouched
type CategoryUpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
