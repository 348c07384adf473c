package models

type Game struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl"`

	Categories []Category `gorm:"many2many:game_categories" json:"categories,omitempty"`
}

// GameAdditionInput - for game creation
type GameAdditionInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Categories  []string `json:"categories" validate:"required"`
}

// GamePatchInput - for partial game updates; nil fields stay untouched
type GamePatchInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	Categories  []string `json:"categories"`
}
