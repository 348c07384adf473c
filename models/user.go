package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type AppUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username" validate:"required,min=3,max=50"`
	Password string `gorm:"not null" json:"-"`
	Email    string `gorm:"not null" json:"email" validate:"required,email"`
	Role     string `gorm:"not null;default:user" json:"role" validate:"required,oneof=user admin"`

	OwnedGames []Game `gorm:"many2many:owned_games" json:"ownedGames,omitempty"`
	Cart       []Game `gorm:"many2many:cart_games" json:"cart,omitempty"`
}

// OwnsGame reports whether the game id is already in the user's library.
func (u *AppUser) OwnsGame(gameID uint) bool {
	for _, g := range u.OwnedGames {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

// HasInCart reports whether the game id is currently in the user's cart.
func (u *AppUser) HasInCart(gameID uint) bool {
	for _, g := range u.Cart {
		if g.ID == gameID {
			return true
		}
	}
	return false
}

// LoginInput - used for login validation
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterInput - used for registration validation
type RegisterInput struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	Password2 string `json:"password2" validate:"required"`
}
