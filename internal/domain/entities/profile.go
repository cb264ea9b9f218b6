package entities

import "time"

// UserProfile é o perfil (um-para-um) de um usuário
type UserProfile struct {
	ID        int64
	UserID    int64
	Phone     *string
	City      *string
	Country   *string
	Timezone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
