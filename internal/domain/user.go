package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"nome"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"endereco"`
	City         string    `json:"cidade"`
	Phone        string    `json:"telefone"`
	CreatedAt    time.Time `json:"data_cadastro"`
}

// FullAddress joins address and city for display, skipping empty parts.
func (u *User) FullAddress() string {
	if u.Address == "" {
		return u.City
	}
	if u.City == "" {
		return u.Address
	}
	return u.Address + ", " + u.City
}
