package domain

import "time"

type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description string    `json:"descricao"`
	UserID      int64     `json:"usuario_id"`
	CreatedAt   time.Time `json:"data_criacao"`
}
