package entity

import (
	"github.com/google/uuid"
)

// db model
type Hospital struct {
	Id        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Contact   string    `json:"contact" db:"contact"`
	Email     string    `json:"email" db:"email"`
	CreatedAt string    `json:"createdAt" db:"created_at"`
}

// controller model
type HospitalOutputModel struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Contact   string `json:"contact"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
