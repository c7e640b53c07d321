package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Email        string    `bun:"email,unique,notnull" json:"email"`
	Login        string    `bun:"login,unique,notnull" json:"login"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	FullName     string    `bun:"full_name,notnull" json:"full_name"`
	Phone        string    `bun:"phone,notnull" json:"phone"`
	IsAdmin      bool      `bun:"is_admin,notnull,default:false" json:"is_admin"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
