package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Request statuses. Any status may transition to any other; there is no
// terminal state.
const (
	StatusNew       = "new"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known request statuses.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusConfirmed || s == StatusCancelled
}

// Request is a user's ask for a number of tickets to a performance.
type Request struct {
	bun.BaseModel `bun:"table:requests"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64     `bun:"user_id,notnull" json:"user_id"`
	PerformanceID int64     `bun:"performance_id,notnull" json:"performance_id"`
	Qty           int       `bun:"qty,notnull" json:"qty"`
	PaymentMethod string    `bun:"payment_method,notnull" json:"payment_method"`
	Status        string    `bun:"status,notnull,default:'new'" json:"status"`
	CreatedAt     time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	User        *User        `bun:"rel:belongs-to,join:user_id=id" json:"-"`
	Performance *Performance `bun:"rel:belongs-to,join:performance_id=id" json:"-"`
}
