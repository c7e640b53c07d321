package models

import (
	"database/sql"
	"time"

	"github.com/uptrace/bun"
)

// AuthLogEntry is one row of the append-only authentication audit trail.
// UserID is nullable so failed attempts could be recorded without an actor.
type AuthLogEntry struct {
	bun.BaseModel `bun:"table:auth_log"`

	ID        int64         `bun:"id,pk,autoincrement" json:"id"`
	UserID    sql.NullInt64 `bun:"user_id" json:"user_id"`
	Action    string        `bun:"action,notnull" json:"action"`
	IP        string        `bun:"ip" json:"ip"`
	UserAgent string        `bun:"user_agent" json:"user_agent"`
	CreatedAt time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
