package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Performance is a single scheduled showing of a production in a hall.
type Performance struct {
	bun.BaseModel `bun:"table:performances"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	ProductionID int64     `bun:"production_id,notnull" json:"production_id"`
	StartsAt     time.Time `bun:"starts_at,notnull" json:"starts_at"`
	Hall         string    `bun:"hall,notnull" json:"hall"`

	Production *Production `bun:"rel:belongs-to,join:production_id=id" json:"-"`
}
