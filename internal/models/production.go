package models

import "github.com/uptrace/bun"

// Production is a titled show; each production may have several scheduled
// performances.
type Production struct {
	bun.BaseModel `bun:"table:productions"`

	ID    int64  `bun:"id,pk,autoincrement" json:"id"`
	Title string `bun:"title,notnull" json:"title"`
}
