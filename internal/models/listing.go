package models

import "time"

// Read-side projections for the dashboard and admin views.

// PerformanceListing is an upcoming performance joined with its production
// title.
type PerformanceListing struct {
	ID       int64     `bun:"id" json:"id"`
	Title    string    `bun:"title" json:"title"`
	StartsAt time.Time `bun:"starts_at" json:"starts_at"`
	Hall     string    `bun:"hall" json:"hall"`
}

// RequestSummary is one of the user's own requests with show details.
type RequestSummary struct {
	ID            int64     `bun:"id" json:"id"`
	Title         string    `bun:"title" json:"title"`
	StartsAt      time.Time `bun:"starts_at" json:"starts_at"`
	Qty           int       `bun:"qty" json:"qty"`
	PaymentMethod string    `bun:"payment_method" json:"payment_method"`
	Status        string    `bun:"status" json:"status"`
}

// AdminRequestRow is a request joined with requester and show details for the
// admin review list.
type AdminRequestRow struct {
	ID            int64     `bun:"id" json:"id"`
	Qty           int       `bun:"qty" json:"qty"`
	PaymentMethod string    `bun:"payment_method" json:"payment_method"`
	Status        string    `bun:"status" json:"status"`
	FullName      string    `bun:"full_name" json:"full_name"`
	Email         string    `bun:"email" json:"email"`
	Title         string    `bun:"title" json:"title"`
	StartsAt      time.Time `bun:"starts_at" json:"starts_at"`
}
