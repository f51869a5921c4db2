package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// TimeEntry represents a tracked time entry
type TimeEntry struct {
	ID           int64     `json:"id"`
	DateAt       string    `json:"date_at"`
	Minutes      int64     `json:"minutes"`
	Note         string    `json:"note"`
	Billable     bool      `json:"billable"`
	Locked       bool      `json:"locked"`
	Revenue      float64   `json:"revenue"`
	HourlyRate   int64     `json:"hourly_rate"`
	UserID       *int64    `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	ProjectID    *int64    `json:"project_id"`
	ProjectName  string    `json:"project_name,omitempty"`
	CustomerID   *int64    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	ServiceID    *int64    `json:"service_id"`
	ServiceName  string    `json:"service_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TimeEntryGroup is one bucket of a grouped time entry listing
type TimeEntryGroup struct {
	Minutes           int64             `json:"minutes"`
	Revenue           float64           `json:"revenue"`
	UserID            *int64            `json:"user_id,omitempty"`
	UserName          string            `json:"user_name,omitempty"`
	CustomerID        *int64            `json:"customer_id,omitempty"`
	CustomerName      string            `json:"customer_name,omitempty"`
	ProjectID         *int64            `json:"project_id,omitempty"`
	ProjectName       string            `json:"project_name,omitempty"`
	ServiceID         *int64            `json:"service_id,omitempty"`
	ServiceName       string            `json:"service_name,omitempty"`
	Day               string            `json:"day,omitempty"`
	Week              *int64            `json:"week,omitempty"`
	Month             *int64            `json:"month,omitempty"`
	Year              *int64            `json:"year,omitempty"`
	TimeEntriesParams map[string]string `json:"time_entries_params,omitempty"`
}

// HourlyRate is a per-service rate override in cents
type HourlyRate struct {
	ServiceID  int64 `json:"service_id"`
	HourlyRate int64 `json:"hourly_rate"`
}

// Customer represents a customer
type Customer struct {
	ID                    int64        `json:"id"`
	Name                  string       `json:"name"`
	Note                  string       `json:"note"`
	Archived              bool         `json:"archived"`
	ActiveHourlyRate      string       `json:"active_hourly_rate,omitempty"`
	HourlyRate            int64        `json:"hourly_rate"`
	HourlyRatesPerService []HourlyRate `json:"hourly_rates_per_service,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// Project represents a project, optionally owned by a customer
type Project struct {
	ID                    int64        `json:"id"`
	Name                  string       `json:"name"`
	Note                  string       `json:"note"`
	CustomerID            *int64       `json:"customer_id"`
	CustomerName          string       `json:"customer_name,omitempty"`
	Budget                int64        `json:"budget"`
	BudgetType            string       `json:"budget_type"`
	Archived              bool         `json:"archived"`
	ActiveHourlyRate      string       `json:"active_hourly_rate,omitempty"`
	HourlyRate            int64        `json:"hourly_rate"`
	HourlyRatesPerService []HourlyRate `json:"hourly_rates_per_service,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             time.Time    `json:"updated_at"`
}

// Service represents a billable activity
type Service struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Note       string    `json:"note"`
	HourlyRate int64     `json:"hourly_rate"`
	Archived   bool      `json:"archived"`
	Billable   bool      `json:"billable"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// User represents an account member
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Note      string    `json:"note"`
	Archived  bool      `json:"archived"`
	Role      string    `json:"role"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Account represents the mite account the credentials belong to
type Account struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
