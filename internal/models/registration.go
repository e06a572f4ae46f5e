package models

import "time"

type Registration struct {
	ID               int       `json:"id"`
	EventID          int       `json:"event_id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	TicketsCount     int       `json:"tickets_count"`
	TotalAmount      float64   `json:"total_amount"`
	RegistrationDate time.Time `json:"registration_date"`
}
