package models

import "time"

type Event struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	TicketPrice   float64   `json:"ticket_price"`
	GoalAmount    float64   `json:"goal_amount"`
	CurrentAmount float64   `json:"current_amount"`
	CategoryID    int       `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	IsActive      bool      `json:"is_active"`
}
