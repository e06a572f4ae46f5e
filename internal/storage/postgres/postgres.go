package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"fundraiser/internal/config"
	"fundraiser/internal/models"
	"fundraiser/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

const eventColumns = `
		e.id, e.name, e.description, e.date, e.location, e.latitude, e.longitude,
		e.ticket_price, e.goal_amount, e.current_amount, e.category_id, c.name, e.is_active`

func scanEvent(row interface{ Scan(...interface{}) error }, event *models.Event) error {
	return row.Scan(
		&event.ID,
		&event.Name,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.Latitude,
		&event.Longitude,
		&event.TicketPrice,
		&event.GoalAmount,
		&event.CurrentAmount,
		&event.CategoryID,
		&event.CategoryName,
		&event.IsActive,
	)
}

func (s *Storage) GetActiveEvents() ([]models.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON e.category_id = c.id
		WHERE e.is_active = TRUE
		ORDER BY e.date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		if err = scanEvent(rows, &event); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) SearchEvents(category, location, date *string) ([]models.Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON e.category_id = c.id
		WHERE e.is_active = TRUE`

	var args []interface{}

	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(" AND c.name = $%d", len(args))
	}
	if location != nil {
		args = append(args, "%"+*location+"%")
		query += fmt.Sprintf(" AND e.location ILIKE $%d", len(args))
	}
	if date != nil {
		args = append(args, *date)
		query += fmt.Sprintf(" AND e.date::date = $%d::date", len(args))
	}

	query += " ORDER BY e.date ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var event models.Event
		if err = scanEvent(rows, &event); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventWithRegistrations(eventID int) (*models.Event, []models.Registration, error) {
	eventQuery := `
		SELECT` + eventColumns + `
		FROM events e
		JOIN categories c ON e.category_id = c.id
		WHERE e.id = $1`

	var event models.Event
	err := scanEvent(s.DB.QueryRow(eventQuery, eventID), &event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, storage.ErrEventNotFound
		}
		return nil, nil, fmt.Errorf("failed to get event: %w", err)
	}

	registrationsQuery := `
		SELECT id, event_id, full_name, email, phone, tickets_count, total_amount, registration_date
		FROM registrations
		WHERE event_id = $1
		ORDER BY registration_date DESC`

	rows, err := s.DB.Query(registrationsQuery, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get registrations: %w", err)
	}
	defer rows.Close()

	registrations := make([]models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		err = rows.Scan(
			&reg.ID,
			&reg.EventID,
			&reg.FullName,
			&reg.Email,
			&reg.Phone,
			&reg.TicketsCount,
			&reg.TotalAmount,
			&reg.RegistrationDate,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan registration: %w", err)
		}

		registrations = append(registrations, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return &event, registrations, nil
}

// CreateEvent ignores CurrentAmount and IsActive on the input: new events
// always start at zero raised and active.
func (s *Storage) CreateEvent(event models.Event) (int, error) {
	query := `
		INSERT INTO events (name, description, date, location, latitude, longitude,
		                    ticket_price, goal_amount, current_amount, category_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, TRUE)
		RETURNING id`

	var id int
	err := s.DB.QueryRow(query,
		event.Name,
		event.Description,
		event.Date,
		event.Location,
		event.Latitude,
		event.Longitude,
		event.TicketPrice,
		event.GoalAmount,
		event.CategoryID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

// UpdateEvent overwrites every column of the row.
func (s *Storage) UpdateEvent(eventID int, event models.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, date = $3, location = $4, latitude = $5, longitude = $6,
		    ticket_price = $7, goal_amount = $8, current_amount = $9, category_id = $10, is_active = $11
		WHERE id = $12`

	result, err := s.DB.Exec(query,
		event.Name,
		event.Description,
		event.Date,
		event.Location,
		event.Latitude,
		event.Longitude,
		event.TicketPrice,
		event.GoalAmount,
		event.CurrentAmount,
		event.CategoryID,
		event.IsActive,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes an event that has no registrations. When registrations
// exist it returns their count together with storage.ErrHasRegistrations.
// The registrations foreign key is RESTRICT, so a registration racing past
// the count check still cannot be orphaned by the delete.
func (s *Storage) DeleteEvent(eventID int) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`

	if err = tx.QueryRow(countQuery, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	if count > 0 {
		return count, storage.ErrHasRegistrations
	}

	result, err := tx.Exec(`DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return 0, storage.ErrEventNotFound
	}

	return 0, tx.Commit()
}

// CreateRegistration inserts a registration after checking for a duplicate
// (event_id, email) pair and computing the total from the event's ticket
// price. The whole flow runs in one transaction; the unique constraint on
// (event_id, email) backs up the duplicate check under concurrent callers.
func (s *Storage) CreateRegistration(eventID int, fullName, email string, phone *string, ticketsCount int) (int, float64, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	checkQuery := `
		SELECT EXISTS(
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND email = $2
		)`

	if err = tx.QueryRow(checkQuery, eventID, email).Scan(&exists); err != nil {
		return 0, 0, fmt.Errorf("failed to check existing registration: %w", err)
	}

	if exists {
		return 0, 0, storage.ErrAlreadyRegistered
	}

	var ticketPrice float64
	priceQuery := `SELECT ticket_price FROM events WHERE id = $1`

	if err = tx.QueryRow(priceQuery, eventID).Scan(&ticketPrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, storage.ErrEventNotFound
		}
		return 0, 0, fmt.Errorf("failed to get ticket price: %w", err)
	}

	totalAmount := ticketPrice * float64(ticketsCount)

	insertQuery := `
		INSERT INTO registrations (event_id, full_name, email, phone, tickets_count, total_amount, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id`

	var id int
	err = tx.QueryRow(insertQuery, eventID, fullName, email, phone, ticketsCount, totalAmount).Scan(&id)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create registration: %w", err)
	}

	return id, totalAmount, tx.Commit()
}

func (s *Storage) GetAllCategories() ([]models.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var category models.Category
		if err = rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
