package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/hadiniaraki/checkout-form/internal/config"
	"github.com/hadiniaraki/checkout-form/internal/storage"
	"github.com/hadiniaraki/checkout-form/internal/validation"
)

type Storage struct {
	db *sql.DB
}

type BillingProfile struct {
	Login       string    `json:"login,omitempty" db:"user_login"`
	UserType    string    `json:"user_type" db:"user_type"`
	FirstName   string    `json:"first_name,omitempty" db:"first_name"`
	LastName    string    `json:"last_name,omitempty" db:"last_name"`
	CompanyName string    `json:"company_name,omitempty" db:"company_name"`
	NationalID  string    `json:"national_id,omitempty" db:"national_id"`
	Phone       string    `json:"phone,omitempty" db:"phone"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Order struct {
	Number      string    `json:"number" db:"order_number"`
	Amount      float64   `json:"amount" db:"amount"`
	Status      string    `json:"status" db:"status"`
	UserType    string    `json:"user_type" db:"user_type"`
	CompanyName string    `json:"company_name,omitempty" db:"company_name"`
	NationalID  string    `json:"national_id,omitempty" db:"national_id"`
	UploadedAt  time.Time `json:"uploaded_at" db:"uploaded_at"`
}

func New() (*Storage, error) {
	db, err := sql.Open("pgx", config.DataBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS users(
    	id SERIAL PRIMARY KEY,
    	login TEXT NOT NULL UNIQUE,
    	password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS billing_profiles(
	    id SERIAL PRIMARY KEY,
    	user_login TEXT NOT NULL UNIQUE,
    	user_type TEXT NOT NULL,
    	first_name TEXT NOT NULL DEFAULT '',
    	last_name TEXT NOT NULL DEFAULT '',
    	company_name TEXT NOT NULL DEFAULT '',
    	national_id TEXT NOT NULL DEFAULT '',
    	phone TEXT NOT NULL DEFAULT '',
    	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (user_login) REFERENCES users (login));
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create billing_profiles table: %w", err)
	}

	_, err = db.Exec(`
	CREATE TABLE IF NOT EXISTS orders(
	    id SERIAL PRIMARY KEY,
    	user_login TEXT NOT NULL,
    	order_number TEXT NOT NULL UNIQUE,
    	amount FLOAT NOT NULL DEFAULT 0,
    	status TEXT NOT NULL DEFAULT 'NEW',
    	user_type TEXT NOT NULL,
    	company_name TEXT NOT NULL DEFAULT '',
    	national_id TEXT NOT NULL DEFAULT '',
    	uploaded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (user_login) REFERENCES users (login));
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create orders table: %w", err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) SaveUser(ctx context.Context, login, password string) error {
	var exists bool

	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE login = $1)", login).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if exists {
		slog.Info("user already exists", "login", login)
		return fmt.Errorf("%w", storage.ErrLoginAlreadyExists)
	}

	stmt, err := s.db.PrepareContext(ctx, `INSERT INTO users(login, password) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	password, err = validation.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, err = stmt.ExecContext(ctx, login, password)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *Storage) GetUser(ctx context.Context, login, password string) (string, error) {
	var correctPassword string

	err := s.db.QueryRowContext(ctx, `SELECT password FROM users WHERE login = $1`, login).Scan(&correctPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to query user: %w", err)
	}

	if !validation.CheckPassword(password, correctPassword) {
		return "", storage.ErrIncorrectPassword
	}

	return login, nil
}

func (s *Storage) SaveBillingProfile(ctx context.Context, login string, profile BillingProfile) error {
	stmt, err := s.db.PrepareContext(ctx, `
	INSERT INTO billing_profiles(user_login, user_type, first_name, last_name, company_name, national_id, phone)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (user_login) DO UPDATE SET
		user_type = EXCLUDED.user_type,
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		company_name = EXCLUDED.company_name,
		national_id = EXCLUDED.national_id,
		phone = EXCLUDED.phone,
		updated_at = CURRENT_TIMESTAMP`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, login, profile.UserType, profile.FirstName, profile.LastName,
		profile.CompanyName, profile.NationalID, profile.Phone)
	if err != nil {
		return fmt.Errorf("failed to upsert billing profile: %w", err)
	}

	return nil
}

func (s *Storage) GetBillingProfile(ctx context.Context, login string) (BillingProfile, error) {
	var profile BillingProfile

	err := s.db.QueryRowContext(ctx, `
	SELECT user_type, first_name, last_name, company_name, national_id, phone, updated_at
	FROM billing_profiles WHERE user_login = $1`, login).
		Scan(&profile.UserType, &profile.FirstName, &profile.LastName,
			&profile.CompanyName, &profile.NationalID, &profile.Phone, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BillingProfile{}, storage.ErrNoBillingProfile
		}
		return BillingProfile{}, fmt.Errorf("failed to query billing profile: %w", err)
	}

	return profile, nil
}

// CreateOrder snapshots the user's current billing profile into the order
// row, so later profile edits do not rewrite order history.
func (s *Storage) CreateOrder(ctx context.Context, login, orderNumber string, amount float64) error {
	profile, err := s.GetBillingProfile(ctx, login)
	if err != nil {
		return err
	}

	stmt, err := s.db.PrepareContext(ctx, `
	INSERT INTO orders(user_login, order_number, amount, user_type, company_name, national_id)
	VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, login, orderNumber, amount,
		profile.UserType, profile.CompanyName, profile.NationalID)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	return nil
}

func (s *Storage) GetOrders(ctx context.Context, login string) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT order_number, amount, status, user_type, company_name, national_id, uploaded_at
	FROM orders WHERE user_login = $1 ORDER BY uploaded_at ASC`, login)
	if err != nil {
		return []Order{}, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []Order

	for rows.Next() {
		var order Order

		if err := rows.Scan(&order.Number, &order.Amount, &order.Status,
			&order.UserType, &order.CompanyName, &order.NationalID, &order.UploadedAt); err != nil {
			return []Order{}, fmt.Errorf("failed to scan order: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return []Order{}, fmt.Errorf("error occurred during row iteration: %w", err)
	}

	if len(orders) == 0 {
		return []Order{}, storage.ErrNoOrders
	}

	return orders, nil
}

func (s *Storage) ListBillingProfiles(ctx context.Context) ([]BillingProfile, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT user_login, user_type, first_name, last_name, company_name, national_id, phone, updated_at
	FROM billing_profiles ORDER BY updated_at DESC`)
	if err != nil {
		return []BillingProfile{}, fmt.Errorf("failed to query billing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []BillingProfile

	for rows.Next() {
		var profile BillingProfile

		if err := rows.Scan(&profile.Login, &profile.UserType, &profile.FirstName, &profile.LastName,
			&profile.CompanyName, &profile.NationalID, &profile.Phone, &profile.UpdatedAt); err != nil {
			return []BillingProfile{}, fmt.Errorf("failed to scan billing profile: %w", err)
		}

		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return []BillingProfile{}, fmt.Errorf("error occurred during row iteration: %w", err)
	}

	if len(profiles) == 0 {
		return []BillingProfile{}, storage.ErrNoProfiles
	}

	return profiles, nil
}
