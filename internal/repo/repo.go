package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Setup is a saved job setup: the name on the setup sheet plus the
// request payload that produced it, kept as JSON so the calculators
// can evolve without schema churn.
type Setup struct {
	ID        int             `json:"id"`
	UserID    int             `json:"-"`
	Name      string          `json:"name"`
	Machine   string          `json:"machine"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveSetup(ctx context.Context, s Setup) (int, error)
	ListSetups(ctx context.Context, userID int) ([]Setup, error)
	GetSetup(ctx context.Context, userID, id int) (Setup, error)
	DeleteSetup(ctx context.Context, userID, id int) error
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveSetup(ctx context.Context, s Setup) (int, error) {
	var id int
	query := "INSERT INTO setups (user_id, name, machine, payload) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, s.UserID, s.Name, s.Machine, s.Payload).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListSetups(ctx context.Context, userID int) ([]Setup, error) {
	query := "SELECT id, name, machine, created_at FROM setups WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var setups []Setup
	for rows.Next() {
		s := Setup{UserID: userID}
		if err := rows.Scan(&s.ID, &s.Name, &s.Machine, &s.CreatedAt); err != nil {
			return nil, err
		}
		setups = append(setups, s)
	}
	return setups, rows.Err()
}

func (r *PostgresRepository) GetSetup(ctx context.Context, userID, id int) (Setup, error) {
	s := Setup{ID: id, UserID: userID}
	query := "SELECT name, machine, payload, created_at FROM setups WHERE id=$1 AND user_id=$2"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&s.Name, &s.Machine, &s.Payload, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return Setup{}, ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) DeleteSetup(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM setups WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
