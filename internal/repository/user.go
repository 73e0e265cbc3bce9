package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ticketbase/ticketbase-go/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// mysqlDuplicateEntry is MySQL error 1062 (unique constraint violation).
const mysqlDuplicateEntry = 1062

// UserRepository handles user and role-profile persistence.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithPartner inserts a user row and its partner profile as a single
// transaction. If the profile insert fails the user insert is rolled back, so
// a profile-less user can never be left behind.
func (r *UserRepository) CreateWithPartner(ctx context.Context, user *model.User, partner *model.Partner) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	if err := createUserTx(ctx, tx, user, now); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO partners (user_id, company_name, created_at) VALUES (?, ?, ?)`,
		user.ID, partner.CompanyName, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	partner.ID = id
	partner.UserID = user.ID
	partner.CreatedAt = now
	return nil
}

// CreateWithCustomer inserts a user row and its customer profile as a single
// transaction, with the same rollback guarantee as CreateWithPartner.
func (r *UserRepository) CreateWithCustomer(ctx context.Context, user *model.User, customer *model.Customer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	if err := createUserTx(ctx, tx, user, now); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO customers (user_id, address, phone, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, customer.Address, customer.Phone, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	customer.ID = id
	customer.UserID = user.ID
	customer.CreatedAt = now
	return nil
}

// createUserTx inserts the user row within tx and sets the generated ID.
func createUserTx(ctx context.Context, tx *sql.Tx, user *model.User, now time.Time) error {
	result, err := tx.ExecContext(ctx,
		`INSERT INTO users (name, email, password, created_at) VALUES (?, ?, ?, ?)`,
		user.Name, user.Email, user.Password, now,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	user.CreatedAt = now
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = ?`

	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// isDuplicateEntryError checks for MySQL error 1062 (duplicate entry).
func isDuplicateEntryError(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}
