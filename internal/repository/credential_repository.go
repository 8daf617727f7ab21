package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"registros/internal/entity"
)

// ErrDuplicateUser is returned by Create when the username is already taken.
var ErrDuplicateUser = errors.New("user already exists")

const hashCost = 10

type CredentialRepository struct {
	db *sql.DB
}

func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// FindByUsername looks up a credential by exact username match.
// Returns (nil, nil) when no such user exists.
func (r *CredentialRepository) FindByUsername(username string) (*entity.Credential, error) {
	var c entity.Credential
	err := r.db.QueryRow(`
		SELECT id, usuario, password, created_at FROM users WHERE usuario = $1
	`, username).Scan(&c.ID, &c.Username, &c.PasswordHash, &c.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding user %q: %w", username, err)
	}

	return &c, nil
}

// Verify reports whether the plaintext password matches the stored hash.
func (r *CredentialRepository) Verify(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}

// Create hashes the password and inserts the credential. The unique
// constraint on usuario makes the duplicate check atomic: a conflicting
// insert affects zero rows and is reported as ErrDuplicateUser.
func (r *CredentialRepository) Create(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	res, err := r.db.Exec(`
		INSERT INTO users (usuario, password) VALUES ($1, $2)
		ON CONFLICT (usuario) DO NOTHING
	`, username, string(hash))
	if err != nil {
		return fmt.Errorf("inserting user %q: %w", username, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting user %q: %w", username, err)
	}
	if affected == 0 {
		return ErrDuplicateUser
	}

	return nil
}
