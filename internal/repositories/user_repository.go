package repositories

import (
	"database/sql"

	"westudy/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

// GetByEmail loads a user plus password hash for credential checks.
func (r UserRepository) GetByEmail(email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(avatar_url, ''), is_admin, status, created_at, password_hash
		FROM users WHERE email = ?`, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.IsAdmin, &u.Status, &u.CreatedAt, &hash,
	)
	if err != nil {
		return models.User{}, "", err
	}
	return u, hash, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, name, email, COALESCE(avatar_url, ''), is_admin, status, created_at
		FROM users WHERE id = ?`, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.IsAdmin, &u.Status, &u.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// EmailTaken reports whether an account already exists for the email.
func (r UserRepository) EmailTaken(email string) (bool, error) {
	var n int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, email).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r UserRepository) Create(name, email, passwordHash string) (int64, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (name, email, password_hash, is_admin, status)
		VALUES (?, ?, ?, 0, 'active')`, name, email, passwordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns all users for the admin user-management screen.
func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, COALESCE(avatar_url, ''), is_admin, status, created_at
		FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.AvatarURL, &u.IsAdmin, &u.Status, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// InsertPasswordReset records a reset token; the mailer is an external
// collaborator so only the record is kept here.
func (r UserRepository) InsertPasswordReset(userID int64, token string) error {
	_, err := r.DB.Exec(`
		INSERT INTO password_resets (user_id, token, expires_at)
		VALUES (?, ?, DATE_ADD(NOW(), INTERVAL 1 HOUR))`, userID, token)
	return err
}
