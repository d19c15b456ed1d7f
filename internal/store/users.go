package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

func CreateUser(ctx context.Context, db *sql.DB, u domain.User) (domain.User, error) {
	if u.Skills == nil {
		u.Skills = []string{}
	}
	u.CreatedAt = time.Now().UTC()
	skillsB, err := json.Marshal(u.Skills)
	if err != nil {
		return domain.User{}, err
	}
	res, err := db.ExecContext(ctx, `
INSERT INTO users(name, email, skills, created_at)
VALUES(?,?,?,?);`,
		u.Name, u.Email, string(skillsB), formatTime(u.CreatedAt))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.User{}, fmt.Errorf("insert user %q: %w", u.Email, ErrConflict)
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

func GetUser(ctx context.Context, db *sql.DB, id int64) (domain.User, error) {
	var u domain.User
	var skillsJSON, created string
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, skills, created_at FROM users WHERE id = ? LIMIT 1;`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &skillsJSON, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, ErrNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	// A malformed skills column reads as no skills.
	if json.Unmarshal([]byte(skillsJSON), &u.Skills) != nil || u.Skills == nil {
		u.Skills = []string{}
	}
	u.CreatedAt = parseTime(created)
	return u, nil
}

func SetUserSkills(ctx context.Context, db *sql.DB, id int64, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `UPDATE users SET skills = ? WHERE id = ?;`, string(b), id)
	if err != nil {
		return fmt.Errorf("update user skills: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
