package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"jobtrack-engine/internal/domain"
)

// InsertRejection records a rejection for one of the user's jobs and marks
// the job rejected.
func InsertRejection(ctx context.Context, db *sql.DB, r domain.Rejection) (domain.Rejection, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Rejection{}, err
	}
	defer func() { _ = tx.Rollback() }()

	r.CreatedAt = time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
UPDATE jobs SET status = ?, updated_at = ? WHERE id = ? AND user_id = ?;`,
		string(domain.StatusRejected), formatTime(r.CreatedAt), r.JobID, r.UserID)
	if err != nil {
		return domain.Rejection{}, fmt.Errorf("mark job rejected: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Rejection{}, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO rejections(user_id, job_id, notes, created_at)
VALUES(?,?,?,?)
ON CONFLICT(job_id) DO UPDATE SET notes = excluded.notes;`,
		r.UserID, r.JobID, r.Notes, formatTime(r.CreatedAt)); err != nil {
		return domain.Rejection{}, fmt.Errorf("insert rejection: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.Rejection{}, err
	}

	if err := db.QueryRowContext(ctx, `SELECT id FROM rejections WHERE job_id = ?;`, r.JobID).Scan(&r.ID); err != nil {
		return domain.Rejection{}, fmt.Errorf("read rejection: %w", err)
	}
	return r, nil
}

// ListRejections returns the user's rejections with their job details,
// newest first.
func ListRejections(ctx context.Context, db *sql.DB, userID int64) ([]domain.Rejection, error) {
	rows, err := db.QueryContext(ctx, `
SELECT r.id, r.user_id, r.job_id, r.notes, r.created_at,
       j.id, j.user_id, j.company, j.title, j.description, j.industry, j.location,
       j.work_location, j.status, j.post_url, j.created_at, j.updated_at
FROM rejections r
JOIN jobs j ON j.id = r.job_id
WHERE r.user_id = ?
ORDER BY r.created_at DESC, r.id DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("list rejections: %w", err)
	}
	defer rows.Close()

	out := []domain.Rejection{}
	for rows.Next() {
		var r domain.Rejection
		var j domain.Job
		var created, status, jCreated, jUpdated string
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.JobID, &r.Notes, &created,
			&j.ID, &j.UserID, &j.Company, &j.Title, &j.Description, &j.Industry, &j.Location,
			&j.WorkLocation, &status, &j.PostURL, &jCreated, &jUpdated,
		); err != nil {
			return nil, err
		}
		r.CreatedAt = parseTime(created)
		j.Status = domain.JobStatus(status)
		j.CreatedAt = parseTime(jCreated)
		j.UpdatedAt = parseTime(jUpdated)
		r.Job = &j
		out = append(out, r)
	}
	return out, rows.Err()
}

func DeleteRejection(ctx context.Context, db *sql.DB, userID, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM rejections WHERE id = ? AND user_id = ?;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete rejection %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
