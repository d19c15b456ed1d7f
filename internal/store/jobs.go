package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobtrack-engine/internal/domain"
)

type ListJobsOpts struct {
	UserID int64
	Status domain.JobStatus // empty = all
	Sort   string           // updated | created | company | title
	Limit  int // <= 0 = all
}

const jobColumns = `id, user_id, company, title, description, industry, location, work_location, status, post_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (domain.Job, error) {
	var j domain.Job
	var status, created, updated string
	if err := r.Scan(
		&j.ID,
		&j.UserID,
		&j.Company,
		&j.Title,
		&j.Description,
		&j.Industry,
		&j.Location,
		&j.WorkLocation,
		&status,
		&j.PostURL,
		&created,
		&updated,
	); err != nil {
		return domain.Job{}, err
	}
	j.Status = domain.JobStatus(status)
	j.CreatedAt = parseTime(created)
	j.UpdatedAt = parseTime(updated)
	return j, nil
}

func InsertJob(ctx context.Context, db *sql.DB, j domain.Job) (domain.Job, error) {
	now := time.Now().UTC()
	j.CreatedAt, j.UpdatedAt = now, now
	if j.Status == "" {
		j.Status = domain.StatusSaved
	}
	j.WorkLocation = domain.NormalizeWorkLocation(j.WorkLocation)

	res, err := db.ExecContext(ctx, `
INSERT INTO jobs(user_id, company, title, description, industry, location, work_location, status, post_url, created_at, updated_at)
VALUES(?,?,?,?,?,?,?,?,?,?,?);`,
		j.UserID, j.Company, j.Title, j.Description, j.Industry, j.Location, j.WorkLocation,
		string(j.Status), j.PostURL, formatTime(j.CreatedAt), formatTime(j.UpdatedAt))
	if err != nil {
		return domain.Job{}, fmt.Errorf("insert job: %w", err)
	}
	j.ID, _ = res.LastInsertId()
	return j, nil
}

func GetJob(ctx context.Context, db *sql.DB, userID, id int64) (domain.Job, error) {
	row := db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ? AND user_id = ?;`, id, userID)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Job{}, ErrNotFound
	}
	if err != nil {
		return domain.Job{}, fmt.Errorf("get job %d: %w", id, err)
	}
	return j, nil
}

func ListJobs(ctx context.Context, db *sql.DB, opts ListJobsOpts) ([]domain.Job, error) {
	// whitelist sort columns (prevents SQL injection)
	order := map[string]string{
		"updated": "updated_at DESC",
		"created": "created_at DESC",
		"company": "company COLLATE NOCASE ASC",
		"title":   "title COLLATE NOCASE ASC",
	}[opts.Sort]
	if order == "" {
		order = "updated_at DESC"
	}
	// sqlite reads a negative LIMIT as no limit
	if opts.Limit <= 0 {
		opts.Limit = -1
	}

	where := []string{"user_id = ?"}
	args := []any{opts.UserID}
	if opts.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(opts.Status))
	}
	args = append(args, opts.Limit)

	query := fmt.Sprintf(`
SELECT %s
FROM jobs
WHERE %s
ORDER BY %s, id ASC
LIMIT ?;
`, jobColumns, strings.Join(where, " AND "), order)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// JobPatch holds the fields UpdateJob may change; nil means unchanged.
type JobPatch struct {
	Status       *domain.JobStatus
	Description  *string
	Location     *string
	WorkLocation *string
	PostURL      *string
}

func UpdateJob(ctx context.Context, db *sql.DB, userID, id int64, p JobPatch) (domain.Job, error) {
	var sets []string
	var args []any
	if p.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*p.Status))
	}
	if p.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *p.Location)
	}
	if p.WorkLocation != nil {
		sets = append(sets, "work_location = ?")
		args = append(args, domain.NormalizeWorkLocation(*p.WorkLocation))
	}
	if p.PostURL != nil {
		sets = append(sets, "post_url = ?")
		args = append(args, *p.PostURL)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(time.Now()), id, userID)

	res, err := db.ExecContext(ctx,
		`UPDATE jobs SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?;`, args...)
	if err != nil {
		return domain.Job{}, fmt.Errorf("update job %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Job{}, ErrNotFound
	}
	return GetJob(ctx, db, userID, id)
}

func DeleteJob(ctx context.Context, db *sql.DB, userID, id int64) error {
	res, err := db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ? AND user_id = ?;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
