package domain

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rejection records that an application was turned down. Job is filled in
// when listed.
type Rejection struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	JobID     int64     `json:"jobId"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	Job       *Job      `json:"job,omitempty"`
}
