// Package activity records what the student did (submissions, completed
// quizzes, status toggles) as an append-only log in the database.
package activity

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	TypeAssignmentSubmitted = "AssignmentSubmitted"
	TypeAssignmentToggled   = "AssignmentToggled"
	TypeQuizCompleted       = "QuizCompleted"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type Log struct{ db *sql.DB }

func NewLog(db *sql.DB) *Log { return &Log{db: db} }

// Append writes one event. Data is marshaled to the JSON payload column;
// a nil data writes "{}".
func (l *Log) Append(ctx context.Context, typ, key string, data any) error {
	payload := []byte("{}")
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return err
		}
		payload = b
	}
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO activity_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(payload), time.Now().Unix())
	return err
}

// Recent returns the newest n events.
func (l *Log) Recent(ctx context.Context, n int) ([]Event, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT "offset", typ, key, data, created_at FROM activity_log ORDER BY "offset" DESC LIMIT $1`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
