package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Tuning holds the analyzer knobs for one exercise. Missing rows mean the
// built-in defaults apply.
type Tuning struct {
	ID               string
	Exercise         string
	Stride           int
	MaxFrames        int
	MinFrames        int
	MinDetectionConf float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TuningRepository provides CRUD operations for tunings.
type TuningRepository struct {
	db *sql.DB
}

// Tunings returns the tuning repository for this store.
func (s *Store) Tunings() *TuningRepository {
	return &TuningRepository{db: s.db}
}

// Get retrieves the tuning for an exercise. Returns ErrNotFound when no
// override has been stored.
func (r *TuningRepository) Get(exercise string) (*Tuning, error) {
	t := &Tuning{}

	err := r.db.QueryRow(
		`SELECT id, exercise, stride, max_frames, min_frames, min_detection_conf, created_at, updated_at
		 FROM tunings WHERE exercise = ?`,
		exercise,
	).Scan(&t.ID, &t.Exercise, &t.Stride, &t.MaxFrames, &t.MinFrames, &t.MinDetectionConf, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// List retrieves all stored tunings.
func (r *TuningRepository) List() ([]*Tuning, error) {
	rows, err := r.db.Query(
		`SELECT id, exercise, stride, max_frames, min_frames, min_detection_conf, created_at, updated_at
		 FROM tunings ORDER BY exercise`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tunings []*Tuning
	for rows.Next() {
		t := &Tuning{}
		err := rows.Scan(&t.ID, &t.Exercise, &t.Stride, &t.MaxFrames, &t.MinFrames, &t.MinDetectionConf, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		tunings = append(tunings, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tunings, nil
}

// Upsert inserts or replaces the tuning for t.Exercise.
func (r *TuningRepository) Upsert(t *Tuning) error {
	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO tunings (id, exercise, stride, max_frames, min_frames, min_detection_conf, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(exercise) DO UPDATE SET
			stride = excluded.stride,
			max_frames = excluded.max_frames,
			min_frames = excluded.min_frames,
			min_detection_conf = excluded.min_detection_conf,
			updated_at = excluded.updated_at`,
		t.ID, t.Exercise, t.Stride, t.MaxFrames, t.MinFrames, t.MinDetectionConf, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

// Delete removes the tuning override for an exercise.
func (r *TuningRepository) Delete(exercise string) error {
	result, err := r.db.Exec(`DELETE FROM tunings WHERE exercise = ?`, exercise)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
