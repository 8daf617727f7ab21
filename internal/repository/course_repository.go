package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"registros/internal/entity"
)

// ErrMissingFields is returned by Update when a required field is empty.
var ErrMissingFields = errors.New("all fields are required")

// InsertResult tells whether Insert stored a new row or hit an existing code.
type InsertResult int

const (
	Inserted InsertResult = iota
	Skipped
)

type CourseRepository struct {
	db *sql.DB
}

func NewCourseRepository(db *sql.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns every course in the table's natural return order.
func (r *CourseRepository) List() ([]entity.Course, error) {
	rows, err := r.db.Query(`
		SELECT codigod, nomed, cargad, professor FROM college_courses
	`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []entity.Course
	for rows.Next() {
		var c entity.Course
		if err := rows.Scan(&c.Code, &c.Name, &c.Workload, &c.Professor); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	return courses, nil
}

// GetByCode returns (nil, nil) when no course has the given code.
func (r *CourseRepository) GetByCode(code int) (*entity.Course, error) {
	var c entity.Course
	err := r.db.QueryRow(`
		SELECT codigod, nomed, cargad, professor FROM college_courses WHERE codigod = $1
	`, code).Scan(&c.Code, &c.Name, &c.Workload, &c.Professor)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching course %d: %w", code, err)
	}

	return &c, nil
}

// Insert stores a new course, upper-casing name and professor. A code that
// already exists is left untouched and reported as Skipped rather than an
// error.
func (r *CourseRepository) Insert(code int, name string, workload string, professor string) (InsertResult, error) {
	res, err := r.db.Exec(`
		INSERT INTO college_courses (codigod, nomed, cargad, professor)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (codigod) DO NOTHING
	`, code, strings.ToUpper(name), workload, strings.ToUpper(professor))
	if err != nil {
		return Skipped, fmt.Errorf("inserting course %d: %w", code, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return Skipped, fmt.Errorf("inserting course %d: %w", code, err)
	}
	if affected == 0 {
		return Skipped, nil
	}

	return Inserted, nil
}

// Update rewrites the three mutable fields of the course with the given
// code. Empty fields are rejected with ErrMissingFields before the write.
// A code that matches no row returns (false, nil).
func (r *CourseRepository) Update(code int, name string, workload string, professor string) (bool, error) {
	if name == "" || workload == "" || professor == "" {
		return false, ErrMissingFields
	}

	res, err := r.db.Exec(`
		UPDATE college_courses SET nomed = $1, cargad = $2, professor = $3 WHERE codigod = $4
	`, strings.ToUpper(name), workload, strings.ToUpper(professor), code)
	if err != nil {
		return false, fmt.Errorf("updating course %d: %w", code, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("updating course %d: %w", code, err)
	}

	return affected > 0, nil
}

// Delete removes the course with the given code. Deleting a code that does
// not exist is a no-op.
func (r *CourseRepository) Delete(code int) error {
	if _, err := r.db.Exec(`
		DELETE FROM college_courses WHERE codigod = $1
	`, code); err != nil {
		return fmt.Errorf("deleting course %d: %w", code, err)
	}
	return nil
}
