package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
)

const createStudentsTable = `
CREATE TABLE IF NOT EXISTS students (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL DEFAULT '',
	father_name TEXT NOT NULL DEFAULT '',
	enroll_number TEXT NOT NULL UNIQUE,
	aadhar_number TEXT NOT NULL DEFAULT '',
	mobile_number TEXT NOT NULL DEFAULT '',
	subscription_charge REAL NOT NULL DEFAULT 0,
	start_date TEXT NOT NULL DEFAULT '',
	photo TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createStudentsTable); err != nil {
		return fmt.Errorf("create students table: %w", err)
	}
	return nil
}

func (r *StudentRepository) Create(ctx context.Context, student *domain.Student) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO students (name, father_name, enroll_number, aadhar_number, mobile_number, subscription_charge, start_date, photo, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		student.Name,
		student.FatherName,
		student.EnrollNumber,
		student.AadharNumber,
		student.MobileNumber,
		student.SubscriptionCharge,
		student.StartDate,
		student.Photo,
		time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("student %q: %w", student.EnrollNumber, repository.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("insert student: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("student last insert id: %w", err)
	}
	student.ID = id
	return id, nil
}

func (r *StudentRepository) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, father_name, enroll_number, aadhar_number, mobile_number, subscription_charge, start_date, photo
FROM students
ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := []domain.Student{}
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.FatherName,
			&s.EnrollNumber,
			&s.AadharNumber,
			&s.MobileNumber,
			&s.SubscriptionCharge,
			&s.StartDate,
			&s.Photo,
		); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

func (r *StudentRepository) DeleteByEnrollNumber(ctx context.Context, enrollNumber string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE enroll_number=?`, enrollNumber)
	if err != nil {
		return false, fmt.Errorf("delete student: %w", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("student delete rows affected: %w", err)
	}
	return aff > 0, nil
}
