package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"records-backend/internal/domain"
	"records-backend/internal/repository"
)

var (
	// ErrInvalidRecord wraps validation failures of incoming records.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrDuplicateRecord is returned when the enroll number is already taken.
	ErrDuplicateRecord = errors.New("record already exists")
)

// RecordService coordinates student, candidate and facility charge records.
type RecordService interface {
	ListStudents(ctx context.Context) ([]domain.Student, error)
	CreateStudent(ctx context.Context, student domain.Student) (*domain.Student, error)
	DeleteStudent(ctx context.Context, enrollNumber string) error

	ListCandidates(ctx context.Context) ([]domain.Candidate, error)
	CreateCandidate(ctx context.Context, candidate domain.Candidate) (*domain.Candidate, error)
	DeleteCandidate(ctx context.Context, enrollNumber string) error

	FacilityCharge(ctx context.Context) (float64, error)
	SetFacilityCharge(ctx context.Context, charge float64) (float64, error)
}

type recordService struct {
	students   repository.StudentRepository
	candidates repository.CandidateRepository
	charges    repository.FacilityChargeRepository
}

func NewRecordService(students repository.StudentRepository, candidates repository.CandidateRepository, charges repository.FacilityChargeRepository) RecordService {
	return &recordService{
		students:   students,
		candidates: candidates,
		charges:    charges,
	}
}

func (s *recordService) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return s.students.List(ctx)
}

func (s *recordService) CreateStudent(ctx context.Context, student domain.Student) (*domain.Student, error) {
	student.ID = 0
	student.EnrollNumber = strings.TrimSpace(student.EnrollNumber)
	if err := student.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if _, err := s.students.Create(ctx, &student); err != nil {
		return nil, mapCreateErr(err)
	}
	return &student, nil
}

// DeleteStudent succeeds whether or not a student matched.
func (s *recordService) DeleteStudent(ctx context.Context, enrollNumber string) error {
	_, err := s.students.DeleteByEnrollNumber(ctx, enrollNumber)
	return err
}

func (s *recordService) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return s.candidates.List(ctx)
}

func (s *recordService) CreateCandidate(ctx context.Context, candidate domain.Candidate) (*domain.Candidate, error) {
	candidate.ID = 0
	candidate.EnrollNumber = strings.TrimSpace(candidate.EnrollNumber)
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if _, err := s.candidates.Create(ctx, &candidate); err != nil {
		return nil, mapCreateErr(err)
	}
	return &candidate, nil
}

func (s *recordService) DeleteCandidate(ctx context.Context, enrollNumber string) error {
	_, err := s.candidates.DeleteByEnrollNumber(ctx, enrollNumber)
	return err
}

// FacilityCharge returns 0 until a charge has been set.
func (s *recordService) FacilityCharge(ctx context.Context) (float64, error) {
	fc, err := s.charges.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return fc.Charge, nil
}

func (s *recordService) SetFacilityCharge(ctx context.Context, charge float64) (float64, error) {
	if err := (domain.FacilityCharge{Charge: charge}).Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	fc, err := s.charges.Upsert(ctx, charge)
	if err != nil {
		return 0, err
	}
	return fc.Charge, nil
}

func mapCreateErr(err error) error {
	if errors.Is(err, repository.ErrAlreadyExists) {
		return fmt.Errorf("%w: %v", ErrDuplicateRecord, err)
	}
	return err
}
