package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"records-backend/internal/domain"
	"records-backend/internal/storage"
)

// ErrStorageNotConfigured is returned when exports are requested without a bucket.
var ErrStorageNotConfigured = errors.New("storage service not configured")

// Snapshot is the document written by an export.
type Snapshot struct {
	GeneratedAt    time.Time          `json:"generatedAt"`
	Students       []domain.Student   `json:"students"`
	Candidates     []domain.Candidate `json:"candidates"`
	FacilityCharge float64            `json:"facilityCharge"`
}

// ExportService writes record snapshots to object storage.
type ExportService interface {
	Export(ctx context.Context) (string, error)
	ListExports(ctx context.Context) ([]storage.ObjectInfo, error)
}

type exportService struct {
	records   RecordService
	storage   storage.Service
	bucket    string
	keyPrefix string
	now       func() time.Time
}

// NewExportService accepts a nil store; every call then fails with ErrStorageNotConfigured.
func NewExportService(records RecordService, store storage.Service, bucket, keyPrefix string) ExportService {
	return &exportService{
		records:   records,
		storage:   store,
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		now:       time.Now,
	}
}

func (s *exportService) configured() bool {
	return s.storage != nil && s.bucket != ""
}

func (s *exportService) Export(ctx context.Context) (string, error) {
	if !s.configured() {
		return "", ErrStorageNotConfigured
	}

	students, err := s.records.ListStudents(ctx)
	if err != nil {
		return "", fmt.Errorf("list students: %w", err)
	}
	candidates, err := s.records.ListCandidates(ctx)
	if err != nil {
		return "", fmt.Errorf("list candidates: %w", err)
	}
	charge, err := s.records.FacilityCharge(ctx)
	if err != nil {
		return "", fmt.Errorf("facility charge: %w", err)
	}

	generatedAt := s.now().UTC()
	body, err := json.Marshal(Snapshot{
		GeneratedAt:    generatedAt,
		Students:       students,
		Candidates:     candidates,
		FacilityCharge: charge,
	})
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("records-%s-%s.json", generatedAt.Format("20060102T150405Z"), uuid.NewString())
	key := name
	if s.keyPrefix != "" {
		key = path.Join(s.keyPrefix, name)
	}

	return s.storage.PutObject(ctx, storage.PutOptions{
		Bucket:      s.bucket,
		Key:         key,
		ContentType: "application/json",
	}, bytes.NewReader(body))
}

func (s *exportService) ListExports(ctx context.Context) ([]storage.ObjectInfo, error) {
	if !s.configured() {
		return nil, ErrStorageNotConfigured
	}
	prefix := ""
	if s.keyPrefix != "" {
		prefix = s.keyPrefix + "/"
	}
	return s.storage.ListObjects(ctx, s.bucket, prefix)
}
