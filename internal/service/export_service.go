package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"aidbridge/internal/config"
	"aidbridge/internal/domain"
	"aidbridge/internal/store"
)

var ErrStorageUnavailable = errors.New("object storage not configured")

type ExportResult struct {
	Object     string    `json:"object"`
	URL        string    `json:"url"`
	ExportedAt time.Time `json:"exported_at"`
}

type snapshot struct {
	ExportedAt time.Time             `json:"exported_at"`
	ExportedBy uuid.UUID             `json:"exported_by"`
	Users      []domain.User         `json:"users"`
	Donations  []domain.Item         `json:"donations"`
	Requests   []domain.Item         `json:"requests"`
	Feed       []domain.Notification `json:"notifications"`
}

type ExportService interface {
	ExportSnapshot(ctx context.Context, requestedBy uuid.UUID) (*ExportResult, error)
}

type exportService struct {
	store       *store.Store
	minioClient *minio.Client
	cfg         *config.Config
}

func NewExportService(st *store.Store, minioClient *minio.Client, cfg *config.Config) ExportService {
	return &exportService{
		store:       st,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// ExportSnapshot uploads a JSON dump of the current store state to object
// storage and returns where it landed. Password hashes never leave the
// store: domain.User marshals without them.
func (s *exportService) ExportSnapshot(ctx context.Context, requestedBy uuid.UUID) (*ExportResult, error) {
	if s.minioClient == nil {
		return nil, ErrStorageUnavailable
	}

	now := time.Now().UTC()
	snap := snapshot{
		ExportedAt: now,
		ExportedBy: requestedBy,
		Users:      s.store.Users(),
		Donations:  s.store.Donations(),
		Requests:   s.store.Requests(),
		Feed:       s.store.Notifications(),
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("exports/%s/%s.json", now.Format("2006/01"), uuid.New().String())

	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload export: %w", err)
	}

	return &ExportResult{
		Object:     objectName,
		URL:        s.getPublicURL(objectName),
		ExportedAt: now,
	}, nil
}

func (s *exportService) getPublicURL(objectName string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(objectName))
}
