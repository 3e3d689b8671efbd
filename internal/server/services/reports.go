package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
	"github.com/dmitrijs2005/fieldsync/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewReportService(db *sql.DB, repomanager repomanager.RepositoryManager) *ReportService {
	return &ReportService{
		db:          db,
		repomanager: repomanager,
		newID:       uuid.NewString,
	}
}

// Commit stores r under a fresh id. The device id comes from call metadata
// and is kept for diagnostics only; commits are not deduplicated.
func (s *ReportService) Commit(ctx context.Context, deviceID string, rep models.Report) (*models.Report, error) {
	if err := validateReport(rep); err != nil {
		return nil, err
	}

	rep.ID = s.newID()
	rep.DeviceID = deviceID

	created, err := s.repomanager.Reports(s.db).Create(ctx, &rep)
	if err != nil {
		return nil, fmt.Errorf("error creating report: %w", err)
	}
	return created, nil
}

func (s *ReportService) List(ctx context.Context, siteID string) ([]*models.Report, error) {
	if strings.TrimSpace(siteID) == "" {
		return nil, fmt.Errorf("%w: site id is required", common.ErrInvalidDraft)
	}
	list, err := s.repomanager.Reports(s.db).ListBySite(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("error listing reports: %w", err)
	}
	return list, nil
}

func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("report %q: %w", id, common.ErrNotFound)
	}
	return s.repomanager.Reports(s.db).Get(ctx, id)
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	// ids are uuids; anything else cannot exist
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("report %q: %w", id, common.ErrNotFound)
	}
	return s.repomanager.Reports(s.db).Delete(ctx, id)
}

func validateReport(r models.Report) error {
	if strings.TrimSpace(r.SiteID) == "" {
		return fmt.Errorf("%w: site id is required", common.ErrInvalidDraft)
	}
	if r.CapturedAt.IsZero() {
		return fmt.Errorf("%w: capture time is required", common.ErrInvalidDraft)
	}
	for _, o := range r.Body.Observations {
		if err := checkRef(o.Attachment); err != nil {
			return fmt.Errorf("observation %s: %w", o.ID, err)
		}
	}
	for _, m := range r.Body.Measurements {
		if err := checkRef(m.SketchAttachment); err != nil {
			return fmt.Errorf("measurement %s: %w", m.ID, err)
		}
	}
	return nil
}

// checkRef accepts only absolute http(s) URLs. Inline payloads, including
// data: URLs, never reach storage.
func checkRef(ref *models.AttachmentRef) error {
	if ref == nil {
		return nil
	}
	u, err := url.Parse(ref.URL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %w", common.ErrInvalidDraft, common.ErrInlineAttachment)
	}
	return nil
}
