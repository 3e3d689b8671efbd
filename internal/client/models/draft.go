// Package models defines the field device's data model: report drafts,
// their attachments and the structured report committed to the server.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/google/uuid"
)

// SyncState is the delivery state of a draft.
type SyncState string

const (
	SyncStatePending SyncState = "pending"
	// SyncStateSyncing is only ever reported for drafts locked by a running
	// sync pass. It is not written to disk.
	SyncStateSyncing SyncState = "syncing"
	// SyncStateFailed marks a draft whose inline payload could not be decoded.
	SyncStateFailed SyncState = "failed"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWatch    Severity = "watch"
	SeverityBlocking Severity = "blocking"
)

func ParseSeverity(s string) (Severity, error) {
	switch v := Severity(strings.ToLower(strings.TrimSpace(s))); v {
	case SeverityInfo, SeverityWatch, SeverityBlocking:
		return v, nil
	case "":
		return SeverityInfo, nil
	default:
		return "", fmt.Errorf("%w: unknown severity %q", common.ErrInvalidDraft, s)
	}
}

type Observation struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Severity    Severity   `json:"severity"`
	Text        string     `json:"text"`
	WeatherTags []string   `json:"weatherTags,omitempty"`
	Attachment  Attachment `json:"-"`
}

// Derived quantities come from the site calculators and are stored as-is.
type Derived struct {
	Surface       float64 `json:"surface"`
	CoatingVolume float64 `json:"coatingVolume"`
	AbrasiveMass  float64 `json:"abrasiveMass"`
}

type Measurement struct {
	ID               string             `json:"id"`
	Label            string             `json:"label"`
	GeometryType     string             `json:"geometryType"`
	Dimensions       map[string]float64 `json:"dimensions,omitempty"`
	Derived          Derived            `json:"derived"`
	SketchAttachment Attachment         `json:"-"`
}

// Action is a corrective action agreed during the visit.
type Action struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// Draft is a field report that has not been committed to the server yet.
type Draft struct {
	LocalID      string
	SiteID       string
	CapturedAt   time.Time
	Observations []Observation
	Measurements []Measurement
	Actions      []Action

	SyncState SyncState
	Attempts  int
	LastError string
	CreatedAt time.Time
}

// Normalize fills in missing item ids, the default severity and converts
// CapturedAt to UTC. A zero CapturedAt becomes now.
func (d *Draft) Normalize(now time.Time) {
	if d.CapturedAt.IsZero() {
		d.CapturedAt = now
	}
	d.CapturedAt = d.CapturedAt.UTC()
	for i := range d.Observations {
		if d.Observations[i].ID == "" {
			d.Observations[i].ID = uuid.NewString()
		}
		if d.Observations[i].Severity == "" {
			d.Observations[i].Severity = SeverityInfo
		}
	}
	for i := range d.Measurements {
		if d.Measurements[i].ID == "" {
			d.Measurements[i].ID = uuid.NewString()
		}
	}
	for i := range d.Actions {
		if d.Actions[i].ID == "" {
			d.Actions[i].ID = uuid.NewString()
		}
	}
}

// Validate checks the user-supplied part of a draft.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.SiteID) == "" {
		return fmt.Errorf("%w: site id is required", common.ErrInvalidDraft)
	}
	if d.CapturedAt.IsZero() {
		return fmt.Errorf("%w: capture time is required", common.ErrInvalidDraft)
	}
	if len(d.Observations)+len(d.Measurements)+len(d.Actions) == 0 {
		return fmt.Errorf("%w: report is empty", common.ErrInvalidDraft)
	}

	for _, o := range d.Observations {
		if _, err := ParseSeverity(string(o.Severity)); err != nil {
			return err
		}
	}
	if err := d.ValidateSlotIDs(); err != nil {
		return err
	}
	for slot, a := range d.Attachments() {
		if in, ok := a.(InlineAttachment); ok && strings.TrimSpace(in.Data) == "" {
			return fmt.Errorf("%w: %s has an empty payload", common.ErrInvalidDraft, slot)
		}
		if ref, ok := a.(RemoteAttachmentRef); ok && ref.URL == "" {
			return fmt.Errorf("%w: %s has an empty url", common.ErrInvalidDraft, slot)
		}
	}
	return nil
}

// ValidateSlotIDs checks that every observation and measurement carries a
// non-empty id that is unique within its kind. Attachment slots are keyed by
// these ids.
func (d *Draft) ValidateSlotIDs() error {
	seen := map[string]struct{}{}
	for _, o := range d.Observations {
		if err := uniqueID(seen, "observation", o.ID); err != nil {
			return err
		}
	}
	for _, m := range d.Measurements {
		if err := uniqueID(seen, "measurement", m.ID); err != nil {
			return err
		}
	}
	return nil
}

func uniqueID(seen map[string]struct{}, kind, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s without id", common.ErrInvalidDraft, kind)
	}
	key := kind + ":" + id
	if _, dup := seen[key]; dup {
		return fmt.Errorf("%w: duplicate %s id %q", common.ErrInvalidDraft, kind, id)
	}
	seen[key] = struct{}{}
	return nil
}
