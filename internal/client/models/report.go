package models

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
)

type ReportObservation struct {
	ID          string
	Category    string
	Severity    Severity
	Text        string
	WeatherTags []string
	Attachment  *RemoteAttachmentRef
}

type ReportMeasurement struct {
	ID               string
	Label            string
	GeometryType     string
	Dimensions       map[string]float64
	Derived          Derived
	SketchAttachment *RemoteAttachmentRef
}

// StructuredReport is a committed report. Its attachment fields can only
// hold remote references.
type StructuredReport struct {
	ID           string
	SiteID       string
	CapturedAt   time.Time
	Observations []ReportObservation
	Measurements []ReportMeasurement
	Actions      []Action
	ClientRef    string
	CommittedAt  time.Time
}

// ToStructuredReport maps a fully promoted draft to the committed shape.
// It returns ErrInlineAttachment if any attachment is still inline.
func (d *Draft) ToStructuredReport() (StructuredReport, error) {
	r := StructuredReport{
		SiteID:       d.SiteID,
		CapturedAt:   d.CapturedAt,
		Observations: make([]ReportObservation, 0, len(d.Observations)),
		Measurements: make([]ReportMeasurement, 0, len(d.Measurements)),
		Actions:      append([]Action(nil), d.Actions...),
		ClientRef:    d.LocalID,
	}

	for _, o := range d.Observations {
		ref, err := remoteRef(Slot{Kind: SlotObservation, OwnerID: o.ID}, o.Attachment)
		if err != nil {
			return StructuredReport{}, err
		}
		r.Observations = append(r.Observations, ReportObservation{
			ID:          o.ID,
			Category:    o.Category,
			Severity:    o.Severity,
			Text:        o.Text,
			WeatherTags: o.WeatherTags,
			Attachment:  ref,
		})
	}

	for _, m := range d.Measurements {
		ref, err := remoteRef(Slot{Kind: SlotMeasurement, OwnerID: m.ID}, m.SketchAttachment)
		if err != nil {
			return StructuredReport{}, err
		}
		r.Measurements = append(r.Measurements, ReportMeasurement{
			ID:               m.ID,
			Label:            m.Label,
			GeometryType:     m.GeometryType,
			Dimensions:       m.Dimensions,
			Derived:          m.Derived,
			SketchAttachment: ref,
		})
	}

	return r, nil
}

func remoteRef(slot Slot, a Attachment) (*RemoteAttachmentRef, error) {
	switch v := a.(type) {
	case nil:
		return nil, nil
	case RemoteAttachmentRef:
		return &RemoteAttachmentRef{URL: v.URL}, nil
	case InlineAttachment:
		return nil, fmt.Errorf("%s: %w", slot, common.ErrInlineAttachment)
	default:
		return nil, fmt.Errorf("%s: unsupported attachment %T", slot, a)
	}
}

// AttachmentURLs lists every attachment URL in the report, in field order.
func (r StructuredReport) AttachmentURLs() []string {
	var urls []string
	for _, o := range r.Observations {
		if o.Attachment != nil {
			urls = append(urls, o.Attachment.URL)
		}
	}
	for _, m := range r.Measurements {
		if m.SketchAttachment != nil {
			urls = append(urls, m.SketchAttachment.URL)
		}
	}
	return urls
}
