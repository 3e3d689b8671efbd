package client

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
)

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// fromTimestamp keeps an absent timestamp as the zero time rather than the
// Unix epoch AsTime would give.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func toWireRef(r *models.RemoteAttachmentRef) *pb.AttachmentRef {
	if r == nil {
		return nil
	}
	return &pb.AttachmentRef{Url: r.URL}
}

func fromWireRef(r *pb.AttachmentRef) *models.RemoteAttachmentRef {
	if r == nil {
		return nil
	}
	return &models.RemoteAttachmentRef{URL: r.GetUrl()}
}

func toWire(r models.StructuredReport) *pb.Report {
	out := &pb.Report{
		Id:           r.ID,
		SiteId:       r.SiteID,
		CapturedAt:   toTimestamp(r.CapturedAt),
		Observations: make([]*pb.Observation, 0, len(r.Observations)),
		Measurements: make([]*pb.Measurement, 0, len(r.Measurements)),
		Actions:      make([]*pb.Action, 0, len(r.Actions)),
		ClientRef:    r.ClientRef,
	}
	for _, o := range r.Observations {
		out.Observations = append(out.Observations, &pb.Observation{
			Id:          o.ID,
			Category:    o.Category,
			Severity:    string(o.Severity),
			Text:        o.Text,
			WeatherTags: o.WeatherTags,
			Attachment:  toWireRef(o.Attachment),
		})
	}
	for _, m := range r.Measurements {
		out.Measurements = append(out.Measurements, &pb.Measurement{
			Id:           m.ID,
			Label:        m.Label,
			GeometryType: m.GeometryType,
			Dimensions:   m.Dimensions,
			Derived: &pb.Derived{
				Surface:       m.Derived.Surface,
				CoatingVolume: m.Derived.CoatingVolume,
				AbrasiveMass:  m.Derived.AbrasiveMass,
			},
			SketchAttachment: toWireRef(m.SketchAttachment),
		})
	}
	for _, a := range r.Actions {
		act := &pb.Action{Id: a.ID, Description: a.Description, Assignee: a.Assignee}
		if a.DueDate != nil {
			act.DueDate = timestamppb.New(*a.DueDate)
		}
		out.Actions = append(out.Actions, act)
	}
	return out
}

func fromWire(r *pb.Report) models.StructuredReport {
	out := models.StructuredReport{
		ID:          r.GetId(),
		SiteID:      r.GetSiteId(),
		CapturedAt:  fromTimestamp(r.GetCapturedAt()),
		ClientRef:   r.GetClientRef(),
		CommittedAt: fromTimestamp(r.GetCommittedAt()),
	}
	for _, o := range r.GetObservations() {
		out.Observations = append(out.Observations, models.ReportObservation{
			ID:          o.GetId(),
			Category:    o.GetCategory(),
			Severity:    models.Severity(o.GetSeverity()),
			Text:        o.GetText(),
			WeatherTags: o.GetWeatherTags(),
			Attachment:  fromWireRef(o.GetAttachment()),
		})
	}
	for _, m := range r.GetMeasurements() {
		d := m.GetDerived()
		out.Measurements = append(out.Measurements, models.ReportMeasurement{
			ID:           m.GetId(),
			Label:        m.GetLabel(),
			GeometryType: m.GetGeometryType(),
			Dimensions:   m.GetDimensions(),
			Derived: models.Derived{
				Surface:       d.GetSurface(),
				CoatingVolume: d.GetCoatingVolume(),
				AbrasiveMass:  d.GetAbrasiveMass(),
			},
			SketchAttachment: fromWireRef(m.GetSketchAttachment()),
		})
	}
	for _, a := range r.GetActions() {
		act := models.Action{ID: a.GetId(), Description: a.GetDescription(), Assignee: a.GetAssignee()}
		if a.GetDueDate() != nil {
			due := a.GetDueDate().AsTime()
			act.DueDate = &due
		}
		out.Actions = append(out.Actions, act)
	}
	return out
}
