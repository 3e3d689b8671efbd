// Package models defines the record server's persisted types.
package models

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/fieldsync/internal/proto"
)

// Report is a committed field report. Body is stored as a JSON document.
type Report struct {
	ID          string
	SiteID      string
	CapturedAt  time.Time
	ClientRef   string
	DeviceID    string
	CommittedAt time.Time
	Body        ReportBody
}

// ReportBody holds the report items exactly as received.
type ReportBody struct {
	Observations []Observation `json:"observations"`
	Measurements []Measurement `json:"measurements"`
	Actions      []Action      `json:"actions"`
}

type AttachmentRef struct {
	URL string `json:"url"`
}

type Observation struct {
	ID          string         `json:"id"`
	Category    string         `json:"category"`
	Severity    string         `json:"severity"`
	Text        string         `json:"text"`
	WeatherTags []string       `json:"weatherTags,omitempty"`
	Attachment  *AttachmentRef `json:"attachment,omitempty"`
}

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
	SketchAttachment *AttachmentRef     `json:"sketchAttachment,omitempty"`
}

type Action struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

func timeOf(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func timestampOf(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func refFromProto(r *pb.AttachmentRef) *AttachmentRef {
	if r == nil {
		return nil
	}
	return &AttachmentRef{URL: r.GetUrl()}
}

func (r *AttachmentRef) toProto() *pb.AttachmentRef {
	if r == nil {
		return nil
	}
	return &pb.AttachmentRef{Url: r.URL}
}

// FromProto copies a wire report. A nil report yields an empty one, which
// fails validation.
func FromProto(r *pb.Report) Report {
	out := Report{
		ID:         r.GetId(),
		SiteID:     r.GetSiteId(),
		CapturedAt: timeOf(r.GetCapturedAt()),
		ClientRef:  r.GetClientRef(),
	}
	for _, o := range r.GetObservations() {
		out.Body.Observations = append(out.Body.Observations, Observation{
			ID:          o.GetId(),
			Category:    o.GetCategory(),
			Severity:    o.GetSeverity(),
			Text:        o.GetText(),
			WeatherTags: o.GetWeatherTags(),
			Attachment:  refFromProto(o.GetAttachment()),
		})
	}
	for _, m := range r.GetMeasurements() {
		d := m.GetDerived()
		out.Body.Measurements = append(out.Body.Measurements, Measurement{
			ID:           m.GetId(),
			Label:        m.GetLabel(),
			GeometryType: m.GetGeometryType(),
			Dimensions:   m.GetDimensions(),
			Derived: Derived{
				Surface:       d.GetSurface(),
				CoatingVolume: d.GetCoatingVolume(),
				AbrasiveMass:  d.GetAbrasiveMass(),
			},
			SketchAttachment: refFromProto(m.GetSketchAttachment()),
		})
	}
	for _, a := range r.GetActions() {
		act := Action{ID: a.GetId(), Description: a.GetDescription(), Assignee: a.GetAssignee()}
		if a.GetDueDate() != nil {
			due := a.GetDueDate().AsTime()
			act.DueDate = &due
		}
		out.Body.Actions = append(out.Body.Actions, act)
	}
	return out
}

func (r Report) ToProto() *pb.Report {
	out := &pb.Report{
		Id:           r.ID,
		SiteId:       r.SiteID,
		CapturedAt:   timestampOf(r.CapturedAt),
		Observations: make([]*pb.Observation, 0, len(r.Body.Observations)),
		Measurements: make([]*pb.Measurement, 0, len(r.Body.Measurements)),
		Actions:      make([]*pb.Action, 0, len(r.Body.Actions)),
		ClientRef:    r.ClientRef,
		CommittedAt:  timestampOf(r.CommittedAt),
	}
	for _, o := range r.Body.Observations {
		out.Observations = append(out.Observations, &pb.Observation{
			Id:          o.ID,
			Category:    o.Category,
			Severity:    o.Severity,
			Text:        o.Text,
			WeatherTags: o.WeatherTags,
			Attachment:  o.Attachment.toProto(),
		})
	}
	for _, m := range r.Body.Measurements {
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
			SketchAttachment: m.SketchAttachment.toProto(),
		})
	}
	for _, a := range r.Body.Actions {
		act := &pb.Action{Id: a.ID, Description: a.Description, Assignee: a.Assignee}
		if a.DueDate != nil {
			act.DueDate = timestamppb.New(*a.DueDate)
		}
		out.Actions = append(out.Actions, act)
	}
	return out
}
