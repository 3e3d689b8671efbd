package models

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDraft() *Draft {
	return &Draft{
		LocalID:    "local-1",
		SiteID:     "site123",
		CapturedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Observations: []Observation{
			{ID: "o1", Severity: SeverityWatch, Text: "flaking paint", Attachment: NewInlineAttachment("image/png", []byte("png-bytes"))},
			{ID: "o2", Severity: SeverityInfo, Text: "no photo"},
		},
		Measurements: []Measurement{
			{ID: "m1", Label: "tank wall", Derived: Derived{Surface: 50, CoatingVolume: 12.5}, SketchAttachment: RemoteAttachmentRef{URL: "https://cdn/sketches/x.png"}},
		},
		Actions: []Action{{ID: "a1", Description: "re-blast area"}},
	}
}

func TestInlineAttachment_Decode(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0, 1, 2}
	b64 := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name     string
		in       InlineAttachment
		wantMime string
		wantErr  bool
	}{
		{name: "plain base64", in: InlineAttachment{MimeType: "image/png", Data: b64}, wantMime: "image/png"},
		{name: "data url supplies mime", in: InlineAttachment{Data: "data:image/jpeg;base64," + b64}, wantMime: "image/jpeg"},
		{name: "declared mime wins", in: InlineAttachment{MimeType: "image/png", Data: "data:image/jpeg;base64," + b64}, wantMime: "image/png"},
		{name: "unpadded base64", in: InlineAttachment{Data: base64.RawStdEncoding.EncodeToString(raw)}, wantMime: ""},
		{name: "data url without comma", in: InlineAttachment{Data: "data:image/png;base64"}, wantErr: true},
		{name: "data url not base64", in: InlineAttachment{Data: "data:text/plain,hello"}, wantErr: true},
		{name: "garbage", in: InlineAttachment{Data: "!!!"}, wantErr: true},
		{name: "empty", in: InlineAttachment{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, mime, err := tt.in.Decode()
			if tt.wantErr {
				require.ErrorIs(t, err, common.ErrInvalidAttachment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, raw, got)
			assert.Equal(t, tt.wantMime, mime)
		})
	}
}

func TestSlot_ParseAndString(t *testing.T) {
	s, err := ParseSlot("measurement:m-9")
	require.NoError(t, err)
	assert.Equal(t, Slot{Kind: SlotMeasurement, OwnerID: "m-9"}, s)
	assert.Equal(t, "measurement:m-9", s.String())
	assert.Equal(t, "sketches", s.ObjectPrefix())
	assert.Equal(t, "notes", Slot{Kind: SlotObservation}.ObjectPrefix())

	for _, bad := range []string{"", "observation", "observation:", "photo:1"} {
		_, err := ParseSlot(bad)
		assert.Error(t, err, bad)
	}
}

func TestDraft_AttachmentsOrderAndSet(t *testing.T) {
	d := sampleDraft()

	var slots []string
	for slot := range d.Attachments() {
		slots = append(slots, slot.String())
	}
	assert.Equal(t, []string{"observation:o1", "measurement:m1"}, slots)
	assert.Equal(t, 1, d.InlineCount())

	require.NoError(t, d.SetAttachment(Slot{Kind: SlotObservation, OwnerID: "o1"}, RemoteAttachmentRef{URL: "u"}))
	assert.Equal(t, 0, d.InlineCount())

	err := d.SetAttachment(Slot{Kind: SlotMeasurement, OwnerID: "nope"}, RemoteAttachmentRef{URL: "u"})
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDraft_ToStructuredReport(t *testing.T) {
	d := sampleDraft()

	_, err := d.ToStructuredReport()
	require.ErrorIs(t, err, common.ErrInlineAttachment)
	assert.Contains(t, err.Error(), "observation:o1")

	require.NoError(t, d.SetAttachment(Slot{Kind: SlotObservation, OwnerID: "o1"}, RemoteAttachmentRef{URL: "https://cdn/notes/a.png"}))

	r, err := d.ToStructuredReport()
	require.NoError(t, err)
	assert.Equal(t, "site123", r.SiteID)
	assert.Equal(t, "local-1", r.ClientRef)
	require.Len(t, r.Observations, 2)
	assert.Equal(t, "https://cdn/notes/a.png", r.Observations[0].Attachment.URL)
	assert.Nil(t, r.Observations[1].Attachment)
	assert.Equal(t, 12.5, r.Measurements[0].Derived.CoatingVolume)
	assert.Equal(t, []string{"https://cdn/notes/a.png", "https://cdn/sketches/x.png"}, r.AttachmentURLs())
}

func TestDraft_NormalizeAndValidate(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	d := &Draft{
		SiteID:       "s",
		Observations: []Observation{{Text: "x"}},
		Measurements: []Measurement{{Label: "m"}},
		Actions:      []Action{{Description: "a"}},
	}
	d.Normalize(now)

	assert.Equal(t, time.UTC, d.CapturedAt.Location())
	assert.True(t, d.CapturedAt.Equal(now))
	assert.NotEmpty(t, d.Observations[0].ID)
	assert.Equal(t, SeverityInfo, d.Observations[0].Severity)
	assert.NotEmpty(t, d.Measurements[0].ID)
	assert.NotEmpty(t, d.Actions[0].ID)
	require.NoError(t, d.Validate())
}

func TestDraft_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Draft)
	}{
		{"missing site", func(d *Draft) { d.SiteID = " " }},
		{"missing time", func(d *Draft) { d.CapturedAt = time.Time{} }},
		{"empty report", func(d *Draft) { d.Observations, d.Measurements, d.Actions = nil, nil, nil }},
		{"bad severity", func(d *Draft) { d.Observations[0].Severity = "critical" }},
		{"duplicate observation", func(d *Draft) { d.Observations[1].ID = "o1" }},
		{"empty inline payload", func(d *Draft) { d.Observations[0].Attachment = InlineAttachment{MimeType: "image/png"} }},
		{"empty remote url", func(d *Draft) { d.Measurements[0].SketchAttachment = RemoteAttachmentRef{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sampleDraft()
			tt.mutate(d)
			require.ErrorIs(t, d.Validate(), common.ErrInvalidDraft)
		})
	}
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity(" Blocking ")
	require.NoError(t, err)
	assert.Equal(t, SeverityBlocking, s)

	s, err = ParseSeverity("")
	require.NoError(t, err)
	assert.Equal(t, SeverityInfo, s)
}
