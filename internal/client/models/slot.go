package models

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dmitrijs2005/fieldsync/internal/common"
)

type SlotKind string

const (
	SlotObservation SlotKind = "observation"
	SlotMeasurement SlotKind = "measurement"
)

// Slot names one attachment-bearing field of a draft.
type Slot struct {
	Kind    SlotKind
	OwnerID string
}

func (s Slot) String() string { return string(s.Kind) + ":" + s.OwnerID }

// ObjectPrefix is the object-store folder used for attachments in this slot.
func (s Slot) ObjectPrefix() string {
	if s.Kind == SlotMeasurement {
		return common.MeasurementObjectPrefix
	}
	return common.ObservationObjectPrefix
}

func ParseSlot(v string) (Slot, error) {
	kind, owner, ok := strings.Cut(v, ":")
	if !ok || owner == "" {
		return Slot{}, fmt.Errorf("invalid slot %q", v)
	}
	switch SlotKind(kind) {
	case SlotObservation, SlotMeasurement:
		return Slot{Kind: SlotKind(kind), OwnerID: owner}, nil
	default:
		return Slot{}, fmt.Errorf("invalid slot kind %q", kind)
	}
}

// Attachments yields every non-empty attachment field in draft order:
// observations first, then measurement sketches.
func (d *Draft) Attachments() iter.Seq2[Slot, Attachment] {
	return func(yield func(Slot, Attachment) bool) {
		for _, o := range d.Observations {
			if o.Attachment == nil {
				continue
			}
			if !yield(Slot{Kind: SlotObservation, OwnerID: o.ID}, o.Attachment) {
				return
			}
		}
		for _, m := range d.Measurements {
			if m.SketchAttachment == nil {
				continue
			}
			if !yield(Slot{Kind: SlotMeasurement, OwnerID: m.ID}, m.SketchAttachment) {
				return
			}
		}
	}
}

// SetAttachment replaces the attachment held by slot.
func (d *Draft) SetAttachment(slot Slot, a Attachment) error {
	switch slot.Kind {
	case SlotObservation:
		for i := range d.Observations {
			if d.Observations[i].ID == slot.OwnerID {
				d.Observations[i].Attachment = a
				return nil
			}
		}
	case SlotMeasurement:
		for i := range d.Measurements {
			if d.Measurements[i].ID == slot.OwnerID {
				d.Measurements[i].SketchAttachment = a
				return nil
			}
		}
	}
	return fmt.Errorf("slot %s: %w", slot, common.ErrNotFound)
}

// InlineCount returns the number of attachments still awaiting promotion.
func (d *Draft) InlineCount() int {
	n := 0
	for _, a := range d.Attachments() {
		if IsInline(a) {
			n++
		}
	}
	return n
}
