package drafts

import (
	"context"
	"iter"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
)

// Patch is an incremental update of a draft's sync bookkeeping. Nil fields
// are left unchanged.
type Patch struct {
	Attachments map[models.Slot]models.Attachment
	SyncState   *models.SyncState
	Attempts    *int
	LastError   *string
}

// PromotedSlot builds a patch recording a single promoted attachment.
func PromotedSlot(slot models.Slot, ref models.RemoteAttachmentRef) Patch {
	return Patch{Attachments: map[models.Slot]models.Attachment{slot: ref}}
}

// Repository is the local queue of drafts awaiting delivery.
type Repository interface {
	Append(ctx context.Context, d *models.Draft) (string, error)
	ListPending(ctx context.Context) iter.Seq2[*models.Draft, error]
	UpdatePartial(ctx context.Context, localID string, p Patch) error
	Remove(ctx context.Context, localID string) error
	Count(ctx context.Context) (int, error)
	CountBySite(ctx context.Context, siteID string) (int, error)

	Get(ctx context.Context, localID string) (*models.Draft, error)
	ListBySite(ctx context.Context, siteID string) ([]*models.Draft, error)
	Discard(ctx context.Context, localID string) error

	// TryLock marks a draft as Syncing for the caller. ok is false if
	// another caller holds the lock.
	TryLock(localID string) (unlock func(), ok bool)
	// Subscribe registers fn to be called with the site id of every draft
	// that is appended or removed. The returned func unregisters it.
	Subscribe(fn func(siteID string)) (cancel func())
}
