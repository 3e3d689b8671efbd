// Package promoter moves inline attachments of a draft to object storage,
// replacing each with a remote reference and persisting that progress slot
// by slot, so an interrupted pass resumes where it stopped.
package promoter

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/client/objectstore"
	"github.com/dmitrijs2005/fieldsync/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
)

// AttachmentError reports the slot whose promotion failed. Err wraps
// ErrAttachmentUploadFailed, ErrInvalidAttachment for undecodable payloads,
// or ErrLocalStorageFailure when the progress could not be saved.
type AttachmentError struct {
	Slot models.Slot
	Err  error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("attachment %s: %v", e.Slot, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }

// Progress is the subset of the queue the promoter writes to.
type Progress interface {
	UpdatePartial(ctx context.Context, localID string, p drafts.Patch) error
}

type Promoter struct {
	uploader objectstore.Uploader
	progress Progress
	logger   logging.Logger
	suffix   func() (string, error)
}

type Option func(*Promoter)

// WithSuffix overrides the random key suffix generator.
func WithSuffix(fn func() (string, error)) Option {
	return func(p *Promoter) { p.suffix = fn }
}

func New(uploader objectstore.Uploader, progress Progress, logger logging.Logger, opts ...Option) *Promoter {
	p := &Promoter{
		uploader: uploader,
		progress: progress,
		logger:   logger.With("module", "promoter"),
		suffix:   func() (string, error) { return common.MakeRandHexString(8) },
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Promote uploads every inline attachment of d in draft order. d is updated
// in place and also returned. Slots that already hold a remote reference are
// skipped. On the first failure the remaining slots are left untouched and
// an *AttachmentError is returned.
func (p *Promoter) Promote(ctx context.Context, d *models.Draft) (*models.Draft, error) {
	type pendingSlot struct {
		slot   models.Slot
		inline models.InlineAttachment
	}

	var todo []pendingSlot
	for slot, a := range d.Attachments() {
		switch v := a.(type) {
		case models.RemoteAttachmentRef:
			continue
		case models.InlineAttachment:
			todo = append(todo, pendingSlot{slot: slot, inline: v})
		}
	}

	for _, item := range todo {
		if err := ctx.Err(); err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: fmt.Errorf("%w: %w", common.ErrAttachmentUploadFailed, err)}
		}

		data, mimeType, err := item.inline.Decode()
		if err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: err}
		}

		mimeType, ext := detectType(mimeType, data)
		key, err := p.objectKey(item.slot, d, ext)
		if err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: err}
		}

		url, err := p.uploader.Upload(ctx, key, data, mimeType)
		if err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: fmt.Errorf("%w: %w", common.ErrAttachmentUploadFailed, err)}
		}

		ref := models.RemoteAttachmentRef{URL: url}
		if err := p.progress.UpdatePartial(ctx, d.LocalID, drafts.PromotedSlot(item.slot, ref)); err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: err}
		}
		if err := d.SetAttachment(item.slot, ref); err != nil {
			return d, &AttachmentError{Slot: item.slot, Err: err}
		}

		p.logger.Debug(ctx, "attachment promoted", "draft", d.LocalID, "slot", item.slot.String(), "key", key, "bytes", len(data))
	}

	return d, nil
}

// objectKey builds <prefix>/<siteID>_<capturedAt ms>_<random>.<ext>.
func (p *Promoter) objectKey(slot models.Slot, d *models.Draft, ext string) (string, error) {
	suffix, err := p.suffix()
	if err != nil {
		return "", fmt.Errorf("key suffix: %w", err)
	}
	return fmt.Sprintf("%s/%s_%d_%s%s", slot.ObjectPrefix(), sanitize(d.SiteID), d.CapturedAt.UnixMilli(), suffix, ext), nil
}

// detectType returns the content type to store and a file extension with a
// leading dot. A declared type that is missing or generic is replaced by the
// sniffed one.
func detectType(declared string, data []byte) (string, string) {
	declared = strings.TrimSpace(strings.ToLower(declared))
	if declared != "" && declared != "application/octet-stream" {
		if ext := extensionFor(declared); ext != "" {
			return declared, ext
		}
	}
	sniffed := mimetype.Detect(data)
	if declared == "" || declared == "application/octet-stream" {
		return sniffed.String(), sniffed.Extension()
	}
	return declared, sniffed.Extension()
}

var preferredExt = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpg",
	"image/webp":      ".webp",
	"image/gif":       ".gif",
	"image/svg+xml":   ".svg",
	"application/pdf": ".pdf",
}

func extensionFor(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	if ext, ok := preferredExt[base]; ok {
		return ext
	}
	if m := mimetype.Lookup(base); m != nil {
		return m.Extension()
	}
	if exts, _ := mime.ExtensionsByType(base); len(exts) > 0 {
		return exts[0]
	}
	return ""
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
