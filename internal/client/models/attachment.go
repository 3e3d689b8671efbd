package models

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fieldsync/internal/common"
)

// Attachment is either an InlineAttachment or a RemoteAttachmentRef.
// No other implementations exist.
type Attachment interface {
	isAttachment()
}

// InlineAttachment holds a binary payload captured on the device. Data is
// plain base64 or a "data:<mime>;base64,<payload>" URL.
type InlineAttachment struct {
	MimeType string
	Data     string
}

// RemoteAttachmentRef points to an object already in durable storage.
type RemoteAttachmentRef struct {
	URL string
}

func (InlineAttachment) isAttachment()    {}
func (RemoteAttachmentRef) isAttachment() {}

// NewInlineAttachment base64-encodes raw bytes.
func NewInlineAttachment(mimeType string, raw []byte) InlineAttachment {
	return InlineAttachment{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(raw)}
}

// Decode returns the payload bytes and the effective MIME type. A MIME type
// in a data URL header wins over an empty MimeType field.
func (a InlineAttachment) Decode() ([]byte, string, error) {
	mime := a.MimeType
	payload := strings.TrimSpace(a.Data)

	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", fmt.Errorf("%w: malformed data URL", common.ErrInvalidAttachment)
		}
		params := strings.Split(header, ";")
		if mime == "" && params[0] != "" {
			mime = params[0]
		}
		if params[len(params)-1] != "base64" {
			return nil, "", fmt.Errorf("%w: data URL is not base64", common.ErrInvalidAttachment)
		}
		payload = body
	}

	if payload == "" {
		return nil, "", fmt.Errorf("%w: empty payload", common.ErrInvalidAttachment)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", common.ErrInvalidAttachment, err)
		}
	}
	return raw, mime, nil
}

// IsInline reports whether a holds a payload that has not been promoted yet.
func IsInline(a Attachment) bool {
	_, ok := a.(InlineAttachment)
	return ok
}
