// Package common defines shared constants and sentinel errors used across
// the device and server sides of FieldSync. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Transient sync errors. They are handled inside the sync pass and leave
	// the draft pending for the next trigger.
	ErrNetworkUnavailable     = errors.New("network unavailable")
	ErrAttachmentUploadFailed = errors.New("attachment upload failed")
	ErrRecordCommitFailed     = errors.New("record commit failed")

	// ErrLocalStorageFailure threatens durability and is surfaced to the user
	// at save time instead of being retried.
	ErrLocalStorageFailure = errors.New("local storage failure")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Draft-level errors.
	ErrDraftBusy         = errors.New("draft is being synchronized")
	ErrInvalidDraft      = errors.New("invalid draft")
	ErrInvalidAttachment = errors.New("invalid attachment payload")
	ErrInlineAttachment  = errors.New("inline attachment cannot be committed")
)
