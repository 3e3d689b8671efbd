// Package drafts is the device's durable queue of undelivered field reports.
//
// Drafts live in the drafts table; every attachment-bearing field has its own
// row in attachments, keyed by (draft_id, slot), so promoting one attachment
// is a single-row write. The Syncing state is never written: it is derived
// from the in-memory lock table, which makes a process restart equivalent to
// resetting every draft to Pending.
package drafts
