// Package services contains the field device's application services: the
// sync coordinator that drives queued drafts to the record server, and the
// draft service the CLI uses to save, discard and resync reports.
package services
