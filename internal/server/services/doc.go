// Package services holds the record server's business logic: committing and
// listing structured reports and issuing presigned upload URLs.
package services
