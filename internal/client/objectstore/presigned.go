package objectstore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/fieldsync/internal/netx"
)

// Presigned asks the record server for a presigned PUT URL and uploads the
// bytes straight to object storage. The device needs no storage credentials.
type Presigned struct {
	presigner Presigner
	http      *http.Client
}

func NewPresigned(p Presigner, httpClient *http.Client) *Presigned {
	return &Presigned{presigner: p, http: httpClient}
}

func (u *Presigned) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	uploadURL, publicURL, err := u.presigner.PresignUpload(ctx, key, contentType)
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	if err := netx.UploadToPresignedURL(ctx, u.http, uploadURL, contentType, data); err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}
	return publicURL, nil
}
