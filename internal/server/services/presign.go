package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	sc "github.com/dmitrijs2005/fieldsync/internal/server/config"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// PresignedUpload is a short-lived PUT target plus the URL the object will
// be readable at once uploaded.
type PresignedUpload struct {
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

type PresignService struct {
	config *sc.Config
	now    func() time.Time
}

func NewPresignService(config *sc.Config) *PresignService {
	return &PresignService{config: config, now: time.Now}
}

func (s *PresignService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// PresignUpload signs a PUT for key. The content type is part of the
// signature, so the uploader must send the same Content-Type header.
func (s *PresignService) PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	ttl := s.config.PresignTTL
	req, err := presignPutObject(presignClient, ctx, in, s3.WithPresignExpires(ttl))
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		PublicURL: s.PublicURL(key),
		ExpiresAt: s.now().Add(ttl),
	}, nil
}

// PublicURL is PublicBaseURL/key, or the path-style object URL on the S3
// endpoint when no public base is configured.
func (s *PresignService) PublicURL(key string) string {
	base := strings.TrimRight(s.config.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket
	}
	return base + "/" + key
}

func validateKey(key string) error {
	c := path.Clean(key)
	if key == "" || c != key || c == "." || c == ".." || strings.HasPrefix(c, "/") || strings.HasPrefix(c, "../") {
		return fmt.Errorf("%w: bad object key %q", common.ErrInvalidAttachment, key)
	}
	return nil
}
