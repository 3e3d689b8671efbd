package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	sc "github.com/dmitrijs2005/fieldsync/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPresignSvc(t *testing.T) *PresignService {
	t.Helper()
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
		S3Bucket:       "field-reports",
		PresignTTL:     15 * time.Minute,
	}
	s := NewPresignService(cfg)
	s.now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }
	return s
}

// stubAWS replaces the client factories with ones that build nothing.
func stubAWS(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
}

func Test_getPresignClient_SuccessAndError(t *testing.T) {
	svc := newPresignSvc(t)
	stubAWS(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		require.NotEmpty(t, optFns)
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	pc, err := svc.getPresignClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000/", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient(context.Background())
	require.EqualError(t, err, "load-fail")
}

func TestPresignUpload_Success(t *testing.T) {
	svc := newPresignSvc(t)
	stubAWS(t)

	var got *s3.PutObjectInput
	var presignOpts s3.PresignOptions
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		got = in
		for _, fn := range optFns {
			fn(&presignOpts)
		}
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/field-reports/notes/a.png?X-Amz-Signature=abc"}, nil
	}

	up, err := svc.PresignUpload(context.Background(), "notes/a.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "field-reports", aws.ToString(got.Bucket))
	assert.Equal(t, "notes/a.png", aws.ToString(got.Key))
	assert.Equal(t, "image/png", aws.ToString(got.ContentType))
	assert.Equal(t, 15*time.Minute, presignOpts.Expires)

	assert.Contains(t, up.UploadURL, "X-Amz-Signature")
	assert.Equal(t, "http://127.0.0.1:9000/field-reports/notes/a.png", up.PublicURL)
	assert.Equal(t, time.Date(2024, 6, 1, 9, 15, 0, 0, time.UTC), up.ExpiresAt)
}

func TestPresignUpload_ErrorFromPresign(t *testing.T) {
	svc := newPresignSvc(t)
	stubAWS(t)

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-put-fail")
	}

	_, err := svc.PresignUpload(context.Background(), "notes/a.png", "image/png")
	require.EqualError(t, err, "presign-put-fail")
}

func TestPresignUpload_ErrorFromClientFactory(t *testing.T) {
	svc := newPresignSvc(t)
	stubAWS(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := svc.PresignUpload(context.Background(), "notes/a.png", "image/png")
	require.EqualError(t, err, "load-fail")
}

func TestPresignUpload_BadKey(t *testing.T) {
	svc := newPresignSvc(t)
	stubAWS(t)

	for _, key := range []string{"", "/abs.png", "../up.png", "a/../../b.png", "notes//a.png", ".", ".."} {
		_, err := svc.PresignUpload(context.Background(), key, "image/png")
		assert.ErrorIs(t, err, common.ErrInvalidAttachment, "key %q", key)
	}
}

func TestPublicURL(t *testing.T) {
	svc := newPresignSvc(t)
	assert.Equal(t, "http://127.0.0.1:9000/field-reports/sketches/b.svg", svc.PublicURL("sketches/b.svg"))

	svc.config.PublicBaseURL = "https://cdn.example.com/reports/"
	assert.Equal(t, "https://cdn.example.com/reports/sketches/b.svg", svc.PublicURL("sketches/b.svg"))
}
