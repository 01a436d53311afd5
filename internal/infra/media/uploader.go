package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	appconfig "kala-hive/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Store is the process-wide uploader, set by Init in main.
var Store *Uploader

// Uploader pushes image payloads to an S3-compatible bucket and hands
// back the durable public URL. Only the URL is persisted by callers.
type Uploader struct {
	uploader      *manager.Uploader
	bucket        string
	region        string
	publicBaseURL string
}

func Init(ctx context.Context) error {
	up, err := NewUploader(ctx)
	if err != nil {
		return err
	}
	Store = up
	return nil
}

func NewUploader(ctx context.Context) (*Uploader, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(appconfig.S3_REGION),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			appconfig.S3_ACCESS_KEY_ID,
			appconfig.S3_SECRET_ACCESS_KEY,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Custom endpoint for S3-compatible providers (MinIO, Wasabi).
		if appconfig.S3_ENDPOINT != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(appconfig.S3_ENDPOINT)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		uploader:      manager.NewUploader(client),
		bucket:        appconfig.S3_BUCKET,
		region:        appconfig.S3_REGION,
		publicBaseURL: strings.TrimRight(appconfig.S3_PUBLIC_BASE_URL, "/"),
	}, nil
}

// UploadImage stores the payload under "<folder>/<uuid>" and returns its
// public URL. The object is never cleaned up if the caller's follow-up
// write fails.
func (u *Uploader) UploadImage(ctx context.Context, folder, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s", folder, uuid.NewString())

	_, err := u.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return u.PublicURL(key), nil
}

func (u *Uploader) PublicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
