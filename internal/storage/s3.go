package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SafeHavenApp/safehaven_backend/internal/platform/config"
)

const presignExpiry = 15 * time.Minute

// S3Store keeps files in an S3-compatible bucket (AWS S3 or MinIO).
// Temporary objects use keys temp/<tempID>/<fileName>, permanent objects
// users/<userID>/<destName>. Temp URLs are presigned GETs.
type S3Store struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
}

// NewS3Store builds the S3 client from application config.
func NewS3Store(ctx context.Context, cfg *config.Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // MinIO
		}
	})

	return &S3Store{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.S3Bucket,
	}, nil
}

func (s *S3Store) tempKey(tempID, fileName string) string {
	return "temp/" + tempID + "/" + SanitizeFileName(fileName)
}

func (s *S3Store) userKey(userID, destName string) string {
	return "users/" + userID + "/" + SanitizeFileName(destName)
}

func (s *S3Store) SaveTemp(ctx context.Context, tempID, fileName string, r io.Reader) (string, error) {
	key := s.tempKey(tempID, fileName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put staged object: %w", err)
	}

	return s.PresignGetURL(ctx, key)
}

func (s *S3Store) FindTempFileName(ctx context.Context, tempID string) (string, error) {
	prefix := "temp/" + tempID + "/"
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list staged objects: %w", err)
	}
	if len(out.Contents) == 0 {
		return "", fmt.Errorf("staged file %s not found", tempID)
	}
	key := aws.ToString(out.Contents[0].Key)
	return key[len(prefix):], nil
}

func (s *S3Store) Promote(ctx context.Context, tempID, fileName, userID, destName string) (string, error) {
	srcKey := s.tempKey(tempID, fileName)
	dstKey := s.userKey(userID, destName)

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(url.PathEscape(s.bucket + "/" + srcKey)),
		Key:        aws.String(dstKey),
	})
	if err != nil {
		return "", fmt.Errorf("failed to copy staged object: %w", err)
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(srcKey),
	})
	if err != nil {
		// The permanent copy exists; a leftover temp object is not fatal.
		return "/" + dstKey, nil
	}

	return "/" + dstKey, nil
}

func (s *S3Store) SaveUserFile(ctx context.Context, userID, destName string, r io.Reader) (string, error) {
	key := s.userKey(userID, destName)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}
	return "/" + key, nil
}

// PresignGetURL returns a time-limited download URL for a stored object key.
func (s *S3Store) PresignGetURL(ctx context.Context, key string) (string, error) {
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign object: %w", err)
	}
	return req.URL, nil
}

var _ FileStore = (*S3Store)(nil)
