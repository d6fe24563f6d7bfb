package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/gym-manager/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

// s3Storage implements FileStorage on an S3-compatible backend.
type s3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
	expiry        time.Duration
	logger        *zap.Logger
}

// Configured reports whether cfg names a bucket and credentials.
func Configured(cfg config.S3Config) bool {
	return cfg.BucketName != "" && cfg.AccessKeyID != "" && cfg.SecretAccessKey != ""
}

// NewS3Storage creates a new S3 storage service instance.
func NewS3Storage(ctx context.Context, cfg config.S3Config, logger *zap.Logger) (FileStorage, error) {
	if !Configured(cfg) {
		return nil, errors.New("s3 bucket and credentials are required")
	}

	awsSDKConfig, err := awsCfg.LoadDefaultConfig(ctx,
		awsCfg.WithRegion(cfg.Region),
		awsCfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	// Path-style addressing is required by MinIO and most S3-compatible services.
	s3Client := s3.NewFromConfig(awsSDKConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = DefaultPresignedURLExpiry
	}

	logger.Info("s3 storage initialised",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.BucketName),
	)

	return &s3Storage{
		client:        s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    cfg.BucketName,
		expiry:        expiry,
		logger:        logger,
	}, nil
}

func (s *s3Storage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string) (string, error) {
	req, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		s.logger.Error("presign put failed", zap.String("key", objectKey), zap.Error(err))
		return "", err
	}
	return req.URL, nil
}

func (s *s3Storage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string) (string, error) {
	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		s.logger.Error("presign get failed", zap.String("key", objectKey), zap.Error(err))
		return "", err
	}
	return req.URL, nil
}

// DeleteObject removes an object from the bucket. S3 reports success for
// keys that do not exist.
func (s *s3Storage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.logger.Error("delete object failed",
			zap.String("key", objectKey),
			zap.String("bucket", s.bucketName),
			zap.Error(err),
		)
		return err
	}
	s.logger.Debug("deleted object", zap.String("key", objectKey))
	return nil
}
