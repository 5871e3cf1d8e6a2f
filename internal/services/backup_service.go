package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	appconfig "bunk-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService copies the xlsx mirror to an S3-compatible bucket
// after each save. A nil service is a valid no-op: backups are off
// unless the bucket is configured.
type BackupService struct {
	client *s3.Client
	bucket string
}

func NewBackupService(cfg *appconfig.Config) *BackupService {
	b := cfg.Backup
	if b.Bucket == "" || b.AccessKey == "" || b.SecretKey == "" {
		log.Println("[Backup] S3 backup not configured, skipping")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(b.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(b.AccessKey, b.SecretKey, ""),
		),
	)
	if err != nil {
		log.Printf("[Backup] Failed to configure S3 client, backups disabled: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if b.Endpoint != "" {
			o.BaseEndpoint = aws.String(b.Endpoint)
		}
		o.UsePathStyle = true
	})

	log.Printf("[Backup] Mirror backups enabled to bucket %s", b.Bucket)
	return &BackupService{client: client, bucket: b.Bucket}
}

// Upload pushes one local file to the bucket under its base name.
func (s *BackupService) Upload(ctx context.Context, path string) error {
	if s == nil {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for backup: %w", path, err)
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filepath.Base(path)),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return nil
}
