package storage

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

const bucketSetupTimeout = 10 * time.Second

// publicReadPolicy lets browsers fetch doctor portraits through the
// public base URL without signed requests.
const publicReadPolicy = `{
	"Version": "2012-10-17",
	"Statement": [{
		"Effect": "Allow",
		"Principal": {"AWS": ["*"]},
		"Action": ["s3:GetObject"],
		"Resource": ["arn:aws:s3:::%s/*"]
	}]
}`

// NewMinio connects to MinIO and makes sure bucketName exists with public
// read access.
func NewMinio(driverConfig *config.DriverConfig, bucketName string, log *zap.Logger) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), bucketSetupTimeout)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("Failed to check minio bucket", zap.String("bucket", bucketName), zap.Error(err))
	}
	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatal("Failed to create minio bucket", zap.String("bucket", bucketName), zap.Error(err))
		}
		err = client.SetBucketPolicy(ctx, bucketName, fmt.Sprintf(publicReadPolicy, bucketName))
		if err != nil {
			log.Fatal("Failed to set minio bucket policy", zap.String("bucket", bucketName), zap.Error(err))
		}
		log.Info("Created minio bucket", zap.String("bucket", bucketName))
	}

	log.Info("Successfully connected to minio",
		zap.String("endpoint", endPoint),
		zap.String("bucket", bucketName),
	)
	return client
}
