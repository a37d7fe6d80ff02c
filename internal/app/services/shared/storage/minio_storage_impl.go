package storage

import (
	"bytes"
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"fmt"
	"mime"
	"strings"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient   *minio.Client
	PublicBaseUrl string
	Log           *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, publicBaseUrl string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient:   minioClient,
		PublicBaseUrl: strings.TrimRight(publicBaseUrl, "/"),
		Log:           logger,
	}
}

// UploadBase64Image stores already decoded image bytes and returns the public
// URL of the object.
func (m *minioStorage) UploadBase64Image(ctx context.Context, encodedImageData []byte, bucketName, fileName, fileExtension string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.UploadBase64Image called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, fileName),
	)

	contentType := mime.TypeByExtension(fileExtension)
	if contentType == "" {
		errContentType := fmt.Errorf("unknown content type for extension %s", fileExtension)
		return "", exceptions.ErrMinioCreateObject(errContentType, bucketName)
	}

	_, err := m.MinioClient.PutObject(
		ctx,
		bucketName,
		fileName,
		bytes.NewReader(encodedImageData),
		int64(len(encodedImageData)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadBase64Image error calling PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return fmt.Sprintf("%s/%s/%s", m.PublicBaseUrl, bucketName, fileName), nil
}
