package contracts

import "context"

type Storage interface {
	UploadBase64Image(ctx context.Context, encodedImage []byte, bucketName, fileName, fileExtension string) (string, error)
}
