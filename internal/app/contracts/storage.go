package contracts

import "context"

type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error)
}
