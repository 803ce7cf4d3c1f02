package contracts

import (
	"context"
	"io"
	"mime/multipart"
)

type ObjectStorage interface {
	UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (string, error)
}
