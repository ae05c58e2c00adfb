package util

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/eventflow-app/eventflow-api/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var minioClient *minio.Client

func InitMinIO() error {
	if common.Config.MinIoEndpoint == nil || common.Config.MinIoAccessKey == nil || common.Config.MinIoSecretKey == nil {
		return fmt.Errorf("MinIO configuration is incomplete")
	}

	client, err := minio.New(*common.Config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*common.Config.MinIoAccessKey, *common.Config.MinIoSecretKey, ""),
		Secure: true,
	})

	if err != nil {
		return fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	minioClient = client
	common.MinIOClient = client
	return nil
}

func UploadFile(ctx context.Context, bucketName string, objectName string, file *multipart.FileHeader) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	_, err = minioClient.PutObject(ctx, bucketName, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	url := fmt.Sprintf("https://%s/%s/%s", *common.Config.MinIoEndpoint, bucketName, objectName)

	return url, nil
}

// UploadBytes stores an in-memory buffer, used for generated archives.
func UploadBytes(ctx context.Context, bucketName string, objectName string, data []byte, contentType string) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("MinIO client not initialized")
	}

	if err := ensureBucket(ctx, bucketName); err != nil {
		return "", err
	}

	_, err := minioClient.PutObject(ctx, bucketName, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("https://%s/%s/%s", *common.Config.MinIoEndpoint, bucketName, objectName), nil
}

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

func DownloadFile(ctx context.Context, bucketName string, objectName string) (*minio.Object, error) {
	if minioClient == nil {
		return nil, fmt.Errorf("MinIO client not initialized")
	}

	object, err := minioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}

	return object, nil
}

func DeleteFile(ctx context.Context, bucketName string, objectName string) error {
	if minioClient == nil {
		return fmt.Errorf("MinIO client not initialized")
	}

	err := minioClient.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// ExtractObjectNameFromURL extracts the object name from a MinIO URL
// Example: https://endpoint/bucket/path/to/file.png -> path/to/file.png
func ExtractObjectNameFromURL(url string, bucketName string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("URL is empty")
	}

	bucketPrefix := fmt.Sprintf("/%s/", bucketName)
	idx := strings.Index(url, bucketPrefix)
	if idx == -1 {
		return "", fmt.Errorf("bucket name not found in URL")
	}

	objectName := url[idx+len(bucketPrefix):]
	if objectName == "" {
		return "", fmt.Errorf("object name is empty")
	}

	return objectName, nil
}

// DeleteFileByURL deletes a file from MinIO given its full URL
func DeleteFileByURL(ctx context.Context, bucketName string, fileURL string) error {
	if fileURL == "" {
		return nil
	}

	objectName, err := ExtractObjectNameFromURL(fileURL, bucketName)
	if err != nil {
		return fmt.Errorf("failed to extract object name from URL: %w", err)
	}

	return DeleteFile(ctx, bucketName, objectName)
}
