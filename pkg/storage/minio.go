package storage

import (
	"context"
	"io"

	"github.com/friendsofgo/errors"
	"github.com/minio/minio-go/v7"
)

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

type implStorage struct {
	client *minio.Client
	bucket string
}

// New creates a Storage backed by a MinIO client and a single bucket.
func New(client *minio.Client, bucket string) Storage {
	return &implStorage{
		client: client,
		bucket: bucket,
	}
}

func (s *implStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "check bucket")
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "make bucket")
	}
	return nil
}

func (s *implStorage) Upload(ctx context.Context, input UploadInput) (ObjectInfo, error) {
	opts := minio.PutObjectOptions{
		ContentType:  input.ContentType,
		UserMetadata: map[string]string{"original-name": input.OriginalName},
	}

	info, err := s.client.PutObject(ctx, s.bucket, input.ObjectName, input.Reader, input.Size, opts)
	if err != nil {
		return ObjectInfo{}, errors.Wrap(err, "put object")
	}

	return ObjectInfo{
		Bucket:       s.bucket,
		ObjectName:   info.Key,
		OriginalName: input.OriginalName,
		Size:         info.Size,
		ContentType:  input.ContentType,
	}, nil
}

func (s *implStorage) Download(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error) {
	stat, err := s.client.StatObject(ctx, s.bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, errors.Wrap(err, "stat object")
	}

	obj, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, errors.Wrap(err, "get object")
	}

	return obj, ObjectInfo{
		Bucket:       s.bucket,
		ObjectName:   objectName,
		OriginalName: stat.UserMetadata["Original-Name"],
		Size:         stat.Size,
		ContentType:  stat.ContentType,
		UploadedAt:   stat.LastModified,
	}, nil
}

func (s *implStorage) Delete(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrap(err, "remove object")
	}
	return nil
}
