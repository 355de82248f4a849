package utils

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// Uploader stores uploaded files (item photos, NGO documents) in GridFS and
// hands back URLs that the file-serving route resolves.
type Uploader struct {
	bucket *gridfs.Bucket
}

// NewUploader creates an Uploader backed by the database's GridFS bucket.
func NewUploader(db *mongo.Database) (*Uploader, error) {
	bucket, err := gridfs.NewBucket(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload bucket: %w", err)
	}
	return &Uploader{bucket: bucket}, nil
}

// Upload stores the given bytes under path and returns the URL the file is
// served from.
func (u *Uploader) Upload(data []byte, path string) (string, error) {
	u.bucket.SetWriteDeadline(time.Now().Add(30 * time.Second))
	fileID, err := u.bucket.UploadFromStream(path, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}
	return fmt.Sprintf("/files/%s", fileID.Hex()), nil
}

// Serve writes the stored file with the given hex id to w.
func (u *Uploader) Serve(idHex string, w io.Writer) error {
	fileID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrInvalidInput
	}
	u.bucket.SetReadDeadline(time.Now().Add(30 * time.Second))
	if _, err := u.bucket.DownloadToStream(fileID, w); err != nil {
		if err == gridfs.ErrFileNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read file %s: %w", idHex, err)
	}
	return nil
}
