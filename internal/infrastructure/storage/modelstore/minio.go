package modelstore

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/premsagar786/LegalAI/internal/config"
	"github.com/premsagar786/LegalAI/internal/infrastructure/monitoring/logging"
	apperrors "github.com/premsagar786/LegalAI/pkg/errors"
)

// MinIOStore persists artifacts as objects in an S3-compatible bucket under
// a common prefix.  Object writes are atomic by nature of the object store,
// so no temp-and-rename dance is needed.
type MinIOStore struct {
	client *minio.Client
	bucket string
	prefix string
	logger logging.Logger
}

// NewMinIOStore connects to the object store and ensures the bucket exists.
func NewMinIOStore(ctx context.Context, cfg config.MinIOConfig, logger logging.Logger) (*MinIOStore, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to create minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to create bucket")
		}
	}

	return &MinIOStore{
		client: client,
		bucket: cfg.Bucket,
		prefix: strings.Trim(cfg.Prefix, "/"),
		logger: logger.Named("miniostore"),
	}, nil
}

func (s *MinIOStore) objectName(task string) string {
	return path.Join(s.prefix, task+".model.json")
}

// Put implements Store.
func (s *MinIOStore) Put(ctx context.Context, a *Artifact) error {
	if a.Task == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "artifact task is empty")
	}
	if a.Version == "" {
		a.Version = uuid.NewString()
	}
	a.Seal()

	data, err := json.Marshal(a)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSerialization, "failed to encode artifact")
	}

	_, err = s.client.PutObject(ctx, s.bucket, s.objectName(a.Task),
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to upload artifact")
	}

	s.logger.Info("artifact uploaded",
		logging.String("task", a.Task),
		logging.String("version", a.Version),
		logging.String("bucket", s.bucket))
	return nil
}

// Get implements Store.
func (s *MinIOStore) Get(ctx context.Context, task string) (*Artifact, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.objectName(task), minio.GetObjectOptions{})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to fetch artifact")
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, apperrors.New(apperrors.ErrCodeArtifactNotFound, "no artifact for task").WithDetail("task=" + task)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFailure, "failed to read artifact object")
	}

	a := &Artifact{}
	if err := json.Unmarshal(data, a); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeArtifactCorrupt, "artifact is not valid JSON")
	}
	if !a.VerifyChecksum() {
		return nil, apperrors.New(apperrors.ErrCodeArtifactCorrupt, "artifact checksum mismatch").WithDetail("task=" + task)
	}
	return a, nil
}

// List implements Store.
func (s *MinIOStore) List(ctx context.Context) ([]*Artifact, error) {
	listPrefix := s.prefix
	if listPrefix != "" {
		listPrefix += "/"
	}

	var out []*Artifact
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: listPrefix}) {
		if obj.Err != nil {
			return nil, apperrors.Wrap(obj.Err, apperrors.ErrCodeStorageFailure, "failed to list artifacts")
		}
		name := path.Base(obj.Key)
		if !strings.HasSuffix(name, ".model.json") {
			continue
		}
		task := strings.TrimSuffix(name, ".model.json")
		a, err := s.Get(ctx, task)
		if err != nil {
			s.logger.Warn("skipping unreadable artifact", logging.String("task", task), logging.Err(err))
			continue
		}
		a.Payload = nil
		out = append(out, a)
	}
	return out, nil
}

var _ Store = (*MinIOStore)(nil)
