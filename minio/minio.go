package minio

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/taemindang/taemindang/types"
)

// Minio stores chat images in S3 compatible buckets.
type Minio struct {
	baseCtx        context.Context
	cleanupTimeout time.Duration
	client         *minio.Client
	errChan        chan error
}

func New(ctx context.Context, client *minio.Client, cleanupTimeout time.Duration) *Minio {
	return &Minio{
		baseCtx:        ctx,
		cleanupTimeout: cleanupTimeout,
		client:         client,
		errChan:        make(chan error, 1),
	}
}

// Errs reports failures of background cleanups.
func (m *Minio) Errs() <-chan error {
	return m.errChan
}

// Upload puts the file into the bucket. The returned func removes it again
// and is meant to be called when whatever referenced the upload failed.
func (m *Minio) Upload(ctx context.Context, bucket string, file types.Attachment) (func(), error) {
	info, err := m.client.PutObject(ctx, bucket, file.Path, file.Reader(), file.FileSize, minio.PutObjectOptions{
		ContentType:  file.ContentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	return func() {
		ctx, cancel := context.WithTimeout(m.baseCtx, m.cleanupTimeout)
		defer cancel()

		if err := m.client.RemoveObject(ctx, bucket, file.Path, minio.RemoveObjectOptions{
			VersionID: info.VersionID,
		}); err != nil {
			select {
			case m.errChan <- fmt.Errorf("remove object %s: %w", file.Path, err):
			default:
			}
		}
	}, nil
}

type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

type policyStatement struct {
	Effect    string   `json:"Effect"`
	Principal string   `json:"Principal"`
	Action    []string `json:"Action"`
	Resource  []string `json:"Resource"`
}

// EnsurePublicBucket makes sure the bucket exists and anyone can read its
// objects, so stored chat images can be served straight from it.
func (m *Minio) EnsurePublicBucket(ctx context.Context, bucket string) error {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s exists: %w", bucket, err)
	}

	if !exists {
		err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		// Another replica may have created it in between.
		if err != nil && minio.ToErrorResponse(err).Code != "BucketAlreadyOwnedByYou" {
			return fmt.Errorf("make bucket %s: %w", bucket, err)
		}
	}

	policy, err := json.Marshal(bucketPolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: "*",
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/*"},
		}},
	})
	if err != nil {
		return fmt.Errorf("json marshal bucket policy: %w", err)
	}

	if err := m.client.SetBucketPolicy(ctx, bucket, string(policy)); err != nil {
		return fmt.Errorf("set bucket %s policy: %w", bucket, err)
	}

	return nil
}
