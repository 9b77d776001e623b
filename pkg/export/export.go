// Package export uploads a completed run's artifacts (FASM output, metrics
// history) to an S3-compatible bucket.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/SirJonasM/fpga-router/pkg/router"
)

// PutObjectAPI is the subset of *s3.Client that Uploader needs, narrowed so
// tests can substitute a fake.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader puts run artifacts into a single bucket, one key per artifact.
type Uploader struct {
	Client PutObjectAPI
	Bucket string
}

// New builds an Uploader from an already-configured S3 client, e.g. one
// produced by aws-sdk-go-v2/config.LoadDefaultConfig.
func New(client *s3.Client, bucket string) *Uploader {
	return &Uploader{Client: client, Bucket: bucket}
}

// PutFASM uploads the rendered FASM text under "<prefix>/routing.fasm".
func (u *Uploader) PutFASM(ctx context.Context, prefix, fasmText string) error {
	return u.put(ctx, prefix+"/routing.fasm", []byte(fasmText), "text/plain")
}

// PutMetrics uploads the per-iteration Row history as JSON under
// "<prefix>/metrics.json".
func (u *Uploader) PutMetrics(ctx context.Context, prefix string, rows []router.Row) error {
	body, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	return u.put(ctx, prefix+"/metrics.json", body, "application/json")
}

func (u *Uploader) put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", u.Bucket, key, err)
	}
	return nil
}
