//go:build s3example
// +build s3example

// This file provides an example S3-backed attachment source.
// It is excluded from regular builds because it requires the AWS SDK.
//
// To use this in your project, copy this file and add the AWS SDK:
//   go get github.com/aws/aws-sdk-go-v2
//   go get github.com/aws/aws-sdk-go-v2/config
//   go get github.com/aws/aws-sdk-go-v2/service/s3

package transport

import (
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/formbind/pkg/form"
)

// S3File streams an S3 object into a form.File, so stored objects can be
// re-submitted as multipart attachments without buffering them locally.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	client := s3.NewFromConfig(cfg)
//
//	file, err := transport.S3File(ctx, client, "my-bucket", "exports/report.pdf")
//	if err != nil {
//	    return err
//	}
//	f.Set("attachment", file)
//	resp, err := f.Submit(ctx, "post", "/documents", true)
//
// The file's Content is the S3 object body; it is consumed by the
// multipart encoder during Submit.
func S3File(ctx context.Context, client *s3.Client, bucket, key string) (*form.File, error) {
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get failed: %w", err)
	}

	contentType := "application/octet-stream"
	if out.ContentType != nil {
		contentType = *out.ContentType
	}

	return &form.File{
		Name:        path.Base(key),
		ContentType: contentType,
		Content:     out.Body,
	}, nil
}
