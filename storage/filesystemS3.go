package storage

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/siherrmann/contentManager/helper"
)

// FilesystemS3 reads seed files from an S3-compatible bucket
type FilesystemS3 struct {
	client     *s3.Client
	bucketName string
}

// NewFilesystemS3 creates a new S3 filesystem instance with the specified configuration
func NewFilesystemS3(cfg helper.S3Config) (*FilesystemS3, error) {
	awsConfig, err := config.LoadDefaultConfig(
		context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // Required for MinIO and other S3-compatible services
		}
	})

	return &FilesystemS3{
		client:     s3Client,
		bucketName: cfg.BucketName,
	}, nil
}

// Open downloads a file from S3 and returns its body
func (b *FilesystemS3) Open(path string) (io.ReadCloser, error) {
	result, err := b.client.GetObject(
		context.Background(),
		&s3.GetObjectInput{
			Bucket: aws.String(b.bucketName),
			Key:    aws.String(path),
		},
	)
	if err != nil {
		return nil, err
	}

	return result.Body, nil
}

// ListFiles returns a list of all objects in the bucket
func (b *FilesystemS3) ListFiles() ([]File, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(b.bucketName),
	}

	files := []File{}
	paginator := s3.NewListObjectsV2Paginator(b.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(context.Background())
		if err != nil {
			return nil, err
		}

		for _, object := range page.Contents {
			if object.Key == nil {
				continue
			}
			files = append(files, File{
				Name:     *object.Key,
				Size:     aws.ToInt64(object.Size),
				MimeType: helper.GetMimeType(*object.Key),
			})
		}
	}

	return files, nil
}
