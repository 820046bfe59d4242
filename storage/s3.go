package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// S3Config holds the settings of an S3 compatible bucket
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3 stores photos in an S3 compatible bucket
type S3 struct {
	client s3iface.S3API
	bucket string
}

// NewS3 returns an S3 store. An empty endpoint means AWS itself.
func NewS3(conf S3Config) (*S3, error) {
	awsConf := &aws.Config{
		Region: aws.String(conf.Region),
	}
	if conf.AccessKey != "" {
		awsConf.Credentials = credentials.NewStaticCredentials(conf.AccessKey, conf.SecretKey, "")
	}
	if conf.Endpoint != "" {
		awsConf.Endpoint = aws.String(conf.Endpoint)
		awsConf.S3ForcePathStyle = aws.Bool(true)
	}
	sess, err := session.NewSession(awsConf)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}
	return &S3{client: s3.New(sess), bucket: conf.Bucket}, nil
}

// Save puts r under the key name and returns the key
func (s *S3) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	_, err = s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}
	return name, nil
}
