package proofstore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type Config struct {
	Endpoint     string
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseURL      string
	UsePathStyle bool
}

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store keeps analytics-proof screenshots in S3-compatible storage. Proofs
// are referenced by URL from submissions and payouts, so objects are written
// once and never mutated.
type Store struct {
	cfg    Config
	client s3Client
}

func New(cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("proof store bucket is required")
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("proof store region is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("proof store credentials are required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("proof store base url is required")
	}

	options := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &Store{
		cfg:    cfg,
		client: s3.New(options),
	}, nil
}

// Save uploads a proof screenshot and returns its public URL.
func (s *Store) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty proof upload")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := s.objectKey(contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload proof: %w", err)
	}
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/" + key, nil
}

func (s *Store) objectKey(contentType string) string {
	now := time.Now().UTC()
	return path.Join(
		"proofs",
		fmt.Sprintf("%04d/%02d", now.Year(), now.Month()),
		uuid.NewString()+extension(contentType),
	)
}

func extension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
