// Package s3 fetches graph payloads from object storage. The analysis
// pipeline writes one JSON artifact per capture session; this source reads
// them back, with an in-memory byte cache and singleflight so concurrent
// frames for the same session hit S3 once.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"
)

// Source is a PayloadSource backed by an S3 (or S3-compatible) bucket.
type Source struct {
	bucket string
	prefix string
	client *s3.Client

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewSourceParams configures a Source. Endpoint allows overriding the S3
// endpoint for S3-compatible storage like MinIO. Prefix is the key prefix
// under which graph artifacts live, e.g. "graphs/".
type NewSourceParams struct {
	Bucket    string
	Prefix    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewSource creates an S3 payload source with static credentials.
func NewSource(ctx context.Context, params NewSourceParams) (*Source, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return NewSourceWithClient(params.Bucket, params.Prefix, client), nil
}

// NewSourceWithClient creates a Source around an existing s3.Client, which
// is useful when reusing a preconfigured AWS client.
func NewSourceWithClient(bucket, prefix string, client *s3.Client) *Source {
	return &Source{
		bucket: bucket,
		prefix: prefix,
		client: client,
		cache:  make(map[string][]byte),
	}
}

func (s *Source) key(sessionID string) string {
	return strings.TrimSuffix(s.prefix, "/") + "/" + sessionID + ".json"
}

// Fetch retrieves the graph artifact for the given session.
func (s *Source) Fetch(ctx context.Context, sessionID string) ([]byte, error) {
	key := s.key(sessionID)

	s.cacheMu.RLock()
	if cached, ok := s.cache[key]; ok {
		s.cacheMu.RUnlock()
		return cached, nil
	}
	s.cacheMu.RUnlock()

	result, err, _ := s.group.Do(key, func() (any, error) {
		s.cacheMu.RLock()
		if cached, ok := s.cache[key]; ok {
			s.cacheMu.RUnlock()
			return cached, nil
		}
		s.cacheMu.RUnlock()

		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get graph artifact from S3: %w", err)
		}
		defer out.Body.Close()

		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, out.Body); err != nil {
			return nil, fmt.Errorf("failed to read graph artifact: %w", err)
		}

		byts := buf.Bytes()

		s.cacheMu.Lock()
		s.cache[key] = byts
		s.cacheMu.Unlock()

		return byts, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// Invalidate drops the cached artifact for a session so the next Fetch hits
// storage again, e.g. after the pipeline rewrites it.
func (s *Source) Invalidate(sessionID string) {
	key := s.key(sessionID)
	s.cacheMu.Lock()
	delete(s.cache, key)
	s.cacheMu.Unlock()
}
