package dictfile

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// LoadAny loads a dictionary from path, dispatching to LoadS3 when path has
// an "s3://bucket/key" shape and to Load otherwise. This is the dictionary
// entry point the CLI's --dict flag uses, so a word list can live on local
// disk or in object storage without the caller knowing which.
func LoadAny(ctx context.Context, path string) ([]string, error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		return Load(path)
	}
	bucket, key, found := strings.Cut(rest, "/")
	if !found {
		return nil, fmt.Errorf("dictfile: invalid s3 path %q, want s3://bucket/key", path)
	}
	return LoadS3(ctx, bucket, key)
}

// LoadS3 downloads a dictionary object from S3 and applies the same line
// rules as Load. It is an optional entry point for deployments that keep
// their word lists in object storage instead of on the solver's local
// disk.
func LoadS3(ctx context.Context, bucket, key string) ([]string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("dictfile: loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("dictfile: fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()
	return ReadAll(out.Body)
}
