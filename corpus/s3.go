package corpus

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Client is the subset of the S3 API the fetcher needs, so tests can
// substitute a mock implementation.
type S3Client interface {
	GetObject(input *s3.GetObjectInput) (*s3.GetObjectOutput, error)
}

// NewS3Client
// Returns a client backed by the default session chain, picking up region
// and credentials from the environment or shared config.
func NewS3Client() (S3Client, error) {
	sess, sessErr := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if sessErr != nil {
		return nil, sessErr
	}
	return s3.New(sess), nil
}

// IsS3URL reports whether srcURL names an S3 object.
func IsS3URL(srcURL string) bool {
	return strings.HasPrefix(srcURL, "s3://")
}

// ParseS3URL
// Splits s3://bucket/key into its bucket and key parts.
func ParseS3URL(srcURL string) (bucket string, key string, err error) {
	parsed, parseErr := url.Parse(srcURL)
	if parseErr != nil {
		return "", "", parseErr
	}
	if parsed.Scheme != "s3" || parsed.Host == "" || len(parsed.Path) < 2 {
		return "", "", errors.New(fmt.Sprintf("not a valid s3 url: %s",
			srcURL))
	}
	return parsed.Host, strings.TrimPrefix(parsed.Path, "/"), nil
}

// FetchS3
// Retrieves an object, returning its body reader along with the size the
// service reports for it.
func FetchS3(svc S3Client, srcURL string) (io.ReadCloser, uint64, error) {
	bucket, key, parseErr := ParseS3URL(srcURL)
	if parseErr != nil {
		return nil, 0, parseErr
	}
	object, getErr := svc.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if getErr != nil {
		return nil, 0, errors.New(fmt.Sprintf("cannot retrieve `%s`: %s",
			srcURL, getErr))
	}
	var size uint64
	if object.ContentLength != nil {
		size = uint64(*object.ContentLength)
	}
	return object.Body, size, nil
}

// DownloadS3
// Fetches an S3 object into targetPath with progress reporting.
func DownloadS3(svc S3Client, srcURL string, targetPath string) error {
	reader, size, fetchErr := FetchS3(svc, srcURL)
	if fetchErr != nil {
		return fetchErr
	}
	return downloadToFile(reader, size, srcURL, targetPath)
}
