package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

// stubPresign records the presign options applied to each request so the
// expiry window can be asserted without talking to AWS.
type stubPresign struct {
	lastKey    string
	lastExpiry time.Duration
	err        error
}

func (p *stubPresign) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if p.err != nil {
		return nil, p.err
	}
	var opts s3.PresignOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	p.lastKey = *in.Key
	p.lastExpiry = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://bucket.s3.example/" + *in.Key + "?sig=x"}, nil
}

func TestSignedURLEmptyKey(t *testing.T) {
	s := &S3Store{presign: &stubPresign{}, bucket: "b", expiry: time.Hour}
	if _, err := s.SignedURL(context.Background(), ""); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("want ErrInvalidKey, got %v", err)
	}
}

func TestSignedURLAppliesExpiryWindow(t *testing.T) {
	stub := &stubPresign{}
	s := &S3Store{presign: stub, bucket: "b", expiry: time.Hour}

	url, err := s.SignedURL(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url == "" {
		t.Fatal("empty url")
	}
	if stub.lastKey != "abc123" {
		t.Fatalf("signed wrong key: %q", stub.lastKey)
	}
	if stub.lastExpiry != time.Hour {
		t.Fatalf("expiry window = %v, want %v", stub.lastExpiry, time.Hour)
	}
}

func TestSignedURLPropagatesFailure(t *testing.T) {
	stub := &stubPresign{err: errors.New("credentials expired")}
	s := &S3Store{presign: stub, bucket: "b", expiry: time.Hour}

	if _, err := s.SignedURL(context.Background(), "abc123"); err == nil {
		t.Fatal("want error, got nil")
	}
}

// signMap is a minimal ObjectStore for exercising the tolerant helpers.
type signMap map[string]string

func (m signMap) Put(ctx context.Context, key, contentType string, data []byte) error { return nil }
func (m signMap) Remove(ctx context.Context, keys []string) error                     { return nil }
func (m signMap) SignedURL(ctx context.Context, key string) (string, error) {
	u, ok := m[key]
	if !ok {
		return "", ErrInvalidKey
	}
	return u, nil
}

func TestSignAllOmitsFailures(t *testing.T) {
	store := signMap{"a": "url-a", "c": "url-c"}

	got := SignAll(context.Background(), store, []string{"a", "b", "c"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != "url-a" || got[1] != "url-c" {
		t.Fatalf("unexpected urls: %v", got)
	}
}

func TestSignOneFailureYieldsEmpty(t *testing.T) {
	store := signMap{"a": "url-a"}
	if got := SignOne(context.Background(), store, "missing"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
	if got := SignOne(context.Background(), store, "a"); got != "url-a" {
		t.Fatalf("got %q", got)
	}
}
