package filestore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_PutWritesAndReplaces(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	store := NewLocal(dir)
	ctx := context.Background()

	loc, err := store.Put(ctx, "HoaDon_NhanBan_NB-1234.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "HoaDon_NhanBan_NB-1234.pdf"), loc)

	_, err = store.Put(ctx, "HoaDon_NhanBan_NB-1234.pdf", strings.NewReader("second"))
	require.NoError(t, err)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestLocal_PutStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	loc, err := NewLocal(dir).Put(context.Background(), "../../escape.pdf", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.pdf"), loc)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLocal_PutFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLocal(dir).Put(context.Background(), "a.pdf", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if in.Body != nil {
		b, _ := io.ReadAll(in.Body)
		f.body = string(b)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3_Put(t *testing.T) {
	fake := &fakePutter{}
	store := &S3{Client: fake, Bucket: "invoices", Prefix: "/shop/", PublicBaseURL: "https://cdn.test"}

	loc, err := store.Put(context.Background(), "HoaDon_NhanBan_NB-1.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/shop/HoaDon_NhanBan_NB-1.pdf", loc)
	assert.Equal(t, "invoices", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "shop/HoaDon_NhanBan_NB-1.pdf", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	assert.Equal(t, "pdf", fake.body)

	store.PublicBaseURL = ""
	store.Prefix = ""
	loc, err = store.Put(context.Background(), "x.bin", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "s3://invoices/x.bin", loc)
}

func TestS3_PutError(t *testing.T) {
	store := &S3{Client: &fakePutter{err: errors.New("denied")}, Bucket: "b"}
	_, err := store.Put(context.Background(), "a.pdf", strings.NewReader(""))
	assert.ErrorContains(t, err, "denied")
}

func TestNew(t *testing.T) {
	store, err := New(context.Background(), Settings{LocalDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, store)

	_, err = New(context.Background(), Settings{Driver: "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), Settings{Driver: DriverS3})
	assert.ErrorContains(t, err, "S3_BUCKET")
}
