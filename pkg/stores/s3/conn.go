package s3

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

/*
Conn wraps a MinIO client. All lakehouse zones live in the same MinIO
deployment, so one connection serves every bucket.
*/
type Conn struct {
	client *minio.Client
}

type ConnOption func(*Conn) error

/*
NewConn creates a connection to the MinIO deployment backing the lakehouse.
*/
func NewConn(options ...ConnOption) (*Conn, error) {
	conn := &Conn{}

	for _, option := range options {
		if err := option(conn); err != nil {
			return nil, err
		}
	}

	return conn, nil
}

/*
WithCredentials configures the underlying MinIO client from an endpoint and
a static key pair.
*/
func WithCredentials(endpoint, accessKey, secretKey string, useSSL bool) ConnOption {
	return func(conn *Conn) error {
		client, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
			Secure: useSSL,
		})

		if err != nil {
			return err
		}

		conn.client = client
		return nil
	}
}

/*
WithClient injects a pre-built MinIO client, used by tests.
*/
func WithClient(client *minio.Client) ConnOption {
	return func(conn *Conn) error {
		conn.client = client
		return nil
	}
}

/*
Get downloads an object into memory. Catalog objects are a few megabytes at
most, so buffering is fine here.
*/
func (conn *Conn) Get(
	ctx context.Context, bucket, key string,
) (*bytes.Buffer, error) {
	obj, err := conn.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})

	if err != nil {
		return nil, err
	}

	defer obj.Close()

	buf := bytes.NewBuffer([]byte{})

	if _, err := io.Copy(buf, obj); err != nil {
		return nil, err
	}

	return buf, nil
}

/*
Put uploads an object. size may be -1 when unknown, in which case the
client streams with multipart upload.
*/
func (conn *Conn) Put(
	ctx context.Context, bucket, key string, body io.Reader, size int64,
) error {
	_, err := conn.client.PutObject(
		ctx, bucket, key, body, size, minio.PutObjectOptions{},
	)

	return err
}

/*
List returns the keys under a prefix, in the order the store yields them.
*/
func (conn *Conn) List(
	ctx context.Context, bucket, prefix string,
) ([]string, error) {
	var keys []string

	for obj := range conn.client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}

		keys = append(keys, obj.Key)
	}

	return keys, nil
}

/*
Stat reports whether an object exists under the key.
*/
func (conn *Conn) Stat(ctx context.Context, bucket, key string) (bool, error) {
	_, err := conn.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})

	if err != nil {
		resp := minio.ToErrorResponse(err)

		if resp.Code == "NoSuchKey" {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

/*
Copy duplicates an object within a bucket under a new key.
*/
func (conn *Conn) Copy(ctx context.Context, bucket, srcKey, dstKey string) error {
	_, err := conn.client.CopyObject(
		ctx,
		minio.CopyDestOptions{Bucket: bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: bucket, Object: srcKey},
	)

	return err
}

/*
Remove deletes an object.
*/
func (conn *Conn) Remove(ctx context.Context, bucket, key string) error {
	return conn.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

/*
EnsureBucket creates the bucket when it does not exist yet. Creating a
bucket that is already owned is not an error.
*/
func (conn *Conn) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := conn.client.BucketExists(ctx, bucket)

	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return conn.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
}
