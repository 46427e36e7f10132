/*
Package zones implements landing-zone file movement for the lakehouse:
uploading raw files into the temporal landing area and promoting them to
the persistent area under the data-source naming convention.
*/
package zones

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

/*
ObjectStore is the slice of the object-storage connection zone movement
needs. Satisfied by *s3.Conn.
*/
type ObjectStore interface {
	List(ctx context.Context, bucket, prefix string) ([]string, error)
	Put(ctx context.Context, bucket, key string, body io.Reader, size int64) error
	Stat(ctx context.Context, bucket, key string) (bool, error)
	Copy(ctx context.Context, bucket, srcKey, dstKey string) error
	Remove(ctx context.Context, bucket, key string) error
}

// nowFunc is swapped out by tests to pin the promotion timestamp.
var nowFunc = time.Now

/*
PersistentKey builds the persistent-zone key for a promoted file:
{persistentPrefix}/{source}/{source}#{timestamp}#{filename}. The embedded
source and timestamp make every promoted object self-describing.
*/
func PersistentKey(persistentPrefix, source, filename string, ts time.Time) string {
	return fmt.Sprintf(
		"%s/%s/%s#%s#%s",
		persistentPrefix, source, source, ts.Format("20060102_150405"), filename,
	)
}

/*
Ingest uploads one file into the landing zone. Keys that already exist are
skipped, except backup files (".bak"), which are always replaced. Returns
whether an upload happened.
*/
func Ingest(
	ctx context.Context, store ObjectStore, bucket, key string, body io.Reader, size int64,
) (bool, error) {
	exists, err := store.Stat(ctx, bucket, key)

	if err != nil {
		return false, err
	}

	if exists {
		if !strings.HasSuffix(key, ".bak") {
			log.Info("skipping already uploaded file", "key", key)
			return false, nil
		}

		if err := store.Remove(ctx, bucket, key); err != nil {
			return false, err
		}
	}

	if err := store.Put(ctx, bucket, key, body, size); err != nil {
		return false, err
	}

	log.Info("uploaded file", "bucket", bucket, "key", key)
	return true, nil
}

/*
Promote moves every file under the temporal prefix to the persistent
prefix, applying the naming convention and deleting the original. Failures
on individual objects are logged and skipped so one bad object never stalls
the rest of the batch. Returns the number of promoted objects.
*/
func Promote(
	ctx context.Context, store ObjectStore, bucket, temporalPrefix, persistentPrefix, source string,
) (int, error) {
	keys, err := store.List(ctx, bucket, temporalPrefix+"/")

	if err != nil {
		return 0, err
	}

	if len(keys) == 0 {
		log.Info("no files in temporal landing zone", "bucket", bucket)
		return 0, nil
	}

	promoted := 0

	for _, key := range keys {
		if strings.HasSuffix(key, "/") {
			continue
		}

		newKey := PersistentKey(persistentPrefix, source, path.Base(key), nowFunc())

		if err := store.Copy(ctx, bucket, key, newKey); err != nil {
			log.Error("failed to promote file", "key", key, "error", err)
			continue
		}

		log.Info("promoted file", "from", key, "to", newKey)

		if err := store.Remove(ctx, bucket, key); err != nil {
			log.Error("failed to delete temporal file", "key", key, "error", err)
			continue
		}

		promoted++
	}

	return promoted, nil
}
