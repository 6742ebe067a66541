package snapshot_store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"session-stream/pkg/common_errors"
	"session-stream/pkg/debug"
	"session-stream/pkg/env_config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

type MinioSnapshotStore struct {
	minioClients []*minio.Client
}

const (
	accessKey       = "Q3AM3UQ867SPQQA43P2F"
	secretAccessKey = "zuf+tfteSlswRu7BJ86wekitnifILbZam1KYY3TG"
)

const CHKPT_BUCKET_NAME = "store-chkpt"

var _ = SnapshotStore(&MinioSnapshotStore{})

func NewMinioSnapshotStore() (*MinioSnapshotStore, error) {
	addr_arr := env_config.MinioAddrs()
	fmt.Fprintf(os.Stderr, "minio addr is %v\n", addr_arr)
	mcs := make([]*minio.Client, len(addr_arr))
	for i := 0; i < len(addr_arr); i++ {
		mc, err := minio.New(addr_arr[i], &minio.Options{
			Creds:  credentials.NewStaticV4(accessKey, secretAccessKey, ""),
			Secure: true,
		})
		if err != nil {
			return nil, err
		}
		mcs[i] = mc
	}
	return &MinioSnapshotStore{
		minioClients: mcs,
	}, nil
}

func (mc *MinioSnapshotStore) CreateChkptBucket(ctx context.Context) error {
	bg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(mc.minioClients); i++ {
		client := mc.minioClients[i]
		bg.Go(func() error {
			exists, err := client.BucketExists(ctx, CHKPT_BUCKET_NAME)
			if err != nil {
				return err
			}
			if exists {
				return nil
			}
			return client.MakeBucket(ctx, CHKPT_BUCKET_NAME, minio.MakeBucketOptions{})
		})
	}
	return bg.Wait()
}

func (mc *MinioSnapshotStore) StoreSnapshot(ctx context.Context, snapshot []byte,
	storeName string, seqNum uint64,
) error {
	key := fmt.Sprintf("%s_%#x", storeName, seqNum)
	idx := seqNum % uint64(len(mc.minioClients))
	debug.Fprintf(os.Stderr, "store snapshot key: %s at minio[%d]\n", key, idx)
	_, err := mc.minioClients[idx].PutObject(ctx, CHKPT_BUCKET_NAME, key, bytes.NewReader(snapshot),
		int64(len(snapshot)), minio.PutObjectOptions{})
	return err
}

func (mc *MinioSnapshotStore) GetSnapshot(ctx context.Context, storeName string, seqNum uint64) ([]byte, error) {
	key := fmt.Sprintf("%s_%#x", storeName, seqNum)
	idx := seqNum % uint64(len(mc.minioClients))
	debug.Fprintf(os.Stderr, "get snapshot key: %s at minio[%d]\n", key, idx)
	object, err := mc.minioClients[idx].GetObject(ctx, CHKPT_BUCKET_NAME, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	bs, err := io.ReadAll(object)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, common_errors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return bs, nil
}
