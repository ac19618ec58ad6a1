package kv

import (
	"errors"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ib-77/faultline/pkg/rop"
)

const (
	DefaultTimeout = 3 * time.Second
	DefaultMode    = os.FileMode(0o600)
)

type Options struct {
	// Timeout bounds the wait for the file lock. Zero means DefaultTimeout.
	Timeout  time.Duration
	ReadOnly bool
	Mode     os.FileMode
}

type Store struct {
	db   *bolt.DB
	path string
}

func Open(path string, opts Options) rop.Result[*Store, *Error] {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Mode == 0 {
		opts.Mode = DefaultMode
	}

	db, err := bolt.Open(path, opts.Mode, &bolt.Options{
		Timeout:  opts.Timeout,
		ReadOnly: opts.ReadOnly,
	})
	if err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			err = &os.PathError{Op: "open", Path: path, Err: err}
		}
		return rop.Fail[*Store](newError("open", "", "", err))
	}
	return rop.Success[*Store, *Error](&Store{db: db, path: path})
}

func (s *Store) Path() string {
	return s.path
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(bucket, key string) rop.Result[[]byte, *Error] {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return rop.Fail[[]byte](newError("get", bucket, key, err))
	}
	return rop.Success[[]byte, *Error](value)
}

// Put creates the bucket when missing.
func (s *Store) Put(bucket, key string, value []byte) rop.Result[rop.Unit, *Error] {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
	return unit("put", bucket, key, err)
}

// Delete removes key; a missing key is not a failure, a missing bucket is.
func (s *Store) Delete(bucket, key string) rop.Result[rop.Unit, *Error] {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bolt.ErrBucketNotFound
		}
		return b.Delete([]byte(key))
	})
	return unit("delete", bucket, key, err)
}

func (s *Store) Buckets() rop.Result[[]string, *Error] {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	if err != nil {
		return rop.Fail[[]string](newError("buckets", "", "", err))
	}
	return rop.Success[[]string, *Error](names)
}

func (s *Store) Close() rop.Result[rop.Unit, *Error] {
	return unit("close", "", "", s.db.Close())
}

func unit(op, bucket, key string, err error) rop.Result[rop.Unit, *Error] {
	if err != nil {
		return rop.Fail[rop.Unit](newError(op, bucket, key, err))
	}
	return rop.Success[rop.Unit, *Error](rop.Unit{})
}
