package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/nftreasury/goapi/base/ctx"
	"github.com/nftreasury/goapi/base/metrics"
	"github.com/nftreasury/goapi/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")
)

// Service is the trimmed redis command surface used by the cache providers
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, value interface{}, ttl time.Duration) error
	Del(context ctx.Ctx, key string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, diff int) (int64, error)
	Ping(context ctx.Ctx) error
}

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis service
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance, because the
	// longer a connection is held the more connections the pool must juggle.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := []string{"func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, value interface{}, ttl time.Duration) error {
	tags := []string{"func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	var err error
	if ttl > 0 {
		_, err = r.connDo(context, "SET", key, value, "EX", int(ttl.Seconds()))
	} else {
		_, err = r.connDo(context, "SET", key, value)
	}
	return err
}

func (r *redImpl) Del(context ctx.Ctx, key string) (int, error) {
	tags := []string{"func", "del", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	return redis.Int(r.connDo(context, "DEL", key))
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	ttl, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	return redis.Bool(r.connDo(context, "EXISTS", key))
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, diff int) (int64, error) {
	return redis.Int64(r.connDo(context, "INCRBY", key, diff))
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	_, err := r.connDo(context, "PING")
	return err
}
