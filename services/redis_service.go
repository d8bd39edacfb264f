package services

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// Hàm lấy data từ Redis, trả về false nếu key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

type TokenRevoker interface {
	Revoke(ctx context.Context, claims *Claims) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type revokedToken struct {
	UserID    uint      `json:"userId"`
	RevokedAt time.Time `json:"revokedAt"`
}

// RedisTokenRevoker lưu id của token đã logout cho tới khi token hết hạn
type RedisTokenRevoker struct {
	rdb *redis.Client
}

func NewRedisTokenRevoker(rdb *redis.Client) *RedisTokenRevoker {
	return &RedisTokenRevoker{rdb: rdb}
}

func revokedKey(tokenID string) string {
	return "auth:revoked:" + tokenID
}

func (r *RedisTokenRevoker) Revoke(ctx context.Context, claims *Claims) error {
	ttl := time.Until(claims.ExpiresTime())
	if ttl <= 0 {
		return nil
	}
	entry := revokedToken{UserID: claims.UserInfo.UserId, RevokedAt: time.Now()}
	return SetToRedis(ctx, r.rdb, revokedKey(claims.Id), entry, ttl)
}

func (r *RedisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var entry revokedToken
	return GetFromRedis(ctx, r.rdb, revokedKey(tokenID), &entry)
}
