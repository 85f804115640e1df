package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Refresh tokens are opaque random values mapped to a user ID. They live
// in Redis with a TTL when Redis is wired, and fall back to an in-process
// map otherwise (tests, local runs without Redis).

const RefreshTokenTTL = 7 * 24 * time.Hour

const refreshKeyPrefix = "auth:refresh:"

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

var (
	rdb *redis.Client
	ctx context.Context

	mu         sync.Mutex
	localStore = map[string]string{}
)

func SetRedis(client *redis.Client, c context.Context) {
	rdb = client
	ctx = c
}

// IssueRefreshToken creates and stores a new refresh token for userID.
func IssueRefreshToken(userID int) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	if rdb != nil {
		if err := rdb.Set(ctx, refreshKeyPrefix+token, userID, RefreshTokenTTL).Err(); err != nil {
			return "", err
		}
		return token, nil
	}

	mu.Lock()
	localStore[token] = strconv.Itoa(userID)
	mu.Unlock()
	return token, nil
}

// RedeemRefreshToken validates the token, revokes it, and returns the
// user ID it belonged to. Tokens are single use; the caller issues a
// fresh one on success.
func RedeemRefreshToken(token string) (int, error) {
	if rdb != nil {
		val, err := rdb.GetDel(ctx, refreshKeyPrefix+token).Result()
		if errors.Is(err, redis.Nil) {
			return 0, ErrRefreshTokenNotFound
		}
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(val)
	}

	mu.Lock()
	defer mu.Unlock()
	val, ok := localStore[token]
	if !ok {
		return 0, ErrRefreshTokenNotFound
	}
	delete(localStore, token)
	return strconv.Atoi(val)
}

// RevokeRefreshToken drops a token on logout. Unknown tokens are a no-op.
func RevokeRefreshToken(token string) {
	if rdb != nil {
		rdb.Del(ctx, refreshKeyPrefix+token)
		return
	}
	mu.Lock()
	delete(localStore, token)
	mu.Unlock()
}
