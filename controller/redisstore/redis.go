package redisstore

import (
	"context"

	"github.com/battlesnakeio/snake/controller"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

const keyPrefix = "snake:highscore:"

// putScript raises the stored score, never lowers it.
var putScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur == false or tonumber(ARGV[1]) > tonumber(cur) then
	redis.call('SET', KEYS[1], ARGV[1])
	return 1
end
return 0
`)

// RedisStore keeps high scores in redis, one string key per high score.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewRedisStore(connectURL string) (*RedisStore, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &RedisStore{client: client}, nil
}

// GetHighScore reads the score stored under key.
func (rs *RedisStore) GetHighScore(ctx context.Context, key string) (int, error) {
	score, err := rs.client.WithContext(ctx).Get(keyPrefix + key).Int()
	if err == redis.Nil {
		return 0, controller.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "unable to read high score")
	}
	return score, nil
}

// PutHighScore stores score under key if it beats the stored one. The check
// and the write run as one script, so concurrent writers cannot lower it.
func (rs *RedisStore) PutHighScore(ctx context.Context, key string, score int) error {
	err := putScript.Run(rs.client.WithContext(ctx), []string{keyPrefix + key}, score).Err()
	return errors.Wrap(err, "unable to write high score")
}

// Close closes the redis client.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
