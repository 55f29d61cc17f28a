package cache

import (
	"context"
	"fmt"
	"strings"
)

// Open returns the backend named by rawURL:
//
//	""  or "none"                     NullCache
//	redis://… or rediss://…           RedisCache
//	mongodb://… or mongodb+srv://…    MongoCache
//	file:///path or a plain path      FileCache
func Open(ctx context.Context, rawURL string) (Cache, error) {
	switch {
	case rawURL == "" || rawURL == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(rawURL, "redis://"), strings.HasPrefix(rawURL, "rediss://"):
		c, err := NewRedisCache(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.HasPrefix(rawURL, "mongodb://"), strings.HasPrefix(rawURL, "mongodb+srv://"):
		c, err := NewMongoCache(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return c, nil
	case strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "file://"):
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURL, rawURL)
	default:
		c, err := NewFileCache(strings.TrimPrefix(rawURL, "file://"))
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
