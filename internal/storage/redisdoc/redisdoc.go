package redisdoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"school-service/pkg/response"
)

// Storage stores each record as one JSON document under "<resource>:<id>"
// and tracks collection membership in a "<resource>:ids" set. Every
// operation is a single round-trip chain with no transaction wrapping.
type Storage struct {
	client *redis.Client
}

func New(redisAddr string) (*Storage, error) {
	const op = "storage.redisdoc.New"

	client := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{client: client}, nil
}

func (s *Storage) Close() error {
	return s.client.Close()
}

func docKey(resource, id string) string {
	return fmt.Sprintf("%s:%s", resource, id)
}

func idsKey(resource string) string {
	return fmt.Sprintf("%s:ids", resource)
}

func listDocs[T any](ctx context.Context, c *redis.Client, resource string) ([]T, error) {
	const op = "storage.redisdoc.listDocs"

	ids, err := c.SMembers(ctx, idsKey(resource)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := []T{}
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = docKey(resource, id)
	}

	vals, err := c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// id set member without a document; skip rather than fail the list
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, item)
	}

	return out, nil
}

func getDoc[T any](ctx context.Context, c *redis.Client, resource, id string) (*T, error) {
	const op = "storage.redisdoc.getDoc"

	raw, err := c.Get(ctx, docKey(resource, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var item T
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func searchDocs[T any](ctx context.Context, c *redis.Client, resource, query string, text func(T) string) ([]T, error) {
	items, err := listDocs[T](ctx, c, resource)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)

	out := []T{}
	for _, item := range items {
		if strings.Contains(strings.ToLower(text(item)), query) {
			out = append(out, item)
		}
	}

	return out, nil
}

func createDoc[T any](ctx context.Context, c *redis.Client, resource, id string, item T) error {
	const op = "storage.redisdoc.createDoc"

	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.Set(ctx, docKey(resource, id), data, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.SAdd(ctx, idsKey(resource), id).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func updateDoc[T any](ctx context.Context, c *redis.Client, resource, id string, item T) (*T, error) {
	const op = "storage.redisdoc.updateDoc"

	exists, err := c.SIsMember(ctx, idsKey(resource), id).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.Set(ctx, docKey(resource, id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &item, nil
}

func deleteDoc[T any](ctx context.Context, c *redis.Client, resource, id string) (*T, error) {
	const op = "storage.redisdoc.deleteDoc"

	item, err := getDoc[T](ctx, c, resource, id)
	if err != nil {
		return nil, err
	}

	if err := c.Del(ctx, docKey(resource, id)).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := c.SRem(ctx, idsKey(resource), id).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}
