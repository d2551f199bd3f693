package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = time.Hour

// InquiryDeduper suppresses repeated contact-form submissions backed by Redis.
// Key format: inquiry_dedup:<email>:<sha256(message)[:16]>
type InquiryDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

// NewInquiryDeduper creates an InquiryDeduper wrapping the given Redis
// client. A non-positive ttl falls back to one hour.
func NewInquiryDeduper(client *redis.Client, ttl time.Duration) *InquiryDeduper {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &InquiryDeduper{client: client, ttl: ttl}
}

// IsDuplicate reports whether this email already submitted this exact
// message within the TTL window.
func (d *InquiryDeduper) IsDuplicate(ctx context.Context, email, message string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(email, message)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission so identical repeats are suppressed until the
// key expires.
func (d *InquiryDeduper) Mark(ctx context.Context, email, message string) error {
	return d.client.Set(ctx, d.key(email, message), "1", d.ttl).Err()
}

func (d *InquiryDeduper) key(email, message string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(message)))
	return fmt.Sprintf("inquiry_dedup:%s:%s", strings.ToLower(email), hex.EncodeToString(sum[:8]))
}
