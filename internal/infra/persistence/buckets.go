// Package persistence holds the bucket layout shared by the SQL snapshot
// stores. A snapshot is written as one JSON payload per bucket.
package persistence

import (
	"encoding/json"
	"fmt"

	"cakecollate/pkg/domain"
)

// Bucket names stored in the state table.
const (
	BucketOrders     = "orders"
	BucketOrderItems = "order_items"
)

// Buckets lists every bucket in write order.
var Buckets = []string{BucketOrders, BucketOrderItems}

// Encode returns the JSON payload of bucket.
func Encode(s domain.Snapshot, bucket string) ([]byte, error) {
	switch bucket {
	case BucketOrders:
		return json.Marshal(nonNil(s.Orders))
	case BucketOrderItems:
		return json.Marshal(nonNil(s.OrderItems))
	default:
		return nil, fmt.Errorf("unknown bucket %q", bucket)
	}
}

// Decode fills the part of s held by bucket. Unknown buckets and empty
// payloads are ignored so older tables keep loading.
func Decode(s *domain.Snapshot, bucket string, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}
	var err error
	switch bucket {
	case BucketOrders:
		err = json.Unmarshal(payload, &s.Orders)
	case BucketOrderItems:
		err = json.Unmarshal(payload, &s.OrderItems)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", bucket, err)
	}
	return nil
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
