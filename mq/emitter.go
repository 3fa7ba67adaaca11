package mq

import (
	"context"
	"encoding/json"
	"log"

	"underrated/rdx"
)

const eventsChannel = "underrated-events"

// Index represents an entity lifecycle message published for downstream consumers.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
}

// Emit publishes an entity event to Redis. Failures are logged, never fatal:
// the write that triggered the event has already been persisted.
func Emit(ctx context.Context, eventName string, content Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("mq: failed to marshal %s event: %v", eventName, err)
		return
	}

	if err := rdx.Conn.Publish(ctx, eventsChannel, data).Err(); err != nil {
		log.Printf("mq: failed to publish %s event: %v", eventName, err)
	}
}
