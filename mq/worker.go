package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mandap/db"
	"mandap/geo"
	"mandap/rdx"
)

// ChangeEvent is published by the catalog/admin services whenever a
// venue record or the geocode reference changes.
type ChangeEvent struct {
	EntityType string `json:"entity_type"`
	EntityId   string `json:"entity_id"`
	Method     string `json:"method"`
}

const changeChannel = "catalog-events"

// StartInvalidationWorker subscribes to catalog change events and
// keeps the read path fresh: cached search pages are evicted on venue
// changes, and the geo snapshot is reloaded on reference changes.
func StartInvalidationWorker(ctx context.Context, ref *geo.Reference) {
	sub := rdx.Conn.Subscribe(ctx, changeChannel)
	ch := sub.Channel()

	log.Println("[InvalidationWorker] Listening for catalog events...")

	for msg := range ch {
		var event ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[InvalidationWorker] Failed to parse event: %v", err)
			continue
		}
		log.Printf("[InvalidationWorker] Processing event=%+v", event)

		switch event.EntityType {
		case "venue":
			rdx.RdxDelPrefix("search:venues:*")
			rdx.RdxDel("venues")
		case "geoaddress":
			rdx.RdxDelPrefix("geo:resolve:*")
			loadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			if err := ref.Load(loadCtx, db.GeoAddressCollection); err != nil {
				log.Printf("[InvalidationWorker] geo reload error: %v", err)
			}
			cancel()
		default:
			log.Printf("[InvalidationWorker] Unknown entity type: %s", event.EntityType)
		}
	}
}
