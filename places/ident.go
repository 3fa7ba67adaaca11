package places

import (
	"context"
	"fmt"
	"strconv"

	"underrated/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextID computes the successor of the numerically largest id in the set,
// zero-padded to three digits. Identifiers must be compared as integers,
// never sorted as strings: past "999" the padding stops and "1000" sorts
// before "999" lexically.
func nextID(ids []string) string {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue // legacy non-numeric ids don't participate
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%03d", max+1)
}

// NextPlaceID scans existing place ids and allocates the next one. Two
// concurrent creates can race to the same id; place creation is a
// single-admin operation and the insert fails loudly on a duplicate key.
func NextPlaceID(ctx context.Context) (string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := db.PlacesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return "", fmt.Errorf("scan place ids: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return "", fmt.Errorf("decode place ids: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return nextID(ids), nil
}
