package places

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"underrated/db"
	"underrated/geo"
	"underrated/models"
	"underrated/mq"
	"underrated/rdx"
	"underrated/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const placeListCacheKey = "places"

// Places
func GetPlaces(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	lat, latOK := utils.ParseFloat(q.Get("lat"))
	lng, lngOK := utils.ParseFloat(q.Get("lng"))
	annotate := latOK && lngOK

	// Distance-annotated responses are caller-specific, so only the plain
	// list is served from cache.
	if !annotate {
		if cached, _ := rdx.RdxGet(placeListCacheKey); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := db.PlacesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	places := []models.Place{}
	if err := cursor.All(ctx, &places); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if annotate {
		for i := range places {
			p := &places[i]
			if p.Latitude == nil || p.Longitude == nil {
				continue
			}
			if d, ok := geo.Distance(lat, lng, *p.Latitude, *p.Longitude); ok {
				dist := d
				p.Distance = &dist
			}
		}
		utils.RespondWithJSON(w, http.StatusOK, places)
		return
	}

	data, err := json.Marshal(places)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to encode places")
		return
	}
	if err := rdx.SetWithExpiry(placeListCacheKey, string(data), 5*time.Minute); err != nil {
		log.Printf("places: cache write failed: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func GetPlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if cached, _ := rdx.RdxGet("place:" + id); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var place models.Place
	err := db.PlacesCollection.FindOne(r.Context(), bson.M{"_id": id}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Place not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if data, err := json.Marshal(place); err == nil {
		if err := rdx.SetWithExpiry("place:"+id, string(data), 5*time.Minute); err != nil {
			log.Printf("places: cache write failed for %s: %v", id, err)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, place)
}

// Creates a new place
func CreatePlace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	in, err := DecodePlaceInput(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	place, err := Normalize(in)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	nextId, err := NextPlaceID(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	place.ID = nextId

	if _, err := db.PlacesCollection.InsertOne(ctx, place); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("Place created: %s", place.ID)

	invalidatePlaceCache(place.ID)
	go mq.Emit(context.Background(), "place-created", mq.Index{EntityType: "place", EntityId: place.ID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, place)
}

func invalidatePlaceCache(placeID string) {
	if _, err := rdx.RdxDel(placeListCacheKey); err != nil {
		log.Printf("places: list cache invalidation failed: %v", err)
	}
	if _, err := rdx.RdxDel("place:" + placeID); err != nil {
		log.Printf("places: cache invalidation failed for %s: %v", placeID, err)
	}
}
