package places

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"underrated/db"
	"underrated/models"
	"underrated/mq"
	"underrated/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// updateFields builds a partial $set document from whatever the payload
// carried. Identity is immutable; city and location always move together.
func updateFields(in PlaceInput) bson.M {
	fields := bson.M{}

	if name := strings.TrimSpace(in.Name); name != "" {
		fields["name"] = name
	}
	city := strings.TrimSpace(in.City)
	if city == "" {
		city = strings.TrimSpace(in.Location)
	}
	if city != "" {
		fields["city"] = city
		fields["location"] = city
	}
	if desc := strings.TrimSpace(in.Desc); desc != "" {
		fields["desc"] = desc
	}
	if in.Categories != nil {
		fields["categories"] = in.Categories
	}
	if category := strings.TrimSpace(in.Category); category != "" {
		fields["category"] = category
	}
	if mapURL := strings.TrimSpace(in.MapURL); mapURL != "" {
		fields["mapUrl"] = mapURL
	}
	if bestTime := strings.TrimSpace(in.BestTime); bestTime != "" {
		fields["bestTime"] = bestTime
	}
	if openDays := strings.TrimSpace(in.OpenDays); openDays != "" {
		fields["openDays"] = openDays
	}
	if in.Images != nil {
		fields["images"] = in.Images
		if strings.TrimSpace(in.Image) == "" && len(in.Images) > 0 {
			fields["image"] = in.Images[0]
		}
	}
	if image := strings.TrimSpace(in.Image); image != "" {
		fields["image"] = image
	}
	if in.Rating.Set {
		fields["rating"] = in.Rating.Value
	}
	if in.Verified.Set {
		fields["verified"] = in.Verified.Value
	}
	// Coordinates merge only when they parsed as finite numbers.
	if in.Latitude.Set {
		fields["latitude"] = in.Latitude.Value
	}
	if in.Longitude.Set {
		fields["longitude"] = in.Longitude.Value
	}

	fields["updatedAt"] = time.Now()
	return fields
}

func UpdatePlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	placeID := ps.ByName("id")

	in, err := DecodePlaceInput(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	fields := updateFields(in)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Place
	err = db.PlacesCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": placeID},
		bson.M{"$set": fields},
		opts,
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Place not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	invalidatePlaceCache(placeID)
	go mq.Emit(context.Background(), "place-edited", mq.Index{EntityType: "place", EntityId: placeID, Method: "PUT"})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeletePlace(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	placeID := ps.ByName("id")

	var place models.Place
	err := db.PlacesCollection.FindOne(r.Context(), bson.M{"_id": placeID}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Place not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := db.PlacesCollection.DeleteOne(r.Context(), bson.M{"_id": placeID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	log.Printf("Place deleted: %s", placeID)

	invalidatePlaceCache(placeID)
	go mq.Emit(context.Background(), "place-deleted", mq.Index{EntityType: "place", EntityId: placeID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":     "Place removed successfully",
		"deletedId":   placeID,
		"deletedName": place.Name,
	})
}
