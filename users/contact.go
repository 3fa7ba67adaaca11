// Package users holds the legacy single-purpose contact form. It predates
// the richer contactsubmissions collection and kept its own status
// vocabulary; the two are intentionally not merged.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"underrated/db"
	"underrated/models"
	"underrated/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type contactInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Type      string `json:"type"`
	PlaceName string `json:"placeName"`
	Location  string `json:"location"`
	Message   string `json:"message"`
}

func validType(t string) bool {
	switch t {
	case models.ContactTypeInquiry, models.ContactTypeSuggestion, models.ContactTypeBugReport:
		return true
	}
	return false
}

func newContact(in contactInput) (models.UserContact, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	if name == "" || email == "" || message == "" {
		return models.UserContact{}, fmt.Errorf("Please fill in all required fields")
	}

	kind := strings.TrimSpace(in.Type)
	if kind == "" {
		kind = models.ContactTypeInquiry
	}
	if !validType(kind) {
		return models.UserContact{}, fmt.Errorf("Unknown contact type: %s", kind)
	}

	now := time.Now()
	return models.UserContact{
		Name:      name,
		Email:     email,
		Type:      kind,
		PlaceName: strings.TrimSpace(in.PlaceName),
		Location:  strings.TrimSpace(in.Location),
		Message:   message,
		Status:    models.ContactStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// POST /api/users/contact
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in contactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contact data")
		return
	}

	contact, err := newContact(in)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	contact.ID = primitive.NewObjectID()

	if _, err := db.UserContactsCollection.InsertOne(r.Context(), contact); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server Error")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Message received! We will contact you soon.",
		"data":    contact,
	})
}

// GET /api/users/contacts
func GetContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.UserContactsCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cursor.Close(ctx)

	contacts := []models.UserContact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

func validStatus(s string) bool {
	switch s {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied:
		return true
	}
	return false
}

// PUT /api/users/contacts/:id
func UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contact id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	if !validStatus(body.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	var updated models.UserContact
	err = db.UserContactsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": body.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/users/contacts/:id
func DeleteContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	oid, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contact id")
		return
	}

	res, err := db.UserContactsCollection.DeleteOne(r.Context(), bson.M{"_id": oid})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Contact deleted"})
}
