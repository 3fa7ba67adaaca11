package auth

import (
	"encoding/json"
	"net/http"
	"time"

	"underrated/globals"
	"underrated/middleware"
	"underrated/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks the submitted pair against the single configured admin
// credential. There is no account store; the whole admin surface shares one
// email/password set through the environment.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if globals.AdminEmail == "" || globals.AdminPassword == "" {
		utils.RespondWithError(w, http.StatusInternalServerError, "Admin credentials are not configured")
		return
	}

	if input.Email != globals.AdminEmail || input.Password != globals.AdminPassword {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid Admin Credentials")
		return
	}

	now := time.Now()
	claims := &middleware.Claims{
		Role:  "admin",
		Email: input.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.GetUUID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(globals.JwtSecret)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Login Successful",
		"token":   tokenString,
		"admin":   utils.M{"email": input.Email},
	})
}
