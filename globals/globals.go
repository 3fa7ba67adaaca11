package globals

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JwtSecret     []byte
	AdminEmail    string
	AdminPassword string
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("globals: no .env file found; using system environment")
	}

	JwtSecret = []byte(os.Getenv("JWT_SECRET"))
	AdminEmail = os.Getenv("ADMIN_EMAIL")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")

	if len(JwtSecret) == 0 {
		log.Println("globals: JWT_SECRET is not set; issued tokens will not be secure")
	}
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const AdminEmailKey ContextKey = "adminEmail"

var Ctx = context.Background()
