package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Mints a bearer token for local testing of AUTH_ENABLED=true.
// The secret is read from JWT_SECRET (a .env file is honoured).
func main() {
	role := flag.String("role", "admin", "Token role (admin or user)")
	subject := flag.String("sub", "dev", "Token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  *subject,
		"role": *role,
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		log.Fatal("Failed to sign token:", err)
	}

	fmt.Printf("Development token for role '%s' (expires %s):\n", *role, now.Add(*ttl).Format(time.RFC3339))
	fmt.Println(token)
	fmt.Println("\nUse it with:")
	fmt.Printf("curl -X DELETE http://localhost:5555/restaurants/1 \\\n")
	fmt.Printf("  -H 'Authorization: Bearer %s'\n", token)
}
