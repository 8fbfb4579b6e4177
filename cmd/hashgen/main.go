package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash for seeding the first admin user.
func main() {
	password := flag.String("password", "admin", "password to hash")
	flag.Parse()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Hashed password: %s\n", string(hashedPassword))
}

// INSERT INTO users (name, email, password_hash, role, account_verified, created_at, updated_at)
// VALUES ('Admin', 'admin@crimelogix.local', '<hash>', 'admin', 1,
//         strftime('%Y-%m-%d %H:%M:%S', 'now'), strftime('%Y-%m-%d %H:%M:%S', 'now'));
