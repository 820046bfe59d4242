package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/linesmerrill/devcamper-api/models"
)

// Prints the mongo shell command that sets a user's password and clears any
// pending reset token.
// Usage: go run scripts/reset_user_password.go -email user@gmail.com -password 123456
func main() {
	email := flag.String("email", "", "email of the user (required)")
	password := flag.String("password", "", "new plain-text password (required)")
	flag.Parse()

	if *email == "" || len(*password) < 6 {
		fmt.Println("Usage: go run scripts/reset_user_password.go -email <email> -password <at least 6 chars>")
		os.Exit(1)
	}

	var u models.User
	if err := u.SetPassword(*password); err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Bcrypt Hash: %s\n", u.Password)
	fmt.Printf("\nTo update in MongoDB, run:\n")
	fmt.Printf("db.users.updateOne(\n")
	fmt.Printf("  {\"email\": %q},\n", *email)
	fmt.Printf("  {$set: {\"password\": %q}, $unset: {\"resetPasswordToken\": \"\", \"resetPasswordExpire\": \"\"}}\n", u.Password)
	fmt.Printf(")\n")
}
