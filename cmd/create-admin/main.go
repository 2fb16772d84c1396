package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/cortylix/site-go/internal/config"
	"github.com/cortylix/site-go/internal/config/db"
	"github.com/cortylix/site-go/internal/domain/user"
	"github.com/cortylix/site-go/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Provisions an admin account out of band. Sign-up never grants the admin
// role, so the first admin has to come from here.
func main() {
	email := flag.String("email", "", "admin email address")
	fullName := flag.String("name", "Administrator", "admin display name")
	password := flag.String("password", "", "admin password (min 6 characters)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}
	if len(*password) < 6 {
		log.Fatal("password must be at least 6 characters")
	}

	config.LoadConfig()
	db.Init()

	if err := db.DB.AutoMigrate(&user.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	admin := user.User{
		Email:    *email,
		Password: string(hashed),
		FullName: *fullName,
		Role:     string(user.RoleAdmin),
	}
	if err := repos.User.SaveUser(&admin); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Fatalf("An account with email %s already exists", *email)
		}
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println("Admin account created")
	fmt.Printf("  UID:   %d\n", admin.UID)
	fmt.Printf("  Email: %s\n", admin.Email)
	fmt.Printf("  Role:  %s\n", admin.Role)
}
