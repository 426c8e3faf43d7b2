// Command createadmin provisions a reviewer account. Accounts are never
// created through the API; an operator runs this against the database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwru-wtf/homebase/internal/model"
	"github.com/cwru-wtf/homebase/pkg/config"
	"github.com/cwru-wtf/homebase/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func main() {
	email := flag.String("email", "", "account email (required)")
	password := flag.String("password", "", "initial password (required)")
	name := flag.String("name", "", "display name (required)")
	role := flag.String("role", string(model.RoleSuperAdmin), "role: admin or super_admin")
	flag.Parse()

	if *email == "" || *password == "" || *name == "" {
		flag.Usage()
		os.Exit(2)
	}

	accountRole := model.Role(*role)
	if !accountRole.CanReview() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Initialize(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize database: %v\n", err)
		os.Exit(1)
	}

	var count int64
	if err := db.Model(&model.AdminUser{}).Where("email = ?", *email).Count(&count).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to check existing accounts: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Printf("Admin user already exists: %s\n", *email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcryptCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	admin := model.AdminUser{
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *name,
		Role:         accountRole,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to create admin user: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Admin user created successfully:")
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Role: %s\n", admin.Role)
	fmt.Printf("Admin ID: %d\n", admin.ID)
	fmt.Println("IMPORTANT: Change the password after first login!")
}
