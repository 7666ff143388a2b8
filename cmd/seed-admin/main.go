// Command seed-admin bootstraps a new mill with its first admin user.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bhoumik1804/krsika-backend/config"
	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

func main() {
	millName := flag.String("mill-name", "", "name of the mill to create (required)")
	ownerName := flag.String("owner", "", "mill owner name")
	address := flag.String("address", "", "mill address")
	username := flag.String("username", "admin", "admin username")
	name := flag.String("name", "Administrator", "admin display name")
	password := flag.String("password", "", "admin password (required, min 6 chars)")
	flag.Parse()

	if *millName == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	config.ConnectDatabaseWithRetry()
	if err := models.MigrateTable(); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	mill, err := models.CreateMill(ctx, &models.NewMill{
		Name:      *millName,
		OwnerName: *ownerName,
		Address:   *address,
	})
	if err != nil {
		log.Fatalf("create mill: %v", err)
	}

	ctx = utils.SetMillIdInContext(ctx, mill.ID)
	user, err := models.CreateUser(ctx, &models.NewUser{
		Username: *username,
		Name:     *name,
		Password: *password,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		log.Fatalf("create admin user: %v", err)
	}

	fmt.Printf("mill %s (%s) created with admin %s (id=%d)\n", mill.Name, mill.ID, user.Username, user.ID)
}
