package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Rakhulsr/go-catalog/app/configs"
	"github.com/Rakhulsr/go-catalog/app/db/fakers"
	"github.com/Rakhulsr/go-catalog/app/db/seeders"
	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func NewCommand(env configs.ENV) *cli.Command {
	serve := func(ctx context.Context, c *cli.Command) error {
		return Serve(ctx, env)
	}

	return &cli.Command{
		Name:   "catalog",
		Usage:  "Handmade goods catalog storefront and admin panel",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server (default)",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the initial catalog and optional fake orders and inquiries",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "fake-orders", Usage: "number of fake orders to create"},
					&cli.IntFlag{Name: "fake-inquiries", Usage: "number of fake product inquiries to create"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(env)
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.DBSeed(ctx, db); err != nil {
						return err
					}
					if n := int(c.Int("fake-orders")); n > 0 {
						if err := fakers.SeedFakeOrders(ctx, db, n); err != nil {
							return err
						}
						log.Printf("✅ Created %d fake orders", n)
					}
					if n := int(c.Int("fake-inquiries")); n > 0 {
						if err := fakers.SeedFakeInquiries(ctx, db, n); err != nil {
							return err
						}
						log.Printf("✅ Created %d fake inquiries", n)
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication, encryption and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
			{
				Name:      "hash-password",
				Usage:     "Print the bcrypt hash of a password for ADMIN_PASSWORD_HASH",
				ArgsUsage: "<password>",
				Action: func(ctx context.Context, c *cli.Command) error {
					password := c.Args().First()
					if password == "" {
						return fmt.Errorf("usage: hash-password <password>")
					}
					hash, err := helpers.HashPassword(password)
					if err != nil {
						return err
					}
					fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
					return nil
				},
			},
		},
	}
}

func RunCli(ctx context.Context, env configs.ENV) {
	if err := NewCommand(env).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
