// Command adminctl provisions administrator accounts against a running leads
// service. It drives the same endpoint the setup scripts used to, so it is
// safe to re-run: an existing account is elevated and repaired rather than
// duplicated.
//
// Usage:
//
//	adminctl create -url http://localhost:8080 -email admin@example.com -password secret
//	adminctl repair -url http://localhost:8080 -email admin@example.com -password newsecret
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/consultbase/leadsvc/pkg/leadsdk"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "create", "repair":
		// Same endpoint either way; the verbs exist so runbooks read clearly.
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(1)
	}

	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	url := fs.String("url", "http://localhost:8080", "base URL of the leads service")
	email := fs.String("email", "", "admin email (required)")
	password := fs.String("password", "", "admin password (required)")
	name := fs.String("name", "", "display name (optional)")
	setupToken := fs.String("setup-token", os.Getenv("LEADS_ADMIN_SETUP_TOKEN"), "setup token (or LEADS_ADMIN_SETUP_TOKEN)")
	timeout := fs.Duration("timeout", 15*time.Second, "request timeout")
	_ = fs.Parse(os.Args[2:])

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "error: -email and -password are required")
		fs.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fmt.Printf("Provisioning admin account for %s at %s...\n", *email, *url)

	client := leadsdk.NewClient(*url)
	resp, err := client.CreateAdminAccount(ctx, leadsdk.CreateAdminAccountRequest{
		Email:      *email,
		Password:   *password,
		Name:       *name,
		SetupToken: *setupToken,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(resp.Message)
	fmt.Printf("  user id: %s\n", resp.UID)
	fmt.Printf("  email:   %s\n", resp.Email)
	fmt.Printf("  name:    %s\n", resp.Name)
}

func usage() {
	fmt.Fprintln(os.Stderr, `adminctl provisions administrator accounts for the leads service.

Commands:
  create   create an admin account (or repair an existing one)
  repair   alias of create; elevates and resets an existing account

Run "adminctl <command> -h" for flags.`)
}
