// scripts/gtranslate-auth/main.go
//
// Run this ONCE locally to authorize Google Translate access and generate
// token.json for OAuth Desktop App credentials.
//
// Usage:
//   go run scripts/gtranslate-auth/main.go [credentials.json]
//
// It prints a browser URL; log in with your Google account, paste the
// authorization code, and token.json will be saved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	translate "google.golang.org/api/translate/v2"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, translate.CloudTranslationScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	out, err := os.Create("token.json")
	if err != nil {
		log.Fatalf("Failed to create token.json: %v", err)
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(tok); err != nil {
		log.Fatalf("Failed to write token.json: %v", err)
	}

	fmt.Println("token.json saved. Point translate.credentials_path at your credentials file and restart the service.")
}
