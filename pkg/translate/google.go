package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleDetector wraps the Google Translate v2 detection API.
type GoogleDetector struct {
	service *translate.Service
}

// NewGoogleDetectorFromCredentialsFile creates a detector from a Service
// Account JSON file path.
func NewGoogleDetectorFromCredentialsFile(ctx context.Context, credentialsPath string) (*GoogleDetector, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewGoogleDetectorFromCredentialsJSON(ctx, data)
}

// NewGoogleDetectorFromCredentialsJSON creates a detector from raw Service
// Account JSON bytes, falling back to OAuth Desktop credentials + token.json.
func NewGoogleDetectorFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*GoogleDetector, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, translate.CloudTranslationScope)
	if err == nil {
		svc, svcErr := translate.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create translate service: %w", svcErr)
		}
		return &GoogleDetector{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{translate.CloudTranslationScope},
		Endpoint:     google.Endpoint,
	}

	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use a Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	svc, svcErr := translate.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create translate service from OAuth token: %w", svcErr)
	}

	return &GoogleDetector{service: svc}, nil
}

// NewGoogleDetectorFromHTTP creates a detector from a pre-configured HTTP
// client, optionally overriding the API endpoint. Used by tests.
func NewGoogleDetectorFromHTTP(ctx context.Context, httpClient *http.Client, endpoint string) (*GoogleDetector, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &GoogleDetector{service: svc}, nil
}

// Detect returns the most likely language code for text.
func (d *GoogleDetector) Detect(ctx context.Context, text string) (string, error) {
	resp, err := d.service.Detections.List([]string{text}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to call detection API: %w", err)
	}
	if len(resp.Detections) == 0 || len(resp.Detections[0]) == 0 {
		return "", fmt.Errorf("empty detection response")
	}
	return resp.Detections[0][0].Language, nil
}
