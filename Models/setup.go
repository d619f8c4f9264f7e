package Models

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var Sheet SheetStore

func ConnectSheet() {

	err := godotenv.Load(".env")

	if err != nil {
		log.Println("No .env file found, using process environment")
	}

	SheetID := os.Getenv("SHEET_ID")
	SheetName := os.Getenv("SHEET_NAME")

	if SheetID == "" || SheetName == "" {
		log.Fatal("SHEET_ID and SHEET_NAME must be set")
	}

	credJSON, err := loadCredentials()
	if err != nil {
		log.Fatal("credentials error:", err)
	}

	config, err := google.JWTConfigFromJSON(credJSON, sheets.SpreadsheetsScope)
	if err != nil {
		log.Fatal("failed to parse service account credentials:", err)
	}

	ctx := context.Background()
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))

	if err != nil {
		fmt.Println("Cannot connect to Google Sheets ")
		log.Fatal("connection error:", err)
	} else {
		fmt.Println("We are connected to the spreadsheet ")
	}

	Sheet = &GoogleSheetStore{
		Service:   srv,
		SheetID:   SheetID,
		SheetName: SheetName,
	}
}

// loadCredentials reads the service account key. Inline JSON in
// GOOGLE_CREDENTIALS wins; GOOGLE_CREDENTIALS_FILE names a key file as the
// fallback.
func loadCredentials() ([]byte, error) {
	if inline := os.Getenv("GOOGLE_CREDENTIALS"); inline != "" {
		return []byte(inline), nil
	}

	keyFile := os.Getenv("GOOGLE_CREDENTIALS_FILE")
	if keyFile == "" {
		return nil, fmt.Errorf("neither GOOGLE_CREDENTIALS nor GOOGLE_CREDENTIALS_FILE is set")
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", keyFile, err)
	}
	return data, nil
}
