package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// SendWhatsAppNotification pushes a message through the fonnte.com gateway.
// Callers treat failures as best-effort and only log them.
func SendWhatsAppNotification(phone, message string) error {
	apiURL := "https://api.fonnte.com/send"
	token := os.Getenv("FONNTE_TOKEN")

	if token == "" {
		return fmt.Errorf("FONNTE_TOKEN is not set")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return nil
}

// FormatRegistrationMessage builds the admin alert sent when a new
// restaurant owner signs up and is waiting for approval.
func FormatRegistrationMessage(email, hotelName, hotelLocation string) string {
	message := "NEW OWNER REGISTRATION\n\n"
	message += fmt.Sprintf("Email: %s\n", email)
	message += fmt.Sprintf("Hotel: %s\n", hotelName)
	message += fmt.Sprintf("Location: %s\n", hotelLocation)
	message += fmt.Sprintf("\n_At: %s_", time.Now().Format("02/01/2006 15:04:05"))
	return message
}
