package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/yana-hris/DevJobsAPI/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	handler *LocalAuthHandler,
	email string,
	password string,
) (string, error) {
	t.Helper()
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	token, ok := resp["accessToken"].(string)
	if !ok {
		return "", fmt.Errorf("login Failed: no accessToken in response: %s", rec.Body.String())
	}
	return token, nil
}
