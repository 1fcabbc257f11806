package gcal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	authEndpoint  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenEndpoint = "https://oauth2.googleapis.com/token"
	calendarScope = "https://www.googleapis.com/auth/calendar.events"
)

// Token is the OAuth token set persisted to disk between sessions.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
}

func (t Token) expired() bool {
	return time.Now().After(t.Expiry.Add(-1 * time.Minute))
}

// ConsentURL returns the Google consent page the frontend redirects
// the user to. Offline access is required so we get a refresh token.
func (c *Client) ConsentURL() string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", calendarScope)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	return authEndpoint + "?" + params.Encode()
}

// Exchange trades the authorization code for tokens and stores them.
func (c *Client) Exchange(code string) error {
	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("code", code)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.redirectURI)

	token, err := c.requestToken(form)
	if err != nil {
		return fmt.Errorf("code exchange failed: %w", err)
	}
	return c.saveToken(token)
}

// accessToken returns a valid access token, refreshing it when the
// stored one has expired.
func (c *Client) accessToken() (string, error) {
	token, err := c.loadToken()
	if err != nil {
		return "", err
	}
	if !token.expired() {
		return token.AccessToken, nil
	}
	if token.RefreshToken == "" {
		return "", fmt.Errorf("access token expired and no refresh token stored")
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("refresh_token", token.RefreshToken)
	form.Set("grant_type", "refresh_token")

	refreshed, err := c.requestToken(form)
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}
	// Google omits the refresh token on refresh responses.
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	if err := c.saveToken(refreshed); err != nil {
		return "", err
	}
	return refreshed.AccessToken, nil
}

func (c *Client) requestToken(form url.Values) (Token, error) {
	resp, err := c.http.Post(tokenEndpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Token{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Token{}, fmt.Errorf("failed to decode token response: %w", err)
	}

	return Token{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		Expiry:       time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}, nil
}

func (c *Client) loadToken() (Token, error) {
	data, err := os.ReadFile(c.store.GoogleTokenPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Token{}, fmt.Errorf("google account not connected")
		}
		return Token{}, err
	}
	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return Token{}, fmt.Errorf("failed to parse stored token: %w", err)
	}
	return token, nil
}

func (c *Client) saveToken(token Token) error {
	data, err := json.MarshalIndent(token, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.store.GoogleTokenPath(), data, 0o600)
}
