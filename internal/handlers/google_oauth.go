package handlers

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"petit/internal/db"
	"petit/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var googleOauthConfig *oauth2.Config

// InitGoogleOAuth configures the Google sign-in flow from the environment.
func InitGoogleOAuth() {
	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}

	googleOauthConfig = &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  siteURL + "/api/auth/google/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func generateStateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// GoogleLogin starts the OAuth code flow.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := generateStateToken()
	if err != nil {
		failServer(c)
		return
	}

	// Stored in the session to verify the callback
	session := sessions.Default(c)
	session.Set("oauth_state", state)
	session.Save()

	url := googleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback finishes the OAuth code flow and signs the user in,
// creating a profile on first sign-in.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)
	savedState := session.Get("oauth_state")

	if savedState == nil || c.Query("state") != savedState.(string) {
		fail(c, http.StatusBadRequest, "invalid oauth state")
		return
	}

	session.Delete("oauth_state")
	session.Save()

	code := c.Query("code")
	if code == "" {
		fail(c, http.StatusBadRequest, "missing authorization code")
		return
	}

	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		fail(c, http.StatusInternalServerError, "token exchange failed")
		return
	}

	userInfo, err := h.getGoogleUserInfo(token.AccessToken)
	if err != nil {
		fail(c, http.StatusInternalServerError, "could not fetch google profile")
		return
	}

	if !userInfo.VerifiedEmail {
		fail(c, http.StatusBadRequest, "google email is not verified")
		return
	}

	// Look up by GoogleID or email
	var user models.User
	err = db.DB.Where("google_id = ?", userInfo.ID).Or("email = ?", userInfo.Email).First(&user).Error

	if err != nil {
		// First sign-in, create the profile
		nickname := userInfo.GivenName
		if nickname == "" {
			nickname = strings.Split(userInfo.Email, "@")[0]
		}

		newUser, err := h.createUser(userInfo.Email, "", nickname)
		if err != nil {
			failServer(c)
			return
		}

		newUser.GoogleID = userInfo.ID
		newUser.GoogleEmail = userInfo.Email
		db.DB.Save(newUser)

		user = *newUser
	} else if user.GoogleID == "" {
		// Existing email account, bind the Google identity
		user.GoogleID = userInfo.ID
		user.GoogleEmail = userInfo.Email
		db.DB.Save(&user)
	}

	session.Set("user_id", user.ID)
	session.Save()

	siteURL := os.Getenv("SITE_URL")
	if siteURL == "" {
		siteURL = "http://localhost:8080"
	}
	c.Redirect(http.StatusFound, siteURL)
}

func (h *AuthHandler) getGoogleUserInfo(accessToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
