package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleOAuth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"PATHFINDER_BACK-END/internal/config"
	"PATHFINDER_BACK-END/internal/dto"
	"PATHFINDER_BACK-END/internal/middleware"
	"PATHFINDER_BACK-END/internal/storage"
	"PATHFINDER_BACK-END/internal/utils"
)

const oauthStateCookie = "pathfinder_oauth_state"

// GoogleAuthHandler handles Google OAuth authentication
type GoogleAuthHandler struct {
	users        storage.UserStore
	oauth2Config *oauth2.Config
	config       *config.Config
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler instance
func NewGoogleAuthHandler(users storage.UserStore, cfg *config.Config) *GoogleAuthHandler {
	oauth2Config := &oauth2.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  cfg.GoogleOAuth.RedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &GoogleAuthHandler{
		users:        users,
		oauth2Config: oauth2Config,
		config:       cfg,
	}
}

// GoogleLogin initiates Google OAuth login
// @Summary Google OAuth login
// @Description Initiate Google OAuth login flow
// @Tags authentication
// @Produce json
// @Success 200 {object} dto.GoogleLoginResponse "Google OAuth URL"
// @Failure 503 {object} dto.ErrorResponse "Google login not configured"
// @Router /api/auth/google/login [get]
func (h *GoogleAuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.config.IsGoogleOAuthConfigured() {
		utils.WriteErrorResponse(w, http.StatusServiceUnavailable, "Google login unavailable", "Google OAuth is not configured")
		return
	}

	// Generate state parameter for CSRF protection
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/api/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSONResponse(w, http.StatusOK, dto.GoogleLoginResponse{
		AuthURL: h.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOffline),
		State:   state,
	})
}

// GoogleCallback handles Google OAuth callback
// @Summary Google OAuth callback
// @Description Handle Google OAuth callback with authorization code
// @Tags authentication
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State parameter for CSRF protection"
// @Success 302 "Redirect to the frontend with a token"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid authorization code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/google/callback [get]
func (h *GoogleAuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing authorization code", "Authorization code is required")
		return
	}
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid state", "OAuth state does not match")
		return
	}

	token, err := h.oauth2Config.Exchange(r.Context(), code)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid authorization code", err.Error())
		return
	}

	userInfo, err := h.getGoogleUserInfo(r.Context(), token)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user info", err.Error())
		return
	}

	user, err := h.users.UpsertGoogleUser(r.Context(), userInfo.Email, userInfo.Name, userInfo.Picture)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	jwtToken, err := middleware.GenerateToken(user.ID, user.Email, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	q := url.Values{}
	q.Set("token", jwtToken)
	q.Set("user_id", user.ID.String())
	q.Set("email", user.Email)
	q.Set("display_name", userInfo.Name)
	q.Set("provider", "google")
	http.Redirect(w, r, h.config.GoogleOAuth.FrontendCallbackURL+"?"+q.Encode(), http.StatusFound)
}

// getGoogleUserInfo fetches user information from Google
func (h *GoogleAuthHandler) getGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	service, err := googleOAuth2.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	if err != nil {
		return nil, err
	}

	userInfo, err := service.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	verified := false
	if userInfo.VerifiedEmail != nil {
		verified = *userInfo.VerifiedEmail
	}

	return &dto.GoogleUserInfo{
		ID:       userInfo.Id,
		Email:    userInfo.Email,
		Name:     userInfo.Name,
		Picture:  userInfo.Picture,
		Verified: verified,
	}, nil
}
