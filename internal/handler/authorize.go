package handler

import (
	"net/http"
	"net/url"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// DefaultAuthorizationCode is handed back to Messenger on every link. Real
// account linking would mint one per user.
const DefaultAuthorizationCode = "1234567890"

// AuthorizeResponse describes where the login page should send the user
type AuthorizeResponse struct {
	AccountLinkingToken string `json:"accountLinkingToken"`
	RedirectURI         string `json:"redirectURI"`
	RedirectURISuccess  string `json:"redirectURISuccess"`
}

// AuthorizeHandler serves the account linking call-to-action target
type AuthorizeHandler struct {
	authCode string
}

// NewAuthorizeHandler creates a new authorize handler
func NewAuthorizeHandler(authCode string) *AuthorizeHandler {
	if authCode == "" {
		authCode = DefaultAuthorizationCode
	}
	return &AuthorizeHandler{authCode: authCode}
}

// RegisterRoutes registers account linking routes
func (h *AuthorizeHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /authorize", h.Authorize)
}

// Authorize handles GET /authorize
func (h *AuthorizeHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	redirectURI := q.Get("redirect_uri")
	if redirectURI == "" {
		WriteError(w, model.NewBadRequestError("redirect_uri is required"))
		return
	}

	WriteJSON(w, http.StatusOK, AuthorizeResponse{
		AccountLinkingToken: q.Get("account_linking_token"),
		RedirectURI:         redirectURI,
		RedirectURISuccess:  redirectURI + "&authorization_code=" + url.QueryEscape(h.authCode),
	})
}
