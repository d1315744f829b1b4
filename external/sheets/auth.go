package sheets

import (
	"context"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"
)

const (
	ScopeSpreadsheetsReadonly = "https://www.googleapis.com/auth/spreadsheets.readonly"
	defaultTokenURL           = "https://oauth2.googleapis.com/token"
)

var credentialValidator = validator.New(validator.WithRequiredStructEnabled())

type serviceAccountKey struct {
	Type         string `json:"type" validate:"omitempty,eq=service_account"`
	ClientEmail  string `json:"client_email" validate:"required,email"`
	PrivateKey   string `json:"private_key" validate:"required"`
	PrivateKeyID string `json:"private_key_id"`
	TokenURI     string `json:"token_uri" validate:"omitempty,url"`
}

// NewAuthorizedHTTPClient returns a client that signs requests with a token minted from a
// service-account key. tokenURL overrides the key's token_uri when set. Token fetches go through base.
func NewAuthorizedHTTPClient(ctx context.Context, credentialsJSON []byte, tokenURL string, base *http.Client) (*http.Client, error) {
	var key serviceAccountKey
	if err := sonic.Unmarshal(credentialsJSON, &key); err != nil {
		return nil, crerr.Wrap(err, "decode service account key")
	}
	if err := credentialValidator.Struct(key); err != nil {
		return nil, crerr.Wrap(err, "validate service account key")
	}

	tokenURL = strings.TrimSpace(tokenURL)
	if tokenURL == "" {
		tokenURL = key.TokenURI
	}
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	cfg := &jwt.Config{
		Email:        key.ClientEmail,
		PrivateKey:   []byte(key.PrivateKey),
		PrivateKeyID: key.PrivateKeyID,
		Scopes:       []string{ScopeSpreadsheetsReadonly},
		TokenURL:     tokenURL,
	}

	if base == nil {
		base = http.DefaultClient
	}
	client := cfg.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	client.Timeout = base.Timeout
	return client, nil
}
