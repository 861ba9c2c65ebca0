package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"parivartan/config"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/service"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// firebaseProvider delegates credentials and sessions to Firebase Auth.
// Principals are created with UUID uids so the rest of the system never
// sees Firebase-shaped identifiers.
type firebaseProvider struct {
	client     *firebaseauth.Client
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewFirebaseProvider constructs the Firebase-backed identity provider.
func NewFirebaseProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if cfg.Identity.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Identity.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize firebase auth client")
	}

	return &firebaseProvider{
		client:     client,
		apiKey:     cfg.Identity.APIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// SignUp registers a new partner principal and returns its session.
func (p *firebaseProvider) SignUp(ctx context.Context, input *service.SignUpInput) (*service.Session, error) {
	principalID := uuid.New()

	params := (&firebaseauth.UserToCreate{}).
		UID(principalID.String()).
		Email(input.Email).
		Password(input.Password)
	if input.Profile != nil && input.Profile.Name != "" {
		params = params.DisplayName(input.Profile.Name)
	}

	if _, err := p.client.CreateUser(ctx, params); err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return nil, domainerrors.ErrPartnerAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create firebase user")
	}

	session, err := p.passwordSignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// SignIn authenticates a partner principal.
func (p *firebaseProvider) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return p.passwordSignIn(ctx, email, password)
}

// AdminSignIn authenticates an admin principal. Admin accounts carry the
// "admin" custom claim set out-of-band.
func (p *firebaseProvider) AdminSignIn(ctx context.Context, email, password string) (*service.Session, error) {
	session, err := p.passwordSignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := p.client.GetUser(ctx, session.PrincipalID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load firebase user")
	}

	if isAdmin, _ := user.CustomClaims["admin"].(bool); !isAdmin {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return session, nil
}

// SignOut revokes the principal's refresh tokens. Outstanding ID tokens
// expire within the hour.
func (p *firebaseProvider) SignOut(ctx context.Context, token string) error {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domainerrors.ErrSessionInvalid
	}

	if err := p.client.RevokeRefreshTokens(ctx, decoded.UID); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

// VerifySession validates a Firebase ID token and returns the principal id.
func (p *firebaseProvider) VerifySession(ctx context.Context, token string) (uuid.UUID, error) {
	decoded, err := p.client.VerifyIDToken(ctx, token)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid
	}

	principalID, err := uuid.Parse(decoded.UID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "firebase uid is not a principal id")
	}

	return principalID, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	LocalID string `json:"localId"`
	IDToken string `json:"idToken"`
}

// passwordSignIn exchanges email and password for an ID token through the
// Identity Toolkit REST endpoint, which the admin SDK does not expose.
func (p *firebaseProvider) passwordSignIn(ctx context.Context, email, password string) (*service.Session, error) {
	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signInEndpoint+"?key="+p.apiKey, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrExternalService.WrapMessage("identity toolkit request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("identity toolkit returned status %d", resp.StatusCode)
	}

	var parsed signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode sign-in response")
	}

	principalID, err := uuid.Parse(parsed.LocalID)
	if err != nil {
		return nil, errors.Wrap(err, "firebase uid is not a principal id")
	}

	return &service.Session{PrincipalID: principalID, Token: parsed.IDToken}, nil
}
