package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobdeck/jobdeck/pkg/models"
)

// Login authenticates against the backend. On a response carrying both token
// and user the session is persisted and published; a terms-acceptance flag
// surfaces ErrTermsAcceptanceRequired without establishing a session. Any
// other failure leaves the session untouched.
func (c *Client) Login(ctx context.Context, creds models.LoginRequest) (*models.JwtResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, "/api/auth/login", nil, creds)
	if err != nil {
		return nil, err
	}

	var resp models.JwtResponse
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}

	if resp.RequiresTermsAcceptance {
		return &resp, ErrTermsAcceptanceRequired
	}
	if resp.Token == "" || resp.User == nil {
		if resp.Error != "" {
			return &resp, fmt.Errorf("login rejected: %s", resp.Error)
		}
		return &resp, fmt.Errorf("login response missing token or user")
	}

	if err := c.session.Set(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// Logout clears the persisted session. The token is a stateless JWT, so no
// revocation call is made.
func (c *Client) Logout() {
	c.session.Clear()
}

// RegisterCandidate creates a candidate account. A successful registration
// carries a session, which is persisted exactly as a login is.
func (c *Client) RegisterCandidate(ctx context.Context, reg models.CandidateRegistration) (*models.JwtResponse, error) {
	return c.register(ctx, "/api/candidate/register", reg)
}

// RegisterEmployer creates an employer account.
func (c *Client) RegisterEmployer(ctx context.Context, reg models.EmployerRegistration) (*models.JwtResponse, error) {
	return c.register(ctx, "/api/employer/register", reg)
}

func (c *Client) register(ctx context.Context, path string, payload any) (*models.JwtResponse, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return nil, err
	}

	var resp models.JwtResponse
	if err := c.doJSON(req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil {
		if resp.Error != "" {
			return &resp, fmt.Errorf("registration rejected: %s", resp.Error)
		}
		return &resp, fmt.Errorf("registration response missing token or user")
	}
	if err := c.session.Set(resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return &resp, nil
}

// UpdateEmail changes the account email. The cached user's email is rewritten
// only after the server accepted the change.
func (c *Client) UpdateEmail(ctx context.Context, update models.EmailUpdateRequest) (string, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/auth/update-email", nil, update)
	if err != nil {
		return "", err
	}
	msg, err := c.doText(req)
	if err != nil {
		return "", err
	}
	if err := c.session.UpdateEmail(update.NewEmail); err != nil {
		return "", err
	}
	return msg, nil
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, update models.PasswordUpdateRequest) (string, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, "/api/auth/update-password", nil, update)
	if err != nil {
		return "", err
	}
	return c.doText(req)
}
