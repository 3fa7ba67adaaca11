package client

import (
	"context"
	"net/http"
)

// Session tracks admin authentication state for a Client. It starts
// unauthenticated; a successful login stores the issued token on the
// underlying client so later calls carry it.
type Session struct {
	client *Client
	email  string
}

func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// Login posts the credential pair and, on success, keeps the returned token.
func (s *Session) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		Admin   struct {
			Email string `json:"email"`
		} `json:"admin"`
	}
	err := s.client.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	s.client.SetToken(resp.Token)
	s.email = resp.Admin.Email
	return nil
}

// Logout drops the stored token, returning the session to the
// unauthenticated state.
func (s *Session) Logout() {
	s.client.SetToken("")
	s.email = ""
}

func (s *Session) Authenticated() bool {
	return s.client.Token() != ""
}

func (s *Session) Email() string {
	return s.email
}
