package jobseq

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"golang.org/x/net/context"
)

var tracer = otel.Tracer("jobseq")

// Credentials for the vendor's password-grant token endpoint.
// Storage and rotation are the caller's problem.
type Credentials struct {
	Username string
	Password string
}

// Session owns the credentials and the bearer token derived from
// them. One Session serves one synchronous caller; wrap it in your
// own mutex if you ever share it across goroutines.
type Session struct {
	http      *resty.Client
	creds     Credentials
	token     string
	expiresAt time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// tokens without an expires_in hint are renewed after an hour
const defaultTokenLifetime = time.Hour

// renew slightly before the vendor's deadline so an in-flight
// request never carries a token that expires mid-dispatch
const expiryMargin = time.Minute

func NewSession(http *resty.Client, creds Credentials) *Session {
	return &Session{http: http, creds: creds}
}

// Login exchanges the credentials for a fresh bearer token.
func (s *Session) Login(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "session:Login")
	defer span.End()

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", s.creds.Username)
	form.Set("password", s.creds.Password)

	res, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8").
		SetBody(form.Encode()).
		Post("/token")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token endpoint unreachable")
		return &AuthError{Reason: "token endpoint unreachable", Err: err}
	}
	if res.StatusCode() != 200 {
		span.SetStatus(codes.Error, "token endpoint rejected credentials")
		return &AuthError{Reason: "bad credentials", Err: &StatusError{
			Code:    res.StatusCode(),
			Message: string(res.Body()),
		}}
	}

	var token tokenResponse
	err = json.Unmarshal(res.Body(), &token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "token endpoint returned malformed body")
		return &AuthError{Reason: "malformed token response", Err: err}
	}
	if token.AccessToken == "" {
		span.SetStatus(codes.Error, "token endpoint returned no access_token")
		return &AuthError{Reason: "token response missing access_token"}
	}

	lifetime := defaultTokenLifetime
	if token.ExpiresIn > 0 {
		lifetime = time.Duration(token.ExpiresIn) * time.Second
	}
	s.token = token.AccessToken
	s.expiresAt = time.Now().Add(lifetime - expiryMargin)
	return nil
}

// Token returns the current bearer token, logging in first if no
// token is held or the held one has expired.
func (s *Session) Token(ctx context.Context) (string, error) {
	if s.token == "" || time.Now().After(s.expiresAt) {
		if err := s.Login(ctx); err != nil {
			return "", err
		}
	}
	return s.token, nil
}
