package client

import (
	"errors"
	"fmt"
)

// Landing pages reported after a successful login.
const (
	LandingManager = "manager"
	LandingStore   = "store"
)

// ErrOTPRequired means the store path was about to be attempted with an
// empty token field. No network call is made in that case.
var ErrOTPRequired = errors.New("Please use your hardware token to enter a one-time code")

// LoginError retains both attempt failures. The manager attempt runs
// first and its error is swallowed from the user's view, but kept here
// for debugging.
type LoginError struct {
	ManagerErr error
	StoreErr   error
}

func (e *LoginError) Error() string {
	if e.StoreErr != nil {
		return e.StoreErr.Error()
	}
	if e.ManagerErr != nil {
		return e.ManagerErr.Error()
	}
	return "login failed"
}

type LoginResult struct {
	Session *Session
	Landing string
}

type managerLoginResponse struct {
	Role  string `json:"role"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type storeLoginResponse struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	TotalBoxes int    `json:"total_boxes"`
	Token      string `json:"token"`
}

// Login runs the fixed two-attempt order: manager credential check
// first, then the store path. Any manager failure falls through
// silently. The store path requires a one-time code; an empty code
// short-circuits before any network call. On success the session is
// persisted through store.
func (c *Client) Login(store *SessionStore, username, password, otp string) (*LoginResult, error) {
	loginErr := &LoginError{}

	var manager managerLoginResponse
	err := c.Post("/stores/manager/login", map[string]string{
		"username": username,
		"password": password,
	}, &manager)
	if err == nil && manager.Role == "manager" {
		sess := &Session{Role: "manager", Name: manager.Name, Token: manager.Token}
		if err := store.Save(sess); err != nil {
			return nil, fmt.Errorf("saving session: %w", err)
		}
		c.Token = sess.Token
		return &LoginResult{Session: sess, Landing: LandingManager}, nil
	}
	if err != nil {
		loginErr.ManagerErr = err
	} else {
		loginErr.ManagerErr = fmt.Errorf("unexpected role %q", manager.Role)
	}

	if otp == "" {
		loginErr.StoreErr = ErrOTPRequired
		return nil, loginErr
	}

	var storeResp storeLoginResponse
	err = c.Post("/stores/login", map[string]string{
		"username":    username,
		"password":    password,
		"yubikey_otp": otp,
	}, &storeResp)
	if err != nil {
		loginErr.StoreErr = err
		return nil, loginErr
	}
	if storeResp.Name == "" {
		loginErr.StoreErr = errors.New("login failed")
		return nil, loginErr
	}

	sess := &Session{
		Role:      "store",
		StoreID:   storeResp.Name,
		StoreName: storeResp.Name,
		Token:     storeResp.Token,
	}
	if err := store.Save(sess); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	c.Token = sess.Token
	return &LoginResult{Session: sess, Landing: LandingStore}, nil
}

// Logout clears the local session only. No server call is made.
func Logout(store *SessionStore) error {
	return store.Clear()
}
