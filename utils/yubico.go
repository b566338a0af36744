package utils

import (
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"timetrack/config"
)

// A YubiKey OTP is 44 modhex characters: the first 12 are the key's
// public ID, the rest a rolling one-time code only YubiCloud can check.
const (
	OTPLength      = 44
	PublicIDLength = 12
)

var modhexID = regexp.MustCompile(`^[cbdefghijklnrtuv]{12}$`)

// ExtractPublicID validates an OTP's shape and returns its public ID.
func ExtractPublicID(otp string) (string, bool) {
	if len(otp) != OTPLength {
		return "", false
	}
	publicID := otp[:PublicIDLength]
	if !modhexID.MatchString(publicID) {
		return "", false
	}
	return publicID, true
}

// IsValidPublicID reports whether s looks like a registered key's
// public ID.
func IsValidPublicID(s string) bool {
	return modhexID.MatchString(s)
}

// VerifyOTP checks an OTP against the YubiCloud validation servers,
// trying each in turn until one answers. Returns the key's public ID on
// success. Network failures on all servers count as invalid.
func VerifyOTP(cfg *config.Config, otp string) (string, bool) {
	publicID, ok := ExtractPublicID(otp)
	if !ok {
		return "", false
	}

	client := &http.Client{Timeout: 3 * time.Second}
	params := url.Values{}
	params.Set("id", cfg.YubicoClientID)
	params.Set("otp", otp)
	params.Set("nonce", "timetrackverify16")

	for _, server := range cfg.YubicoServers {
		resp, err := client.Get(server + "?" + params.Encode())
		if err != nil {
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil || resp.StatusCode != http.StatusOK {
			continue
		}
		text := string(body)
		if strings.Contains(text, "status=OK") && strings.Contains(text, "otp="+otp) {
			return publicID, true
		}
	}

	return "", false
}
