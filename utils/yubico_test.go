package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"timetrack/config"
)

func TestExtractPublicID(t *testing.T) {
	otp := "cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh"
	id, ok := ExtractPublicID(otp)
	if !ok {
		t.Fatal("valid OTP rejected")
	}
	if id != "cccccbtirncf" {
		t.Errorf("public id = %q, want first 12 chars", id)
	}
}

func TestExtractPublicIDRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"tooshort",
		"CCCCCBTIRNCFJINDHHUVLVHJJNKRBUEJHHNDLBNBLLVH", // uppercase is not modhex
		"aaaaabtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh", // 'a' is not modhex
		"cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllv",  // 43 chars
	}
	for _, otp := range cases {
		if _, ok := ExtractPublicID(otp); ok {
			t.Errorf("ExtractPublicID(%q) accepted", otp)
		}
	}
}

func TestIsValidPublicID(t *testing.T) {
	if !IsValidPublicID("cccccbtirncf") {
		t.Error("valid modhex id rejected")
	}
	if IsValidPublicID("cccccbtirnc") {
		t.Error("11-char id accepted")
	}
	if IsValidPublicID("cccccbtirnca") {
		t.Error("non-modhex character accepted")
	}
}

func TestVerifyOTPAgainstValidationServer(t *testing.T) {
	otp := "cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh"

	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "otp=%s\nstatus=OK\n", r.URL.Query().Get("otp"))
	}))
	defer okServer.Close()

	cfg := &config.Config{YubicoClientID: "1", YubicoServers: []string{okServer.URL}}
	publicID, ok := VerifyOTP(cfg, otp)
	if !ok {
		t.Fatal("valid OTP rejected")
	}
	if publicID != "cccccbtirncf" {
		t.Errorf("public id = %q", publicID)
	}
}

func TestVerifyOTPFallsToNextServer(t *testing.T) {
	otp := "cccccbtirncfjindhhuvlvhjjnkrbuejhhndlbnbllvh"

	badServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badServer.Close()
	replayServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "otp=%s\nstatus=REPLAYED_OTP\n", r.URL.Query().Get("otp"))
	}))
	defer replayServer.Close()

	cfg := &config.Config{YubicoClientID: "1", YubicoServers: []string{badServer.URL, replayServer.URL}}
	if _, ok := VerifyOTP(cfg, otp); ok {
		t.Error("replayed OTP accepted")
	}
}
