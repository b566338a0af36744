package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("lawrence123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "lawrence123" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("lawrence123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}
