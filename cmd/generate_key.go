package main

import (
	"crypto/rand"
	"fmt"
	"log"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

func main() {
	// Generate exactly 32 random characters for PASETO v4 symmetric key
	key := make([]byte, 32)
	randomBytes := make([]byte, 32)

	_, err := rand.Read(randomBytes)
	if err != nil {
		log.Fatal("Failed to generate random key:", err)
	}

	for i := 0; i < 32; i++ {
		key[i] = charset[int(randomBytes[i])%len(charset)]
	}

	fmt.Println("Generated PASETO V4 symmetric key:")
	fmt.Printf("\nPASETO_SYMMETRIC_KEY=%s\n", string(key))
}
