package auth

import "testing"

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword("s3cret", hash) {
		t.Fatalf("correct password did not verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	h1, err := HashPassword("same-input", 4)
	if err != nil {
		t.Fatalf("first hash: %v", err)
	}
	h2, err := HashPassword("same-input", 4)
	if err != nil {
		t.Fatalf("second hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same plaintext are identical")
	}
	if !VerifyPassword("same-input", h1) || !VerifyPassword("same-input", h2) {
		t.Fatalf("both hashes must verify the plaintext")
	}
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the default rather than failing.
	hash, err := HashPassword("pw", 99)
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if !VerifyPassword("pw", hash) {
		t.Fatalf("hash with fallback cost did not verify")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if VerifyPassword("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}
