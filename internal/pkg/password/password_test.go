package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("admin123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "admin123456" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !Verify("admin123456", hash) {
		t.Error("correct password should verify")
	}
	if Verify("wrong-password", hash) {
		t.Error("wrong password should not verify")
	}
}
