package credential

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !Verify("s3cret", hash) {
		t.Fatalf("Verify rejected the correct password")
	}
	if Verify("wrong", hash) {
		t.Fatalf("Verify accepted a wrong password")
	}
}

func TestIsHashed(t *testing.T) {
	hash, err := Hash("anything")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !IsHashed(hash) {
		t.Fatalf("freshly generated hash not recognized: %s", hash)
	}

	cases := []struct {
		stored string
		want   bool
	}{
		{"$2a$10$abcdefghijklmnopqrstuv", true},
		{"$2b$12$abcdefghijklmnopqrstuv", true},
		{"$2y$10$abcdefghijklmnopqrstuv", true},
		{"plaintext-password", false},
		{"", false},
		{"$1$legacy-md5-format", false},
	}
	for _, tc := range cases {
		if got := IsHashed(tc.stored); got != tc.want {
			t.Errorf("IsHashed(%q) = %v, want %v", tc.stored, got, tc.want)
		}
	}
}

func TestVerify_NonHashStored(t *testing.T) {
	// A legacy plaintext value is never a valid bcrypt hash; Verify must
	// reject rather than panic.
	if Verify("password", "password") {
		t.Fatalf("Verify must reject a non-bcrypt stored value")
	}
}
