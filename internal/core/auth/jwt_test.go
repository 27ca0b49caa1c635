package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-blog-api/internal/domain"
)

func testCodec() *Codec {
	return &Codec{Secret: []byte("test-secret"), Issuer: "blog-api"}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	c := testCodec()

	token, err := c.Issue(42, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	ident, err := c.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if ident.UserID != 42 {
		t.Errorf("UserID = %d, want 42", ident.UserID)
	}
	if ident.Role != domain.RoleAdmin {
		t.Errorf("Role = %q, want admin", ident.Role)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	c := testCodec()

	past := time.Now().Add(-2 * TokenTTL)
	claims := Claims{
		UserID: 1,
		Role:   domain.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.Issuer,
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.Secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Verify(token); err == nil {
		t.Fatal("Verify() accepted an expired token")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := testCodec().Issue(1, domain.RoleMember)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	other := &Codec{Secret: []byte("other-secret"), Issuer: "blog-api"}
	if _, err := other.Verify(token); err == nil {
		t.Fatal("Verify() accepted a token signed with a different secret")
	}
}

func TestVerify_Malformed(t *testing.T) {
	c := testCodec()
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := c.Verify(raw); err == nil {
			t.Errorf("Verify(%q) accepted garbage", raw)
		}
	}
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	c := testCodec()

	claims := Claims{
		UserID: 1,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := c.Verify(token); err == nil {
		t.Fatal("Verify() accepted an alg=none token")
	}
}
