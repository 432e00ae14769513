package nakama

import (
	"testing"

	jwt "github.com/form3tech-oss/jwt-go"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("SignedString() error: %v", err)
	}
	return token
}

func TestExtractUserIDFromToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    string
		wantErr bool
	}{
		{name: "Valid", token: signedToken(t, jwt.MapClaims{"uid": "user-1", "usn": "someone"}), want: "user-1"},
		{name: "MissingUID", token: signedToken(t, jwt.MapClaims{"usn": "someone"}), wantErr: true},
		{name: "NumericUID", token: signedToken(t, jwt.MapClaims{"uid": 42}), wantErr: true},
		{name: "Garbage", token: "not-a-token", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := extractUserIDFromToken(test.token)
			if test.wantErr {
				if err == nil {
					t.Fatalf("extractUserIDFromToken() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("extractUserIDFromToken() error: %v", err)
			}
			if got != test.want {
				t.Fatalf("extractUserIDFromToken() = %q, want %q", got, test.want)
			}
		})
	}
}
