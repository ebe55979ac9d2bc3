package utils

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/isaacwassouf/cricket-betting-service/consts"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret" || !strings.HasPrefix(hash, "$2a$") {
		t.Fatalf("HashPassword() = %q, want a bcrypt hash", hash)
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("CheckPasswordHash() rejected the right password")
	}
	if CheckPasswordHash("S3cret", hash) {
		t.Error("CheckPasswordHash() accepted the wrong password")
	}

	again, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if again == hash {
		t.Error("HashPassword() should salt every hash")
	}
}

func TestCheckPasswordHashRejectsGarbage(t *testing.T) {
	if CheckPasswordHash("anything", "not-a-hash") {
		t.Error("CheckPasswordHash() accepted a malformed hash")
	}
}

func TestBuildTransferReference(t *testing.T) {
	got := BuildTransferReference("merchant@upi", 500)
	if got != "upi://pay?pa=merchant@upi&am=500" {
		t.Errorf("BuildTransferReference() = %q", got)
	}
}

func TestRenderQRCode(t *testing.T) {
	png, err := RenderQRCode(BuildTransferReference("merchant@upi", 500), 128)
	if err != nil {
		t.Fatalf("RenderQRCode() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("RenderQRCode() did not return a PNG")
	}
}

func TestQRCodeURL(t *testing.T) {
	if got := QRCodeURL(consts.QR_CODE_PATH, 250); got != "/payment/payments/qr_code?amount=250" {
		t.Errorf("QRCodeURL() = %q", got)
	}
}

func TestPrincipalTable(t *testing.T) {
	if table, err := PrincipalTable(consts.USER); err != nil || table != consts.USERS_TABLE {
		t.Errorf("PrincipalTable(user) = %q, %v", table, err)
	}
	if table, err := PrincipalTable(consts.ADMIN); err != nil || table != consts.ADMINS_TABLE {
		t.Errorf("PrincipalTable(admin) = %q, %v", table, err)
	}
	if _, err := PrincipalTable("guest"); err == nil {
		t.Error("PrincipalTable(guest) should fail")
	}
}

func TestGenerateRequestID(t *testing.T) {
	a, err := GenerateRequestID()
	if err != nil {
		t.Fatalf("GenerateRequestID() error = %v", err)
	}
	b, err := GenerateRequestID()
	if err != nil {
		t.Fatalf("GenerateRequestID() error = %v", err)
	}
	if len(a) != requestIDLength {
		t.Errorf("GenerateRequestID() length = %d, want %d", len(a), requestIDLength)
	}
	if a == b {
		t.Error("GenerateRequestID() returned the same id twice")
	}
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		keep      bool
	}{
		{name: "nanoid", candidate: "V1StGXR8_Z5j", keep: true},
		{name: "uuid", candidate: "3f2b8c1e-9a4d-4c1b-8e2f-0a1b2c3d4e5f", keep: true},
		{name: "at the limit", candidate: strings.Repeat("a", maxRequestIDLength), keep: true},
		{name: "empty"},
		{name: "too long", candidate: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "header injection", candidate: "abc\r\nSet-Cookie: x=1"},
		{name: "spaces", candidate: "abc def"},
		{name: "markup", candidate: "<script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequestID(tt.candidate)
			if err != nil {
				t.Fatalf("RequestID() error = %v", err)
			}
			if tt.keep {
				if got != tt.candidate {
					t.Errorf("RequestID(%q) = %q, want it unchanged", tt.candidate, got)
				}
				return
			}
			if got == tt.candidate || len(got) != requestIDLength {
				t.Errorf("RequestID(%q) = %q, want a generated id", tt.candidate, got)
			}
		})
	}
}
