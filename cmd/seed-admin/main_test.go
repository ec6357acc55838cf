package main

import "testing"

func TestAdminCreds(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantEmail string
		wantErr   bool
	}{
		{
			name:      "both set",
			env:       map[string]string{"ADMIN_EMAIL": "beheer@uitjes.nl", "ADMIN_PASSWORD": "geheim123"},
			wantEmail: "beheer@uitjes.nl",
		},
		{
			name:      "email is trimmed and lowercased",
			env:       map[string]string{"ADMIN_EMAIL": "  Beheer@Uitjes.NL ", "ADMIN_PASSWORD": "geheim123"},
			wantEmail: "beheer@uitjes.nl",
		},
		{
			name:    "missing email",
			env:     map[string]string{"ADMIN_PASSWORD": "geheim123"},
			wantErr: true,
		},
		{
			name:    "missing password",
			env:     map[string]string{"ADMIN_EMAIL": "beheer@uitjes.nl"},
			wantErr: true,
		},
		{
			name:    "blank email after trimming",
			env:     map[string]string{"ADMIN_EMAIL": "   ", "ADMIN_PASSWORD": "geheim123"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, password, err := adminCreds(func(k string) string { return tt.env[k] })
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got email=%q", email)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if email != tt.wantEmail {
				t.Errorf("email = %q, want %q", email, tt.wantEmail)
			}
			if password != tt.env["ADMIN_PASSWORD"] {
				t.Errorf("password = %q, want %q", password, tt.env["ADMIN_PASSWORD"])
			}
		})
	}
}
