package minio

import "testing"

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantHost   string
		wantSecure bool
		wantErr    bool
	}{
		{
			name:       "https URL",
			raw:        "https://acc.r2.cloudflarestorage.com",
			wantHost:   "acc.r2.cloudflarestorage.com",
			wantSecure: true,
		},
		{
			name:       "http URL with port",
			raw:        "http://localhost:9000",
			wantHost:   "localhost:9000",
			wantSecure: false,
		},
		{
			name:       "bare host defaults to TLS",
			raw:        "s3.amazonaws.com",
			wantHost:   "s3.amazonaws.com",
			wantSecure: true,
		},
		{
			name:    "scheme only",
			raw:     "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, secure, err := parseEndpoint(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q, got host=%q", tt.raw, host)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if host != tt.wantHost {
				t.Errorf("Expected host %q, got %q", tt.wantHost, host)
			}
			if secure != tt.wantSecure {
				t.Errorf("Expected secure=%v, got %v", tt.wantSecure, secure)
			}
		})
	}
}
