package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		DatabaseURL:       "mongodb://localhost:27017",
		DatabaseName:      "resourcecal",
		MaxRequestsPerMin: 100,
		Timezone:          "UTC",
		ResourceLockTTL:   10 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing database url", func(c *Config) { c.DatabaseURL = " " }, "DATABASE_URL"},
		{"missing database name", func(c *Config) { c.DatabaseName = "" }, "DATABASE_NAME"},
		{"zero rate limit", func(c *Config) { c.MaxRequestsPerMin = 0 }, "MAX_REQUESTS_PER_MIN"},
		{"negative hold", func(c *Config) { c.ReservationHold = -time.Minute }, "negative"},
		{"unknown zone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "TIMEZONE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tc.wantErr)
			}
		})
	}
}

func TestConfig_AllowedOrigins(t *testing.T) {
	c := Config{CORSOrigins: "https://a.example, https://b.example,,"}
	got := c.AllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("AllowedOrigins = %v", got)
	}
}

func TestConfig_LocationFallsBackToUTC(t *testing.T) {
	if loc := (Config{Timezone: "Mars/Olympus"}).Location(); loc != time.UTC {
		t.Errorf("Location = %v, want UTC", loc)
	}
}
