package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"dataDir": "./data",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"auth": map[string]any{
			"secretKey": "",
			"demoEmail": "",
		},
		"demo": map[string]any{
			"simulatedLatency": "1s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_DATADIR", want: "storage.dataDir"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
		{envKey: "AUTH_SECRETKEY", want: "auth.secretKey"},
		{envKey: "AUTH_DEMOEMAIL", want: "auth.demoEmail"},
		{envKey: "DEMO_SIMULATEDLATENCY", want: "demo.simulatedLatency"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
