package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"blob": map[string]any{
			"bucketUrl":     "mem://",
			"publicBaseUrl": "",
		},
		"identity": map[string]any{
			"secretKey":  "",
			"sessionTtl": "24h",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BLOB_BUCKETURL", want: "blob.bucketUrl"},
		{envKey: "BLOB_PUBLICBASEURL", want: "blob.publicBaseUrl"},
		{envKey: "IDENTITY_SECRETKEY", want: "identity.secretKey"},
		{envKey: "IDENTITY_SESSIONTTL", want: "identity.sessionTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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
