package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnings(t *testing.T) {
	seed := uint64(7)

	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "dev with key",
			cfg:  Config{Environment: EnvironmentDev, APIKey: "k", AllowedOrigins: []string{"*"}, RNGSeed: &seed},
			want: nil,
		},
		{
			name: "example key",
			cfg:  Config{Environment: EnvironmentDev, APIKey: ExampleAPIKey},
			want: []string{WarnMsgExampleAPIKey},
		},
		{
			name: "production without key, wildcard origins and fixed seed",
			cfg:  Config{Environment: EnvironmentProduction, AllowedOrigins: []string{"https://a", "*"}, RNGSeed: &seed},
			want: []string{WarnMsgNoAPIKey, WarnMsgWildcardOrigins, WarnMsgFixedSeed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Warnings())
		})
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	clearEnvVars(t)
	cfg, err := Parse()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.ServiceName = ""
	assert.ErrorContains(t, cfg.Validate(), ErrMsgInvalidConfig)
}
