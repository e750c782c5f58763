package main

import (
	"testing"

	"netflix-backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_FollowsConfiguredEnvironment(t *testing.T) {
	tests := []struct {
		env  string
		want logrus.Level
	}{
		{"development", logrus.DebugLevel},
		{"DEV", logrus.DebugLevel},
		{"production", logrus.InfoLevel},
		{"test", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			cfg := &config.Config{Server: config.ServerConfig{Environment: tt.env}}

			log := setupLogger(cfg)
			assert.Equal(t, tt.want, log.GetLevel())
			assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
		})
	}
}
