package logger_test

import (
	"testing"

	"github.com/MikeRez0/bakery/internal/adapter/config"
	"github.com/MikeRez0/bakery/internal/adapter/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		conf    config.App
		wantNil bool
	}{
		{name: "develop", conf: config.App{LogLevel: "debug", Mode: config.AppModeDevelop}},
		{name: "production", conf: config.App{LogLevel: "info", Mode: config.AppModeProduction}},
		{name: "bad level", conf: config.App{LogLevel: "loud", Mode: config.AppModeProduction}, wantNil: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := logger.NewLogger(&test.conf)
			if test.wantNil {
				assert.Nil(t, l)
				return
			}
			assert.NotNil(t, l)
		})
	}
}
