// Package testutil holds helpers shared by package tests.
package testutil

import (
	"github.com/stretchr/testify/mock"
	"weatherbot.app/internal/mocks"
)

const maxLogFields = 8

// PermissiveLogger returns a Logger mock that accepts any log call with up to
// maxLogFields fields at every level.
func PermissiveLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *mocks.Logger {
	logger := mocks.NewLogger(t)
	AllowLogging(logger)
	return logger
}

// AllowLogging registers optional expectations for every level and arity
func AllowLogging(logger *mocks.Logger) {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		for n := 1; n <= maxLogFields+1; n++ {
			args := make([]interface{}, n)
			for i := range args {
				args[i] = mock.Anything
			}
			logger.On(level, args...).Maybe()
		}
	}
}
