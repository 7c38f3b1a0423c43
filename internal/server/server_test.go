package server

import (
	"testing"

	"github.com/aitbenali/go-office-board/internal/config"
	"github.com/aitbenali/go-office-board/internal/handler"
	"github.com/aitbenali/go-office-board/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestNewServer_NoTransportsConfigured(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}
