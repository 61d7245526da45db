package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/ocroft/shiftdesk/internal/config"
	"github.com/ocroft/shiftdesk/pkg/api"
	"github.com/ocroft/shiftdesk/pkg/core/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	API    *api.Client
	Store  *store.Store
	Logger *zap.Logger
	Ctx    context.Context
}
