// Package gatewayfx provides Fx modules for wiring a gateway into an
// application container.
//
// Example:
//
//	app := fx.New(
//	    gatewayfx.ConfigModule,
//	    gatewayfx.Module,
//	    fx.Provide(newObservability),
//	    fx.Invoke(run),
//	)
package gatewayfx

import (
	"go.uber.org/fx"

	"github.com/Greatversion/httpkit/pkg/connectivity"
	"github.com/Greatversion/httpkit/pkg/gateway"
	"github.com/Greatversion/httpkit/pkg/observability"
)

// Module provides a connectivity.Checker and a *gateway.Gateway.
// Requires a Config and an observability.Observability in the container.
var Module = fx.Module("gateway",
	fx.Provide(NewChecker),
	fx.Provide(NewGateway),
)

// NewChecker creates the default dial-based connectivity checker.
func NewChecker() connectivity.Checker {
	return connectivity.NewDialChecker()
}

// NewGateway creates a gateway from config.
func NewGateway(cfg Config, obs observability.Observability, checker connectivity.Checker) (*gateway.Gateway, error) {
	return gateway.New(cfg.BaseURL, obs,
		gateway.WithConnectTimeout(cfg.ConnectTimeout),
		gateway.WithReceiveTimeout(cfg.ReceiveTimeout),
		gateway.WithChecker(checker),
	)
}
