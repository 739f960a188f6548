package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/anonymous-namo-1/golden-era/api/responses"
	"github.com/anonymous-namo-1/golden-era/pkg/config"
	"github.com/anonymous-namo-1/golden-era/pkg/db"
	pkgerrors "github.com/anonymous-namo-1/golden-era/pkg/errors"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
)

const readinessTimeout = 2 * time.Second

const envHeader = "X-GoldenEra-Env"

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every named dependency and reports 503 when any is down.
// A nil pinger is skipped, which is how optional dependencies opt out.
func HealthReady(cfg *config.Config, deps map[string]db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		var failures error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				failures = multierr.Append(failures, fmt.Errorf("%s: %w", name, err))
				continue
			}
			checks[name] = "up"
		}

		if failures != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, failures, "dependency unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
