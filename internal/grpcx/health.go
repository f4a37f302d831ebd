// Package grpcx exposes the standard grpc.health.v1 service, backed by a
// database ping.
package grpcx

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health entry reported next to the server-wide "" entry.
const ServiceName = "restau.backoffice"

type Pinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	srv *health.Server
	db  Pinger
}

// NewServer builds a gRPC server with the health service registered.
func NewServer(db Pinger) (*grpc.Server, *Health) {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(logUnary))
	h := &Health{srv: health.NewServer(), db: db}
	healthpb.RegisterHealthServer(s, h.srv)
	return s, h
}

// Refresh pings the database and records the result.
func (h *Health) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := h.db.Ping(ctx); err != nil {
		slog.Warn("health: database unreachable", "err", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.srv.SetServingStatus("", st)
	h.srv.SetServingStatus(ServiceName, st)
}

// Run refreshes every interval until ctx is done.
func (h *Health) Run(ctx context.Context, every time.Duration) {
	h.Refresh(ctx)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			h.Refresh(ctx)
		}
	}
}

// Shutdown flips every entry to NOT_SERVING.
func (h *Health) Shutdown() { h.srv.Shutdown() }

func logUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	slog.Debug("grpc", "method", info.FullMethod, "dur", time.Since(start), "err", err)
	return resp, err
}
