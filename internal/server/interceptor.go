package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/jromarion/arc-classifier/internal/common"
)

// RequestIDInterceptor tags every call with a request id and logs its
// outcome. Handlers can pull the id back out with
// common.RequestIDFromContext for correlated log lines.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed",
				"request_id", reqID, "method", info.FullMethod,
				"duration_ms", time.Since(start).Milliseconds(), "error", err)
			return resp, err
		}
		logger.Debug("rpc ok",
			"request_id", reqID, "method", info.FullMethod,
			"duration_ms", time.Since(start).Milliseconds())
		return resp, nil
	}
}
