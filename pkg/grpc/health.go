// Package grpc runs a gRPC server exposing the standard health service so
// orchestrators can probe the process alongside the HTTP listener.
package grpc

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/adityakr/bazaari/pkg/logger"
)

// Server wraps a grpc.Server with its health reporter.
type Server struct {
	srv    *grpc.Server
	health *health.Server
}

// NewServer builds a server with the health service registered.
func NewServer() *Server {
	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)
	return &Server{srv: s, health: h}
}

// Serve listens on addr until Stop is called. Blocks; run in a goroutine.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	logger.Info("grpc server listening", "addr", addr)
	return s.srv.Serve(lis)
}

// SetServing flips the health status for the named service ("" = overall).
func (s *Server) SetServing(service string, up bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if up {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(service, status)
}

// Stop drains in-flight RPCs and shuts the server down.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.srv.GracefulStop()
}
