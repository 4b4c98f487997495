// Package grpc exposes the identity and letter services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/logging"
	pb "github.com/dmitrijs2005/futureletter/internal/proto"
	"github.com/dmitrijs2005/futureletter/internal/server/config"
	"github.com/dmitrijs2005/futureletter/internal/server/metrics"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/dmitrijs2005/futureletter/internal/server/services"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
)

type userSvc interface {
	SignInAnonymously(ctx context.Context, appID string) (*services.Session, error)
	SignInWithCustomToken(ctx context.Context, appID, token string) (*services.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.Session, error)
}

type letterSvc interface {
	Add(ctx context.Context, owner models.Owner, letter *models.Letter) (*models.Letter, error)
	Delete(ctx context.Context, owner models.Owner, id string) (bool, error)
	Watch(ctx context.Context, owner models.Owner, emit func([]*models.Letter) error) error
}

// stopTimeout bounds GracefulStop before in-flight calls are cut off.
const stopTimeout = 5 * time.Second

type GRPCServer struct {
	pb.UnimplementedFutureLetterServiceServer
	address   string
	users     userSvc
	letters   letterSvc
	logger    logging.Logger
	metrics   *metrics.Metrics
	limiter   *writeLimiter
	jwtSecret []byte
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, us userSvc, ls letterSvc, mt *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:   cfg.EndpointAddrGRPC,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		letters:   ls,
		metrics:   mt,
		limiter:   newWriteLimiter(rate.Limit(cfg.WriteRateLimit), cfg.WriteBurst),
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// newServer builds a grpc.Server with the interceptor chains and the
// service registered. Streams opened on it end when serveCtx is done.
func (s *GRPCServer) newServer(serveCtx context.Context) *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.metricsUnaryInterceptor, s.accessTokenInterceptor, s.rateLimitInterceptor),
		grpc.ChainStreamInterceptor(s.metricsStreamInterceptor, streamLifetimeInterceptor(serveCtx), s.streamAccessTokenInterceptor),
	)
	pb.RegisterFutureLetterServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully. Cancelling ctx also ends open Subscribe streams; calls still
// running after stopTimeout are closed forcibly.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-stopped:
		case <-time.After(stopTimeout):
			s.logger.Warn(ctx, "graceful stop timed out, closing connections")
			srv.Stop()
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
