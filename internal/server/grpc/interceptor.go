package grpc

import (
	"context"
	"errors"
	"path"
	"sync"
	"time"

	"github.com/dmitrijs2005/futureletter/internal/common"
	pb "github.com/dmitrijs2005/futureletter/internal/proto"
	"github.com/dmitrijs2005/futureletter/internal/server/auth"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	appIDKey  ctxKey = "appID"
)

// Methods callable without an access token.
var publicMethods = map[string]bool{
	pb.FutureLetterService_Ping_FullMethodName:                  true,
	pb.FutureLetterService_SignInAnonymously_FullMethodName:     true,
	pb.FutureLetterService_SignInWithCustomToken_FullMethodName: true,
	pb.FutureLetterService_RefreshToken_FullMethodName:          true,
}

// Methods counted against the per-user write limit.
var writeMethods = map[string]bool{
	pb.FutureLetterService_AddLetter_FullMethodName:    true,
	pb.FutureLetterService_DeleteLetter_FullMethodName: true,
}

// ownerFromContext returns the identity stored by the auth interceptors.
func ownerFromContext(ctx context.Context) (models.Owner, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return models.Owner{}, false
	}
	appID, _ := ctx.Value(appIDKey).(string)
	return models.Owner{AppID: appID, UserID: userID}, true
}

// authenticate verifies the access token in the incoming metadata and
// returns a context carrying the caller's identity.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {
	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	appID := claims.AppID
	if appID == "" {
		appID = common.DefaultAppID
	}

	ctx = context.WithValue(ctx, userIDKey, claims.UserID)
	ctx = context.WithValue(ctx, appIDKey, appID)
	return ctx, nil
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	ctx, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	return handler(ctx, req)
}

// contextStream replaces the context seen by stream handlers.
type contextStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (a *contextStream) Context() context.Context {
	return a.ctx
}

func (s *GRPCServer) streamAccessTokenInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if publicMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	ctx, err := s.authenticate(ss.Context())
	if err != nil {
		return err
	}

	return handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
}

// streamLifetimeInterceptor cancels every stream context once serveCtx is
// done.
func streamLifetimeInterceptor(serveCtx context.Context) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, cancel := context.WithCancel(ss.Context())
		defer cancel()
		stop := context.AfterFunc(serveCtx, cancel)
		defer stop()

		return handler(srv, &contextStream{ServerStream: ss, ctx: ctx})
	}
}

// limiterIdleTTL is the minimum time an owner's bucket is kept after its
// last write.
const limiterIdleTTL = 10 * time.Minute

type ownerBucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// writeLimiter holds one token bucket per owner. Buckets idle long enough
// to have refilled are dropped, so the map only tracks recent writers.
type writeLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
	limiters  map[models.Owner]*ownerBucket
}

func newWriteLimiter(limit rate.Limit, burst int) *writeLimiter {
	if burst < 1 {
		burst = 1
	}

	idle := limiterIdleTTL
	if limit > 0 {
		if refill := time.Duration(float64(burst) / float64(limit) * float64(time.Second)); refill > idle {
			idle = refill
		}
	}

	return &writeLimiter{
		limit:    limit,
		burst:    burst,
		idle:     idle,
		now:      time.Now,
		limiters: make(map[models.Owner]*ownerBucket),
	}
}

func (w *writeLimiter) allow(owner models.Owner) bool {
	if w.limit <= 0 {
		return true
	}

	w.mu.Lock()
	now := w.now()
	if now.Sub(w.lastSweep) >= w.idle {
		w.sweep(now)
	}
	b, ok := w.limiters[owner]
	if !ok {
		b = &ownerBucket{lim: rate.NewLimiter(w.limit, w.burst)}
		w.limiters[owner] = b
	}
	b.lastSeen = now
	w.mu.Unlock()

	return b.lim.AllowN(now, 1)
}

// sweep drops buckets unused for w.idle. Callers hold w.mu.
func (w *writeLimiter) sweep(now time.Time) {
	for owner, b := range w.limiters {
		if now.Sub(b.lastSeen) >= w.idle {
			delete(w.limiters, owner)
		}
	}
	w.lastSweep = now
}

func (w *writeLimiter) size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.limiters)
}

// rateLimitInterceptor runs after authentication, so the owner is known.
func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if !writeMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	owner, ok := ownerFromContext(ctx)
	if ok && !s.limiter.allow(owner) {
		s.logger.Warn(ctx, "write rate limit exceeded", "user_id", owner.UserID, "method", path.Base(info.FullMethod))
		return nil, status.Error(codes.ResourceExhausted, "too many writes, slow down")
	}

	return handler(ctx, req)
}

func (s *GRPCServer) metricsUnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	s.metrics.RPCRequests.WithLabelValues(path.Base(info.FullMethod), status.Code(err).String()).Inc()
	return resp, err
}

func (s *GRPCServer) metricsStreamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	err := handler(srv, ss)
	s.metrics.RPCRequests.WithLabelValues(path.Base(info.FullMethod), status.Code(err).String()).Inc()
	return err
}
