package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/futureletter/internal/client/models"
	"github.com/dmitrijs2005/futureletter/internal/common"
	pb "github.com/dmitrijs2005/futureletter/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient talks to the FutureLetter server. It holds the current token
// pair and is safe for concurrent use.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.FutureLetterServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	onRotate     func(string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

// isTokenExpired reports whether err is the server's "token expired" reply.
func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

// refresh exchanges the refresh token for a new pair and reports the
// rotation to the registered listener.
func (s *GRPCClient) refresh(ctx context.Context) error {
	_, refreshToken := s.tokens()
	if refreshToken == "" {
		return errors.New("no refresh token")
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return err
	}

	s.setTokens(resp.AccessToken, resp.RefreshToken)

	s.mu.RLock()
	fn := s.onRotate
	s.mu.RUnlock()
	if fn != nil {
		fn(resp.RefreshToken)
	}
	return nil
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	accessToken, _ := s.tokens()

	err := invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
	if err == nil || !isTokenExpired(err) || method == pb.FutureLetterService_RefreshToken_FullMethodName {
		return err
	}

	if rerr := s.refresh(ctx); rerr != nil {
		return err
	}

	// tokens refreshed, retrying once with the new access token
	accessToken, _ = s.tokens()
	return invoker(withAccessToken(ctx, accessToken), method, req, reply, cc, opts...)
}

// streamAccessTokenInterceptor attaches the access token to new streams.
// Expiry on a server stream surfaces on the first Recv and is handled in
// Subscribe.
func (s *GRPCClient) streamAccessTokenInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	accessToken, _ := s.tokens()
	return streamer(withAccessToken(ctx, accessToken), desc, cc, method, opts...)
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.streamAccessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewFutureLetterServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) OnTokensRotated(fn func(refreshToken string)) {
	s.mu.Lock()
	s.onRotate = fn
	s.mu.Unlock()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) useSession(resp *pb.SessionResponse) *Identity {
	s.setTokens(resp.AccessToken, resp.RefreshToken)
	return &Identity{UserID: resp.GetUserId(), Anonymous: resp.GetAnonymous(), RefreshToken: resp.GetRefreshToken()}
}

func (s *GRPCClient) SignInAnonymously(ctx context.Context, appID string) (*Identity, error) {
	resp, err := s.client.SignInAnonymously(ctx, &pb.SignInAnonymouslyRequest{AppId: appID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.useSession(resp), nil
}

func (s *GRPCClient) SignInWithCustomToken(ctx context.Context, appID, token string) (*Identity, error) {
	resp, err := s.client.SignInWithCustomToken(ctx, &pb.SignInWithCustomTokenRequest{AppId: appID, Token: token})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.useSession(resp), nil
}

// RefreshSession resumes a previous session from a stored refresh token.
func (s *GRPCClient) RefreshSession(ctx context.Context, refreshToken string) (*Identity, error) {
	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.useSession(resp), nil
}

func (s *GRPCClient) AddLetter(ctx context.Context, l models.Letter) (*models.Letter, error) {
	resp, err := s.client.AddLetter(ctx, &pb.AddLetterRequest{
		Title:             l.Title,
		Content:           l.Content,
		RecipientEmail:    l.RecipientEmail,
		SenderName:        l.SenderName,
		DeliveryTimestamp: l.DeliveryTimestamp,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Letter == nil {
		return nil, errors.New("rpc error: empty response")
	}

	created := fromPBLetter(resp.Letter)
	return &created, nil
}

func (s *GRPCClient) DeleteLetter(ctx context.Context, id string) (bool, error) {
	resp, err := s.client.DeleteLetter(ctx, &pb.DeleteLetterRequest{Id: id})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Deleted, nil
}

// Subscribe opens the snapshot stream. If the first receive reports an
// expired access token, the pair is refreshed and the stream reopened once.
func (s *GRPCClient) Subscribe(ctx context.Context) (SnapshotStream, error) {
	stream, first, err := s.openStream(ctx)
	if err != nil && isTokenExpired(err) {
		if rerr := s.refresh(ctx); rerr == nil {
			stream, first, err = s.openStream(ctx)
		}
	}
	if err != nil {
		return nil, s.mapError(err)
	}

	return &snapshotStream{client: s, stream: stream, first: first}, nil
}

func (s *GRPCClient) openStream(ctx context.Context) (pb.FutureLetterService_SubscribeClient, *pb.Snapshot, error) {
	stream, err := s.client.Subscribe(ctx, &pb.SubscribeRequest{})
	if err != nil {
		return nil, nil, err
	}
	first, err := stream.Recv()
	if err != nil {
		return nil, nil, err
	}
	return stream, first, nil
}

type snapshotStream struct {
	client *GRPCClient
	stream pb.FutureLetterService_SubscribeClient
	first  *pb.Snapshot
}

func (x *snapshotStream) Recv() ([]models.Letter, error) {
	snap := x.first
	x.first = nil

	if snap == nil {
		var err error
		snap, err = x.stream.Recv()
		if err != nil {
			return nil, x.client.mapError(err)
		}
	}

	out := make([]models.Letter, 0, len(snap.Letters))
	for _, l := range snap.Letters {
		if l != nil {
			out = append(out, fromPBLetter(l))
		}
	}
	return out, nil
}

func fromPBLetter(l *pb.Letter) models.Letter {
	out := models.Letter{
		ID:                l.GetId(),
		Title:             l.GetTitle(),
		Content:           l.GetContent(),
		RecipientEmail:    l.GetRecipientEmail(),
		SenderName:        l.GetSenderName(),
		DeliveryTimestamp: l.GetDeliveryTimestamp(),
		Sent:              l.GetSent(),
	}
	if ts := l.GetCreatedAt(); ts != nil {
		out.CreatedAt = ts.AsTime()
	}
	return out
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.ResourceExhausted:
		return ErrRateLimited
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
