package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/futureletter/internal/common"
	pb "github.com/dmitrijs2005/futureletter/internal/proto"
	"github.com/dmitrijs2005/futureletter/internal/server/models"
	"github.com/dmitrijs2005/futureletter/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignInAnonymously(ctx context.Context, req *pb.SignInAnonymouslyRequest) (*pb.SessionResponse, error) {
	sess, err := s.users.SignInAnonymously(ctx, req.AppId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Anonymous sign-in", "user_id", sess.UserID, "app_id", req.AppId)
	return toSessionResponse(sess), nil
}

func (s *GRPCServer) SignInWithCustomToken(ctx context.Context, req *pb.SignInWithCustomTokenRequest) (*pb.SessionResponse, error) {
	sess, err := s.users.SignInWithCustomToken(ctx, req.AppId, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Custom token sign-in", "user_id", sess.UserID, "app_id", req.AppId)
	return toSessionResponse(sess), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.SessionResponse, error) {
	sess, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return toSessionResponse(sess), nil
}

func (s *GRPCServer) AddLetter(ctx context.Context, req *pb.AddLetterRequest) (*pb.AddLetterResponse, error) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "missing identity")
	}

	letter, err := s.letters.Add(ctx, owner, &models.Letter{
		Title:             req.Title,
		Content:           req.Content,
		RecipientEmail:    req.RecipientEmail,
		SenderName:        req.SenderName,
		DeliveryTimestamp: req.DeliveryTimestamp,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Debug(ctx, "Letter added", "id", letter.ID, "user_id", owner.UserID)
	return &pb.AddLetterResponse{Letter: toPBLetter(letter)}, nil
}

func (s *GRPCServer) DeleteLetter(ctx context.Context, req *pb.DeleteLetterRequest) (*pb.DeleteLetterResponse, error) {
	owner, ok := ownerFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Internal, "missing identity")
	}

	deleted, err := s.letters.Delete(ctx, owner, req.Id)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.DeleteLetterResponse{Deleted: deleted}, nil
}

// Subscribe streams a full snapshot of the caller's pending letters, first
// immediately and then after every change, until the client goes away.
func (s *GRPCServer) Subscribe(req *pb.SubscribeRequest, stream pb.FutureLetterService_SubscribeServer) error {
	ctx := stream.Context()

	owner, ok := ownerFromContext(ctx)
	if !ok {
		return status.Error(codes.Internal, "missing identity")
	}

	s.logger.Debug(ctx, "Subscription opened", "user_id", owner.UserID)
	defer s.logger.Debug(ctx, "Subscription closed", "user_id", owner.UserID)

	err := s.letters.Watch(ctx, owner, func(letters []*models.Letter) error {
		return stream.Send(toSnapshot(letters))
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return s.toStatus(ctx, err)
	}

	return nil
}

// toStatus maps service errors to gRPC status codes. Unknown errors are
// logged and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, "refresh token expired")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func toSessionResponse(sess *services.Session) *pb.SessionResponse {
	return &pb.SessionResponse{
		UserId:       sess.UserID,
		Anonymous:    sess.Anonymous,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}
}

func toPBLetter(l *models.Letter) *pb.Letter {
	return &pb.Letter{
		Id:                l.ID,
		Title:             l.Title,
		Content:           l.Content,
		RecipientEmail:    l.RecipientEmail,
		SenderName:        l.SenderName,
		DeliveryTimestamp: l.DeliveryTimestamp,
		Sent:              l.Sent,
		CreatedAt:         timestamppb.New(l.CreatedAt),
	}
}

func toSnapshot(letters []*models.Letter) *pb.Snapshot {
	out := &pb.Snapshot{Letters: make([]*pb.Letter, 0, len(letters))}
	for _, l := range letters {
		out.Letters = append(out.Letters, toPBLetter(l))
	}
	return out
}
