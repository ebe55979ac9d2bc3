package rpc

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/modules"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

const ServiceName = "betting.v1.Betting"

// BettingServer is the gRPC surface of the betting service.
type BettingServer interface {
	RegisterUser(context.Context, *models.Registration) (*RegisterResponse, error)
	LoginUser(context.Context, *LoginRequest) (*LoginUserResponse, error)
	RegisterAdmin(context.Context, *models.Registration) (*RegisterResponse, error)
	LoginAdmin(context.Context, *LoginRequest) (*MatchListResponse, error)
	CreateMatch(context.Context, *models.CricketMatch) (*models.CricketMatch, error)
	ListMatches(context.Context, *ListRequest) (*MatchListResponse, error)
	GetMatch(context.Context, *GetRequest) (*models.CricketMatch, error)
	CreatePayment(context.Context, *models.Payment) (*CreatePaymentResponse, error)
	GetPayment(context.Context, *GetRequest) (*models.Payment, error)
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BettingServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("RegisterUser", BettingServer.RegisterUser),
		unaryMethod("LoginUser", BettingServer.LoginUser),
		unaryMethod("RegisterAdmin", BettingServer.RegisterAdmin),
		unaryMethod("LoginAdmin", BettingServer.LoginAdmin),
		unaryMethod("CreateMatch", BettingServer.CreateMatch),
		unaryMethod("ListMatches", BettingServer.ListMatches),
		unaryMethod("GetMatch", BettingServer.GetMatch),
		unaryMethod("CreatePayment", BettingServer.CreatePayment),
		unaryMethod("GetPayment", BettingServer.GetPayment),
	},
	Streams: []grpc.StreamDesc{},
}

// unaryMethod builds the method descriptor dispatching name to call.
func unaryMethod[Req, Resp any](
	name string,
	call func(BettingServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BettingServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BettingServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// NewServer returns a gRPC server exposing the betting service and the
// standard health service.
func NewServer(svc *modules.BettingService) (*grpc.Server, *health.Server) {
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor))
	s.RegisterService(&ServiceDesc, &BettingService{BettingService: svc})

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	return s, healthServer
}

// WatchStore pings the store every interval and flips the health status of
// the service accordingly until ctx is done.
func WatchStore(ctx context.Context, svc *modules.BettingService, hs *health.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := svc.BettingServiceDB.Ping(pingCtx)
			cancel()

			servingStatus := healthpb.HealthCheckResponse_SERVING
			if err != nil {
				log.Printf("store health check failed: %v", err)
				servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
			}
			hs.SetServingStatus(ServiceName, servingStatus)
		}
	}
}

// LoggingInterceptor logs every unary call with its request id, duration
// and status code.
func LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (any, error) {
	candidate := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get("x-request-id"); len(ids) > 0 {
			candidate = ids[0]
		}
	}
	requestID, err := utils.RequestID(candidate)
	if err != nil {
		log.Printf("[gRPC] %s: %v", info.FullMethod, err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	log.Printf("[gRPC] %s | %s | %v | %s", requestID, status.Code(err), time.Since(start), info.FullMethod)
	return resp, err
}

// BettingService adapts the domain services to BettingServer.
type BettingService struct {
	*modules.BettingService
}

func (s *BettingService) register(ctx context.Context, kind consts.PrincipalKind, in *models.Registration) (*RegisterResponse, error) {
	id, err := s.Credentials.Register(ctx, kind, *in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &RegisterResponse{Message: fmt.Sprintf("%s created successfully", displayKind(kind)), ID: id}, nil
}

func (s *BettingService) RegisterUser(ctx context.Context, in *models.Registration) (*RegisterResponse, error) {
	return s.register(ctx, consts.USER, in)
}

func (s *BettingService) RegisterAdmin(ctx context.Context, in *models.Registration) (*RegisterResponse, error) {
	return s.register(ctx, consts.ADMIN, in)
}

func (s *BettingService) LoginUser(ctx context.Context, in *LoginRequest) (*LoginUserResponse, error) {
	if _, err := s.Credentials.Authenticate(ctx, consts.USER, in.Email, in.Password); err != nil {
		return nil, toStatus(err)
	}

	fixtures, err := s.Matches.Fixtures(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &LoginUserResponse{Matches: fixtures}, nil
}

func (s *BettingService) LoginAdmin(ctx context.Context, in *LoginRequest) (*MatchListResponse, error) {
	if _, err := s.Credentials.Authenticate(ctx, consts.ADMIN, in.Email, in.Password); err != nil {
		return nil, toStatus(err)
	}
	return s.ListMatches(ctx, &ListRequest{})
}

func (s *BettingService) CreateMatch(ctx context.Context, in *models.CricketMatch) (*models.CricketMatch, error) {
	match, err := s.Matches.Create(ctx, *in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &match, nil
}

func (s *BettingService) ListMatches(ctx context.Context, _ *ListRequest) (*MatchListResponse, error) {
	matches, err := s.Matches.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &MatchListResponse{Matches: matches}, nil
}

func (s *BettingService) GetMatch(ctx context.Context, in *GetRequest) (*models.CricketMatch, error) {
	match, err := s.Matches.Get(ctx, in.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &match, nil
}

func (s *BettingService) CreatePayment(ctx context.Context, in *models.Payment) (*CreatePaymentResponse, error) {
	intent, err := s.Payments.CreatePayment(ctx, *in)
	if err != nil {
		return nil, toStatus(err)
	}
	return &CreatePaymentResponse{
		Message:   fmt.Sprintf("Payment of %d received successfully.", intent.Payment.Amount),
		Payment:   intent.Payment,
		Reference: intent.Reference,
	}, nil
}

func (s *BettingService) GetPayment(ctx context.Context, in *GetRequest) (*models.Payment, error) {
	payment, err := s.Payments.Get(ctx, in.ID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &payment, nil
}

func displayKind(kind consts.PrincipalKind) string {
	if kind == consts.ADMIN {
		return "Admin"
	}
	return "User"
}
