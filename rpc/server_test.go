package rpc

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/testutil"
)

func newTestConn(t *testing.T) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s, _ := NewServer(testutil.NewService(t))
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("failed to dial bufnet: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func invoke(ctx context.Context, conn *grpc.ClientConn, method string, in, out any) error {
	return conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(CodecName))
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestRegisterAndLoginOverGRPC(t *testing.T) {
	conn := newTestConn(t)
	ctx := testContext(t)

	user := &models.Registration{FullName: "Asha", DateOfBirth: "1990-01-01", Email: "a@x.io", Password: "pw1", Phone: "999"}
	var registered RegisterResponse
	if err := invoke(ctx, conn, "RegisterUser", user, &registered); err != nil {
		t.Fatalf("RegisterUser error = %v", err)
	}
	if registered.ID <= 0 || registered.Message != "User created successfully" {
		t.Errorf("RegisterUser = %+v", registered)
	}

	err := invoke(ctx, conn, "RegisterUser", user, &registered)
	if status.Code(err) != codes.AlreadyExists {
		t.Errorf("duplicate RegisterUser code = %v, want AlreadyExists", status.Code(err))
	}

	match := &models.CricketMatch{
		MatchName:    "Final",
		Team1:        "India",
		Team2:        "Australia",
		MatchDate:    models.NewTimestamp(time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)),
		Venue:        "MCG",
		Team1Players: models.Roster{"A"},
		Team2Players: models.Roster{"B"},
	}
	var created models.CricketMatch
	if err := invoke(ctx, conn, "CreateMatch", match, &created); err != nil {
		t.Fatalf("CreateMatch error = %v", err)
	}

	var login LoginUserResponse
	if err := invoke(ctx, conn, "LoginUser", &LoginRequest{Email: "a@x.io", Password: "pw1"}, &login); err != nil {
		t.Fatalf("LoginUser error = %v", err)
	}
	if strings.Join(login.Matches, ",") != "India vs Australia" {
		t.Errorf("LoginUser matches = %v", login.Matches)
	}

	err = invoke(ctx, conn, "LoginUser", &LoginRequest{Email: "a@x.io", Password: "nope"}, &login)
	if status.Code(err) != codes.Unauthenticated {
		t.Errorf("LoginUser with wrong password code = %v, want Unauthenticated", status.Code(err))
	}

	var got models.CricketMatch
	if err := invoke(ctx, conn, "GetMatch", &GetRequest{ID: created.ID}, &got); err != nil {
		t.Fatalf("GetMatch error = %v", err)
	}
	if got.Venue != "MCG" || !got.MatchDate.Equal(match.MatchDate.Time) {
		t.Errorf("GetMatch = %+v", got)
	}

	err = invoke(ctx, conn, "GetMatch", &GetRequest{ID: 404}, &got)
	if status.Code(err) != codes.NotFound {
		t.Errorf("GetMatch missing code = %v, want NotFound", status.Code(err))
	}
}

func TestAdminAndPaymentsOverGRPC(t *testing.T) {
	conn := newTestConn(t)
	ctx := testContext(t)

	admin := &models.Registration{Email: "root@x.io", Password: "rootpw"}
	var registered RegisterResponse
	if err := invoke(ctx, conn, "RegisterAdmin", admin, &registered); err != nil {
		t.Fatalf("RegisterAdmin error = %v", err)
	}
	if registered.Message != "Admin created successfully" {
		t.Errorf("RegisterAdmin = %+v", registered)
	}

	var matches MatchListResponse
	if err := invoke(ctx, conn, "LoginAdmin", &LoginRequest{Email: "root@x.io", Password: "rootpw"}, &matches); err != nil {
		t.Fatalf("LoginAdmin error = %v", err)
	}
	if matches.Matches == nil || len(matches.Matches) != 0 {
		t.Errorf("LoginAdmin matches = %#v, want empty", matches.Matches)
	}

	var paid CreatePaymentResponse
	payment := &models.Payment{Email: "a@x.io", Name: "Asha", Mobile: "999", Country: "IN", State: "MH", City: "Pune", Amount: 500}
	if err := invoke(ctx, conn, "CreatePayment", payment, &paid); err != nil {
		t.Fatalf("CreatePayment error = %v", err)
	}
	if !strings.Contains(paid.Reference, "am=500") || paid.Payment.ID <= 0 {
		t.Errorf("CreatePayment = %+v", paid)
	}

	var stored models.Payment
	if err := invoke(ctx, conn, "GetPayment", &GetRequest{ID: paid.Payment.ID}, &stored); err != nil {
		t.Fatalf("GetPayment error = %v", err)
	}
	if stored != paid.Payment {
		t.Errorf("GetPayment = %+v, want %+v", stored, paid.Payment)
	}

	payment.Amount = 0
	err := invoke(ctx, conn, "CreatePayment", payment, &paid)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("CreatePayment with zero amount code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestHealthService(t *testing.T) {
	conn := newTestConn(t)

	resp, err := healthpb.NewHealthClient(conn).Check(testContext(t), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		t.Fatalf("Check error = %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("status = %v, want SERVING", resp.GetStatus())
	}
}
