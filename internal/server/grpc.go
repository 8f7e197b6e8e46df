package server

import (
	"PoolLedger/internal/ingestion"
	"PoolLedger/internal/observability"
	"PoolLedger/internal/persistence"
	"PoolLedger/internal/projection"
	"PoolLedger/internal/query"
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	adminv1 "PoolLedger/gen/go/poolledger/admin/v1"
	ingestv1 "PoolLedger/gen/go/poolledger/ingest/v1"
	queryv1 "PoolLedger/gen/go/poolledger/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB               *sql.DB
	QueryService     *query.QueryService
	IngestService    *ingestion.GRPCIngestService
	SnapshotMgr      *persistence.SnapshotManager
	SnapshotRequests chan<- struct{}
	StartTime        time.Time
	HealthChecker    *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{qs: deps.QueryService})
	ingestv1.RegisterIngestServiceServer(grpcServer, &ingestServiceImpl{svc: deps.IngestService})
	adminv1.RegisterAdminServiceServer(grpcServer, &adminServiceImpl{
		db:               deps.DB,
		snapMgr:          deps.SnapshotMgr,
		snapshotRequests: deps.SnapshotRequests,
		queryService:     deps.QueryService,
		startTime:        deps.StartTime,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON is served for tooling, dashboards, curl; /metrics and the
// health endpoints share the port.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}
	if err := ingestv1.RegisterIngestServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register ingest gateway: %w", err)
	}
	if err := adminv1.RegisterAdminServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register admin gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs *query.QueryService
}

func (s *queryServiceImpl) GetBalance(ctx context.Context, req *queryv1.GetBalanceRequest) (*queryv1.GetBalanceResponse, error) {
	if req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}

	bal, err := s.qs.GetBalance(ctx, req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get balance: %v", err)
	}

	return &queryv1.GetBalanceResponse{
		Owner:        bal.Owner,
		Balance:      bal.Balance,
		AsOfSequence: bal.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) ListUserBets(ctx context.Context, req *queryv1.ListUserBetsRequest) (*queryv1.ListUserBetsResponse, error) {
	if req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}

	bets, err := s.qs.GetUserBets(ctx, req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user bets: %v", err)
	}

	resp := &queryv1.ListUserBetsResponse{Owner: req.Owner}
	for _, b := range bets {
		resp.Bets = append(resp.Bets, &queryv1.BetRecord{
			AppId:       b.AppID,
			Amount:      b.Amount,
			UpdatedAtUs: b.UpdatedAtUs,
		})
		resp.AsOfSequence = b.AsOfSequence
	}

	return resp, nil
}

func (s *queryServiceImpl) GetEarnings(ctx context.Context, req *queryv1.GetEarningsRequest) (*queryv1.GetEarningsResponse, error) {
	if req.Owner == "" {
		return nil, status.Error(codes.InvalidArgument, "owner is required")
	}

	summary, err := s.qs.GetEarnings(ctx, req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get earnings: %v", err)
	}

	return &queryv1.GetEarningsResponse{
		Owner:        summary.Owner,
		Daily:        summary.Daily,
		Weekly:       summary.Weekly,
		Monthly:      summary.Monthly,
		AsOfSequence: summary.AsOfSequence,
	}, nil
}

func (s *queryServiceImpl) GetAppInfo(ctx context.Context, req *queryv1.GetAppInfoRequest) (*queryv1.GetAppInfoResponse, error) {
	if req.AppId == "" {
		return nil, status.Error(codes.InvalidArgument, "app_id is required")
	}

	info, err := s.qs.GetAppInfo(ctx, req.AppId)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get app info: %v", err)
	}
	if info == nil {
		return nil, status.Errorf(codes.NotFound, "application %s is not registered", req.AppId)
	}

	return &queryv1.GetAppInfoResponse{App: toProtoAppInfo(info)}, nil
}

func (s *queryServiceImpl) ListApps(ctx context.Context, req *queryv1.ListAppsRequest) (*queryv1.ListAppsResponse, error) {
	apps, err := s.qs.GetAllApps(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list apps: %v", err)
	}

	resp := &queryv1.ListAppsResponse{}
	for i := range apps {
		resp.Apps = append(resp.Apps, toProtoAppInfo(&apps[i]))
	}
	return resp, nil
}

func (s *queryServiceImpl) ListTopApps(ctx context.Context, req *queryv1.ListTopAppsRequest) (*queryv1.ListTopAppsResponse, error) {
	ranked, err := s.qs.GetTopApps(ctx, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "top apps: %v", err)
	}

	return &queryv1.ListTopAppsResponse{Apps: toProtoRankedApps(ranked)}, nil
}

func (s *queryServiceImpl) GetAppRanking(ctx context.Context, req *queryv1.GetAppRankingRequest) (*queryv1.GetAppRankingResponse, error) {
	ranked, err := s.qs.GetAppRanking(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "app ranking: %v", err)
	}

	return &queryv1.GetAppRankingResponse{Apps: toProtoRankedApps(ranked)}, nil
}

func (s *queryServiceImpl) GetLeaderboard(ctx context.Context, req *queryv1.GetLeaderboardRequest) (*queryv1.GetLeaderboardResponse, error) {
	entries, err := s.qs.GetLeaderboard(ctx, req.Window, int(req.Limit))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "leaderboard: %v", err)
	}

	resp := &queryv1.GetLeaderboardResponse{Window: req.Window}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &queryv1.LeaderboardEntry{
			Rank:     e.Rank,
			Owner:    e.Owner,
			Earnings: e.Earnings,
		})
	}
	return resp, nil
}

func (s *queryServiceImpl) GetPoolStatus(ctx context.Context, req *queryv1.GetPoolStatusRequest) (*queryv1.GetPoolStatusResponse, error) {
	pool, err := s.qs.GetPoolAmount(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "pool amount: %v", err)
	}

	users, err := s.qs.GetActiveUsersCount(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "active users: %v", err)
	}

	lastSettle, err := s.qs.GetLastSettleTime(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "last settle: %v", err)
	}

	return &queryv1.GetPoolStatusResponse{
		PoolAmount:   pool,
		ActiveUsers:  users,
		Owner:        s.qs.GetOwner(),
		LastSettleUs: lastSettle,
	}, nil
}

func (s *queryServiceImpl) IsWhitelisted(ctx context.Context, req *queryv1.IsWhitelistedRequest) (*queryv1.IsWhitelistedResponse, error) {
	if req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "address is required")
	}

	return &queryv1.IsWhitelistedResponse{
		Whitelisted: s.qs.IsWhitelisted(req.Address),
	}, nil
}

func toProtoAppInfo(info *query.AppInfoResponse) *queryv1.AppInfo {
	return &queryv1.AppInfo{
		AppId:        info.AppID,
		Name:         info.Name,
		Description:  info.Description,
		AddedAtUs:    info.AddedAtUs,
		IsActive:     info.IsActive,
		TotalBet:     info.TotalBet,
		Contribution: info.Contribution,
	}
}

func toProtoRankedApps(ranked []query.RankedApp) []*queryv1.RankedApp {
	var out []*queryv1.RankedApp
	for _, r := range ranked {
		out = append(out, &queryv1.RankedApp{
			Rank:       r.Rank,
			AppId:      r.AppID,
			TotalBet:   r.TotalBet,
			Name:       r.Name,
			Registered: r.Registered,
			Supporters: r.Supporters,
		})
	}
	return out
}

// ============================================================================
// IngestService gRPC implementation
// ============================================================================

type ingestServiceImpl struct {
	ingestv1.UnimplementedIngestServiceServer
	svc *ingestion.GRPCIngestService
}

func (s *ingestServiceImpl) SubmitStake(ctx context.Context, req *ingestv1.SubmitStakeRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitStake(ctx, req.Caller, req.AppId, req.Amount); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "submit stake: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) SubmitRedeem(ctx context.Context, req *ingestv1.SubmitRedeemRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitRedeem(ctx, req.Caller, req.AppId, req.Amount); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "submit redeem: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) SubmitSettle(ctx context.Context, req *ingestv1.SubmitSettleRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitSettle(ctx, req.Caller); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "submit settle: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) AddApplication(ctx context.Context, req *ingestv1.AddApplicationRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitAddApplication(ctx, req.Caller, req.AppId, req.Name, req.Description); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "add application: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) RemoveApplication(ctx context.Context, req *ingestv1.RemoveApplicationRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitRemoveApplication(ctx, req.Caller, req.AppId); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "remove application: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

func (s *ingestServiceImpl) InjectPool(ctx context.Context, req *ingestv1.InjectPoolRequest) (*ingestv1.SubmitResponse, error) {
	if err := s.svc.SubmitInjectPool(ctx, req.Caller, req.Amount); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "inject pool: %v", err)
	}
	return &ingestv1.SubmitResponse{Accepted: true}, nil
}

// ============================================================================
// AdminService gRPC implementation
// ============================================================================

type adminServiceImpl struct {
	adminv1.UnimplementedAdminServiceServer
	db               *sql.DB
	snapMgr          *persistence.SnapshotManager
	snapshotRequests chan<- struct{}
	queryService     *query.QueryService
	startTime        time.Time
}

func (s *adminServiceImpl) TakeSnapshot(ctx context.Context, req *adminv1.TakeSnapshotRequest) (*adminv1.TakeSnapshotResponse, error) {
	// Snapshots are cut by the orchestrator between ops; this only queues
	// the request.
	select {
	case s.snapshotRequests <- struct{}{}:
		return &adminv1.TakeSnapshotResponse{Requested: true}, nil
	default:
		return &adminv1.TakeSnapshotResponse{Requested: false}, nil
	}
}

func (s *adminServiceImpl) RebuildProjections(ctx context.Context, req *adminv1.RebuildProjectionsRequest) (*adminv1.RebuildProjectionsResponse, error) {
	if err := projection.RebuildProjections(ctx, s.db); err != nil {
		return nil, status.Errorf(codes.Internal, "rebuild failed: %v", err)
	}
	return &adminv1.RebuildProjectionsResponse{Completed: true}, nil
}

func (s *adminServiceImpl) GetOpLogInfo(ctx context.Context, req *adminv1.GetOpLogInfoRequest) (*adminv1.GetOpLogInfoResponse, error) {
	latestSeq, err := s.snapMgr.GetLatestSequence(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get latest sequence: %v", err)
	}

	return &adminv1.GetOpLogInfoResponse{
		LastSequence: latestSeq,
	}, nil
}

func (s *adminServiceImpl) VerifyIntegrity(ctx context.Context, req *adminv1.VerifyIntegrityRequest) (*adminv1.VerifyIntegrityResponse, error) {
	report, err := s.queryService.VerifyIntegrity(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "verify integrity: %v", err)
	}

	resp := &adminv1.VerifyIntegrityResponse{
		Passed: report.IsHealthy,
	}

	if !report.IsHealthy {
		if len(report.HashChainBreaks) > 0 {
			resp.FirstMismatchSequence = report.HashChainBreaks[0]
		}
		resp.ErrorDetail = fmt.Sprintf("%d hash chain breaks, %d negative accounts",
			len(report.HashChainBreaks), len(report.NegativeAccounts))
	}

	return resp, nil
}
