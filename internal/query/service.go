package query

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"PoolLedger/internal/ledger"
	"PoolLedger/internal/observability"
	"PoolLedger/internal/state"
)

// QueryService provides read-only access to the projection tables. All
// responses carry as_of_sequence (the projection watermark) for freshness
// semantics. Owner and whitelist are genesis-fixed configuration, so they
// are answered from memory rather than the database.
type QueryService struct {
	db        *sql.DB
	metrics   *observability.Metrics
	owner     string
	whitelist map[string]bool
}

func NewQueryService(db *sql.DB, ownerAddress string, whitelist []string, metrics *observability.Metrics) *QueryService {
	wl := make(map[string]bool, len(whitelist))
	for _, addr := range whitelist {
		wl[state.NormalizeAddress(addr)] = true
	}

	return &QueryService{
		db:        db,
		metrics:   metrics,
		owner:     state.NormalizeAddress(ownerAddress),
		whitelist: wl,
	}
}

// GetBalance returns a user's spendable balance. Owners the ledger has
// never touched report the starting balance, mirroring the lazy funding
// the core performs on first stake.
func (qs *QueryService) GetBalance(ctx context.Context, owner string) (_ *BalanceResponse, err error) {
	defer qs.track("get_balance", time.Now(), &err)

	owner = state.NormalizeAddress(owner)
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	path := ledger.NewUserAccountKey(owner, ledger.SubTypeBalance).AccountPath()
	balance, found, err := qs.getProjectedBalance(ctx, path)
	if err != nil {
		return nil, err
	}
	if !found {
		balance = ledger.StartingBalance
	}

	return &BalanceResponse{
		Owner:        owner,
		Balance:      balance,
		AsOfSequence: asOfSeq,
	}, nil
}

// GetUserBets returns all bet records for a user, drained pairs included.
func (qs *QueryService) GetUserBets(ctx context.Context, owner string) (_ []BetRecord, err error) {
	defer qs.track("get_user_bets", time.Now(), &err)

	owner = state.NormalizeAddress(owner)
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT app_id, amount, updated_at_us
		FROM projections.bets
		WHERE owner = $1
		ORDER BY app_id
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bets []BetRecord
	for rows.Next() {
		b := BetRecord{Owner: owner, AsOfSequence: asOfSeq}
		if err := rows.Scan(&b.AppID, &b.Amount, &b.UpdatedAtUs); err != nil {
			return nil, err
		}
		bets = append(bets, b)
	}

	return bets, rows.Err()
}

// GetUserAppBet returns the bet amount for one (owner, application) pair.
func (qs *QueryService) GetUserAppBet(ctx context.Context, owner, appID string) (_ int64, err error) {
	defer qs.track("get_user_app_bet", time.Now(), &err)

	var amount int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT amount FROM projections.bets WHERE owner = $1 AND app_id = $2
	`, state.NormalizeAddress(owner), appID).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return amount, err
}

// GetAppTotalBet returns the aggregate stake locked against an application.
func (qs *QueryService) GetAppTotalBet(ctx context.Context, appID string) (_ int64, err error) {
	defer qs.track("get_app_total_bet", time.Now(), &err)

	path := ledger.NewAppAccountKey(appID, ledger.SubTypeTotalBet).AccountPath()
	total, _, err := qs.getProjectedBalance(ctx, path)
	return total, err
}

// GetAppContribution returns an application's lifetime stake inflow.
func (qs *QueryService) GetAppContribution(ctx context.Context, appID string) (_ int64, err error) {
	defer qs.track("get_app_contribution", time.Now(), &err)

	path := ledger.NewAppAccountKey(appID, ledger.SubTypeContribution).AccountPath()
	total, _, err := qs.getProjectedBalance(ctx, path)
	return total, err
}

// GetPoolAmount returns the global reward pool balance.
func (qs *QueryService) GetPoolAmount(ctx context.Context) (_ int64, err error) {
	defer qs.track("get_pool_amount", time.Now(), &err)

	pool, _, err := qs.getProjectedBalance(ctx, ledger.PoolAccountKey().AccountPath())
	return pool, err
}

// GetActiveUsersCount counts owners holding at least one bet record.
// Drained records are kept at zero, so an owner who redeemed everything
// still counts; reward-only owners with no bets never do.
func (qs *QueryService) GetActiveUsersCount(ctx context.Context) (_ int64, err error) {
	defer qs.track("get_active_users_count", time.Now(), &err)

	var count int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT owner) FROM projections.bets
	`).Scan(&count)
	return count, err
}

// GetTopApps returns the highest-ranked applications by total bet.
// A non-positive limit selects the reward table size.
func (qs *QueryService) GetTopApps(ctx context.Context, limit int) ([]RankedApp, error) {
	if limit <= 0 {
		limit = ledger.TopAppCount
	}
	return qs.rankApps(ctx, "get_top_apps", limit)
}

// GetAppRanking returns the full unbounded ranking.
func (qs *QueryService) GetAppRanking(ctx context.Context) ([]RankedApp, error) {
	return qs.rankApps(ctx, "get_app_ranking", 0)
}

// rankApps orders total-bet registers descending, application id ascending
// on ties, matching the settlement ranking. Registers without a metadata
// record still rank; they are flagged unregistered.
func (qs *QueryService) rankApps(ctx context.Context, endpoint string, limit int) (_ []RankedApp, err error) {
	defer qs.track(endpoint, time.Now(), &err)

	query := `
		SELECT split_part(b.account_path, ':', 2) AS app_id,
		       b.balance,
		       COALESCE(a.name, ''),
		       a.app_id IS NOT NULL AS registered,
		       (SELECT COUNT(*) FROM projections.bets pb
		        WHERE pb.app_id = split_part(b.account_path, ':', 2)
		          AND pb.amount > 0) AS supporters
		FROM projections.balances b
		LEFT JOIN projections.applications a
		       ON a.app_id = split_part(b.account_path, ':', 2)
		WHERE b.account_path LIKE 'app:%:total_bet'
		ORDER BY b.balance DESC, app_id ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := qs.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []RankedApp
	for rows.Next() {
		r := RankedApp{Rank: int32(len(ranked) + 1)}
		if err := rows.Scan(&r.AppID, &r.TotalBet, &r.Name, &r.Registered, &r.Supporters); err != nil {
			return nil, err
		}
		ranked = append(ranked, r)
	}

	return ranked, rows.Err()
}

// GetLeaderboard returns the top earners of one window. Window is one of
// "daily", "weekly", "monthly".
func (qs *QueryService) GetLeaderboard(ctx context.Context, window string, limit int) (_ []LeaderboardEntry, err error) {
	defer qs.track("get_leaderboard", time.Now(), &err)

	switch window {
	case "daily", "weekly", "monthly":
	default:
		return nil, fmt.Errorf("unknown earnings window %q", window)
	}
	if limit <= 0 {
		limit = 10
	}

	pattern := fmt.Sprintf("user:%%:%s_earnings", window)
	rows, err := qs.db.QueryContext(ctx, `
		SELECT split_part(account_path, ':', 2) AS owner, balance
		FROM projections.balances
		WHERE account_path LIKE $1 AND balance > 0
		ORDER BY balance DESC, owner ASC
		LIMIT $2
	`, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var board []LeaderboardEntry
	for rows.Next() {
		e := LeaderboardEntry{Rank: int32(len(board) + 1)}
		if err := rows.Scan(&e.Owner, &e.Earnings); err != nil {
			return nil, err
		}
		board = append(board, e)
	}

	return board, rows.Err()
}

// GetEarnings returns one user's accumulated earnings across all windows.
func (qs *QueryService) GetEarnings(ctx context.Context, owner string) (_ *EarningsSummary, err error) {
	defer qs.track("get_earnings", time.Now(), &err)

	owner = state.NormalizeAddress(owner)
	asOfSeq, err := qs.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	summary := &EarningsSummary{Owner: owner, AsOfSequence: asOfSeq}
	for _, w := range []struct {
		subType ledger.AccountSubType
		dest    *int64
	}{
		{ledger.SubTypeDailyEarnings, &summary.Daily},
		{ledger.SubTypeWeeklyEarnings, &summary.Weekly},
		{ledger.SubTypeMonthlyEarnings, &summary.Monthly},
	} {
		path := ledger.NewUserAccountKey(owner, w.subType).AccountPath()
		v, _, err := qs.getProjectedBalance(ctx, path)
		if err != nil {
			return nil, err
		}
		*w.dest = v
	}

	return summary, nil
}

// GetAppInfo returns metadata plus register balances for one application.
// Returns nil when the application is not registered.
func (qs *QueryService) GetAppInfo(ctx context.Context, appID string) (_ *AppInfoResponse, err error) {
	defer qs.track("get_app_info", time.Now(), &err)

	info := &AppInfoResponse{AppID: appID}
	err = qs.db.QueryRowContext(ctx, `
		SELECT name, description, added_at_us, is_active
		FROM projections.applications
		WHERE app_id = $1
	`, appID).Scan(&info.Name, &info.Description, &info.AddedAtUs, &info.IsActive)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if info.TotalBet, _, err = qs.getProjectedBalance(ctx,
		ledger.NewAppAccountKey(appID, ledger.SubTypeTotalBet).AccountPath()); err != nil {
		return nil, err
	}
	if info.Contribution, _, err = qs.getProjectedBalance(ctx,
		ledger.NewAppAccountKey(appID, ledger.SubTypeContribution).AccountPath()); err != nil {
		return nil, err
	}

	return info, nil
}

// GetAllApps returns every registered application.
func (qs *QueryService) GetAllApps(ctx context.Context) (_ []AppInfoResponse, err error) {
	defer qs.track("get_all_apps", time.Now(), &err)

	rows, err := qs.db.QueryContext(ctx, `
		SELECT a.app_id, a.name, a.description, a.added_at_us, a.is_active,
		       COALESCE(t.balance, 0), COALESCE(c.balance, 0)
		FROM projections.applications a
		LEFT JOIN projections.balances t ON t.account_path = 'app:' || a.app_id || ':total_bet'
		LEFT JOIN projections.balances c ON c.account_path = 'app:' || a.app_id || ':contribution'
		ORDER BY a.app_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []AppInfoResponse
	for rows.Next() {
		var a AppInfoResponse
		if err := rows.Scan(
			&a.AppID, &a.Name, &a.Description, &a.AddedAtUs, &a.IsActive,
			&a.TotalBet, &a.Contribution,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	return apps, rows.Err()
}

// GetLastSettleTime returns the last accepted settlement timestamp.
func (qs *QueryService) GetLastSettleTime(ctx context.Context) (_ int64, err error) {
	defer qs.track("get_last_settle_time", time.Now(), &err)

	var ts int64
	err = qs.db.QueryRowContext(ctx, `
		SELECT last_settle_us FROM projections.status WHERE id = TRUE
	`).Scan(&ts)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return ts, err
}

// GetOwner returns the operator address.
func (qs *QueryService) GetOwner() string {
	return qs.owner
}

// IsWhitelisted answers admin-set membership.
func (qs *QueryService) IsWhitelisted(addr string) bool {
	return qs.whitelist[state.NormalizeAddress(addr)]
}

// --- Admin APIs ---

// VerifyIntegrity checks hash chain continuity over the op log and scans
// the balance projections for negative registers. The economy is not
// zero-sum, so there is no global sum check; non-negativity is the
// invariant that must hold everywhere.
func (qs *QueryService) VerifyIntegrity(ctx context.Context) (_ *IntegrityReport, err error) {
	defer qs.track("verify_integrity", time.Now(), &err)

	report := &IntegrityReport{}

	rows, err := qs.db.QueryContext(ctx, `
		SELECT o1.sequence
		FROM op_log.ops o1
		JOIN op_log.ops o2 ON o2.sequence = o1.sequence - 1
		WHERE o1.prev_hash != o2.state_hash
		ORDER BY o1.sequence
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	negRows, err := qs.db.QueryContext(ctx, `
		SELECT account_path FROM projections.balances
		WHERE balance < 0
		ORDER BY account_path
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer negRows.Close()

	for negRows.Next() {
		var path string
		if err := negRows.Scan(&path); err != nil {
			return nil, err
		}
		report.NegativeAccounts = append(report.NegativeAccounts, path)
	}
	if err := negRows.Err(); err != nil {
		return nil, err
	}

	report.IsHealthy = len(report.HashChainBreaks) == 0 && len(report.NegativeAccounts) == 0
	return report, nil
}

// --- helpers ---

func (qs *QueryService) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.watermark WHERE worker_id = 'main'
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}

func (qs *QueryService) getProjectedBalance(ctx context.Context, accountPath string) (int64, bool, error) {
	var balance int64
	err := qs.db.QueryRowContext(ctx, `
		SELECT balance FROM projections.balances WHERE account_path = $1
	`, accountPath).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return balance, true, nil
}

func (qs *QueryService) track(endpoint string, start time.Time, errp *error) {
	if qs.metrics == nil {
		return
	}

	status := "ok"
	if *errp != nil {
		status = "error"
		qs.metrics.QueryErrors.WithLabelValues(endpoint, "db").Inc()
	}
	qs.metrics.QueryRequests.WithLabelValues(endpoint, status).Inc()
	qs.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
