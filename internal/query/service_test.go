package query_test

import (
	"PoolLedger/internal/persistence"
	"PoolLedger/internal/query"
	"PoolLedger/internal/testutil"
	"context"
	"database/sql"
	"testing"
)

const ownerAddr = "0xadmin00000000000000000000000000000000000"

func setupQueryService(t *testing.T) (*query.QueryService, *sql.DB, func()) {
	t.Helper()
	db, cleanup := testutil.SetupTestDB(t)

	migrator := persistence.NewMigrator(db, "../../migrations")
	if err := migrator.Up(context.Background()); err != nil {
		cleanup()
		t.Fatalf("apply migrations: %v", err)
	}

	qs := query.NewQueryService(db, ownerAddr, []string{ownerAddr}, nil)
	return qs, db, cleanup
}

func mustExec(t *testing.T, db *sql.DB, stmt string, args ...interface{}) {
	t.Helper()
	if _, err := db.Exec(stmt, args...); err != nil {
		t.Fatalf("exec %q: %v", stmt, err)
	}
}

func TestGetActiveUsersCount_CountsBetOwners(t *testing.T) {
	qs, db, cleanup := setupQueryService(t)
	defer cleanup()

	// 0xuser1 fully redeemed; the zero-amount record still counts them
	mustExec(t, db, `
		INSERT INTO projections.bets (owner, app_id, amount, updated_at_us)
		VALUES ('0xuser1', 'app-a', 0, 1), ('0xuser2', 'app-a', 5, 1), ('0xuser2', 'app-b', 7, 1)
	`)
	// Reward-only owner: holds a balance row but never bet
	mustExec(t, db, `
		INSERT INTO projections.balances (account_path, balance)
		VALUES ('user:0xuser3:balance', 40)
	`)

	count, err := qs.GetActiveUsersCount(context.Background())
	if err != nil {
		t.Fatalf("GetActiveUsersCount: %v", err)
	}
	if count != 2 {
		t.Errorf("active users = %d, want 2 (distinct bet owners, drained included)", count)
	}
}

func TestGetTopApps_SupportersCount(t *testing.T) {
	qs, db, cleanup := setupQueryService(t)
	defer cleanup()

	mustExec(t, db, `
		INSERT INTO projections.balances (account_path, balance)
		VALUES ('app:app-a:total_bet', 50), ('app:app-b:total_bet', 30)
	`)
	mustExec(t, db, `
		INSERT INTO projections.applications (app_id, name, description, added_at_us)
		VALUES ('app-a', 'App A', '', 1)
	`)
	// Drained records do not count as supporters
	mustExec(t, db, `
		INSERT INTO projections.bets (owner, app_id, amount, updated_at_us)
		VALUES ('0xuser1', 'app-a', 20, 1), ('0xuser2', 'app-a', 0, 1), ('0xuser3', 'app-b', 30, 1)
	`)

	ranked, err := qs.GetTopApps(context.Background(), 10)
	if err != nil {
		t.Fatalf("GetTopApps: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 ranked apps, got %d", len(ranked))
	}

	if ranked[0].AppID != "app-a" || ranked[0].Supporters != 1 || !ranked[0].Registered {
		t.Errorf("rank 1 = %+v, want app-a with 1 supporter, registered", ranked[0])
	}
	if ranked[1].AppID != "app-b" || ranked[1].Supporters != 1 || ranked[1].Registered {
		t.Errorf("rank 2 = %+v, want app-b with 1 supporter, unregistered", ranked[1])
	}
}
