package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/igiffrekt/MusqlApp-sub002/internal/domain/checkin"
	"github.com/igiffrekt/MusqlApp-sub002/internal/shared/query"
)

func seedCheckIns(t *testing.T, db *gorm.DB) checkin.Repository {
	t.Helper()
	repo := NewCheckInRepository(db)
	ctx := context.Background()

	records := []*checkin.CheckIn{
		checkin.NewCheckIn(1, uintPtr(10), uintPtr(5), checkin.MethodCredential, checkin.StatusSuccess, ""),
		checkin.NewCheckIn(1, uintPtr(10), uintPtr(5), checkin.MethodCredential, checkin.StatusDeniedInactive, "member is not active"),
		checkin.NewCheckIn(1, uintPtr(11), nil, checkin.MethodManual, checkin.StatusSuccess, "front desk entry"),
		checkin.NewCheckIn(1, nil, uintPtr(5), checkin.MethodCredential, checkin.StatusDeniedExpired, "credential expired"),
		checkin.NewCheckIn(2, uintPtr(20), uintPtr(6), checkin.MethodCredential, checkin.StatusSuccess, ""),
	}
	for _, rec := range records {
		require.NoError(t, repo.Create(ctx, rec))
	}
	return repo
}

func TestCheckInRepository_Create(t *testing.T) {
	repo := NewCheckInRepository(setupTestDB(t))

	rec := checkin.NewCheckIn(1, uintPtr(10), uintPtr(5), checkin.MethodCredential, checkin.StatusSuccess, "")
	require.NoError(t, repo.Create(context.Background(), rec))
	assert.NotZero(t, rec.ID())
}

func TestCheckInRepository_List_TenantScoping(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))

	list, total, err := repo.List(context.Background(), 1, checkin.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, list, 4)
	for _, rec := range list {
		assert.Equal(t, uint(1), rec.TenantID())
	}
}

func TestCheckInRepository_List_Filters(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))
	ctx := context.Background()

	list, total, err := repo.List(ctx, 1, checkin.Filter{MemberID: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, rec := range list {
		assert.Equal(t, uint(10), *rec.MemberID())
	}

	_, total, err = repo.List(ctx, 1, checkin.Filter{TerminalID: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	list, total, err = repo.List(ctx, 1, checkin.Filter{Status: checkin.StatusDeniedExpired})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].MemberID())
	assert.Equal(t, "credential expired", list[0].Note())
}

func TestCheckInRepository_List_DateRange(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))
	ctx := context.Background()

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)

	_, total, err := repo.List(ctx, 1, checkin.Filter{From: &past, To: &future})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)

	_, total, err = repo.List(ctx, 1, checkin.Filter{To: &past})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCheckInRepository_List_Pagination(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))

	filter := checkin.Filter{BaseFilter: query.NewBaseFilter(query.WithPage(1, 2))}
	list, total, err := repo.List(context.Background(), 1, filter)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	assert.Len(t, list, 2)
}

func TestCheckInRepository_CountByStatus(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))
	ctx := context.Background()

	counts, err := repo.CountByStatus(ctx, 1, checkin.Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[checkin.StatusSuccess])
	assert.EqualValues(t, 1, counts[checkin.StatusDeniedInactive])
	assert.EqualValues(t, 1, counts[checkin.StatusDeniedExpired])
	assert.NotContains(t, counts, checkin.StatusDeniedNoAccess)

	counts, err = repo.CountByStatus(ctx, 1, checkin.Filter{MemberID: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[checkin.StatusSuccess])
	assert.EqualValues(t, 1, counts[checkin.StatusDeniedInactive])
}

func TestCheckInRepository_CountByTerminal(t *testing.T) {
	repo := seedCheckIns(t, setupTestDB(t))

	count, err := repo.CountByTerminal(context.Background(), 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = repo.CountByTerminal(context.Background(), 99)
	require.NoError(t, err)
	assert.Zero(t, count)
}
