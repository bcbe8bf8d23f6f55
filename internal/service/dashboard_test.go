package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zivilschutz/schutzraum-api/internal/adapters/memstore"
	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
	"github.com/zivilschutz/schutzraum-api/internal/testutil"
)

func TestDashboardStats(t *testing.T) {
	now := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	svc := NewDashboardService(DashboardServiceOptions{
		Shelters: memstore.NewShelterRepo([]*model.Shelter{
			testutil.NewShelter("a").WithCapacity(100).WithNextInspection(now.AddDate(0, 0, 10)).Build(),
			testutil.NewShelter("b").WithCapacity(200).WithStatus(model.ShelterStatusLimited).WithNextInspection(now.AddDate(0, 6, 0)).Build(),
			testutil.NewShelter("c").WithCapacity(50).WithStatus(model.ShelterStatusPlanned).WithApproval(model.ApprovalPending).WithNextInspection(now.AddDate(0, 0, 29)).Build(),
		}),
		Now: func() time.Time { return now },
	})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalShelters)
	assert.Equal(t, 1, stats.ActiveShelters)
	assert.Equal(t, 1, stats.LimitedShelters)
	assert.Equal(t, 1, stats.PlannedShelters)
	assert.Equal(t, 0, stats.InactiveShelters)
	assert.Equal(t, 350, stats.TotalCapacity)
	assert.Equal(t, 1, stats.PendingApprovals)
	assert.Equal(t, 2, stats.InspectionsDue)
}

func TestDashboardStatsByState(t *testing.T) {
	svc := NewDashboardService(DashboardServiceOptions{
		Shelters: memstore.NewShelterRepo([]*model.Shelter{
			testutil.NewShelter("a").WithState("Berlin").WithCapacity(100).Build(),
			testutil.NewShelter("b").WithState("Bayern").WithCity("München").WithCapacity(300).Build(),
		}),
	})

	stats, err := svc.StatsByState(context.Background(), "Bayern")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalShelters)
	assert.Equal(t, 300, stats.TotalCapacity)
}

func TestDashboardRegionalBreakdown(t *testing.T) {
	svc := NewDashboardService(DashboardServiceOptions{
		Shelters: memstore.NewShelterRepo([]*model.Shelter{
			testutil.NewShelter("a").WithState("Berlin").WithCapacity(100).Build(),
			testutil.NewShelter("b").WithState("Berlin").WithCapacity(150).Build(),
			testutil.NewShelter("c").WithState("Hamburg").WithCity("Hamburg").WithCapacity(80).Build(),
		}),
	})

	breakdown, err := svc.RegionalBreakdown(context.Background())
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Berlin", breakdown[0].State)
	assert.Equal(t, 2, breakdown[0].ShelterCount)
	assert.Equal(t, 250, breakdown[0].TotalCapacity)
	assert.Equal(t, "Hamburg", breakdown[1].State)
}
