package api

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timesheet/internal/repository/memory"
	"timesheet/internal/services"
)

// 2024-03-06 is a Wednesday.
var wednesday = time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testAPI struct {
	business BusinessAPI
	catalog  CatalogAPI
	repo     *memory.Store
	clock    *testClock
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	repo := memory.New()
	clock := &testClock{now: wednesday}
	n := 0

	container, err := services.NewServiceContainer(context.Background(), repo,
		services.WithClock(clock.Now),
		services.WithLocation(time.UTC),
		services.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("entry-%d", n)
		}),
	)
	require.NoError(t, err)

	return &testAPI{
		business: NewBusinessAPI(container, WithClock(clock.Now), WithLocation(time.UTC)),
		catalog:  NewCatalogAPI(container),
		repo:     repo,
		clock:    clock,
	}
}

