package factory_test

import (
	"testing"

	factory "github.com/dansamargiu/FactoryContainer"
	"github.com/dansamargiu/FactoryContainer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_EmptyContainer(t *testing.T) {
	t.Parallel()

	c := factory.New()

	assert.Nil(t, factory.Resolve[testutil.Logger](c))
	assert.Nil(t, factory.Resolve[testutil.UserService](c))
}

func TestResolve_InstanceBinding(t *testing.T) {
	t.Parallel()

	c := factory.New()
	logger := testutil.NewConsoleLogger()
	require.NoError(t, factory.RegisterInstance[testutil.Logger](c, logger))

	first := factory.Resolve[testutil.Logger](c)
	second := factory.Resolve[testutil.Logger](c)

	require.NotNil(t, first)
	assert.Same(t, logger, first)
	assert.Same(t, logger, second)
	assert.Equal(t, logger.InstanceID(), first.InstanceID())
}

func TestResolve_TypeBinding_FreshInstances(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))

	first := factory.Resolve[testutil.Logger](c)
	second := factory.Resolve[testutil.Logger](c)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.InstanceID(), second.InstanceID())
}

func TestResolve_TwoLevelGraph(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))

	first := factory.Resolve[testutil.Database](c)
	require.NotNil(t, first)
	require.NotNil(t, first.Logger(), "dependency must be constructed and injected")

	second := factory.Resolve[testutil.Database](c)
	require.NotNil(t, second)

	// Fresh graph per resolve: both the root and its dependency differ.
	assert.NotEqual(t, first.InstanceID(), second.InstanceID())
	assert.NotEqual(t, first.Logger().InstanceID(), second.Logger().InstanceID())
}

func TestResolve_SharedSingletonDependency(t *testing.T) {
	t.Parallel()

	c := factory.New()
	logger := testutil.NewConsoleLogger()
	require.NoError(t, factory.RegisterInstance[testutil.Logger](c, logger))
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))

	first := factory.Resolve[testutil.Database](c)
	second := factory.Resolve[testutil.Database](c)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.InstanceID(), second.InstanceID())
	assert.Same(t, logger, first.Logger())
	assert.Same(t, logger, second.Logger())
}

func TestResolve_FullGraph(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))
	require.NoError(t, factory.RegisterType[testutil.Cache](c, testutil.NewMapCache))
	require.NoError(t, factory.RegisterType[testutil.UserService](c, testutil.NewUserService))

	svc := factory.Resolve[testutil.UserService](c)

	require.NotNil(t, svc)
	require.NotNil(t, svc.DB())
	require.NotNil(t, svc.Cache())
	require.NotNil(t, svc.DB().Logger())
	assert.Equal(t, `rows for "user:1"`, svc.User(1))
}

func TestResolve_DiamondGraph(t *testing.T) {
	t.Parallel()

	// ReportService -> Database -> Logger and ReportService -> AuditTrail
	// -> Logger: the same interface is resolved at two sibling positions
	// of one chain. The ancestor path pops Logger on exit from the first
	// branch, so the second branch must not be mistaken for a cycle.

	t.Run("shared singleton at both corners", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		logger := testutil.NewConsoleLogger()
		require.NoError(t, factory.RegisterInstance[testutil.Logger](c, logger))
		require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))
		require.NoError(t, factory.RegisterType[testutil.AuditTrail](c, testutil.NewMemoryAuditTrail))
		require.NoError(t, factory.RegisterType[testutil.ReportService](c, testutil.NewReportService))

		svc := factory.Resolve[testutil.ReportService](c)

		require.NotNil(t, svc)
		require.NotNil(t, svc.DB())
		require.NotNil(t, svc.Audit())
		assert.Same(t, logger, svc.DB().Logger())
		assert.Same(t, logger, svc.Audit().Logger())
	})

	t.Run("type-bound corner built once per branch", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))
		require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))
		require.NoError(t, factory.RegisterType[testutil.AuditTrail](c, testutil.NewMemoryAuditTrail))
		require.NoError(t, factory.RegisterType[testutil.ReportService](c, testutil.NewReportService))

		svc := factory.Resolve[testutil.ReportService](c)

		require.NotNil(t, svc)
		require.NotNil(t, svc.DB())
		require.NotNil(t, svc.Audit())
		require.NotNil(t, svc.DB().Logger(), "first branch must resolve Logger")
		require.NotNil(t, svc.Audit().Logger(), "second branch must resolve Logger again, not report a cycle")
		assert.NotEqual(t, svc.DB().Logger().InstanceID(), svc.Audit().Logger().InstanceID())
	})
}

func TestResolve_TypedNilConstructorResult(t *testing.T) {
	t.Parallel()

	// A constructor that returns a nil pointer without an error still
	// produces a value: the resolved interface wraps the typed nil and
	// does not compare equal to the absent marker.
	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Logger](c, func() *testutil.ConsoleLogger {
		return nil
	}))

	out := factory.Resolve[testutil.Logger](c)
	assert.False(t, out == nil)
}

func TestResolve_DirectCycle(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Echo](c, testutil.NewEchoService))

	// Echo depends on Echo: the outer resolve must come up empty instead
	// of recursing forever.
	assert.Nil(t, factory.Resolve[testutil.Echo](c))

	// The chain state is per call; an unrelated resolve still succeeds.
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))
	assert.NotNil(t, factory.Resolve[testutil.Logger](c))
}

func TestResolve_IndirectCycle(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Ping](c, testutil.NewPingService))
	require.NoError(t, factory.RegisterType[testutil.Pong](c, testutil.NewPongService))

	// Ping -> Pong -> Ping. The cycle guard breaks the recursion and the
	// detected cycle fails the whole resolve, for either member.
	assert.Nil(t, factory.Resolve[testutil.Ping](c))
	assert.Nil(t, factory.Resolve[testutil.Pong](c))

	_, err := factory.TryResolve[testutil.Ping](c)
	var cycleErr factory.CycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestResolve_ReRegistration(t *testing.T) {
	t.Parallel()

	c := factory.New()

	require.NoError(t, factory.RegisterType[testutil.Cache](c, testutil.NewMapCache))
	first := factory.Resolve[testutil.Cache](c)
	require.NotNil(t, first)

	replacement := testutil.NewMapCache()
	require.NoError(t, factory.RegisterInstance[testutil.Cache](c, replacement))
	second := factory.Resolve[testutil.Cache](c)
	assert.Same(t, replacement, second)

	factory.Unregister[testutil.Cache](c)
	assert.Nil(t, factory.Resolve[testutil.Cache](c))
}

func TestResolve_AbsentDependency(t *testing.T) {
	t.Parallel()

	// Logger is never registered. The container does not abort: the
	// Database constructor receives the zero value and decides for itself.
	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))

	db := factory.Resolve[testutil.Database](c)

	require.NotNil(t, db)
	assert.Nil(t, db.Logger())
	assert.Equal(t, `rows for "user:9"`, db.Query("user:9"))
}

func TestResolve_ConstructorError(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewFailingDatabase))

	assert.Nil(t, factory.Resolve[testutil.Database](c))

	_, err := factory.TryResolve[testutil.Database](c)
	require.ErrorIs(t, err, testutil.ErrConstructor)

	var ctorErr factory.ConstructorError
	require.ErrorAs(t, err, &ctorErr)
}

func TestResolve_NestedConstructorError(t *testing.T) {
	t.Parallel()

	// Database fails deep in the chain; the failure propagates to the
	// outermost caller instead of being swallowed as an optional absence.
	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))
	require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewFailingDatabase))
	require.NoError(t, factory.RegisterType[testutil.Cache](c, testutil.NewMapCache))
	require.NoError(t, factory.RegisterType[testutil.UserService](c, testutil.NewUserService))

	assert.Nil(t, factory.Resolve[testutil.UserService](c))

	_, err := factory.TryResolve[testutil.UserService](c)
	require.ErrorIs(t, err, testutil.ErrConstructor)
}

func TestResolve_ConstructorPanic(t *testing.T) {
	t.Parallel()

	c := factory.New()
	require.NoError(t, factory.RegisterType[testutil.Cache](c, testutil.NewPanickingCache))
	require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))

	require.Panics(t, func() {
		factory.Resolve[testutil.Cache](c)
	})

	// A panicked chain must not poison later resolves.
	assert.NotNil(t, factory.Resolve[testutil.Logger](c))
}

func TestTryResolve(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))

		logger, err := factory.TryResolve[testutil.Logger](c)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("not registered", func(t *testing.T) {
		t.Parallel()

		c := factory.New()

		_, err := factory.TryResolve[testutil.Logger](c)
		require.ErrorIs(t, err, factory.ErrNotRegistered)

		var resErr factory.ResolutionError
		require.ErrorAs(t, err, &resErr)
	})

	t.Run("direct cycle", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		require.NoError(t, factory.RegisterType[testutil.Echo](c, testutil.NewEchoService))

		_, err := factory.TryResolve[testutil.Echo](c)

		var cycleErr factory.CycleError
		require.ErrorAs(t, err, &cycleErr)
		assert.Contains(t, err.Error(), "circular dependency")
	})

	t.Run("nested failure does not fail the top level", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		require.NoError(t, factory.RegisterType[testutil.Database](c, testutil.NewMemoryDatabase))

		db, err := factory.TryResolve[testutil.Database](c)
		require.NoError(t, err)
		require.NotNil(t, db)
		assert.Nil(t, db.Logger())
	})
}

func TestMustResolve(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		c := factory.New()
		require.NoError(t, factory.RegisterType[testutil.Logger](c, testutil.NewConsoleLogger))

		assert.NotNil(t, factory.MustResolve[testutil.Logger](c))
	})

	t.Run("panics when absent", func(t *testing.T) {
		t.Parallel()

		c := factory.New()

		assert.Panics(t, func() {
			factory.MustResolve[testutil.Logger](c)
		})
	})
}
