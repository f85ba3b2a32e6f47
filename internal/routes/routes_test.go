package routes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateFor(t *testing.T) {
	require.Equal(t, StateLoggedOut, StateFor(false, false))
	// a farm only counts when a user is authenticated
	require.Equal(t, StateLoggedOut, StateFor(false, true))
	require.Equal(t, StateAwaitingFarmSetup, StateFor(true, false))
	require.Equal(t, StateDashboard, StateFor(true, true))
}

func TestHome(t *testing.T) {
	require.Equal(t, RouteIndex, Home(StateLoggedOut))
	require.Equal(t, RouteFarmSetup, Home(StateAwaitingFarmSetup))
	require.Equal(t, RouteDashboard, Home(StateDashboard))
}

func TestResolve_UnknownPath(t *testing.T) {
	for _, state := range []State{StateLoggedOut, StateAwaitingFarmSetup, StateDashboard} {
		require.Equal(t, RouteNotFound, Resolve("/no-such-page", state))
	}
	require.Equal(t, RouteNotFound, Resolve(RouteNotFound, StateDashboard))
}

func TestResolve_LoggedOut(t *testing.T) {
	require.Equal(t, RouteIndex, Resolve(RouteIndex, StateLoggedOut))
	require.Equal(t, RouteIndex, Resolve(RouteFarmSetup, StateLoggedOut))
	for _, path := range DashboardRoutes {
		require.Equal(t, RouteIndex, Resolve(path, StateLoggedOut))
	}
}

func TestResolve_AwaitingFarmSetup(t *testing.T) {
	require.Equal(t, RouteFarmSetup, Resolve(RouteFarmSetup, StateAwaitingFarmSetup))
	// the login screen redirects forward once authenticated
	require.Equal(t, RouteFarmSetup, Resolve(RouteIndex, StateAwaitingFarmSetup))
	for _, path := range DashboardRoutes {
		require.Equal(t, RouteFarmSetup, Resolve(path, StateAwaitingFarmSetup))
	}
}

func TestResolve_Dashboard(t *testing.T) {
	for _, path := range DashboardRoutes {
		require.Equal(t, path, Resolve(path, StateDashboard))
	}
	require.Equal(t, RouteDashboard, Resolve(RouteIndex, StateDashboard))
	require.Equal(t, RouteDashboard, Resolve(RouteFarmSetup, StateDashboard))
}
