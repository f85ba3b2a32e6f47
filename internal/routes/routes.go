// Package routes implements the route guard: it derives which tier of screens
// is reachable from the session state and resolves any requested route to one
// the current state allows.
package routes

// State identifies which tier of screens is reachable.
type State string

const (
	// StateLoggedOut: no current user; only the login/register screen is reachable.
	StateLoggedOut State = "logged_out"
	// StateAwaitingFarmSetup: a user is authenticated but no farm profile exists yet.
	StateAwaitingFarmSetup State = "awaiting_farm_setup"
	// StateDashboard: user and farm both present; the dashboard routes are open.
	StateDashboard State = "dashboard"
)

// StateFor derives the reachable tier from the session pair. A farm only
// counts as set up when a user is also authenticated, so the checks always
// run in this order.
func StateFor(authenticated, farmSetUp bool) State {
	switch {
	case !authenticated:
		return StateLoggedOut
	case !farmSetUp:
		return StateAwaitingFarmSetup
	default:
		return StateDashboard
	}
}

// The client-side route surface.
const (
	RouteIndex     = "/"
	RouteFarmSetup = "/farm-setup"
	RouteDashboard = "/dashboard"
	RouteSales     = "/dashboard/sales"
	RouteExpenses  = "/dashboard/expenses"
	RouteInventory = "/dashboard/inventory"
	RouteProducts  = "/dashboard/products"
	RouteLivestock = "/dashboard/livestock"
	RouteReports   = "/dashboard/reports"
	RouteNotFound  = "/404"
)

// DashboardRoutes lists the guarded routes in sidebar order.
var DashboardRoutes = []string{
	RouteDashboard,
	RouteSales,
	RouteExpenses,
	RouteInventory,
	RouteProducts,
	RouteLivestock,
	RouteReports,
}

var known = map[string]struct{}{
	RouteIndex:     {},
	RouteFarmSetup: {},
	RouteDashboard: {},
	RouteSales:     {},
	RouteExpenses:  {},
	RouteInventory: {},
	RouteProducts:  {},
	RouteLivestock: {},
	RouteReports:   {},
	RouteNotFound:  {},
}

// Known reports whether path is part of the route surface.
func Known(path string) bool {
	_, ok := known[path]
	return ok
}

// Home returns the route a session in the given state lands on.
func Home(state State) string {
	switch state {
	case StateAwaitingFarmSetup:
		return RouteFarmSetup
	case StateDashboard:
		return RouteDashboard
	default:
		return RouteIndex
	}
}

// Resolve maps a requested path to the route the guard allows for the given
// state. Unknown paths resolve to the not-found route. Dashboard routes
// require StateDashboard; requests from an earlier state redirect back to that
// state's screen, and requests for an earlier screen from a later state
// redirect forward. This is a redirect, never a hard error.
func Resolve(path string, state State) string {
	if !Known(path) {
		return RouteNotFound
	}
	if path == RouteNotFound {
		return path
	}

	switch state {
	case StateLoggedOut:
		return RouteIndex
	case StateAwaitingFarmSetup:
		return RouteFarmSetup
	default:
		if path == RouteIndex || path == RouteFarmSetup {
			return RouteDashboard
		}
		return path
	}
}
