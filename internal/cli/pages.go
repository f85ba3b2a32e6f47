package cli

import (
	"context"
	"fmt"

	"farmstead/internal/routes"
)

// placeholder dashboard pages: title and blurb, no data pipeline behind them.
var placeholders = map[string][2]string{
	routes.RouteSales:     {"Sales Management", "Track and manage all your farm sales and revenue."},
	routes.RouteExpenses:  {"Expense Management", "Monitor and categorize all your farm expenses and costs."},
	routes.RouteInventory: {"Inventory Management", "Track supplies, feed, equipment, and other farm inventory."},
	routes.RouteLivestock: {"Livestock Management", "Monitor animal health, breeding, and feeding schedules."},
	routes.RouteReports:   {"Reports & Analytics", "Generate detailed reports and analyze farm performance."},
}

// Open runs the requested path through the route guard and renders whatever
// screen it resolves to. A blocked or superseded request is a redirect, never
// an error.
func (a *App) Open(ctx context.Context, path string) error {
	resolved := routes.Resolve(path, a.state())
	if resolved != path {
		a.logger.Debug(ctx, "route redirected", "from", path, "to", resolved)
		printlnFn(fmt.Sprintf("Redirected to %s", resolved))
	}
	a.route = resolved
	a.render(resolved)
	return nil
}

func (a *App) render(path string) {
	if page, ok := placeholders[path]; ok {
		printlnFn(page[0])
		printlnFn(page[1])
		return
	}

	switch path {
	case routes.RouteIndex:
		printlnFn("Welcome to FarmStead. Please login or register.")
	case routes.RouteFarmSetup:
		printlnFn("Set up your farm information: type 'setup' to begin.")
	case routes.RouteDashboard:
		// Only reachable when both user and farm are present.
		user := a.session.CurrentUser()
		farm := a.session.CurrentFarm()
		printlnFn(fmt.Sprintf("Welcome to %s", farm.FarmName))
		printlnFn(fmt.Sprintf("%s in %s, logged in as %s", farm.FarmType.Label(), farm.FarmLocation, user.FullName))
	case routes.RouteProducts:
		a.renderProducts()
	case routes.RouteNotFound:
		printlnFn("Page not found")
	}
}
