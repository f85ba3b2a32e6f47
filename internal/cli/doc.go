// Package cli implements the interactive farm management shell. Available
// commands follow the route guard: an unauthenticated session only sees
// login/register, an authenticated session without a farm profile is held on
// the farm setup screen, and the dashboard commands open up once both are
// present.
package cli
