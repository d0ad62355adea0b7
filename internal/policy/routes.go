package policy

import "go-hiring-portal/internal/domain"

// Routes is the authorization table for the API. Ordering matters: the
// HR-only /vacancies/all rule must precede the public vacancy rules, and
// the candidate-facing application/interview rules must precede the broad
// HR catch-alls below them.
var Routes = Table{
	// Public allow-list
	{Method: "POST", Pattern: "/v1/users/signup", Public: true},
	{Method: "POST", Pattern: "/v1/users/signin", Public: true},
	{Method: "GET", Pattern: "/v1/health", Public: true},
	{Method: "GET", Pattern: "/v1/swagger/**", Public: true},

	// HR vacancy views before the public ones
	{Method: "GET", Pattern: "/v1/vacancies/all", Roles: []string{domain.RoleHrManager}},
	{Method: "GET", Pattern: "/v1/vacancies/status/*", Roles: []string{domain.RoleHrManager}},

	// Public vacancy listing
	{Method: "GET", Pattern: "/v1/vacancies", Public: true},
	{Method: "GET", Pattern: "/v1/vacancies/search", Public: true},
	{Method: "GET", Pattern: "/v1/vacancies/*", Public: true},

	// Vacancy mutations are HR-only
	{Pattern: "/v1/vacancies/**", Roles: []string{domain.RoleHrManager}},

	// Users
	{Method: "GET", Pattern: "/v1/users/candidates", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/users/profile", Roles: nil}, // any authenticated role
	{Method: "POST", Pattern: "/v1/users/logout", Roles: nil},
	{Pattern: "/v1/users/**", Roles: []string{domain.RoleUser}},

	// Dashboards
	{Pattern: "/v1/dashboard/applicant/**", Roles: []string{domain.RoleUser}},
	{Pattern: "/v1/dashboard/hr/**", Roles: []string{domain.RoleHrManager}},

	// Candidate application routes
	{Method: "POST", Pattern: "/v1/applications/apply", Roles: []string{domain.RoleUser}},
	{Method: "GET", Pattern: "/v1/applications/my", Roles: []string{domain.RoleUser}},
	{Method: "GET", Pattern: "/v1/applications/user/**", Roles: []string{domain.RoleUser}},
	{Method: "GET", Pattern: "/v1/applications/check-applied/**", Roles: []string{domain.RoleUser}},

	// Interviews readable by both sides of the table
	{Method: "GET", Pattern: "/v1/interviews/application/**", Roles: []string{domain.RoleHrManager, domain.RoleUser}},
	{Method: "GET", Pattern: "/v1/interviews/*", Roles: []string{domain.RoleHrManager, domain.RoleUser}},

	// Everything else on these resources is HR-only
	{Pattern: "/v1/applications/**", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/applications", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/interviews/**", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/interviews", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/hirings/**", Roles: []string{domain.RoleHrManager}},
	{Pattern: "/v1/hirings", Roles: []string{domain.RoleHrManager}},
}
