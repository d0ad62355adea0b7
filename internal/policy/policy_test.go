package policy_test

import (
	"testing"

	"go-hiring-portal/internal/domain"
	"go-hiring-portal/internal/policy"

	"github.com/stretchr/testify/assert"
)

func TestPublicRoutes(t *testing.T) {
	cases := []struct{ method, path string }{
		{"POST", "/v1/users/signup"},
		{"POST", "/v1/users/signin"},
		{"GET", "/v1/health"},
		{"GET", "/v1/swagger/index.html"},
		{"GET", "/v1/vacancies"},
		{"GET", "/v1/vacancies/search"},
		{"GET", "/v1/vacancies/15"},
	}
	for _, tc := range cases {
		v := policy.Routes.Evaluate(tc.method, tc.path)
		assert.True(t, v.Public, "%s %s should be public", tc.method, tc.path)
	}
}

func TestHrOnlyVacancyViewsBeatPublicListing(t *testing.T) {
	// /vacancies/all and /vacancies/status/* sit under the public listing
	// prefix but must stay restricted to HR.
	v := policy.Routes.Evaluate("GET", "/v1/vacancies/all")
	assert.False(t, v.Public)
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("GET", "/v1/vacancies/status/DRAFT")
	assert.False(t, v.Public)
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))
}

func TestVacancyMutationsAreHrOnly(t *testing.T) {
	for _, method := range []string{"POST", "PUT", "DELETE"} {
		v := policy.Routes.Evaluate(method, "/v1/vacancies/7")
		assert.False(t, v.Public, "%s /v1/vacancies/7", method)
		assert.True(t, v.Allows(domain.RoleHrManager))
		assert.False(t, v.Allows(domain.RoleUser))
	}

	v := policy.Routes.Evaluate("POST", "/v1/vacancies")
	assert.False(t, v.Public)
	assert.True(t, v.Allows(domain.RoleHrManager))
}

func TestCandidateApplicationRoutes(t *testing.T) {
	v := policy.Routes.Evaluate("POST", "/v1/applications/apply")
	assert.True(t, v.Allows(domain.RoleUser))
	assert.False(t, v.Allows(domain.RoleHrManager))

	v = policy.Routes.Evaluate("GET", "/v1/applications/my")
	assert.True(t, v.Allows(domain.RoleUser))

	// HR review surface stays closed to candidates
	v = policy.Routes.Evaluate("PUT", "/v1/applications/9/status/SHORTLISTED")
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("GET", "/v1/applications")
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))
}

func TestInterviewReadsSharedWritesHrOnly(t *testing.T) {
	v := policy.Routes.Evaluate("GET", "/v1/interviews/3")
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.True(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("GET", "/v1/interviews/application/3")
	assert.True(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("POST", "/v1/interviews")
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("DELETE", "/v1/interviews/3")
	assert.False(t, v.Allows(domain.RoleUser))
}

func TestDashboardsSplitByRole(t *testing.T) {
	v := policy.Routes.Evaluate("GET", "/v1/dashboard/hr/stats")
	assert.True(t, v.Allows(domain.RoleHrManager))
	assert.False(t, v.Allows(domain.RoleUser))

	v = policy.Routes.Evaluate("GET", "/v1/dashboard/applicant/stats")
	assert.True(t, v.Allows(domain.RoleUser))
	assert.False(t, v.Allows(domain.RoleHrManager))
}

func TestAnyAuthenticatedRoutes(t *testing.T) {
	for _, tc := range []struct{ method, path string }{
		{"GET", "/v1/users/profile"},
		{"PUT", "/v1/users/profile"},
		{"POST", "/v1/users/logout"},
	} {
		v := policy.Routes.Evaluate(tc.method, tc.path)
		assert.False(t, v.Public)
		assert.True(t, v.Allows(domain.RoleUser), "%s %s", tc.method, tc.path)
		assert.True(t, v.Allows(domain.RoleHrManager), "%s %s", tc.method, tc.path)
		assert.False(t, v.Allows(""), "anonymous must not pass %s %s", tc.method, tc.path)
	}
}

func TestUnmatchedPathRequiresAuthentication(t *testing.T) {
	v := policy.Routes.Evaluate("GET", "/v1/does-not-exist")
	assert.False(t, v.Public)
	assert.True(t, v.Allows(domain.RoleUser))
	assert.False(t, v.Allows(""))
}

func TestPatternMatching(t *testing.T) {
	table := policy.Table{
		{Method: "GET", Pattern: "/a/*/c", Public: true},
		{Pattern: "/a/**", Roles: []string{"X"}},
	}

	assert.True(t, table.Evaluate("GET", "/a/b/c").Public)
	assert.False(t, table.Evaluate("GET", "/a/b/c/d").Public, "* must match exactly one segment")
	assert.False(t, table.Evaluate("POST", "/a/b/c").Public, "method must match")
	assert.Equal(t, []string{"X"}, table.Evaluate("GET", "/a").Roles, "trailing ** matches zero segments")
}
