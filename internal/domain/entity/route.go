package entity

// Route is one of the fixed application areas the gate can direct a
// session to. Every navigation attempt into a protected area resolves to
// exactly one of these.
type Route string

const (
	// RouteSignIn is the sign-in screen for unauthenticated sessions.
	RouteSignIn Route = "sign-in"
	// RouteLoading is the placeholder while identity resolution is in flight.
	RouteLoading Route = "loading"
	// RouteAdminArea is the unconditional destination for admins.
	RouteAdminArea Route = "admin-area"
	// RouteDocumentUpload is where partners with incomplete documents land.
	RouteDocumentUpload Route = "document-upload"
	// RouteVerificationPending is shown while admin review is outstanding.
	RouteVerificationPending Route = "verification-pending"
	// RouteVerificationStatus shows the rejected view; the only exit is re-upload.
	RouteVerificationStatus Route = "verification-status"
	// RouteSubscriptionPlans is plan selection for approved partners without
	// an active subscription.
	RouteSubscriptionPlans Route = "subscription-plans"
	// RouteDashboard is the operational dashboard, requiring approval and an
	// active unexpired subscription.
	RouteDashboard Route = "dashboard"
)

// String returns the string representation of the Route.
func (r Route) String() string {
	return string(r)
}
