package session

// Landing destinations after a successful login or onboarding step.
const (
	PathHome                   = "/"
	PathLogin                  = "/login"
	PathUnauthorized           = "/unauthorized"
	PathCustomerHome           = "/customer-home"
	PathSellerHome             = "/seller-home"
	PathWaitingApproval        = "/waiting-approval"
	PathContentAdminDashboard  = "/contentadmin-dashboard"
	PathPlatformAdminDashboard = "/platformadmin-dashboard"
)

// LandingPath decides where a freshly authenticated user goes. Sellers
// split on the approval flag; an unrecognized role falls back to the
// public home with ok=false so the caller can surface an error.
func LandingPath(role Role, approved bool) (string, bool) {
	switch role {
	case RoleCustomer:
		return PathCustomerHome, true
	case RoleSeller:
		if approved {
			return PathSellerHome, true
		}
		return PathWaitingApproval, true
	case RoleContentAdmin:
		return PathContentAdminDashboard, true
	case RolePlatformAdmin:
		return PathPlatformAdminDashboard, true
	default:
		return PathHome, false
	}
}
