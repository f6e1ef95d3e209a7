package rbac

const (
	PermProfileView     = "profile:view-own"
	PermProfileEdit     = "profile:edit-own"
	PermGradesView      = "grades:view-own"
	PermGradesAdd       = "grades:add-own"
	PermCourseView      = "course:view"
	PermCourseCreate    = "course:create"
	PermRecommendations = "advice:recommend"
	PermPredictions     = "advice:predict"
	PermPeers           = "advice:peers"
	PermEventsView      = "events:view"
)

// Default policy. Roles come from the users table.
var RolePermissions = map[string][]string{
	"student": {
		"profile:*",
		"grades:*",
		"advice:*",
		PermCourseView,
	},
	"advisor": {
		"course:*",
		"advice:*",
		PermProfileView,
		PermGradesView,
	},
	"admin": {
		"*", // everything
	},
}

// KnownRole reports whether role has an entry in RolePermissions.
func KnownRole(role string) bool {
	_, ok := RolePermissions[role]
	return ok
}
