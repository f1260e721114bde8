// Package rbac holds the role model and authorization policy.
//
// Authorization is expressed as explicit tables rather than conditionals
// scattered through the services: Can answers "may this role perform this
// action", CanCreateRole answers "may this role create an account with that
// role". Require wraps both as routing middleware.
package rbac

import (
	"net/http"

	"github.com/dmelo/catalog/pkg/middleware"
	"github.com/dmelo/catalog/pkg/response"
)

// Role tags. Flat enumeration; the creation-authority table below is the only
// ordering between them.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleVendor     = "VENDOR"
	RoleCustomer   = "CUSTOMER"
)

// Action names a role-gated service operation.
type Action string

const (
	ActionProductCreate Action = "product.create"
	ActionProductUpdate Action = "product.update"
	ActionProductDelete Action = "product.delete"
	ActionCategoryWrite Action = "category.write"
	ActionCategoryList  Action = "category.list_all"
	ActionOrderListAll  Action = "order.list_all"
	ActionOrderReadAny  Action = "order.read_any"
	ActionOrderCancel   Action = "order.cancel_any"
	ActionUserCreate    Action = "user.create"
)

// policy maps each action to the roles allowed to perform it.
var policy = map[Action]map[string]bool{
	ActionProductCreate: {RoleAdmin: true, RoleSupervisor: true},
	ActionProductUpdate: {RoleAdmin: true, RoleSupervisor: true},
	ActionProductDelete: {RoleAdmin: true},
	ActionCategoryWrite: {RoleAdmin: true, RoleSupervisor: true},
	ActionCategoryList:  {RoleAdmin: true, RoleSupervisor: true},
	ActionOrderListAll:  {RoleAdmin: true, RoleSupervisor: true},
	ActionOrderReadAny:  {RoleAdmin: true, RoleSupervisor: true},
	ActionOrderCancel:   {RoleAdmin: true},
	ActionUserCreate:    {RoleAdmin: true, RoleSupervisor: true, RoleVendor: true},
}

// creationAuthority is the partial order of account creation: each role maps
// to the set of roles it may create accounts for.
var creationAuthority = map[string]map[string]bool{
	RoleAdmin:      {RoleAdmin: true, RoleSupervisor: true, RoleVendor: true, RoleCustomer: true},
	RoleSupervisor: {RoleVendor: true, RoleCustomer: true},
	RoleVendor:     {RoleCustomer: true},
	RoleCustomer:   {},
}

// Valid reports whether role is one of the four known role tags.
func Valid(role string) bool {
	_, ok := creationAuthority[role]
	return ok
}

// Can reports whether role may perform action.
func Can(role string, action Action) bool {
	return policy[action][role]
}

// CanCreateRole reports whether creator may create an account with target role.
// A role outside the creator's authority is rejected, never downgraded.
func CanCreateRole(creator, target string) bool {
	return creationAuthority[creator][target]
}

// Require returns middleware that allows the request only when the
// authenticated role may perform action. Requires AuthMiddleware upstream.
func Require(action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := middleware.RoleFromCtx(r)
			if !ok || !Can(role, action) {
				response.Forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
