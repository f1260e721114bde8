package rbac

import "testing"

func TestValid(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleSupervisor, RoleVendor, RoleCustomer} {
		if !Valid(role) {
			t.Errorf("expected %s to be valid", role)
		}
	}
	for _, role := range []string{"", "admin", "ROOT"} {
		if Valid(role) {
			t.Errorf("expected %q to be invalid", role)
		}
	}
}

func TestCan(t *testing.T) {
	cases := []struct {
		role   string
		action Action
		want   bool
	}{
		{RoleAdmin, ActionProductCreate, true},
		{RoleSupervisor, ActionProductCreate, true},
		{RoleVendor, ActionProductCreate, false},
		{RoleCustomer, ActionProductCreate, false},

		{RoleAdmin, ActionProductDelete, true},
		{RoleSupervisor, ActionProductDelete, false},

		{RoleAdmin, ActionOrderCancel, true},
		{RoleSupervisor, ActionOrderCancel, false},
		{RoleSupervisor, ActionOrderReadAny, true},
		{RoleSupervisor, ActionOrderListAll, true},
		{RoleCustomer, ActionOrderListAll, false},

		{RoleVendor, ActionUserCreate, true},
		{RoleCustomer, ActionUserCreate, false},

		{"", ActionProductCreate, false},
		{"ROOT", ActionProductDelete, false},
	}

	for _, tc := range cases {
		if got := Can(tc.role, tc.action); got != tc.want {
			t.Errorf("Can(%s, %s) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}

func TestCanCreateRole(t *testing.T) {
	cases := []struct {
		creator string
		target  string
		want    bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleCustomer, true},
		{RoleSupervisor, RoleVendor, true},
		{RoleSupervisor, RoleCustomer, true},
		{RoleSupervisor, RoleAdmin, false},
		{RoleSupervisor, RoleSupervisor, false},
		{RoleVendor, RoleCustomer, true},
		{RoleVendor, RoleVendor, false},
		{RoleCustomer, RoleCustomer, false},
		{"ROOT", RoleCustomer, false},
	}

	for _, tc := range cases {
		if got := CanCreateRole(tc.creator, tc.target); got != tc.want {
			t.Errorf("CanCreateRole(%s, %s) = %v, want %v", tc.creator, tc.target, got, tc.want)
		}
	}
}
