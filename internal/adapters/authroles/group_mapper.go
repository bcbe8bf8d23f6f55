package authroles

import (
	domainauth "github.com/zivilschutz/schutzraum-api/internal/domain/auth"
)

// GroupRoleMapper maps IdP groups onto portal roles by simple string
// membership. The most privileged matching role wins, so a user in both
// the operator and the state-admin group signs in as state admin.
type GroupRoleMapper struct {
	CrisisManagerGroup string
	FederalAdminGroup  string
	StateAdminGroup    string
	MunicipalGroup     string
	OperatorGroup      string
}

func (m GroupRoleMapper) Map(groups []string) domainauth.Role {
	rules := []struct {
		group string
		role  domainauth.Role
	}{
		{m.CrisisManagerGroup, domainauth.RoleCrisisManager},
		{m.FederalAdminGroup, domainauth.RoleFederalAdmin},
		{m.StateAdminGroup, domainauth.RoleStateAdmin},
		{m.MunicipalGroup, domainauth.RoleMunicipalAdmin},
		{m.OperatorGroup, domainauth.RoleOperator},
	}
	for _, rule := range rules {
		if rule.group == "" {
			continue
		}
		for _, g := range groups {
			if g == rule.group {
				return rule.role
			}
		}
	}
	return domainauth.RoleCitizen
}
