package user

// HasAnyRole is the access gate used by route middleware and by client
// rendering decisions. It is a pure predicate:
//
//   - an empty role fails closed (no identity, no access);
//   - an unknown role fails closed;
//   - an empty allowed list means the resource is unrestricted;
//   - otherwise the role must be a member of the allowed list.
//
// The legacy SUPER_ADMIN role gates as PLATFORM_ADMIN on both sides of
// the comparison. An all-of variant existed upstream but degenerates to
// false for any list with more than one distinct role, since a
// principal holds exactly one role; it is intentionally not provided.
func HasAnyRole(role Role, allowed ...Role) bool {
	if role == "" || !role.Known() {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	r := role.Normalized()
	for _, a := range allowed {
		if r == a.Normalized() {
			return true
		}
	}
	return false
}
