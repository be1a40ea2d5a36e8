package domain

// Subject is the authenticated actor a policy decision is made for. It
// carries the identity embedded in the session token, not the live user
// record: a role change after issuance is not visible until the token
// expires.
type Subject struct {
	ID    string
	Email string
	Role  string
}

// Decision is the outcome of a policy check. Reason is empty when allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

var allow = Decision{Allowed: true}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// CanModify allows an actor to modify a user record when the actor owns it
// or holds the admin role.
func CanModify(actor Subject, targetID string) Decision {
	if actor.ID == targetID || actor.Role == RoleAdmin {
		return allow
	}
	return deny("you can only modify your own account")
}

// CanChangeRole allows an update when it carries no role change, or when the
// actor is an admin.
func CanChangeRole(actor Subject, roleRequested bool) Decision {
	if !roleRequested || actor.Role == RoleAdmin {
		return allow
	}
	return deny("only admins can change user roles")
}

// CanDelete follows the same ownership rule as CanModify.
func CanDelete(actor Subject, targetID string) Decision {
	if actor.ID == targetID || actor.Role == RoleAdmin {
		return allow
	}
	return deny("you can only delete your own account")
}

// DecideUpdate composes CanModify and CanChangeRole. Both must allow; when
// both deny, ownership wins so callers always surface a deterministic reason.
func DecideUpdate(actor Subject, targetID string, roleRequested bool) Decision {
	if d := CanModify(actor, targetID); !d.Allowed {
		return d
	}
	return CanChangeRole(actor, roleRequested)
}
