package domain

import dErrors "roster/pkg/domain-errors"

// Actor is the authenticated caller of a core operation: the validated subject
// and role taken from the identity claim. Services receive it as an explicit
// argument and never read identity from ambient request state.
type Actor struct {
	ID   UserID
	Role Role
}

// Anonymous is the actor for unauthenticated calls.
var Anonymous = Actor{}

// Can reports whether the actor's role meets or exceeds required.
func (a Actor) Can(required Role) bool {
	return MeetsOrExceeds(a.Role, required)
}

// Authorize returns a forbidden error unless the actor meets required.
func (a Actor) Authorize(required Role) error {
	if a.Can(required) {
		return nil
	}
	return dErrors.New(dErrors.CodeForbidden, "requires "+required.String()+" role or higher")
}

func (a Actor) IsAnonymous() bool {
	return a.ID.IsNil()
}

// UserRef returns a pointer to the actor's id, or nil for an anonymous actor.
func (a Actor) UserRef() *UserID {
	if a.IsAnonymous() {
		return nil
	}
	id := a.ID
	return &id
}
