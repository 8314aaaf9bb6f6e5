package domain

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID int
	Role   Role
}

func NewActor(userID int, role string) Actor {
	return Actor{UserID: userID, Role: Role(role)}
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Authorize allows the resource owner and admins.
func Authorize(actor Actor, ownerID int) error {
	if actor.IsAdmin() || (actor.UserID != 0 && actor.UserID == ownerID) {
		return nil
	}
	return ErrForbidden
}

func RequireAdmin(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}
