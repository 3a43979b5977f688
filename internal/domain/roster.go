package domain

import "github.com/google/uuid"

// CollaboratorEntry is one participant of the event being composed.
type CollaboratorEntry struct {
	UserID uuid.UUID `json:"userId"`
	Role   Role      `json:"role"`
}

// Roster is the ordered collaborator list of the event form. The acting
// user is stored as a dedicated owner entry, separate from everyone
// else, so no mutation can remove the owner or change their role: the
// invariant is structural, not checked per call site.
type Roster struct {
	owner  CollaboratorEntry
	others []CollaboratorEntry
}

// NewRoster builds a roster for the acting user, seeding it with
// entries restored from a draft. A seed entry matching the acting user
// is folded into the owner slot (always with role owner); duplicate
// seed entries collapse. Calling this again with the produced Entries()
// yields an identical roster, so the mount-time reconciliation is
// idempotent.
func NewRoster(actingUserID uuid.UUID, seed []CollaboratorEntry) *Roster {
	r := &Roster{
		owner: CollaboratorEntry{UserID: actingUserID, Role: RoleOwner},
	}
	for _, e := range seed {
		r.Add(e.UserID, e.Role)
	}
	return r
}

// Owner returns the acting user's entry.
func (r *Roster) Owner() CollaboratorEntry { return r.owner }

// Entries returns the roster in order: owner first, then the others in
// insertion order. The returned slice is a copy.
func (r *Roster) Entries() []CollaboratorEntry {
	out := make([]CollaboratorEntry, 0, len(r.others)+1)
	out = append(out, r.owner)
	out = append(out, r.others...)
	return out
}

// Contains reports whether userID is on the roster.
func (r *Roster) Contains(userID uuid.UUID) bool {
	if userID == r.owner.UserID {
		return true
	}
	for _, e := range r.others {
		if e.UserID == userID {
			return true
		}
	}
	return false
}

// Add puts a user on the roster. Adding an already-present user
// (including the owner) is a no-op; role changes go through SetRole.
func (r *Roster) Add(userID uuid.UUID, role Role) {
	if r.Contains(userID) {
		return
	}
	if !role.IsValid() || role == RoleOwner {
		role = RoleMember
	}
	r.others = append(r.others, CollaboratorEntry{UserID: userID, Role: role})
}

// Remove takes a user off the roster. Removing the acting user fails
// with ErrOwnerInvariant; removing an absent user is a no-op.
func (r *Roster) Remove(userID uuid.UUID) error {
	if userID == r.owner.UserID {
		return ErrOwnerInvariant
	}
	for i, e := range r.others {
		if e.UserID == userID {
			r.others = append(r.others[:i], r.others[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetRole changes a collaborator's role. Changing the acting user's
// role away from owner fails with ErrOwnerInvariant; an unknown user
// fails with ErrNotFound.
func (r *Roster) SetRole(userID uuid.UUID, role Role) error {
	if userID == r.owner.UserID {
		if role == RoleOwner {
			return nil
		}
		return ErrOwnerInvariant
	}
	if !role.IsValid() || role == RoleOwner {
		return NewValidationError("role", "must be member or viewer")
	}
	for i := range r.others {
		if r.others[i].UserID == userID {
			r.others[i].Role = role
			return nil
		}
	}
	return ErrNotFound
}

// Participants maps the roster to the participant list transmitted
// with an event submission. Roles are not transmitted.
func (r *Roster) Participants() []Participant {
	entries := r.Entries()
	out := make([]Participant, len(entries))
	for i, e := range entries {
		out[i] = Participant{UserID: e.UserID}
	}
	return out
}
