package validators

import "github.com/google/uuid"

// ListenerID identifies one change listener registration on a field.
type ListenerID = uuid.UUID

// ListenerRegistration pairs a registered listener with its id.
type ListenerRegistration struct {
	ID       ListenerID
	Listener ChangeListener
}

// ChangeListenerFunc adapts a plain function to ChangeListener.
type ChangeListenerFunc func(field Field)

// FieldChanged calls f(field).
func (f ChangeListenerFunc) FieldChanged(field Field) {
	f(field)
}

// ListenerSet keeps the change listeners of a field. Embed it in a Field
// implementation to get AddChangeListener, RemoveChangeListener and
// ChangeListeners, and call Notify when the field's text changes.
//
// The zero value is ready to use. ListenerSet is not safe for concurrent use;
// fields are owned by the UI goroutine.
type ListenerSet struct {
	registrations []ListenerRegistration
}

// AddChangeListener registers l under a fresh id.
func (s *ListenerSet) AddChangeListener(l ChangeListener) ListenerID {
	id := uuid.New()
	s.registrations = append(s.registrations, ListenerRegistration{ID: id, Listener: l})
	return id
}

// RemoveChangeListener removes the registration with the given id.
func (s *ListenerSet) RemoveChangeListener(id ListenerID) bool {
	for i, reg := range s.registrations {
		if reg.ID == id {
			s.registrations = append(s.registrations[:i], s.registrations[i+1:]...)
			return true
		}
	}
	return false
}

// ChangeListeners returns a copy of the current registrations in
// registration order.
func (s *ListenerSet) ChangeListeners() []ListenerRegistration {
	out := make([]ListenerRegistration, len(s.registrations))
	copy(out, s.registrations)
	return out
}

// Notify calls every registered listener with field, in registration order.
// Listeners added or removed during notification take effect on the next one.
func (s *ListenerSet) Notify(field Field) {
	for _, reg := range s.ChangeListeners() {
		reg.Listener.FieldChanged(field)
	}
}
