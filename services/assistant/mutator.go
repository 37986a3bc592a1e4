package assistant

import (
	"commuterhub/models"
)

// commit appends or replaces-by-ID a reservation in the ledger and records a
// success toast for the presentation layer. It is the only writer of
// reservation data the assistant triggers; every caller re-validates
// availability immediately beforehand.
func (t *turn) commit(res models.Reservation, toastMessage string) {
	t.svc.Store.Update(func(st models.AppState) models.AppState {
		for i := range st.Reservations {
			if st.Reservations[i].ID == res.ID {
				st.Reservations[i] = res
				return st
			}
		}
		st.Reservations = append(st.Reservations, res)
		return st
	})
	t.toast = &models.Toast{Message: toastMessage, Kind: "success", Timestamp: t.svc.Now()}
}

// removeReservation drops a reservation by ID and records an info toast.
func (t *turn) removeReservation(id, toastMessage string) {
	t.svc.Store.Update(func(st models.AppState) models.AppState {
		kept := make([]models.Reservation, 0, len(st.Reservations))
		for _, r := range st.Reservations {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		st.Reservations = kept
		return st
	})
	t.toast = &models.Toast{Message: toastMessage, Kind: "info", Timestamp: t.svc.Now()}
}

// reservations returns a fresh ledger snapshot. Within a turn the store sees
// no other writer, so a snapshot taken before a commit stays valid for the
// availability checks guarding that commit.
func (t *turn) reservations() []models.Reservation {
	return t.svc.Store.State().Reservations
}

func (t *turn) resources() []models.Resource {
	return t.svc.Store.State().Resources
}
