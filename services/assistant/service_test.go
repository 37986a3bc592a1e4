package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"commuterhub/database"
	"commuterhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeather struct {
	cond models.CurrentConditions
	err  error
}

func (f *fakeWeather) Current(ctx context.Context) (models.CurrentConditions, error) {
	return f.cond, f.err
}

type seqIDs struct{ n int }

func (s *seqIDs) NextID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

// testClock freezes "now" at a Monday morning so "today" is deterministic.
var testClock = func() time.Time {
	return time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
}

const testToday = "2025-03-10"

func newTestService(reservations []models.Reservation) (*DefaultAssistantService, *database.MemoryStateStore) {
	store := database.NewMemoryStateStore(models.AppState{
		Reservations: reservations,
		Resources:    database.DefaultResources(),
	})
	svc := NewDefaultAssistantService(
		store,
		&fakeWeather{err: errors.New("provider down")},
		NewMemorySessionStore(),
		&seqIDs{},
		"Boston",
		NumberRange{Start: 100, End: 120},
		NumberRange{Start: 1, End: 20},
	)
	svc.Now = testClock
	return svc, store
}

func submit(t *testing.T, svc *DefaultAssistantService, text string) models.ChatResponse {
	t.Helper()
	resp, err := svc.Submit(context.Background(), "sess-1", text)
	require.NoError(t, err)
	return resp
}

func TestGreetingAndHelp(t *testing.T) {
	svc, _ := newTestService(nil)

	assert.Contains(t, submit(t, svc, "hello").Reply, "my name is Rammy")
	assert.Contains(t, submit(t, svc, "what can you do?").Reply, "Reserve a locker for you")
	assert.Contains(t, submit(t, svc, "help").Reply, "weather-based tips")
}

func TestFallbackOnUnknownInput(t *testing.T) {
	svc, _ := newTestService(nil)

	reply := submit(t, svc, "what is the meaning of life").Reply
	assert.Contains(t, reply, "I'm not sure how to answer that one yet")
}

func TestDenyWithoutPendingIsFallback(t *testing.T) {
	svc, store := newTestService(nil)

	reply := submit(t, svc, "no").Reply
	assert.Contains(t, reply, "I'm not sure how to answer that one yet")
	assert.Empty(t, store.State().Reservations)
}

func TestLockerBookingFirstFree(t *testing.T) {
	svc, store := newTestService(nil)

	reply := submit(t, svc, "book a locker").Reply
	assert.Contains(t, reply, "The first free locker I see is Locker 100")

	resp := submit(t, svc, "yes")
	assert.Contains(t, resp.Reply, "I reserved Locker 100 for today")
	require.NotNil(t, resp.Toast)
	assert.Equal(t, "Locker 100 reserved", resp.Toast.Message)
	assert.Equal(t, "success", resp.Toast.Kind)

	ledger := store.State().Reservations
	require.Len(t, ledger, 1)
	assert.Equal(t, 100, ledger[0].LockerNumber)
	assert.Equal(t, "Commuter Lockers", ledger[0].ResourceName)
	assert.False(t, LockerFree(ledger, 100))
}

func TestLockerBookingDenyLeavesLedgerUnchanged(t *testing.T) {
	svc, store := newTestService(nil)

	reply := submit(t, svc, "reserve locker 105").Reply
	assert.Contains(t, reply, "Locker 105 is free")

	resp := submit(t, svc, "no")
	assert.Contains(t, resp.Reply, "I will NOT reserve Locker 105")
	assert.Nil(t, resp.Toast)
	assert.Empty(t, store.State().Reservations)
}

func TestLockerBookingValidation(t *testing.T) {
	svc, _ := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 105},
	})

	assert.Contains(t, submit(t, svc, "book locker 130").Reply, "outside the valid range (100–120)")
	assert.Contains(t, submit(t, svc, "book locker 105").Reply, "Locker 105 is already reserved")
}

func TestLockerConfirmRaceRecheck(t *testing.T) {
	svc, store := newTestService(nil)

	submit(t, svc, "book locker 105")

	// Another commit takes locker 105 while the question is outstanding.
	store.Update(func(st models.AppState) models.AppState {
		st.Reservations = append(st.Reservations, models.Reservation{
			ID: "other", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 105,
		})
		return st
	})

	resp := submit(t, svc, "yes")
	assert.Contains(t, resp.Reply, "Locker 105 is no longer available")
	assert.Nil(t, resp.Toast)

	count := 0
	for _, r := range store.State().Reservations {
		if r.LockerNumber == 105 {
			count++
		}
	}
	assert.Equal(t, 1, count, "race must not create a duplicate")
}

func TestAllLockersTaken(t *testing.T) {
	var taken []models.Reservation
	for n := 100; n <= 120; n++ {
		taken = append(taken, models.Reservation{
			ID: fmt.Sprintf("r%d", n), ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: n,
		})
	}
	svc, _ := newTestService(taken)

	reply := submit(t, svc, "book a locker").Reply
	assert.Contains(t, reply, "All lockers from 100 to 120 appear to be reserved")
}

func TestStudyRoomOneShot(t *testing.T) {
	svc, store := newTestService(nil)

	reply := submit(t, svc, "book room a at 3pm").Reply
	assert.Contains(t, reply, "I can book Group Study Room A today at 3:00 PM")

	resp := submit(t, svc, "yes")
	assert.Contains(t, resp.Reply, "I reserved Group Study Room A at 3:00 PM for today")
	require.NotNil(t, resp.Toast)

	ledger := store.State().Reservations
	require.Len(t, ledger, 1)
	assert.Equal(t, "Group Study Room A", ledger[0].ResourceName)
	assert.Equal(t, testToday, ledger[0].Date)
	assert.Equal(t, "15:00", ledger[0].Time)
	assert.Equal(t, 1, ledger[0].Duration)
}

func TestStudyRoomMultiStep(t *testing.T) {
	svc, store := newTestService(nil)

	assert.Contains(t, submit(t, svc, "book a study room").Reply, "Group Study Room A or Group Study Room B")

	// Invalid room choice re-asks without changing phase.
	assert.Contains(t, submit(t, svc, "the blue one").Reply, `Please tell me "Room A" or "Room B"`)

	assert.Contains(t, submit(t, svc, "room b").Reply, "I'll use Group Study Room B")

	// Unparseable time re-asks within the same phase.
	assert.Contains(t, submit(t, svc, "whenever").Reply, "I could not understand that time")

	assert.Contains(t, submit(t, svc, "10pm").Reply, "I can book Group Study Room B today at 10:00 PM")

	submit(t, svc, "yes")
	ledger := store.State().Reservations
	require.Len(t, ledger, 1)
	assert.Equal(t, "22:00", ledger[0].Time)
	assert.Equal(t, "Group Study Room B", ledger[0].ResourceName)
}

func TestStudyRoomDoubleBookingAborts(t *testing.T) {
	svc, store := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "2", ResourceName: "Group Study Room A", Date: testToday, Time: "15:00", Duration: 1},
	})

	reply := submit(t, svc, "book room b at 3pm").Reply
	assert.Contains(t, reply, "You already have a study room booked then: Group Study Room A at 15:00")
	assert.Len(t, store.State().Reservations, 1)
}

func TestCancelLockerConfirm(t *testing.T) {
	svc, store := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 107},
	})

	reply := submit(t, svc, "cancel my locker").Reply
	assert.Contains(t, reply, "I found a reservation for Locker 107")

	resp := submit(t, svc, "yes")
	assert.Contains(t, resp.Reply, "I cancelled your reservation for Locker 107")
	require.NotNil(t, resp.Toast)
	assert.Equal(t, "info", resp.Toast.Kind)
	assert.Empty(t, store.State().Reservations)
}

func TestCancelLockerDenyKeepsReservation(t *testing.T) {
	svc, store := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 107},
	})

	submit(t, svc, "cancel my locker")
	resp := submit(t, svc, "no")

	assert.Contains(t, resp.Reply, "I will NOT cancel your reservation for Locker 107")
	assert.Len(t, store.State().Reservations, 1)
}

func TestCancelUnknownLockerNumber(t *testing.T) {
	svc, _ := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 107},
	})

	reply := submit(t, svc, "cancel locker 110").Reply
	assert.Contains(t, reply, "You don't have a reservation for Locker 110")
	assert.Contains(t, reply, "107")
}

func TestCancelStudyPicksEarliest(t *testing.T) {
	svc, _ := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "2", ResourceName: "Group Study Room A", Date: testToday, Time: "15:00", Duration: 1},
		{ID: "r2", ResourceID: "3", ResourceName: "Group Study Room B", Date: testToday, Time: "11:00", Duration: 1},
	})

	reply := submit(t, svc, "cancel my study room").Reply
	assert.Contains(t, reply, "Group Study Room B on 2025-03-10 at 11:00")
}

func TestCancelRack(t *testing.T) {
	svc, store := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "4", ResourceName: "Bike / E-scooter Rack", RackNumber: 3},
	})

	assert.Contains(t, submit(t, svc, "cancel my rack").Reply, "Rack 3")
	submit(t, svc, "yes")
	assert.Empty(t, store.State().Reservations)
}

func TestCancelWithoutResourceKeywordFallsThrough(t *testing.T) {
	svc, _ := newTestService(nil)

	reply := submit(t, svc, "cancel everything").Reply
	assert.Contains(t, reply, "I'm not sure how to answer that one yet")
}

func TestNewFlowClearsOtherPending(t *testing.T) {
	svc, store := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 107},
	})

	submit(t, svc, "cancel my locker")
	submit(t, svc, "book locker 105")

	// YES must confirm the booking, not the superseded cancellation.
	resp := submit(t, svc, "yes")
	assert.Contains(t, resp.Reply, "I reserved Locker 105")

	ledger := store.State().Reservations
	require.Len(t, ledger, 2)
	assert.False(t, LockerFree(ledger, 107))
	assert.False(t, LockerFree(ledger, 105))
}

func TestReservationStatus(t *testing.T) {
	svc, _ := newTestService(nil)
	assert.Equal(t, "You do not have any active reservations yet.", submit(t, svc, "do i have any reservations?").Reply)

	svc2, _ := newTestService([]models.Reservation{
		{ID: "r1", ResourceID: "2", ResourceName: "Group Study Room A", Date: testToday, Time: "15:00", Duration: 1},
		{ID: "r2", ResourceID: "1", ResourceName: "Commuter Lockers", LockerNumber: 101},
	})
	reply := submit(t, svc2, "any bookings today?").Reply
	assert.Contains(t, reply, "upcoming reservation for Group Study Room A on 2025-03-10 at 15:00 for 1 hour(s)")
	assert.Contains(t, reply, "1 locker reservation(s)")
}

func TestWeatherAdvisoryDegradesOnProviderFailure(t *testing.T) {
	svc, _ := newTestService(nil)

	reply := submit(t, svc, "how is the weather for commuting?").Reply
	assert.Equal(t, WeatherFallbackReply, reply)
}

func TestBikeAdvisoryUsesLiveConditions(t *testing.T) {
	svc, _ := newTestService(nil)
	svc.Weather = &fakeWeather{cond: models.CurrentConditions{TemperatureC: 15, ConditionCode: 63}}

	reply := submit(t, svc, "should i bring my bike?").Reply
	assert.Contains(t, reply, "It is rainy")
	assert.Contains(t, reply, "you specifically asked about bikes/scooters")
}
