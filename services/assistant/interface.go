package assistant

import (
	"context"
	"time"

	"commuterhub/database"
	"commuterhub/models"
	"commuterhub/services/weather"
	"commuterhub/utils"
)

// AssistantService is the conversation interface the assistant exposes
// upward: it accepts one line of text and returns exactly one reply. All
// side effects (ledger mutation, toast emission) happen before Submit
// returns. The error is non-nil only for infrastructure faults; user-facing
// failures come back as plain reply sentences.
type AssistantService interface {
	Submit(ctx context.Context, sessionID, text string) (models.ChatResponse, error)
}

// Greeting is the assistant's opening message for a new conversation.
const Greeting = `Hi, my name is Rammy – your CommuterHub assistant. If you want to know what I can do, just ask "what can you do?" or "help".`

// NumberRange is an inclusive range of bookable locker or rack numbers.
type NumberRange struct {
	Start int
	End   int
}

// DefaultAssistantService implements AssistantService. One instance serves
// many conversations; per-conversation pending state lives in the session
// store, never on the service itself.
type DefaultAssistantService struct {
	Store       database.StateStore
	Weather     weather.Provider
	Sessions    SessionStore
	IDs         utils.IDGenerator
	City        string
	LockerRange NumberRange
	RackRange   NumberRange

	// Now is the clock used for "today" and commit timestamps; tests
	// override it.
	Now func() time.Time
}

func NewDefaultAssistantService(
	store database.StateStore,
	provider weather.Provider,
	sessions SessionStore,
	ids utils.IDGenerator,
	city string,
	lockerRange, rackRange NumberRange,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		Store:       store,
		Weather:     provider,
		Sessions:    sessions,
		IDs:         ids,
		City:        city,
		LockerRange: lockerRange,
		RackRange:   rackRange,
		Now:         time.Now,
	}
}

func (svc *DefaultAssistantService) today() string {
	return svc.Now().Format("2006-01-02")
}
