package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"commuterhub/models"
	"commuterhub/utils"

	"go.uber.org/zap"
)

const helpReply = "I can help you with your commute tools. I can:\n" +
	"• Check your upcoming reservations.\n" +
	"• Cancel locker, rack, or study room reservations (with confirmation).\n" +
	"• Reserve a locker for you.\n" +
	"• Book a same-day study room (Room A or B) for a time you choose.\n" +
	"• Give weather-based tips for biking, driving, or walking.\n" +
	`Try asking things like: "Do I have any bookings today?", "Cancel my locker.", "Book room A at 3pm", "Should I bring my bike?", or "How is the weather for commuting?".`

const fallbackReply = "I'm not sure how to answer that one yet, but I can help with bookings, lockers, " +
	"study rooms, racks, and weather-based commute tips. Try something like: " +
	`"Do I have any bookings today?", "Cancel my study room.", "Book room A at 3pm." or "Should I bring my bike?"`

// Confirmation vocabulary is a fixed literal set; trailing punctuation beyond
// a single period is not stripped.
var (
	affirmWords = map[string]bool{"yes": true, "yes.": true, "y": true}
	denyWords   = map[string]bool{"no": true, "no.": true, "n": true}
)

var greetingPattern = regexp.MustCompile(`^(hi|hello|hey)\b`)

// turn processes a single submitted line. It owns the session state for the
// duration of the turn and records at most one toast.
type turn struct {
	svc   *DefaultAssistantService
	ctx   context.Context
	sess  *models.SessionState
	toast *models.Toast
}

// Submit accepts one line and returns exactly one reply. The reply is always
// a natural-language sentence; an error is returned only when the session
// store itself is unreachable.
func (svc *DefaultAssistantService) Submit(ctx context.Context, sessionID, text string) (models.ChatResponse, error) {
	sess, err := svc.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	t := &turn{svc: svc, ctx: ctx, sess: sess}
	reply := t.buildReply(strings.ToLower(strings.TrimSpace(text)))

	if err := svc.Sessions.Set(ctx, sessionID, sess); err != nil {
		return models.ChatResponse{}, fmt.Errorf("save session %s: %w", sessionID, err)
	}

	utils.GetLogger().Debug("assistant turn",
		zap.String("sessionID", sessionID),
		zap.Bool("pendingCancel", sess.PendingCancel != nil),
		zap.Bool("pendingBooking", sess.PendingBooking != nil),
	)

	return models.ChatResponse{SessionID: sessionID, Reply: reply, Toast: t.toast}, nil
}

// intentRule pairs a predicate over the normalized line with its handler.
// Handlers return ok=false to fall through to later rules, e.g. "cancel"
// without any resource keyword.
type intentRule struct {
	match  func(string) bool
	handle func(*turn, string) (string, bool)
}

var intentRules = []intentRule{
	{matchHelp, (*turn).handleHelp},
	{matchCancel, (*turn).handleCancel},
	{matchBookLocker, (*turn).handleBookLocker},
	{matchBookStudy, (*turn).handleBookStudy},
	{matchGreeting, (*turn).handleGreeting},
	{matchStatus, (*turn).handleStatus},
	{matchBike, (*turn).handleBikeAdvice},
	{matchWeather, (*turn).handleWeatherAdvice},
}

func (t *turn) buildReply(text string) string {
	if text == "" {
		return fallbackReply
	}

	// Confirmation layer: takes priority over intent matching, but only
	// consumes the input when a matching pending action exists.
	if affirmWords[text] {
		if reply, ok := t.handleAffirm(); ok {
			return reply
		}
	}
	if denyWords[text] {
		if reply, ok := t.handleDeny(); ok {
			return reply
		}
	}

	// Mid-flow study room continuations short-circuit intent routing.
	if pb := t.sess.PendingBooking; pb != nil && pb.Kind == models.BookingKindStudy {
		switch pb.Phase {
		case models.StudyPhaseRoom:
			return t.handleRoomChoice(text)
		case models.StudyPhaseTime:
			return t.handleTimeChoice(text)
		}
	}

	// Ordered intent table; first match wins, one intent per turn.
	for _, rule := range intentRules {
		if rule.match(text) {
			if reply, ok := rule.handle(t, text); ok {
				return reply
			}
		}
	}

	return fallbackReply
}

func matchHelp(text string) bool {
	return strings.Contains(text, "what can you do") || text == "help" || strings.HasPrefix(text, "help ")
}

func matchCancel(text string) bool {
	return strings.Contains(text, "cancel")
}

func matchBookLocker(text string) bool {
	return (strings.Contains(text, "book") || strings.Contains(text, "reserve")) &&
		strings.Contains(text, "locker")
}

func matchBookStudy(text string) bool {
	return (strings.Contains(text, "book") || strings.Contains(text, "reserve")) &&
		(strings.Contains(text, "study") || strings.Contains(text, "room"))
}

func matchGreeting(text string) bool {
	return greetingPattern.MatchString(text)
}

func matchStatus(text string) bool {
	return strings.Contains(text, "reservation") || strings.Contains(text, "booking")
}

func matchBike(text string) bool {
	return strings.Contains(text, "bike") || strings.Contains(text, "scooter") || strings.Contains(text, "biking")
}

func matchWeather(text string) bool {
	for _, kw := range []string{"weather", "rain", "snow", "cold", "hot", "commute"} {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func (t *turn) handleHelp(string) (string, bool) {
	return helpReply, true
}

func (t *turn) handleGreeting(string) (string, bool) {
	return Greeting, true
}

func (t *turn) handleStatus(string) (string, bool) {
	return t.reservationsSummary(), true
}

func (t *turn) handleBikeAdvice(string) (string, bool) {
	return t.weatherAdvice() +
		" Since you specifically asked about bikes/scooters, focus on how wet, icy, or windy it is before deciding.", true
}

func (t *turn) handleWeatherAdvice(string) (string, bool) {
	return t.weatherAdvice(), true
}

// weatherAdvice degrades to a fixed sentence when the provider fails; the
// raw error never reaches the user.
func (t *turn) weatherAdvice() string {
	cond, err := t.svc.Weather.Current(t.ctx)
	if err != nil {
		return WeatherFallbackReply
	}
	return Advise(t.svc.City, cond)
}
