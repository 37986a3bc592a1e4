package models

// ChatRequest is the payload coming from the frontend into /api/assistant/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// ChatResponse is what the assistant returns: exactly one reply per submitted
// line, plus a toast when the turn committed a change to the ledger.
type ChatResponse struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
	Toast     *Toast `json:"toast,omitempty"`
}

// BookingKind tags the variant of a pending booking.
type BookingKind string

const (
	BookingKindLocker BookingKind = "locker"
	BookingKindStudy  BookingKind = "study"
)

// StudyPhase names the step of the multi-turn study room flow.
type StudyPhase string

const (
	StudyPhaseRoom    StudyPhase = "room"
	StudyPhaseTime    StudyPhase = "time"
	StudyPhaseConfirm StudyPhase = "confirm"
)

// PendingCancel identifies a reservation awaiting YES/NO cancellation
// confirmation.
type PendingCancel struct {
	ReservationID string `json:"reservationId"`
	Label         string `json:"label"`
}

// PendingBooking is an in-progress booking awaiting confirmation or further
// input. Only the fields valid for the tagged kind/phase are populated:
// a locker booking carries LockerNumber, a study booking advances through
// room choice, time choice, and confirmation.
type PendingBooking struct {
	Kind         BookingKind `json:"kind"`
	LockerNumber int         `json:"lockerNumber,omitempty"`
	Phase        StudyPhase  `json:"phase,omitempty"`
	RoomID       string      `json:"roomId,omitempty"`
	RoomName     string      `json:"roomName,omitempty"`
	Time24       string      `json:"time24,omitempty"`
	TimeLabel    string      `json:"timeLabel,omitempty"`
}

// SessionState is the per-conversation dialog state. At most one of
// PendingCancel / PendingBooking is set at a time; starting a new flow
// discards the other.
type SessionState struct {
	PendingCancel  *PendingCancel  `json:"pendingCancel,omitempty"`
	PendingBooking *PendingBooking `json:"pendingBooking,omitempty"`
}
