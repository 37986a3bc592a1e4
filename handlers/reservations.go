package handlers

import (
	"net/http"
	"strconv"

	"commuterhub/database"
	"commuterhub/services/assistant"
	"commuterhub/utils"

	"github.com/gin-gonic/gin"
)

// ReservationsHandler serves read-only views over the reservation store.
type ReservationsHandler struct {
	Store database.StateStore
}

func NewReservationsHandler(store database.StateStore) *ReservationsHandler {
	return &ReservationsHandler{Store: store}
}

func (h *ReservationsHandler) GetReservations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reservations": h.Store.State().Reservations})
}

func (h *ReservationsHandler) GetResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.Store.State().Resources})
}

// CheckLocker reports whether a locker number is free.
func (h *ReservationsHandler) CheckLocker(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid locker number", c.Param("number"))
		return
	}
	free := assistant.LockerFree(h.Store.State().Reservations, number)
	c.JSON(http.StatusOK, gin.H{"number": number, "available": free})
}

// CheckRack reports whether a rack number is free.
func (h *ReservationsHandler) CheckRack(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rack number", c.Param("number"))
		return
	}
	free := assistant.RackFree(h.Store.State().Reservations, number)
	c.JSON(http.StatusOK, gin.H{"number": number, "available": free})
}

// CheckSlot reports whether a timed slot is free on a resource. Used by the
// manual reservation UI before offering a slot.
func (h *ReservationsHandler) CheckSlot(c *gin.Context) {
	resourceID := c.Query("resourceId")
	date := c.Query("date")
	time24 := c.Query("time")
	if resourceID == "" || date == "" || time24 == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameters", "resourceId, date and time are required")
		return
	}

	duration := 1
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid duration", d)
			return
		}
		duration = parsed
	}

	free := assistant.SlotFree(h.Store.State().Reservations, resourceID, date, time24, duration, c.Query("excludeId"))
	c.JSON(http.StatusOK, gin.H{"available": free})
}

// Health is a liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
