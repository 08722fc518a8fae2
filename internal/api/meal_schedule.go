package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantryplan/backend/internal/service"
)

// MealScheduleHandler serves the /api/meal-schedule resource.
type MealScheduleHandler struct {
	schedules *service.MealScheduleService
}

func NewMealScheduleHandler(schedules *service.MealScheduleService) *MealScheduleHandler {
	return &MealScheduleHandler{schedules: schedules}
}

func (h *MealScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/meal-schedule")
	{
		schedules.GET("", h.ListSchedules)
		schedules.GET("/:id", h.GetSchedule)
		schedules.POST("", h.ScheduleMeal)
		schedules.PUT("/:id", h.UpdateSchedule)
		schedules.DELETE("/:id", h.DeleteSchedule)
	}
}

// ListSchedules returns the weekly plan. ?day= and ?type= narrow the
// result to one day or one meal type; day wins when both are given.
func (h *MealScheduleHandler) ListSchedules(c *gin.Context) {
	ctx := c.Request.Context()

	var err error
	var schedules interface{}
	switch {
	case c.Query("day") != "":
		schedules, err = h.schedules.SchedulesByDay(ctx, c.Query("day"))
	case c.Query("type") != "":
		schedules, err = h.schedules.SchedulesByMealType(ctx, c.Query("type"))
	default:
		schedules, err = h.schedules.WeeklySchedule(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

func (h *MealScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	schedule, err := h.schedules.GetSchedule(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *MealScheduleHandler) ScheduleMeal(c *gin.Context) {
	var input service.ScheduleMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.schedules.ScheduleMeal(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *MealScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input service.UpdateScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.schedules.UpdateSchedule(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *MealScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.schedules.DeleteSchedule(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal schedule deleted successfully", "id": id})
}
