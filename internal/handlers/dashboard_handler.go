package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Jitwisut/Backend-money-tracker/internal/services"
)

// DashboardHandler handles dashboard summary requests.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles the dashboard summary request
// @Summary     Get dashboard summary
// @Description Get income/expense totals, balance, and a per-category pie-chart breakdown. Malformed dates drop the date filter rather than failing the request.
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       startDate  query string false "Range start (YYYY-MM-DD or RFC3339, Bangkok day boundary)"
// @Param       endDate    query string false "Range end (YYYY-MM-DD or RFC3339, Bangkok day boundary)"
// @Param       type       query string false "Breakdown type (INCOME or EXPENSE, default EXPENSE)"
// @Param       categoryId query string false "Category id or comma-separated ids; ALL for no filter"
// @Success     200 {object} map[string]services.DashboardData "Dashboard data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Failed to fetch dashboard data"
// @Router      /api/dashboard/ [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.ParseTransactionFilter(
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("type"),
		c.Query("categoryId"),
	)

	data, err := h.dashboardService.Summarize(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
