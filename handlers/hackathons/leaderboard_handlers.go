package hackathons

import (
	"fmt"
	"net/http"
	"time"

	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// GetLeaderboard returns the hackathon's leaderboard
// @Summary Get the leaderboard
// @Description Get the team ranking by mean evaluation score. Pending until the hackathon's end date.
// @Tags Hackathons
// @Produce json
// @Param id path string true "Hackathon ID"
// @Success 200 {object} rules.Leaderboard
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /hackathons/{id}/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	board, err := boardsService.Get(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchLeaderboard)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ExportLeaderboardExcel exports the leaderboard as an Excel workbook
// @Summary Export the leaderboard
// @Description Download the final leaderboard as an .xlsx file
// @Tags Hackathons
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Hackathon ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /hackathons/{id}/leaderboard/export [get]
// @Security Bearer
func ExportLeaderboardExcel(c *gin.Context) {
	hackathonID := c.Param("id")

	hackathon, err := hackathonsService.Get(hackathonID)
	if err != nil {
		response.DomainError(c, err, ErrHackathonNotFound)
		return
	}

	board, err := boardsService.Get(c.Request.Context(), hackathonID, time.Now())
	if err != nil {
		response.DomainError(c, err, ErrFailedFetchLeaderboard)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Leaderboard"
	file.SetSheetName("Sheet1", sheet)

	headers := []string{"Position", "Team", "Average Score", "Evaluations"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for row, entry := range board.Entries {
		file.SetCellValue(sheet, fmt.Sprintf("A%d", row+2), entry.Position)
		file.SetCellValue(sheet, fmt.Sprintf("B%d", row+2), entry.TeamName)
		file.SetCellValue(sheet, fmt.Sprintf("C%d", row+2), fmt.Sprintf("%.2f", entry.AverageScore))
		file.SetCellValue(sheet, fmt.Sprintf("D%d", row+2), entry.Evaluations)
	}

	filename := fmt.Sprintf("leaderboard-%s.xlsx", hackathon.Name)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}
}
