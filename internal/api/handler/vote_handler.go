package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/linkboard/linkboard-api/internal/api/metrics"
	"github.com/linkboard/linkboard-api/internal/core/domain"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

type VoteHandler struct {
	voteService ports.VoteService
}

func NewVoteHandler(voteService ports.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Cast records the authenticated user's vote for a link. A second vote
// for the same link is a 409, reported and never retried.
//
// @Summary      Vote for a link
// @Tags         votes
// @Produce      json
// @Param        id  path      string  true  "Link id"
// @Success      201  {object}  domain.Vote
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /links/{id}/votes [post]
func (h *VoteHandler) Cast(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	linkID := c.Param("id")
	if linkID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing link id")
	}

	vote, err := h.voteService.Cast(c.Request().Context(), userID, linkID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateVote):
			metrics.VotesCastTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrLinkNotFound):
			// no metric: a miss on an unknown link is client error noise
		default:
			metrics.VotesCastTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.VotesCastTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusCreated, vote)
}
