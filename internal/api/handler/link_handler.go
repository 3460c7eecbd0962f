package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/linkboard/linkboard-api/internal/api/metrics"
	"github.com/linkboard/linkboard-api/internal/core/ports"
)

type LinkHandler struct {
	linkService ports.LinkService
}

func NewLinkHandler(linkService ports.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

type postLinkRequest struct {
	URL         string `json:"url" validate:"required,url"`
	Description string `json:"description"`
}

type feedResponse struct {
	Items []ports.FeedItem `json:"items"`
}

// Post creates a link on behalf of the authenticated user.
//
// @Summary      Post a link
// @Tags         links
// @Accept       json
// @Produce      json
// @Param        body  body      postLinkRequest  true  "Link details"
// @Success      201   {object}  domain.Link
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Security     BearerAuth
// @Router       /links [post]
func (h *LinkHandler) Post(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req postLinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	link, err := h.linkService.Post(c.Request().Context(), userID, req.URL, req.Description)
	if err != nil {
		return err
	}

	metrics.LinksCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, link)
}

// Feed returns recent links with their vote counts.
//
// @Summary      Link feed
// @Tags         links
// @Produce      json
// @Param        limit  query     int  false  "Max links to return"
// @Success      200    {object}  feedResponse
// @Router       /links [get]
func (h *LinkHandler) Feed(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, err := h.linkService.Feed(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	if items == nil {
		items = []ports.FeedItem{}
	}

	return c.JSON(http.StatusOK, feedResponse{Items: items})
}
