package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"foodimages/internal/application/usecase/abstraction"
	"foodimages/internal/domain/dto"
	"foodimages/internal/domain/entity"
	"foodimages/internal/presentation"
	"foodimages/pkg/logger"
)

type ImageHandler struct {
	locator abstraction.Locator
	log     *logger.Logger
}

func NewImageHandler(locator abstraction.Locator, log *logger.Logger) *ImageHandler {
	return &ImageHandler{
		locator: locator,
		log:     log,
	}
}

// HandleGet handles GET /GetImageFunction?itemName=<name> requests.
func (h *ImageHandler) HandleGet(c echo.Context) error {
	itemName := c.QueryParam(presentation.ItemNameParam)

	result, err := h.locator.Locate(c.Request().Context(), itemName)

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	switch result.Status {
	case entity.LookupInvalid:
		return c.JSON(http.StatusBadRequest, dto.Error{Error: result.Reason})

	case entity.LookupNotFound:
		return c.JSON(http.StatusNotFound, dto.Error{Error: presentation.MsgImageNotFound})

	case entity.LookupFound:
		return c.JSON(http.StatusOK, dto.ImageURL{ImageURL: result.URL})

	default:
		h.log.Error("failed to fetch image",
			"item", itemName,
			"blob", result.BlobName,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"err", err)

		return c.JSON(http.StatusInternalServerError, dto.Error{Error: presentation.MsgInternalError})
	}
}
