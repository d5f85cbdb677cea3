package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/middleware"
)

// parseIDParam reads the integer :id path parameter. On failure the 422
// response has already been written.
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, middleware.InvalidParam("id", "ID must be a valid integer"))
		return 0, false
	}
	return id, true
}

func updatedResponse(entity string, id any) dto.MessageResponse {
	return dto.NewMessageResponse(fmt.Sprintf("%s with ID %v updated successfully", entity, id))
}

func deletedResponse(entity string, id any) dto.MessageResponse {
	return dto.NewMessageResponse(fmt.Sprintf("%s with ID %v deleted successfully", entity, id))
}
