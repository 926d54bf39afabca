package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"Backend-Mergington-API/src/database"
	"Backend-Mergington-API/src/models"
	"Backend-Mergington-API/src/services/activities"
	"Backend-Mergington-API/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ActivityController handles the /activities endpoints. The service is
// injected so every test can run against its own catalog.
type ActivityController struct {
	service  *activities.Service
	validate *validator.Validate
}

func NewActivityController(service *activities.Service) *ActivityController {
	return &ActivityController{
		service:  service,
		validate: validator.New(),
	}
}

// signupParams carries the query parameters shared by signup and unregister.
// Only presence is validated; email format is not checked.
type signupParams struct {
	Email string `validate:"required"`
}

// GetAllActivities godoc
// @Summary      List all activities
// @Description  Returns every activity keyed by name, with its schedule, capacity and current participants
// @Tags         activities
// @Produce      json
// @Success      200  {object}  map[string]models.Activity
// @Router       /activities [get]
func (ac *ActivityController) GetAllActivities(c *fiber.Ctx) error {
	return c.JSON(ac.service.GetAllActivities())
}

// SignupForActivity godoc
// @Summary      Sign a student up for an activity
// @Description  Appends the student's email to the activity's participant list
// @Tags         activities
// @Produce      json
// @Param        activity_name  path   string  true  "Activity name (URL-encoded)"
// @Param        email          query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{activity_name}/signup [post]
func (ac *ActivityController) SignupForActivity(c *fiber.Ctx) error {
	activityName := c.Params("name")
	params := signupParams{Email: c.Query("email")}
	if err := ac.validate.Struct(params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Email is required")
	}

	if err := ac.service.SignupStudent(activityName, params.Email); err != nil {
		switch {
		case errors.Is(err, database.ErrActivityNotFound):
			return utils.HandleError(c, http.StatusNotFound, "Activity not found")
		case errors.Is(err, database.ErrAlreadySignedUp):
			return utils.HandleError(c, http.StatusBadRequest, "Student already signed up for this activity")
		default:
			return utils.HandleError(c, http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(models.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", params.Email, activityName),
	})
}

// UnregisterFromActivity godoc
// @Summary      Remove a student from an activity
// @Description  Removes the student's email from the activity's participant list
// @Tags         activities
// @Produce      json
// @Param        activity_name  path   string  true  "Activity name (URL-encoded)"
// @Param        email          query  string  true  "Student email"
// @Success      200  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{activity_name}/unregister [delete]
func (ac *ActivityController) UnregisterFromActivity(c *fiber.Ctx) error {
	activityName := c.Params("name")
	params := signupParams{Email: c.Query("email")}
	if err := ac.validate.Struct(params); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Email is required")
	}

	if err := ac.service.UnregisterStudent(activityName, params.Email); err != nil {
		switch {
		case errors.Is(err, database.ErrActivityNotFound):
			return utils.HandleError(c, http.StatusNotFound, "Activity not found")
		case errors.Is(err, database.ErrNotSignedUp):
			return utils.HandleError(c, http.StatusBadRequest, "Student is not signed up for this activity")
		default:
			return utils.HandleError(c, http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(models.MessageResponse{
		Message: fmt.Sprintf("Removed %s from %s", params.Email, activityName),
	})
}
