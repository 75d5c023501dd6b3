package v1

import (
	"net/http"
	"strconv"

	"github.com/dimassfeb-09/sima-app-web/internal/config"
	"github.com/dimassfeb-09/sima-app-web/internal/models"
	"github.com/dimassfeb-09/sima-app-web/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService   service.AuthService
	orgService    service.OrganizationService
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(authService service.AuthService, orgService service.OrganizationService, reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:   authService,
		orgService:    orgService,
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// @Summary Register a staff account
// @Description Register a new staff account and return an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Password:    input.Password,
		AccountType: models.AccountType(input.AccountType),
	})
	if err != nil {
		log.WithError(err).Error("Failed to register user in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Log in
// @Description Exchange email and password for an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		log.WithError(err).Warn("Login rejected")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Log out
// @Description Log the current user out. Tokens are stateless, the dashboard drops its copy.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get current user
// @Description Get the authenticated user's record.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 404 {object} map[string]string "User not found"
// @Router /users/me [get]
func (h *Handler) me(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	log := h.logger.WithField("method", "me").WithField("user_id", userID)

	user, err := h.authService.Profile(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Warn("Failed to get user from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Update current user
// @Description Update the authenticated user's display name and phone.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body UpdateProfileRequest true "Profile update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [put]
func (h *Handler) updateMe(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	log := h.logger.WithField("method", "updateMe").WithField("user_id", userID)

	var input UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.UpdateProfile(c.Request.Context(), userID, input.FullName, input.Phone); err != nil {
		log.WithError(err).Error("Failed to update profile in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get own organization
// @Description Get the organization owned by the authenticated user.
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OrganizationResponse
// @Success 204 "Organization not created yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /organizations/me [get]
func (h *Handler) getMyOrganization(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	log := h.logger.WithField("method", "getMyOrganization").WithField("user_id", userID)

	org, err := h.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if org == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToOrganizationResponse(org))
}

// @Summary Save own organization
// @Description Create the organization on first save or update the existing one.
// @Tags Organizations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body SaveOrganizationRequest true "Organization settings"
// @Success 200 {object} OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or malformed coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /organizations/me [put]
func (h *Handler) saveMyOrganization(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	log := h.logger.WithField("method", "saveMyOrganization").WithField("user_id", userID)

	var input SaveOrganizationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.Save(c.Request.Context(), userID, input.Name, input.Coordinates, input.InstanceType)
	if err != nil {
		log.WithError(err).Warn("Failed to save organization in service")
		// Некорректные координаты отклоняются до обращения к бд
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization settings"})
		return
	}
	c.JSON(http.StatusOK, ModelToOrganizationResponse(org))
}

// @Summary List organizations by type
// @Description List organizations of the given instance type for the transfer dropdown.
// @Tags Organizations
// @Produce json
// @Security BearerAuth
// @Param type query string true "Instance type"
// @Param search query string false "Name substring filter"
// @Success 200 {array} OrganizationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /organizations [get]
func (h *Handler) listOrganizations(c *gin.Context) {
	log := h.logger.WithField("method", "listOrganizations")

	orgs, err := h.orgService.Search(c.Request.Context(), c.Query("type"), c.Query("search"))
	if err != nil {
		log.WithError(err).Error("Failed to list organizations from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToOrganizationResponses(orgs))
}

// @Summary List assigned reports
// @Description List the organization's assignments, most recent first.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AssignmentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	log := h.logger.WithField("method", "listReports").WithField("user_id", userID)

	org, err := h.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if org == nil {
		// Пассивная загрузка деградирует до пустого списка
		c.JSON(http.StatusOK, []AssignmentResponse{})
		return
	}

	assignments, err := h.reportService.ListAssignments(c.Request.Context(), org.ID)
	if err != nil {
		log.WithError(err).Error("Failed to list assignments from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToAssignmentResponses(assignments))
}

// @Summary Get report detail
// @Description Get the detail card of an assigned report.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} AssignmentDetailResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("report_id", reportID)

	org, orgErr := h.orgService.GetForUser(c.Request.Context(), userID)
	if orgErr != nil || org == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	detail, err := h.reportService.GetDetail(c.Request.Context(), reportID, org.ID)
	if err != nil {
		log.WithError(err).Warn("Failed to get report detail from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAssignmentDetailResponse(detail))
}

// @Summary Change report status
// @Description Change the assignment and report status in a single transaction.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param input body ChangeStatusRequest true "Status change request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 409 {object} map[string]string "Organization not created yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/status [patch]
func (h *Handler) changeReportStatus(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "changeReportStatus").WithField("report_id", reportID)

	var input ChangeStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if org == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "organization not created yet"})
		return
	}

	if err := h.reportService.ChangeStatus(c.Request.Context(), org.ID, reportID, models.ReportStatus(input.Status)); err != nil {
		log.WithError(err).Error("Failed to change report status in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change report status"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Transfer report
// @Description Transfer the assignment to another organization. The row leaves the current organization's list.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param input body TransferRequest true "Transfer request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid report ID or request body"
// @Failure 409 {object} map[string]string "Organization not created yet"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/transfer [patch]
func (h *Handler) transferReport(c *gin.Context) {
	userID, _ := UserIDFromContext(c)
	reportID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "transferReport").WithField("report_id", reportID)

	var input TransferRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get organization from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if org == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "organization not created yet"})
		return
	}

	if err := h.reportService.Transfer(c.Request.Context(), org.ID, reportID, input.OrganizationID); err != nil {
		log.WithError(err).Error("Failed to transfer report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to transfer report"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get count by account type
// @Description Get the aggregated counter value for an account type.
// @Tags Counts
// @Produce json
// @Param type path string true "Account type"
// @Success 200 {object} CountResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /counts/{type} [get]
func (h *Handler) getCountByType(c *gin.Context) {
	accountType := c.Param("type")
	log := h.logger.WithField("method", "getCountByType").WithField("type", accountType)

	value, err := h.authService.CountByType(c.Request.Context(), accountType)
	if err != nil {
		log.WithError(err).Error("Failed to get count from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, CountResponse{Title: accountType, Value: value})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
