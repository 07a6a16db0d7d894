package handler

import (
	"net/http"

	"facility-hub/internal/config"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
	"facility-hub/internal/usecase/device"
	"facility-hub/internal/usecase/location"
	"facility-hub/internal/usecase/user"
	"facility-hub/internal/webui"
	"facility-hub/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebHandler serves the embedded pages and the server-rendered fragments the
// page scripts swap in.
type WebHandler struct {
	cfg             *config.Config
	userService     *user.Service
	locationService *location.Service
	deviceService   *device.Service
	userIndex       *webui.UserIndex
}

func NewWebHandler(
	cfg *config.Config,
	userService *user.Service,
	locationService *location.Service,
	deviceService *device.Service,
) *WebHandler {
	return &WebHandler{
		cfg:             cfg,
		userService:     userService,
		locationService: locationService,
		deviceService:   deviceService,
		// The pick buttons in the users table fill the assign form's user
		// field; the target id is injected here, not hard-coded in the table.
		userIndex: webui.NewUserIndex(userService, "assign_user_id"),
	}
}

func (h *WebHandler) RegisterPageRoutes(router *gin.Engine) {
	router.GET("/", h.Dashboard)
	router.GET("/admin", h.Admin)
	router.GET("/login", h.Login)
	router.GET("/logout", h.Logout)
}

func (h *WebHandler) RegisterFragmentRoutes(router *gin.RouterGroup) {
	router.GET("/devices", h.DevicesFragment)
}

func (h *WebHandler) RegisterAdminFragmentRoutes(router *gin.RouterGroup) {
	router.GET("/users", h.UsersFragment)
}

func (h *WebHandler) Dashboard(c *gin.Context) {
	actor, ok := h.pageUser(c)
	if !ok {
		return
	}

	// A failed location fetch leaves the map empty but the page usable.
	var markersJSON = webui.EmptyMarkersJSON
	locations, err := h.locationService.ListFor(c.Request.Context(), actor)
	if err != nil {
		logger.Error("Failed to load locations for map", zap.Error(err))
	} else {
		markers, err := webui.BuildMarkers(locations)
		if err == nil {
			if encoded, jsonErr := webui.MarkersJSON(markers); jsonErr == nil {
				markersJSON = encoded
			}
		}
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	err = webui.WriteDashboard(c.Writer, webui.DashboardData{
		UserName:    actor.Name,
		Superuser:   actor.IsSuperuser,
		MarkersJSON: markersJSON,
	})
	if err != nil {
		logger.Error("Failed to render dashboard", zap.Error(err))
	}
}

func (h *WebHandler) Admin(c *gin.Context) {
	actor, ok := h.pageUser(c)
	if !ok {
		return
	}
	if !actor.IsSuperuser {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := webui.WriteAdmin(c.Writer, actor.Name); err != nil {
		logger.Error("Failed to render admin page", zap.Error(err))
	}
}

func (h *WebHandler) Login(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := webui.WriteLogin(c.Writer); err != nil {
		logger.Error("Failed to render login page", zap.Error(err))
	}
}

func (h *WebHandler) Logout(c *gin.Context) {
	clearAuthCookie(c)
	c.Redirect(http.StatusFound, "/login")
}

func (h *WebHandler) DevicesFragment(c *gin.Context) {
	actor, ok := currentUser(c, h.userService)
	if !ok {
		return
	}

	devices, err := h.deviceService.ListFor(c.Request.Context(), actor)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load devices")
		return
	}

	names := map[int64]string{}
	if locations, err := h.locationService.ListFor(c.Request.Context(), actor); err == nil {
		for _, l := range locations {
			names[l.ID] = l.Name
		}
	}

	fragment, err := webui.RenderDeviceList(devices, func(id int64) string { return names[id] })
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render devices")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

// UsersFragment serves the admin users table. Without a q parameter it
// reloads the cache from the database; with one (even empty) it filters the
// cached snapshot only.
func (h *WebHandler) UsersFragment(c *gin.Context) {
	var view []*user.UserResponse
	if q, filtering := c.GetQuery("q"); filtering {
		view = h.userIndex.Filter(q)
	} else {
		loaded, err := h.userIndex.Load(c.Request.Context())
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to load users")
			return
		}
		view = loaded
	}

	fragment, err := h.userIndex.RenderUsersTable(view)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render users")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

// pageUser authenticates a browser page request from the auth cookie and
// redirects to the login page when it fails.
func (h *WebHandler) pageUser(c *gin.Context) (*domainUser.User, bool) {
	token, err := c.Cookie("access_token")
	if err != nil || token == "" {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	claims, err := utils.ValidateToken(token, h.cfg.JWT.Secret)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	actor, err := h.userService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return nil, false
	}

	return actor, true
}
