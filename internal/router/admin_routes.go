package router

import (
	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/handler"
	"github.com/helenus/hotel-api/internal/middleware"
	"github.com/helenus/hotel-api/internal/model"
)

// AdminDeps bundles the handlers mounted under /admin.
type AdminDeps struct {
	Rooms     *handler.AdminRoomHandler
	Gallery   *handler.AdminGalleryHandler
	Reviews   *handler.ReviewHandler
	JWTSecret string
}

// RegisterAdmin registers the administrative surface under /admin.  Every
// route requires a valid JWT carrying the admin role.
func RegisterAdmin(e *echo.Echo, d AdminDeps) {
	g := e.Group(
		"/admin",
		middleware.JWTAuth(d.JWTSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// Room catalog management.  Create and update accept multipart form
	// data carrying the image files.
	g.POST("/create-room", d.Rooms.Create)
	g.PUT("/room/:id", d.Rooms.Update)
	g.DELETE("/room/:id", d.Rooms.Delete)

	// Review moderation.
	g.DELETE("/review/:id", d.Reviews.Delete)

	// Gallery management.
	g.POST("/post-gallery", d.Gallery.Create)
	g.PUT("/gallery/:id", d.Gallery.Update)
	g.DELETE("/gallery/:id", d.Gallery.Delete)
}
