package router

import (
	"github.com/labstack/echo/v4"

	"github.com/helenus/hotel-api/internal/handler"
	"github.com/helenus/hotel-api/internal/middleware"
)

// UserDeps bundles the handlers and middleware mounted under /user.  The
// cache and rate-limit middleware are optional; pass nil to skip them
// (tests do).
type UserDeps struct {
	Auth      *handler.AuthHandler
	Rooms     *handler.RoomHandler
	Reviews   *handler.ReviewHandler
	Bookings  *handler.BookingHandler
	Gallery   *handler.GalleryHandler
	JWTSecret string
	Cache     echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

// RegisterUser registers the guest-facing surface under /user.  Account
// and catalog-read routes are public; booking routes require a valid
// session.  The heavy read endpoints (rooms, gallery) go through the
// response cache and rate limiter when configured.
func RegisterUser(e *echo.Echo, d UserDeps) {
	g := e.Group("/user")
	if d.RateLimit != nil {
		g.Use(d.RateLimit)
	}

	// Account lifecycle.
	g.POST("/register", d.Auth.Register)
	g.POST("/login", d.Auth.Login)
	g.POST("/verify-email", d.Auth.VerifyEmail)
	g.POST("/contact", d.Auth.Contact)
	g.POST("/refresh", d.Auth.RefreshSession)
	g.POST("/logout", d.Auth.Logout)

	// Catalog reads.  Responses embed presigned URLs, so the cache TTL is
	// configured below the presign window.
	read := []echo.MiddlewareFunc{}
	if d.Cache != nil {
		read = append(read, d.Cache)
	}
	g.GET("/rooms", d.Rooms.List, read...)
	g.GET("/room/:id", d.Rooms.Get, read...)
	g.GET("/gallery", d.Gallery.List, read...)
	g.GET("/gallery/:id", d.Gallery.Get, read...)

	// Reviews.  Creation carries the reviewer id in the body rather than a
	// session, matching the frontend contract.
	g.POST("/review-room", d.Reviews.Add)
	g.GET("/review/:roomId", d.Reviews.ListForRoom)

	// Bookings require an authenticated session.
	auth := g.Group("/bookings", middleware.JWTAuth(d.JWTSecret))
	auth.POST("", d.Bookings.Submit)
	auth.GET("", d.Bookings.ListMine)
}
