// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"parivartan/internal/delivery/http/middleware"
	"parivartan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	RouteHandler        *handler.RouteHandler
	PartnerHandler      *handler.PartnerHandler
	SubscriptionHandler *handler.SubscriptionHandler
	RewardHandler       *handler.RewardHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	routeHandler        *handler.RouteHandler
	partnerHandler      *handler.PartnerHandler
	subscriptionHandler *handler.SubscriptionHandler
	rewardHandler       *handler.RewardHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		routeHandler:        params.RouteHandler,
		partnerHandler:      params.PartnerHandler,
		subscriptionHandler: params.SubscriptionHandler,
		rewardHandler:       params.RewardHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/admin/signin", r.authHandler.AdminSignIn)
		authGroup.POST("/signout", r.authHandler.SignOut)
	}

	// Routing decision for the current session
	routeGroup := e.Group("/route")
	routeGroup.Use(r.authMiddleware.Authenticate)
	{
		routeGroup.GET("", r.routeHandler.CurrentRoute)
	}

	// Partner self-service routes
	partnerGroup := e.Group("/partner")
	partnerGroup.Use(r.authMiddleware.Authenticate)
	{
		partnerGroup.GET("/profile", r.partnerHandler.GetProfile)
		partnerGroup.PATCH("/profile", r.partnerHandler.UpdateProfile)
		partnerGroup.GET("/documents", r.partnerHandler.ListDocuments)
		partnerGroup.POST("/documents", r.partnerHandler.SubmitDocument)
		partnerGroup.POST("/documents/submit-for-review", r.partnerHandler.SubmitForReview)

		partnerGroup.GET("/subscription/plans", r.subscriptionHandler.ListPlans)
		partnerGroup.POST("/subscription/purchase", r.subscriptionHandler.Purchase)

		partnerGroup.GET("/rewards/balance", r.rewardHandler.GetBalance)
		partnerGroup.GET("/rewards/vouchers", r.rewardHandler.ListVouchers)
		partnerGroup.GET("/rewards/redemptions", r.rewardHandler.ListRedemptions)
		partnerGroup.POST("/rewards/vouchers/:voucherID/redeem", r.rewardHandler.Redeem)
		partnerGroup.GET("/rewards/vouchers/:voucherID/qr", r.rewardHandler.RedemptionQR)
	}

	// Admin routes that require authentication and the admin identity
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/partners", r.adminHandler.ListPartners)
		adminGroup.GET("/partners/:partnerID", r.adminHandler.GetPartner)
		adminGroup.POST("/partners/:partnerID/documents/review", r.adminHandler.ReviewDocument)
		adminGroup.POST("/partners/:partnerID/verification", r.adminHandler.TransitionVerification)
	}
}
