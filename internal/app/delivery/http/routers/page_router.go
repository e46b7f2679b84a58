package routers

import (
	"emission-service/internal/app/delivery/http/controllers"
	"emission-service/internal/app/delivery/http/middlewares"
	"emission-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, pageController *controllers.PageController) {
	router.Get(constvars.PathRoot, pageController.Index)
	router.Get(constvars.PathSignup, pageController.ShowSignup)
	router.Post(constvars.PathSignup, pageController.Signup)
	router.Get(constvars.PathLogin, pageController.ShowLogin)
	router.Post(constvars.PathLogin, pageController.Login)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireSession)
		r.Get(constvars.PathLogout, pageController.Logout)
		r.Get(constvars.PathDashboard, pageController.Dashboard)
		r.Get(constvars.PathProfile, pageController.ShowProfile)
		r.Post(constvars.PathProfile, pageController.UpdateProfile)
		r.Get(constvars.PathStats, pageController.Stats)
	})
}
