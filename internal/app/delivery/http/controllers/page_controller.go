package controllers

import (
	"context"
	"emission-service/internal/app/config"
	"emission-service/internal/app/contracts"
	"emission-service/internal/app/delivery/http/views"
	"emission-service/internal/pkg/constvars"
	"emission-service/internal/pkg/dto/requests"
	"emission-service/internal/pkg/dto/responses"
	"emission-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const (
	noticeQueryKey   = "notice"
	noticeRegistered = "registered"
	noticeLoggedOut  = "logged_out"
)

var notices = map[string]string{
	noticeRegistered: "Account created, please log in.",
	noticeLoggedOut:  "You have been logged out.",
}

type pageData struct {
	Title     string
	Username  string
	Error     string
	Notice    string
	Login     requests.Login
	Signup    requests.Signup
	Profile   responses.Profile
	Dashboard responses.Dashboard
	Stats     responses.Stats
}

// PageController serves the HTML front end. Form errors re-render the form
// with the client message and the status of the underlying error.
type PageController struct {
	Log              *zap.Logger
	Renderer         *views.Renderer
	AuthUsecase      contracts.AuthUsecase
	UserUsecase      contracts.UserUsecase
	StatsUsecase     contracts.StatsUsecase
	DashboardUsecase contracts.DashboardUsecase
	InternalConfig   *config.InternalConfig
}

func NewPageController(
	logger *zap.Logger,
	renderer *views.Renderer,
	authUsecase contracts.AuthUsecase,
	userUsecase contracts.UserUsecase,
	statsUsecase contracts.StatsUsecase,
	dashboardUsecase contracts.DashboardUsecase,
	internalConfig *config.InternalConfig,
) *PageController {
	return &PageController{
		Log:              logger,
		Renderer:         renderer,
		AuthUsecase:      authUsecase,
		UserUsecase:      userUsecase,
		StatsUsecase:     statsUsecase,
		DashboardUsecase: dashboardUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *PageController) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, constvars.PathLogin, http.StatusFound)
}

func (ctrl *PageController) ShowSignup(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, http.StatusOK, constvars.TemplateSignup, &pageData{Title: "Sign up"})
}

func (ctrl *PageController) Signup(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildSignupRequestFromForm(r)
	if err != nil {
		ctrl.renderError(w, constvars.TemplateSignup, &pageData{Title: "Sign up"}, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	_, err = ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		form := *request
		form.Password = ""
		ctrl.renderError(w, constvars.TemplateSignup, &pageData{Title: "Sign up", Signup: form}, err)
		return
	}

	http.Redirect(w, r, constvars.PathLogin+"?"+noticeQueryKey+"="+noticeRegistered, http.StatusSeeOther)
}

func (ctrl *PageController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	ctrl.render(w, http.StatusOK, constvars.TemplateLogin, &pageData{
		Title:  "Login",
		Notice: notices[r.URL.Query().Get(noticeQueryKey)],
	})
}

func (ctrl *PageController) Login(w http.ResponseWriter, r *http.Request) {
	request, err := utils.BuildLoginRequestFromForm(r)
	if err != nil {
		ctrl.renderError(w, constvars.TemplateLogin, &pageData{Title: "Login"}, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		form := requests.Login{Username: request.Username}
		ctrl.renderError(w, constvars.TemplateLogin, &pageData{Title: "Login", Login: form}, err)
		return
	}

	utils.SetSessionCookie(w, ctrl.InternalConfig.App.SessionCookieName, result.Token, ctrl.InternalConfig.SessionTTL())
	http.Redirect(w, r, constvars.PathDashboard, http.StatusSeeOther)
}

func (ctrl *PageController) Logout(w http.ResponseWriter, r *http.Request) {
	if session, ok := utils.GetSession(r.Context()); ok {
		ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
		defer cancel()

		err := ctrl.AuthUsecase.Logout(ctx, session)
		if err != nil {
			// the cookie is dropped regardless; an orphaned session simply expires
			utils.LogCustomError(ctrl.Log, err)
		}
	}

	utils.ClearSessionCookie(w, ctrl.InternalConfig.App.SessionCookieName)
	http.Redirect(w, r, constvars.PathLogin+"?"+noticeQueryKey+"="+noticeLoggedOut, http.StatusSeeOther)
}

func (ctrl *PageController) Dashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.PathLogin, http.StatusSeeOther)
		return
	}

	dashboard := ctrl.DashboardUsecase.GetDashboard(r.Context(), session)
	ctrl.render(w, http.StatusOK, constvars.TemplateDashboard, &pageData{
		Title:     "Dashboard",
		Username:  session.Username,
		Dashboard: utils.ConvertDashboardToResponse(dashboard),
	})
}

func (ctrl *PageController) ShowProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.PathLogin, http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	data := &pageData{Title: "Profile", Username: session.Username}
	profile, err := ctrl.UserUsecase.GetProfile(ctx, session)
	if err != nil {
		ctrl.renderError(w, constvars.TemplateProfile, data, err)
		return
	}

	data.Profile = *profile
	ctrl.render(w, http.StatusOK, constvars.TemplateProfile, data)
}

func (ctrl *PageController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.PathLogin, http.StatusSeeOther)
		return
	}

	data := &pageData{Title: "Profile", Username: session.Username}
	request, err := utils.BuildUpdateVehicleRequestFromForm(r)
	if err != nil {
		ctrl.renderError(w, constvars.TemplateProfile, data, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	_, err = ctrl.UserUsecase.ReplaceVehicle(ctx, session, request)
	if err != nil {
		data.Profile = responses.Profile{
			Username:      session.Username,
			VehicleNumber: request.VehicleNumber,
			VehicleModel:  request.VehicleModel,
			AirFuelRatio:  request.AirFuelRatio,
		}
		ctrl.renderError(w, constvars.TemplateProfile, data, err)
		return
	}

	http.Redirect(w, r, constvars.PathDashboard, http.StatusSeeOther)
}

func (ctrl *PageController) Stats(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSession(r.Context())
	if !ok {
		http.Redirect(w, r, constvars.PathLogin, http.StatusSeeOther)
		return
	}

	ctrl.render(w, http.StatusOK, constvars.TemplateStats, &pageData{
		Title:    "Stats",
		Username: session.Username,
		Stats:    buildStats(r, ctrl.StatsUsecase),
	})
}

func (ctrl *PageController) renderError(w http.ResponseWriter, name string, data *pageData, err error) {
	status := constvars.StatusInternalServerError
	data.Error = constvars.ErrClientSomethingWrongWithApplication
	if customErr := utils.LogCustomError(ctrl.Log, err); customErr != nil {
		status = customErr.StatusCode
		data.Error = customErr.ClientMessage
	}
	ctrl.render(w, status, name, data)
}

func (ctrl *PageController) render(w http.ResponseWriter, status int, name string, data *pageData) {
	err := ctrl.Renderer.Render(w, status, name, data)
	if err != nil {
		utils.LogCustomError(ctrl.Log, err)
		http.Error(w, constvars.ErrClientSomethingWrongWithApplication, http.StatusInternalServerError)
	}
}
