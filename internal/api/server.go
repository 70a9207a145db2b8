package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arthlor/yeser-api/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	entriesService service.EntriesServiceI
	streakService  service.StreakServiceI
	exportService  service.ExportServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	EntriesService service.EntriesServiceI
	StreakService  service.StreakServiceI
	ExportService  service.ExportServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		entriesService: servicesOptions.EntriesService,
		streakService:  servicesOptions.StreakService,
		exportService:  servicesOptions.ExportService,
		jwtService:     servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.registerRoutes()
	return http.ListenAndServe(address, s.mx)
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/entries", s.CreateEntry)
			r.Get("/entries", s.GetEntries)
			r.Get("/entries/{id}", s.GetEntry)
			r.Delete("/entries/{id}", s.DeleteEntry)
			r.Get("/streak/status", s.GetStreakStatus)
			r.Get("/streak/milestones", s.GetMilestoneProgress)
			r.Get("/streak/categories", s.GetCategoryProgress)
			r.Get("/export", s.ExportJournal)
			r.Put("/me/locale", s.UpdateLocale)
			r.Delete("/me", s.DeleteAccount)
		})
	})
}
