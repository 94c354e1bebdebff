package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	authService "github.com/hueylin/groupballot/internal/services/auth"
	ballotService "github.com/hueylin/groupballot/internal/services/ballot"
	groupsService "github.com/hueylin/groupballot/internal/services/groups"
	registryService "github.com/hueylin/groupballot/internal/services/registry"
	sessionService "github.com/hueylin/groupballot/internal/services/session"
	statsService "github.com/hueylin/groupballot/internal/services/stats"
)

// Config holds configuration for the HTTP handler
type Config struct {
	AuthService     authService.Service
	SessionService  sessionService.Service
	RegistryService registryService.Service
	GroupsService   groupsService.Service
	BallotService   ballotService.Service
	StatsService    statsService.Service
	JWTSecret       string
}

// Handler exposes the services over JSON endpoints
type Handler struct {
	authSvc     authService.Service
	sessionSvc  sessionService.Service
	registrySvc registryService.Service
	groupsSvc   groupsService.Service
	ballotSvc   ballotService.Service
	statsSvc    statsService.Service
	jwtSecret   string
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AuthService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.RegistryService == nil {
		return nil, errors.New("registry service cannot be nil")
	}

	if cfg.GroupsService == nil {
		return nil, errors.New("groups service cannot be nil")
	}

	if cfg.BallotService == nil {
		return nil, errors.New("ballot service cannot be nil")
	}

	if cfg.StatsService == nil {
		return nil, errors.New("stats service cannot be nil")
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	return &Handler{
		authSvc:     cfg.AuthService,
		sessionSvc:  cfg.SessionService,
		registrySvc: cfg.RegistryService,
		groupsSvc:   cfg.GroupsService,
		ballotSvc:   cfg.BallotService,
		statsSvc:    cfg.StatsService,
		jwtSecret:   cfg.JWTSecret,
	}, nil
}

// RegisterRoutes mounts all endpoints on the given router
func (h *Handler) RegisterRoutes(router fiber.Router) {
	// Public routes
	auth := router.Group("/auth")
	{
		auth.Post("/login", h.Login)
	}

	router.Post("/register", h.RegisterParticipant)
	router.Post("/groups", h.CreateGroup)
	router.Get("/groups", h.ListGroups)
	router.Post("/ballot/draw", h.Draw)
	router.Get("/ballot/can-draw", h.CanDraw)
	router.Get("/ballot/result", h.GetBallotResult)

	// Protected routes (admin JWT required)
	protected := router.Group("", JWTMiddleware(h.jwtSecret), AdminOnly)
	{
		protected.Delete("/participants/:email", h.RemoveParticipant)
		protected.Post("/participants/:email/designate", h.DesignateRepresentative)
		protected.Delete("/participants/:email/designate", h.RemoveRepresentativeRole)
		protected.Get("/participants", h.ListParticipants)

		protected.Post("/groups/:id/approve", h.ApproveGroup)
		protected.Delete("/groups/:id", h.RemoveGroup)

		protected.Post("/ballot/start", h.StartBallot)

		protected.Post("/sessions", h.CreateSession)
		protected.Post("/sessions/:id/select", h.SelectSession)
		protected.Post("/sessions/:id/close", h.CloseSession)
		protected.Get("/sessions", h.ListSessions)

		protected.Get("/stats", h.GetStats)
	}
}

// ErrorHandler handles errors escaping the handlers
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= 500 {
		log.WithError(err).Error("request failed")
	}

	return respondError(c, message, code)
}

// serviceError maps a service error onto the response envelope with the
// matching status code; unexpected errors are logged and masked
func (h *Handler) serviceError(c *fiber.Ctx, err error) error {
	code, known := statusForError(err)
	if !known {
		log.WithError(err).Error("request failed")
		return respondError(c, "Internal Server Error", code)
	}
	return respondError(c, err.Error(), code)
}

func statusForError(err error) (int, bool) {
	notFound := []error{
		sessionService.ErrSessionNotFound,
		registryService.ErrParticipantNotFound,
		groupsService.ErrGroupNotFound,
		ballotService.ErrGroupNotFound,
	}
	for _, sentinel := range notFound {
		if errors.Is(err, sentinel) {
			return fiber.StatusNotFound, true
		}
	}

	forbidden := []error{
		groupsService.ErrNotRepresentative,
		ballotService.ErrNotRepresentative,
	}
	for _, sentinel := range forbidden {
		if errors.Is(err, sentinel) {
			return fiber.StatusForbidden, true
		}
	}

	conflict := []error{
		registryService.ErrDuplicateEmail,
		registryService.ErrDuplicateWechatHandle,
		registryService.ErrRoleConflict,
		groupsService.ErrGroupNameTaken,
		groupsService.ErrDuplicateMember,
		groupsService.ErrMemberInGroup,
		groupsService.ErrRepresentativeInGroup,
		groupsService.ErrInvalidGroupState,
		ballotService.ErrGroupNotReady,
		ballotService.ErrBallotNotActive,
		ballotService.ErrNoApprovedGroups,
		ballotService.ErrNoPositionsAvailable,
		sessionService.ErrSessionClosed,
		sessionService.ErrNoActiveSession,
		ballotService.ErrNoActiveSession,
		authService.ErrAdminExists,
	}
	for _, sentinel := range conflict {
		if errors.Is(err, sentinel) {
			return fiber.StatusConflict, true
		}
	}

	badRequest := []error{
		registryService.ErrInvalidEmail,
		registryService.ErrHandleRequired,
		groupsService.ErrGroupTooLarge,
		groupsService.ErrRepresentativeNotRegistered,
		groupsService.ErrMemberNotRegistered,
		sessionService.ErrNameRequired,
		authService.ErrPasswordTooShort,
	}
	for _, sentinel := range badRequest {
		if errors.Is(err, sentinel) {
			return fiber.StatusBadRequest, true
		}
	}

	if errors.Is(err, authService.ErrInvalidCredentials) {
		return fiber.StatusUnauthorized, true
	}

	return fiber.StatusInternalServerError, false
}
