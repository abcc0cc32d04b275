package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/auth"
	"github.com/trezcool/shule/core/school"
	reportsvc "github.com/trezcool/shule/services/report"
)

type (
	ServerDeps struct {
		Conf      *core.Config
		Logger    core.Logger
		AuthSvc   *auth.Service
		SchoolSvc *school.Service
		Repo      school.Repository
		ReportSvc *reportsvc.Service

		DisableReqLogs bool
	}

	Server interface {
		http.Handler
		Start()
		Shutdown(context.Context) error
		Close() error
		Errors() <-chan error
		ShutdownSignal() <-chan os.Signal
	}

	server struct {
		deps     ServerDeps
		app      *echo.Echo
		errs     chan error
		shutdown chan os.Signal
	}
)

var _ Server = (*server)(nil)

func NewServer(deps ServerDeps) Server {
	s := &server{
		deps:     deps,
		app:      echo.New(),
		errs:     make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger)
	s.app.Debug = conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := requireAuth(conf)

	registerAuthAPI(v1, jwt, s.deps.AuthSvc, conf)
	registerStudentAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerTeacherAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerClassAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerGradeAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerAttendanceAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerQueryAPI(v1, jwt, s.deps.SchoolSvc, s.deps.Repo)
	registerDashboardAPI(v1, jwt, s.deps.Repo)
	registerReportAPI(v1, jwt, s.deps.ReportSvc, s.deps.Repo)
}

func (s *server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.errs <- s.app.Start(s.deps.Conf.Server.Address())
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) Close() error {
	return s.app.Close()
}

func (s *server) Errors() <-chan error {
	return s.errs
}

func (s *server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Shule API!")
}
