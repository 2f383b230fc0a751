package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/marketstall/market-api/docs"
	v1 "github.com/marketstall/market-api/internal/api/handler/v1"
	"github.com/marketstall/market-api/internal/api/middleware"
	"github.com/marketstall/market-api/internal/config"
	"github.com/marketstall/market-api/internal/events"
	"github.com/marketstall/market-api/internal/metrics"
	"github.com/marketstall/market-api/internal/repository"
	"github.com/marketstall/market-api/internal/repository/dao"
	"github.com/marketstall/market-api/internal/service"
)

type Server struct {
	Config    *config.AppConfig
	Router    *gin.Engine
	Metrics   *metrics.Metrics
	Publisher events.Publisher
	Feed      *v1.FeedHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB, publisher events.Publisher, m *metrics.Metrics) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	feed := v1.NewFeedHandler(conf.API.AllowedCORSDomains)
	go feed.Run()

	s := &Server{
		Config:    conf,
		Router:    engine,
		Metrics:   m,
		Publisher: events.Fanout{publisher, feed},
		Feed:      feed,
	}

	s.MountMiddlewares()

	standHandler := s.initStandHandler(db)
	reservationHandler := s.initReservationHandler(db)
	incidentHandler := s.initIncidentHandler(db)
	reportHandler := s.initReportHandler(db)
	s.MountHandlers(standHandler, reservationHandler, incidentHandler, reportHandler)

	return s
}

// Close disconnects event feed subscribers.
func (s *Server) Close() {
	s.Feed.Close()
}

func (s *Server) initStandHandler(db *gorm.DB) *v1.StandHandler {
	standDAO := dao.NewStandDAO(db)
	repo := repository.NewStandRepository(standDAO)
	svc := service.NewStandService(repo, s.Publisher, s.Metrics)
	handler := v1.NewStandHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	reservationDAO := dao.NewReservationDAO(db)
	repo := repository.NewReservationRepository(reservationDAO)
	standRepo := repository.NewStandRepository(dao.NewStandDAO(db))
	svc := service.NewReservationService(repo, standRepo, s.Publisher, s.Metrics)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) initIncidentHandler(db *gorm.DB) *v1.IncidentHandler {
	incidentDAO := dao.NewIncidentDAO(db)
	repo := repository.NewIncidentRepository(incidentDAO)
	svc := service.NewIncidentService(repo, s.Publisher, s.Metrics)
	handler := v1.NewIncidentHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	standRepo := repository.NewStandRepository(dao.NewStandDAO(db))
	reservationRepo := repository.NewReservationRepository(dao.NewReservationDAO(db))
	svc := service.NewReportService(standRepo, reservationRepo)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	if s.Metrics != nil {
		s.Router.Use(middleware.Metrics(s.Metrics))
	}
}

func (s *Server) MountHandlers(
	standHandler *v1.StandHandler,
	reservationHandler *v1.ReservationHandler,
	incidentHandler *v1.IncidentHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api"

	stands := s.Router.Group(basePath)
	{
		stands.GET("/stands", standHandler.HandleGetStands)
		stands.POST("/stands", standHandler.HandleCreateStand)
		stands.GET("/stands/:standID", standHandler.HandleGetStand)
		stands.PUT("/stands/:standID/status", standHandler.HandleUpdateStandStatus)
	}

	reservations := s.Router.Group(basePath)
	{
		reservations.GET("/reservations", reservationHandler.HandleGetReservations)
		reservations.POST("/reservations", reservationHandler.HandleCreateReservation)
		reservations.GET("/reservations/:reservationID", reservationHandler.HandleGetReservation)
		reservations.PUT("/reservations/:reservationID/pay", reservationHandler.HandleMarkPaid)
		reservations.PUT("/reservations/:reservationID/cleaning", reservationHandler.HandleUpdateCleaning)
	}

	incidents := s.Router.Group(basePath)
	{
		incidents.GET("/incidents", incidentHandler.HandleGetIncidents)
		incidents.POST("/incidents", incidentHandler.HandleReportIncident)
		incidents.PUT("/incidents/:incidentID/status", incidentHandler.HandleUpdateIncidentStatus)
	}

	reports := s.Router.Group(basePath)
	{
		reports.GET("/reports/summary", reportHandler.HandleGetSummary)
	}

	s.Router.GET(basePath+"/events/ws", s.Feed.HandleFeed)

	s.Router.GET("/", v1.HandleHealthcheck)

	if s.Metrics != nil {
		s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Market stall management API"
	docs.SwaggerInfo.Description = "Stands, reservations, payments, cleaning inspections and incidents of a marketplace."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
