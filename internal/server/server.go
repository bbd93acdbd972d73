package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gobuffalo/packr"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/gutenlab/datalake/internal/cache"
	"github.com/gutenlab/datalake/internal/compress"
	"github.com/gutenlab/datalake/internal/config"
	"github.com/gutenlab/datalake/internal/jobs"
	"github.com/gutenlab/datalake/internal/queue"
	"github.com/gutenlab/datalake/internal/service"
	"github.com/gutenlab/datalake/internal/store"
)

// Server represents the server
type Server struct {
	httpPort string
}

// NewServer creates a new server
func NewServer(httpPort string) *Server {
	return &Server{
		httpPort: httpPort,
	}
}

// Start starts the server
func (s *Server) Start() {
	if err := Start(s.httpPort); err != nil {
		logrus.Fatalf("error starting server: %v", err)
	}
}

// Start starts the http server and blocks until a shutdown signal arrives.
func Start(httpPort string) error {
	httpPort = ":" + httpPort

	cnf := config.LoadConfig()
	db := config.GetDb(cnf)

	st := store.NewGormStore(db)
	if err := st.Migrate(); err != nil {
		return err
	}

	encoder := compress.FromName(cnf.Compression)

	// the published-page cache is optional; a missing redis only costs reads
	var rdb *cache.Redis
	if cnf.RedisAddr != "" {
		var err error
		rdb, err = cache.NewRedis(cnf.RedisAddr, encoder)
		if err != nil {
			logrus.Errorf("error connecting to redis, cache disabled: %v", err)
			rdb = nil
		}
	}

	var q queue.Queue = queue.NewNop()
	if cnf.KafkaBrokers != "" {
		kq, err := queue.NewKafka(cnf.KafkaBrokers, cnf.KafkaTopic)
		if err != nil {
			return err
		}
		q = kq
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(RequestTimeMiddleware())
	e.HTTPErrorHandler = httpErrorHandler

	h := &handlers{
		sites:    service.NewSiteService(st),
		sections: service.NewSectionService(st),
		pages:    service.NewPageService(st),
		refs:     service.NewRefService(st),
		notes:    service.NewNoteService(st),
		publish:  service.NewPublishService(st, rdb, q),
	}
	h.register(e)

	box := packr.NewBox("../../docs")
	e.GET("/docs/*", echo.WrapHandler(http.StripPrefix("/docs/", http.FileServer(box))))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"*"},
	})

	httpServer := &http.Server{
		Addr:    httpPort,
		Handler: c.Handler(e),
	}

	var executor *jobs.Executor
	if rdb != nil {
		executor = jobs.NewExecutor([]jobs.CronTask{
			jobs.NewPublishedCacheWarmTask(cnf.CacheWarm, st, rdb),
		})
		executor.Run()
	}

	go func() {
		logrus.Infof("starting http server at %s", httpPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("http server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, unix.SIGTERM)
	<-sig

	logrus.Infof("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logrus.Errorf("error shutting down http server: %v", err)
	}

	if executor != nil {
		executor.Stop()
	}
	q.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
	config.CloseDb(db)

	return nil
}
