//
// Articles
// ========
// A HTTP REST web service storing articles in MongoDB.
//
// Boot the server:
// ----------------
// $ DATABASE_URL=mongodb://localhost:27017/articles go run .
//
// Or without a database:
// $ STORAGE_DRIVER=memory go run .
//
// Client requests:
// ----------------
// $ curl -X POST -d '{"articleTitle":"Hi","articleBody":"sup"}' http://localhost:3000/articles
// {"id":"6650c0f1e4b0a1b2c3d4e5f6","title":"Hi","body":"sup","numberOfLikes":100}
//
// $ curl http://localhost:3000/articles
// [{"id":"6650c0f1e4b0a1b2c3d4e5f6","title":"Hi","body":"sup","numberOfLikes":100}]
//
// $ curl -X PUT -d '{"articleTitle":"Hello"}' http://localhost:3000/articles/6650c0f1e4b0a1b2c3d4e5f6
// {"message":"Article updated successfully","updatedArticle":{"id":"6650c0f1e4b0a1b2c3d4e5f6","title":"Hello","body":"sup","numberOfLikes":100}}
//
// $ curl -X DELETE http://localhost:3000/articles/6650c0f1e4b0a1b2c3d4e5f6
// {"message":"Article deleted successfully","deletedArticle":{...}}
//
// $ curl http://localhost:3000/articles/6650c0f1e4b0a1b2c3d4e5f6
// {"message":"Article not found"}
//
// Pass -routes to print the route docs instead of serving.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/docgen"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/articles/internal/applog"
	"github.com/SergeyParamoshkin/articles/internal/article"
	"github.com/SergeyParamoshkin/articles/internal/config"
	"github.com/SergeyParamoshkin/articles/internal/metrics"
	"github.com/SergeyParamoshkin/articles/internal/server"
	"github.com/SergeyParamoshkin/articles/internal/store"
	"github.com/SergeyParamoshkin/articles/internal/store/memory"
	"github.com/SergeyParamoshkin/articles/internal/store/mongo"
)

const ServiceName = "articles"

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (overrides CONFIG_PATH env)")
		routes     = flag.Bool("routes", false, "Generate router documentation")
	)

	flag.Parse()

	if *routes {
		fmt.Println(routesDoc())

		return
	}

	cfg := config.MustLoad(*configPath)

	logger, err := applog.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() // flushes buffer, if any
	sugar := logger.Sugar()

	m, err := metrics.New(ServiceName)
	if err != nil {
		sugar.Fatalw("failed to initialize metrics", "error", err)
	}

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	s := openStore(rootCtx, cfg, sugar)

	r := server.NewRouter(server.Options{
		Logger:   sugar,
		Articles: article.NewRepository(s),
		Metrics:  m,
	})

	apiSrv := &http.Server{Addr: cfg.HTTP.Addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}
	diagSrv := &http.Server{Addr: cfg.HTTP.DiagAddr, Handler: server.NewDiagRouter(m, s), ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 2)
	for _, srv := range []*http.Server{apiSrv, diagSrv} {
		srv := srv
		go func() {
			sugar.Infow("http_listen_start", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("serve %s: %w", srv.Addr, err)
			}
		}()
	}

	select {
	case <-rootCtx.Done():
		sugar.Infow("shutdown_requested")
	case err := <-errCh:
		sugar.Errorw("http_serve_failed", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	for _, srv := range []*http.Server{apiSrv, diagSrv} {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			sugar.Warnw("http_shutdown_failed", "addr", srv.Addr, "error", err)
		}
	}

	if err := s.Close(shutdownCtx); err != nil {
		sugar.Warnw("store_close_failed", "error", err)
	}

	sugar.Infow("service_stopped")
}

// routesDoc renders the public routes as Markdown. No config is read and no
// backend is contacted.
func routesDoc() string {
	r := server.NewRouter(server.Options{
		Articles: article.NewRepository(store.Unavailable(errors.New("route docs only"))),
	})

	return docgen.MarkdownRoutesDoc(r, docgen.MarkdownOpts{
		ProjectPath: "github.com/SergeyParamoshkin/articles",
		Intro:       "Routes of the articles service.",
	})
}

// openStore never fails: when the backend cannot be set up the error is
// logged and every request answers 500 until the process is restarted.
// An unreachable but well-formed MongoDB URL keeps the real client, which
// reconnects on its own.
func openStore(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) store.Store {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warnw("using in-memory storage; data is lost on exit")

		return memory.New()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeouts.Connect)
	defer cancel()

	s, err := mongo.New(ctx, cfg.DB)
	if err != nil {
		log.Errorw("Error connecting to the database", "error", err)

		return store.Unavailable(err)
	}

	if err := s.Ping(ctx); err != nil {
		log.Errorw("Error connecting to the database", "error", err)

		return s
	}

	log.Infow("Connected to the database successfully")

	return s
}
