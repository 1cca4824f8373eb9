package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/skywallet/app/services/gateway/handlers"
	"github.com/ardanlabs/skywallet/business/core/progress"
	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/events"
	"github.com/ardanlabs/skywallet/foundation/logger"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Values in a local .env file are loaded into the environment before the
	// configuration is parsed. Real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println("loading .env:", err)
		os.Exit(1)
	}

	// Construct the application logger. The log file is read from the
	// environment since the logger exists before the configuration is parsed.
	log, closeLog, err := logger.NewWithFile("GATEWAY", logger.Config{
		File:     os.Getenv("GATEWAY_LOG_FILE"),
		MaxKB:    10 * 1024,
		MaxRolls: 3,
	})
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer closeLog()
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		closeLog()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	// This is all the configuration for the application and the default values.
	// Configuration values will be passed through the application as individual
	// values.
	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:30s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			DebugHost       string        `conf:"default:0.0.0.0:7001"`
			APIHost         string        `conf:"default:0.0.0.0:8001"`
			AssetsDir       string
			CORSOrigins     []string `conf:"default:*"`
			MaxInFlight     int64    `conf:"default:256"`
			MaxStreams      int64    `conf:"default:64"`
		}
		Node struct {
			Host    string        `conf:"default:http://127.0.0.1:6420"`
			Timeout time.Duration `conf:"default:10s"`
		}
		Sync struct {
			Interval time.Duration `conf:"default:5s"`
		}
		Upgrade struct {
			Latest string
		}
		AddressBook struct {
			File string `conf:"default:zwallet/addressbook.yaml"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "wallet gateway for the full node api",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "GATEWAY"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Address Book Support

	// The address book provides labels for the addresses the GUI displays.
	book, err := addressbook.New(cfg.AddressBook.File)
	if err != nil {
		return fmt.Errorf("unable to load address book: %w", err)
	}

	// Logging the labels for documentation in the logs.
	for addr, label := range book.Copy() {
		log.Infow("startup", "status", "addressbook", "label", label, "address", addr)
	}

	// =========================================================================
	// Node Support

	node := nodeclient.New(cfg.Node.Host, nodeclient.WithTimeout(cfg.Node.Timeout))

	core := wallet.NewCore(wallet.Config{
		Log:           log,
		Node:          node,
		Book:          book,
		LatestVersion: cfg.Upgrade.Latest,
	})

	// The watcher reports raw messages through this function. They are
	// logged, the snapshots themselves go to websocket clients through the
	// events package.
	evts := events.New()
	ev := func(v string, args ...any) {
		s := fmt.Sprintf(v, args...)
		log.Infow(s, "traceid", "00000000-0000-0000-0000-000000000000")
	}

	watcher := progress.Run(progress.Config{
		Source:    core,
		Publisher: evts,
		Interval:  cfg.Sync.Interval,
		Timeout:   cfg.Node.Timeout,
		EvHandler: ev,
	})
	defer watcher.Shutdown()

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug router started", "host", cfg.Web.DebugHost)

	// Construct the mux for the debug calls.
	debugMux := handlers.DebugMux(build, log, node)

	// Start the service listening for debug requests.
	// Not concerned with shutting this down with load shedding.
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Service Start/Stop Support

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	// Make a channel to listen for errors coming from the listener. Use a
	// buffered channel so the goroutine can exit if we don't collect this error.
	serverErrors := make(chan error, 1)

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing API support", "node", node.Host())

	// Construct the mux for the API calls.
	apiMux := handlers.APIMux(handlers.MuxConfig{
		Shutdown:    shutdown,
		Log:         log,
		Node:        node,
		Core:        core,
		Evts:        evts,
		CORSOrigins: cfg.Web.CORSOrigins,
		MaxInFlight: cfg.Web.MaxInFlight,
		MaxStreams:  cfg.Web.MaxStreams,
		AssetsDir:   cfg.Web.AssetsDir,
	})

	// Construct a server to service the requests against the mux.
	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	// Start the service listening for api requests.
	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	// Blocking main and waiting for shutdown.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Release any web sockets that are currently active.
		log.Infow("shutdown", "status", "shutdown web socket channels")
		evts.Shutdown()

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
