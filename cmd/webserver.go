package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"phrase-agent/core/config"
	"phrase-agent/core/loader"
	"phrase-agent/core/logger"
	"phrase-agent/core/middleware/rayid"
	"phrase-agent/core/server"
	"phrase-agent/feature/phrase"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sslCert string
	sslKey  string
)

// webserverCmd represents the webserver command
var webserverCmd = &cobra.Command{
	Use:   "webserver",
	Short: "Run the built-in webserver",
	Long:  `Starts the HTTP server and serves the phrase API until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// CLI flags take precedence over environment configuration.
		if sslCert != "" {
			cfg.Server.SSLCert = sslCert
		}
		if sslKey != "" {
			cfg.Server.SSLKey = sslKey
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			ErrorHandler:          server.ErrorHandler(logg),
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		feat, err := phrase.NewFeature(phrase.DefaultPhrases, logg)
		if err != nil {
			logg.Fatal("Failed to create phrase feature", zap.Error(err))
		}
		mgr.Register(feat)

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Fallback, handle 404s. Must be registered after every route.
		app.Use(server.NotFoundHandler())

		// 7. Start Server
		go func() {
			addr := cfg.Server.Addr()
			if cfg.Server.TLSReady(logg) {
				logg.Info("Starting server", zap.String("addr", addr), zap.Bool("tls", true))
				if err := app.ListenTLS(addr, cfg.Server.SSLCert, cfg.Server.SSLKey); err != nil {
					logg.Fatal("Server failed to start", zap.Error(err))
				}
				return
			}
			logg.Info("Starting server", zap.String("addr", addr), zap.Bool("tls", false))
			if err := app.Listen(addr); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		fmt.Println("Bye.")
	},
}

func init() {
	webserverCmd.Flags().StringVar(&sslCert, "ssl_cert", "", "Path to public SSL certificate file.")
	webserverCmd.Flags().StringVar(&sslKey, "ssl_key", "", "Path to private SSL key file.")
	RootCmd.AddCommand(webserverCmd)
}
