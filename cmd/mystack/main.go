// Serve the MyStack precious metals inventory.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"

	"github.com/ShadowWhisperer/MyStack/internal/database"
	"github.com/ShadowWhisperer/MyStack/internal/env"
	"github.com/ShadowWhisperer/MyStack/internal/logging"
	"github.com/ShadowWhisperer/MyStack/internal/prices"
	"github.com/ShadowWhisperer/MyStack/internal/route/api"
	"github.com/ShadowWhisperer/MyStack/internal/route/auth"
	"github.com/ShadowWhisperer/MyStack/internal/route/coin"
	"github.com/ShadowWhisperer/MyStack/internal/route/dashboard"
	"github.com/ShadowWhisperer/MyStack/internal/route/goldback"
	"github.com/ShadowWhisperer/MyStack/internal/route/metal"
	"github.com/ShadowWhisperer/MyStack/internal/session"
	"github.com/ShadowWhisperer/MyStack/internal/template"
	"github.com/ShadowWhisperer/MyStack/internal/upload"
)

type connHandler func(*database.Conn, http.ResponseWriter, *http.Request)

func withConn(conn *database.Conn, handler connHandler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler(conn, writer, request)
	}
}

type priceHandler func(*database.Conn, *prices.Service, http.ResponseWriter, *http.Request)

func withPrices(conn *database.Conn, service *prices.Service, handler priceHandler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler(conn, service, writer, request)
	}
}

type imageHandler func(*database.Conn, *upload.Store, http.ResponseWriter, *http.Request)

func withImages(conn *database.Conn, images *upload.Store, handler imageHandler) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		handler(conn, images, writer, request)
	}
}

func main() {
	env.LoadEnvironmentVariables()
	logger := logging.New(env.String("LOG_LEVEL", "info"))

	session.InitSessionStorage()
	template.Init()

	conn, err := database.Connect()

	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	defer conn.Close()

	images, err := upload.NewStore(env.String("MEDIA_DIR", "media"))

	if err != nil {
		logger.Fatal().Err(err).Msg("media directory setup failed")
	}

	service := prices.NewService(
		prices.NewYahooSource(prices.DefaultTimeout),
		prices.Config{
			Symbols: prices.DefaultSymbols,
			Fallbacks: map[prices.Metal]decimal.Decimal{
				prices.Gold:   env.Decimal("FALLBACK_GOLD_PRICE", "2050.00"),
				prices.Silver: env.Decimal("FALLBACK_SILVER_PRICE", "23.50"),
			},
			Pacing: prices.DefaultPacing,
		},
		logger,
	)

	// Fill the cache before the listener starts serving valuations.
	logger.Info().Msg("fetching initial spot prices")
	service.FetchAll(context.Background())

	interval := env.Duration("PRICE_REFRESH_INTERVAL", prices.DefaultInterval)
	scheduler := cron.New()
	scheduler.Schedule(cron.Every(interval), cron.FuncJob(func() {
		service.FetchAll(context.Background())
	}))
	scheduler.Start()

	router := mux.NewRouter().StrictSlash(true)

	router.HandleFunc("/", withPrices(conn, service, dashboard.HandleDashboard)).Methods("GET")
	router.HandleFunc("/dashboard", withPrices(conn, service, dashboard.HandleDashboard)).Methods("GET")
	router.HandleFunc("/login", withConn(conn, auth.HandleViewLoginForm)).Methods("GET")
	router.HandleFunc("/login", withConn(conn, auth.HandleLogin)).Methods("POST")
	router.HandleFunc("/logout", auth.HandleLogout).Methods("POST")

	router.HandleFunc("/metals", withConn(conn, metal.HandleMetalList)).Methods("GET")
	router.HandleFunc("/metals", withConn(conn, metal.HandleSubmitMetal)).Methods("POST")
	router.HandleFunc("/metals/{id}", withConn(conn, metal.HandleMetal)).Methods("GET")
	router.HandleFunc("/metals/{id}", withConn(conn, metal.HandleUpdateMetal)).Methods("POST")
	router.HandleFunc("/metals/{id}", withConn(conn, metal.HandleDeleteMetal)).Methods("DELETE")

	router.HandleFunc("/coins", withConn(conn, coin.HandleCoinList)).Methods("GET")
	router.HandleFunc("/coins", withImages(conn, images, coin.HandleSubmitCoin)).Methods("POST")
	router.HandleFunc("/coins/{id}", withConn(conn, coin.HandleCoin)).Methods("GET")
	router.HandleFunc("/coins/{id}", withImages(conn, images, coin.HandleUpdateCoin)).Methods("POST")
	router.HandleFunc("/coins/{id}", withImages(conn, images, coin.HandleDeleteCoin)).Methods("DELETE")

	router.HandleFunc("/goldbacks", withPrices(conn, service, goldback.HandleGoldbackList)).Methods("GET")
	router.HandleFunc("/goldbacks", withConn(conn, goldback.HandleSubmitGoldback)).Methods("POST")
	router.HandleFunc("/goldbacks/{id}", withConn(conn, goldback.HandleGoldback)).Methods("GET")
	router.HandleFunc("/goldbacks/{id}", withConn(conn, goldback.HandleUpdateGoldback)).Methods("POST")
	router.HandleFunc("/goldbacks/{id}", withConn(conn, goldback.HandleDeleteGoldback)).Methods("DELETE")

	router.HandleFunc("/api/prices", func(writer http.ResponseWriter, request *http.Request) {
		api.HandlePrices(service, writer, request)
	}).Methods("GET")

	staticServer := http.FileServer(http.Dir("./static/"))
	router.PathPrefix("/static/").
		Handler(http.StripPrefix("/static/", staticServer))

	mediaServer := http.FileServer(http.Dir(images.Dir()))
	router.PathPrefix("/media/").
		Handler(http.StripPrefix("/media/", mediaServer))

	server := http.Server{
		Addr:    ":" + env.String("PORT", "8000"),
		Handler: router,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	logger.Info().Str("address", server.Addr).Msg("server started")
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}

	scheduler.Stop()
	logger.Info().Msg("server shut down successfully")
}
