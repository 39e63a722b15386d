package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/go-pass-keeper-client/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-client/internal/client"
	"github.com/MKhiriev/go-pass-keeper-client/internal/config"
	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	handler "github.com/MKhiriev/go-pass-keeper-client/internal/handler/http"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/internal/server"
	"github.com/MKhiriev/go-pass-keeper-client/internal/service"
	"github.com/MKhiriev/go-pass-keeper-client/internal/store"
	"github.com/MKhiriev/go-pass-keeper-client/internal/tui"
	"github.com/MKhiriev/go-pass-keeper-client/internal/utils"
	"github.com/MKhiriev/go-pass-keeper-client/internal/workers"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const deviceIDFile = "device_id"

func main() {
	log := logger.NewClientLogger("go-pass-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cmd, err := client.ParseCommand(cfg.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sealer, err := crypto.NewSnapshotCipher(cfg.App.StateKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create state cipher")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	deviceID, err := utils.NewUUIDGenerator().LoadOrCreateDeviceID(filepath.Join(filepath.Dir(cfg.Storage.DB.DSN), deviceIDFile))
	if err != nil {
		log.Fatal().Err(err).Msg("load device id")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, deviceID, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(storages, serverAdapter, crypto.NewPasswordHasher(), log)
	syncWorkers := workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers, log))

	signInWorkers := workers.NewWorkers()
	if cfg.Adapter.CallbackAddress != "" {
		callback, err := server.NewCallbackServer(handler.NewHandler(services.AuthService, log).Init(), cfg.Adapter.CallbackAddress, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create captcha callback listener")
		}
		signInWorkers = workers.NewWorkers(callback)
	}

	webVault := service.NewWebVault(cfg.Adapter.WebVaultAddress, cfg.Adapter.CallbackAddress)
	ui := tui.New(services, storages.SavedState, webVault, buildInfo(cfg.App), log)

	notice, err := client.NewApp(services, ui, syncWorkers, signInWorkers, log).Run(ctx, cmd)
	switch {
	case errors.Is(err, tui.ErrUserQuit):
		return
	case err != nil:
		log.Error().Err(err).Msg("client run error")
		storages.Close()
		os.Exit(1)
	}

	if notice != "" {
		fmt.Println(notice)
	}
}

func buildInfo(cfg config.ClientApp) models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		version = cfg.Version
	}
	return models.AppBuildInfo{Version: version, Date: buildDate, Commit: buildCommit}.Filled()
}
