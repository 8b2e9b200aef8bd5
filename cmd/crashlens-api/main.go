// @title         CrashLens API
// @version       0.1.0
// @description   Read only endpoints for querying and summarizing collision person-rows

package main

import (
	"context"

	"github.com/joho/godotenv"

	"crashlens/internal/platform/config"
	"crashlens/internal/platform/logger"
	phttp "crashlens/internal/platform/net/http"
	"crashlens/internal/platform/store"

	"crashlens/internal/services/api"
)

func main() {
	// best effort; real env always wins over .env
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	dataCfg := root.Prefix("SERVICE_DATA_") // dataset source lives under SERVICE_DATA_*

	// bring up logging early
	l := logger.Get()

	// load the dataset snapshot the whole API serves
	snap, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "crashlens-api",
			Data: store.DataConfig{
				Path:    dataCfg.MustString("PATH"),
				MaxRows: dataCfg.MayInt("MAX_ROWS", 0),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Data:           snap,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
