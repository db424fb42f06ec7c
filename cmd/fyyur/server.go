package main

import (
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/web"
)

func newHTTPHandler(cfg *config.Config, data backend) http.Handler {
	venueSvc := venues.New(data, nil)
	artistSvc := artists.New(data, nil)
	showSvc := shows.New(data)

	return web.New(venueSvc, artistSvc, showSvc, data, cfg.FlashCookie).Handler()
}
