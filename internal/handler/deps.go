package handler

import (
	"time"

	"biblenow/internal/app/live"
	"biblenow/internal/app/social"
	"biblenow/internal/app/storage"
	"biblenow/internal/configs"
)

// AppDeps holds everything the handlers need. Social and Storage are nil when
// the corresponding backing service is not configured.
type AppDeps struct {
	Config  *configs.AppConfig
	Live    *live.Proxy
	Social  *social.Service
	Storage storage.StorageService

	// Now is the clock used for token validity windows. Defaults to time.Now.
	Now func() time.Time
}

func (d *AppDeps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
