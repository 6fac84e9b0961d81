package services

import (
	"go.uber.org/zap"

	"github.com/blogem/api-hits/database"
	"github.com/blogem/api-hits/events"
	"github.com/blogem/api-hits/repositories"
)

// Services holds all service instances
type Services struct {
	Hits  HitService
	Audit AuditService
	Stats StatsService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, tx database.Transactor, emitter *events.Emitter, log *zap.Logger) *Services {
	return &Services{
		Hits:  NewHitService(repos.Hits, tx, emitter, log),
		Audit: NewAuditService(repos.Audit, tx, emitter, log),
		Stats: NewStatsService(repos.Hits),
	}
}
